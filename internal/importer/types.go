package importer

import (
	"github.com/shopspring/decimal"
)

// Candidate is a transaction parsed from an import source that has not
// been persisted yet. All fields are trimmed and non-empty.
type Candidate struct {
	Title    string          // Title of the transaction
	Type     string          // Type of the transaction. Not validated beyond being set
	Value    decimal.Decimal // Value of the transaction
	Category string          // Title of the category the transaction belongs to
}
