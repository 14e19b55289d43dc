package ledger

import (
	"github.com/gofinances/backend/internal/models"
	"github.com/shopspring/decimal"
)

// Admit decides if a transaction may be created given the current total
// of the balance.
//
// Income is always admitted. Outcome is declined when the total is zero or
// lower than the value of the transaction.
func Admit(total decimal.Decimal, transactionType models.TransactionType, value decimal.Decimal) error {
	if transactionType != models.TransactionTypeOutcome {
		return nil
	}

	if total.IsZero() || total.LessThan(value) {
		return clientError(ErrTransactionDeclined)
	}

	return nil
}
