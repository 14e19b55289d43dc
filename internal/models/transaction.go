package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// swagger:enum TransactionType
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeOutcome TransactionType = "outcome"
)

// Transaction is a single income or outcome booked against a category.
type Transaction struct {
	DefaultModel
	Title      string          `json:"title" example:"Groceries"`                                                        // Title of the transaction
	Type       TransactionType `json:"type" example:"outcome"`                                                           // Either income or outcome
	Value      decimal.Decimal `json:"value" gorm:"type:DECIMAL(20,8);check:value_not_negative,value >= 0" example:"45"` // The value of the transaction, never negative
	CategoryID uuid.UUID       `json:"categoryId" example:"3b1bd4a4-8b2f-4d3c-9d0a-3f1e8c9b2a10"`                        // ID of the category
	Category   Category        `json:"category"`                                                                         // The category the transaction is booked against
}

// BeforeSave trims whitespace from the title.
func (t *Transaction) BeforeSave(_ *gorm.DB) (err error) {
	t.Title = strings.TrimSpace(t.Title)

	if t.Category.ID != uuid.Nil && t.CategoryID == uuid.Nil {
		t.CategoryID = t.Category.ID
	}

	return
}

// Balance is derived from all transactions and never stored.
type Balance struct {
	Income  decimal.Decimal `json:"income" example:"100"` // Sum of all income transactions
	Outcome decimal.Decimal `json:"outcome" example:"50"` // Sum of all outcome transactions
	Total   decimal.Decimal `json:"total" example:"50"`   // Income minus outcome
}
