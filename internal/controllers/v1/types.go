package v1

import (
	"github.com/gofinances/backend/internal/models"
)

type TransactionResponse struct {
	Error *string             `json:"error" example:"transaction declined"` // The error, if any occurred
	Data  *models.Transaction `json:"data"`                                 // The transaction
}

type TransactionList struct {
	Transactions []models.Transaction `json:"transactions"` // All transactions, oldest first
	Balance      models.Balance       `json:"balance"`      // The balance over all transactions
}

type TransactionListResponse struct {
	Error *string          `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
	Data  *TransactionList `json:"data"`                                                                 // Transactions and balance
}

type TransactionImportResponse struct {
	Error *string              `json:"error" example:"you must send a file to this endpoint"` // The error, if any occurred
	Data  []models.Transaction `json:"data"`                                                  // The imported transactions
}

type CategoryListResponse struct {
	Error *string           `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
	Data  []models.Category `json:"data"`                                                                 // All categories, sorted by title
}

// exportRow is a transaction in the column order of the CSV import.
type exportRow struct {
	Title    string `csv:"title"`
	Type     string `csv:"type"`
	Value    string `csv:"value"`
	Category string `csv:"category"`
}
