package ledger

import (
	"context"
	"errors"

	"github.com/gofinances/backend/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var ErrTransactionTypeInvalid = errors.New("the type of a transaction must be income or outcome")

// Service implements the operations on the ledger on top of a Store.
type Service struct {
	store Store
}

// NewService returns a Service using the given store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// TransactionCreate holds the fields of a transaction to create.
type TransactionCreate struct {
	Title    string                 `json:"title" binding:"required" example:"Salary"`                     // Title of the transaction
	Type     models.TransactionType `json:"type" binding:"required,oneof=income outcome" example:"income"` // Either income or outcome
	Value    decimal.Decimal        `json:"value" example:"1500"`                                          // Value of the transaction, must not be negative
	Category string                 `json:"category" binding:"required" example:"Work"`                    // Title of the category. Created if it does not exist
}

// CreateTransaction admits and persists a single transaction.
//
// The balance is read fresh on every call. A declined transaction does
// not create a category.
func (s *Service) CreateTransaction(ctx context.Context, create TransactionCreate) (models.Transaction, error) {
	if create.Type != models.TransactionTypeIncome && create.Type != models.TransactionTypeOutcome {
		return models.Transaction{}, clientError(ErrTransactionTypeInvalid)
	}

	if create.Value.IsNegative() {
		return models.Transaction{}, clientError(ErrValueNegative)
	}

	balance, err := s.store.Balance(ctx)
	if err != nil {
		return models.Transaction{}, err
	}

	err = Admit(balance.Total, create.Type, create.Value)
	if err != nil {
		transactionsDeclined.Inc()
		log.Debug().Str("total", balance.Total.String()).Str("value", create.Value.String()).Msg("declined outcome transaction")
		return models.Transaction{}, err
	}

	category, err := s.ResolveCategory(ctx, create.Category)
	if err != nil {
		return models.Transaction{}, err
	}

	transaction := models.Transaction{
		Title:      create.Title,
		Type:       create.Type,
		Value:      create.Value,
		CategoryID: category.ID,
		Category:   category,
	}

	err = s.store.CreateTransaction(ctx, &transaction)
	if err != nil {
		return models.Transaction{}, err
	}

	transactionsCreated.WithLabelValues("single").Inc()
	return transaction, nil
}

// DeleteTransaction deletes the transaction with the given ID.
// The category of the transaction is kept.
func (s *Service) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	transaction, err := s.store.FindTransaction(ctx, id)
	if errors.Is(err, models.ErrResourceNotFound) {
		return clientError(ErrTransactionNotFound)
	} else if err != nil {
		return err
	}

	return s.store.DeleteTransaction(ctx, transaction)
}

// Transaction returns a single transaction.
func (s *Service) Transaction(ctx context.Context, id uuid.UUID) (models.Transaction, error) {
	return s.store.FindTransaction(ctx, id)
}

// Transactions returns all transactions.
func (s *Service) Transactions(ctx context.Context) ([]models.Transaction, error) {
	return s.store.Transactions(ctx)
}

// Categories returns all categories.
func (s *Service) Categories(ctx context.Context) ([]models.Category, error) {
	return s.store.Categories(ctx)
}

// Balance returns the current balance.
func (s *Service) Balance(ctx context.Context) (models.Balance, error) {
	return s.store.Balance(ctx)
}
