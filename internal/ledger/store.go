package ledger

import (
	"context"

	"github.com/gofinances/backend/internal/models"
	"github.com/google/uuid"
)

// Store is the persistence the ledger operates on.
//
// Lookups of missing resources must return an error wrapping
// models.ErrResourceNotFound, inserts of an existing category title
// must return models.ErrCategoryTitleNotUnique.
type Store interface {
	FindCategoryByTitle(ctx context.Context, title string) (models.Category, error)
	FindCategoriesByTitle(ctx context.Context, titles []string) ([]models.Category, error)
	CreateCategory(ctx context.Context, title string) (models.Category, error)
	CreateCategories(ctx context.Context, categories []models.Category) ([]models.Category, error)
	Categories(ctx context.Context) ([]models.Category, error)

	CreateTransaction(ctx context.Context, transaction *models.Transaction) error
	CreateTransactions(ctx context.Context, transactions []models.Transaction) error
	FindTransaction(ctx context.Context, id uuid.UUID) (models.Transaction, error)
	DeleteTransaction(ctx context.Context, transaction models.Transaction) error
	Transactions(ctx context.Context) ([]models.Transaction, error)

	Balance(ctx context.Context) (models.Balance, error)
}
