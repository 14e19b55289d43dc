package models

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SQLite binds at most 32766 variables per statement. Bulk statements
// are split so that they stay below that limit.
const (
	insertBatchSize = 1000
	lookupBatchSize = 10000
)

// Store persists categories and transactions with gorm.
type Store struct {
	db *gorm.DB
}

// NewStore returns a Store using the passed database connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB returns the underlying database connection.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// FindCategoryByTitle returns the category with exactly the given title.
func (s *Store) FindCategoryByTitle(ctx context.Context, title string) (Category, error) {
	var category Category
	err := s.db.WithContext(ctx).Where("title = ?", title).First(&category).Error
	if err != nil {
		return Category{}, err
	}

	return category, nil
}

// FindCategoriesByTitle returns all categories whose title is contained in titles.
// Long lists are looked up in chunks of lookupBatchSize titles.
func (s *Store) FindCategoriesByTitle(ctx context.Context, titles []string) ([]Category, error) {
	categories := make([]Category, 0, len(titles))
	for start := 0; start < len(titles) || start == 0; start += lookupBatchSize {
		end := min(start+lookupBatchSize, len(titles))

		var found []Category
		err := s.db.WithContext(ctx).Where("title IN ?", titles[start:end]).Find(&found).Error
		if err != nil {
			return nil, err
		}
		categories = append(categories, found...)
	}

	return categories, nil
}

// CreateCategory creates a category with the given title.
func (s *Store) CreateCategory(ctx context.Context, title string) (Category, error) {
	category := Category{Title: title}
	err := s.db.WithContext(ctx).Create(&category).Error
	if err != nil {
		return Category{}, err
	}

	return category, nil
}

// CreateCategories creates all categories in one database transaction.
func (s *Store) CreateCategories(ctx context.Context, categories []Category) ([]Category, error) {
	if len(categories) == 0 {
		return categories, nil
	}

	err := s.transaction(ctx, func(tx *gorm.DB) error {
		return tx.CreateInBatches(&categories, insertBatchSize).Error
	})
	if err != nil {
		return nil, err
	}

	return categories, nil
}

// CreateTransaction creates a single transaction. The category must already exist.
func (s *Store) CreateTransaction(ctx context.Context, transaction *Transaction) error {
	return s.db.WithContext(ctx).Omit(clause.Associations).Create(transaction).Error
}

// CreateTransactions creates all transactions in one database transaction.
// The categories referenced must already exist.
func (s *Store) CreateTransactions(ctx context.Context, transactions []Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	return s.transaction(ctx, func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).CreateInBatches(&transactions, insertBatchSize).Error
	})
}

// FindTransaction returns the transaction with the given ID, including its category.
func (s *Store) FindTransaction(ctx context.Context, id uuid.UUID) (Transaction, error) {
	var transaction Transaction
	err := s.db.WithContext(ctx).Preload("Category").First(&transaction, "id = ?", id).Error
	if err != nil {
		return Transaction{}, err
	}

	return transaction, nil
}

// DeleteTransaction permanently deletes the transaction. Its category is kept.
func (s *Store) DeleteTransaction(ctx context.Context, transaction Transaction) error {
	return s.db.WithContext(ctx).Delete(&Transaction{}, "id = ?", transaction.ID).Error
}

// Transactions returns all transactions with their categories, oldest first.
func (s *Store) Transactions(ctx context.Context) ([]Transaction, error) {
	transactions := make([]Transaction, 0)
	err := s.db.WithContext(ctx).Preload("Category").Order("transactions.created_at ASC").Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

// Categories returns all categories sorted by title.
func (s *Store) Categories(ctx context.Context) ([]Category, error) {
	categories := make([]Category, 0)
	err := s.db.WithContext(ctx).Order("title ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}

	return categories, nil
}

// Balance sums up all transactions. It is calculated on every call.
func (s *Store) Balance(ctx context.Context) (Balance, error) {
	income, err := s.sum(ctx, TransactionTypeIncome)
	if err != nil {
		return Balance{}, err
	}

	outcome, err := s.sum(ctx, TransactionTypeOutcome)
	if err != nil {
		return Balance{}, err
	}

	return Balance{
		Income:  income,
		Outcome: outcome,
		Total:   income.Sub(outcome),
	}, nil
}

// sum returns the sum of the values of all transactions of the given type.
// transaction runs fc in a database transaction.
func (s *Store) transaction(ctx context.Context, fc func(tx *gorm.DB) error) error {
	err := s.db.WithContext(ctx).Transaction(fc)
	if err == nil || errors.Is(err, ErrCategoryTitleNotUnique) || errors.Is(err, ErrTransactionValueNegative) || errors.Is(err, ErrGeneral) {
		return err
	}

	// Errors on begin and commit do not pass the callbacks
	log.Error().Msgf("%T: %v", err, err.Error())
	return ErrGeneral
}

func (s *Store) sum(ctx context.Context, transactionType TransactionType) (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	err := s.db.WithContext(ctx).
		Table("transactions").
		Where("transactions.type = ?", transactionType).
		Select("SUM(value)").
		Row().
		Scan(&sum)
	// Row() defers errors to Scan, so the callbacks never see them
	if err != nil {
		log.Error().Str("type", string(transactionType)).Msgf("%T: %v", err, err.Error())
		return decimal.Zero, ErrGeneral
	}

	return sum.Decimal, nil
}
