package models_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/gofinances/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestFindCategoryByTitle() {
	food := suite.createTestCategory(models.Category{Title: "Food"})

	category, err := suite.store.FindCategoryByTitle(context.Background(), "Food")
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), food.ID, category.ID)

	// Matching is case sensitive
	_, err = suite.store.FindCategoryByTitle(context.Background(), "food")
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.Contains(suite.T(), err.Error(), "there is no category matching your query")
}

func (suite *TestSuiteStandard) TestFindCategoriesByTitle() {
	suite.createTestCategory(models.Category{Title: "Food"})
	suite.createTestCategory(models.Category{Title: "Rent"})
	suite.createTestCategory(models.Category{Title: "Salary"})

	categories, err := suite.store.FindCategoriesByTitle(context.Background(), []string{"Food", "Rent", "Rent", "Insurance"})
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), categories, 2)

	categories, err = suite.store.FindCategoriesByTitle(context.Background(), []string{})
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), categories, 0)
}

func (suite *TestSuiteStandard) TestCreateCategoryNotUnique() {
	_, err := suite.store.CreateCategory(context.Background(), "Food")
	assert.Nil(suite.T(), err)

	_, err = suite.store.CreateCategory(context.Background(), "Food")
	assert.ErrorIs(suite.T(), err, models.ErrCategoryTitleNotUnique)

	// Different case is a different category
	_, err = suite.store.CreateCategory(context.Background(), "FOOD")
	assert.Nil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestCreateCategories() {
	categories, err := suite.store.CreateCategories(context.Background(), []models.Category{{Title: "Food"}, {Title: "Rent"}})
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), categories, 2)

	for _, c := range categories {
		assert.NotEqual(suite.T(), uuid.Nil, c.ID, "Category %s has no ID", c.Title)
	}

	categories, err = suite.store.CreateCategories(context.Background(), []models.Category{})
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), categories, 0)
}

func (suite *TestSuiteStandard) TestCreateTransactionNegativeValue() {
	category := suite.createTestCategory(models.Category{Title: "Food"})

	err := suite.store.CreateTransaction(context.Background(), &models.Transaction{
		Title:      "Refund",
		Type:       models.TransactionTypeOutcome,
		Value:      decimal.NewFromFloat(-5),
		CategoryID: category.ID,
	})
	assert.ErrorIs(suite.T(), err, models.ErrTransactionValueNegative)
}

func (suite *TestSuiteStandard) TestCreateTransactions() {
	category := suite.createTestCategory(models.Category{Title: "Food"})

	transactions := []models.Transaction{
		{Title: "Groceries", Type: models.TransactionTypeOutcome, Value: decimal.NewFromFloat(45), Category: category},
		{Title: "Bakery", Type: models.TransactionTypeOutcome, Value: decimal.NewFromFloat(3.5), Category: category},
	}

	err := suite.store.CreateTransactions(context.Background(), transactions)
	assert.Nil(suite.T(), err)

	for _, tr := range transactions {
		assert.NotEqual(suite.T(), uuid.Nil, tr.ID)
		assert.Equal(suite.T(), category.ID, tr.CategoryID)
	}

	stored, err := suite.store.Transactions(context.Background())
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), stored, 2)
	assert.Equal(suite.T(), "Food", stored[0].Category.Title)

	// The category is not created a second time
	categories, err := suite.store.Categories(context.Background())
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), categories, 1)

	assert.Nil(suite.T(), suite.store.CreateTransactions(context.Background(), []models.Transaction{}))
}

func (suite *TestSuiteStandard) TestCreateTransactionsLarge() {
	category := suite.createTestCategory(models.Category{Title: "Food"})

	transactions := make([]models.Transaction, 6000)
	for i := range transactions {
		transactions[i] = models.Transaction{Title: fmt.Sprintf("T%d", i), Type: models.TransactionTypeIncome, Value: decimal.NewFromInt(1), CategoryID: category.ID}
	}

	err := suite.store.CreateTransactions(context.Background(), transactions)
	assert.Nil(suite.T(), err)

	balance, err := suite.store.Balance(context.Background())
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), balance.Income.Equal(decimal.NewFromInt(6000)), "Income is %s", balance.Income)
}

func (suite *TestSuiteStandard) TestCreateTransactionsAllOrNothing() {
	category := suite.createTestCategory(models.Category{Title: "Food"})

	transactions := make([]models.Transaction, 2500)
	for i := range transactions {
		transactions[i] = models.Transaction{Title: fmt.Sprintf("T%d", i), Type: models.TransactionTypeIncome, Value: decimal.NewFromInt(1), CategoryID: category.ID}
	}

	// Fails in the last chunk, after earlier chunks have been inserted
	transactions[2400].Value = decimal.NewFromInt(-1)

	err := suite.store.CreateTransactions(context.Background(), transactions)
	assert.ErrorIs(suite.T(), err, models.ErrTransactionValueNegative)

	stored, err := suite.store.Transactions(context.Background())
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), stored, 0)
}

func (suite *TestSuiteStandard) TestCreateCategoriesLarge() {
	titles := make([]string, 12000)
	categories := make([]models.Category, len(titles))
	for i := range titles {
		titles[i] = fmt.Sprintf("Category %d", i)
		categories[i] = models.Category{Title: titles[i]}
	}

	created, err := suite.store.CreateCategories(context.Background(), categories)
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), created, len(titles))

	found, err := suite.store.FindCategoriesByTitle(context.Background(), titles)
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), found, len(titles))
}

func (suite *TestSuiteStandard) TestCreateCategoriesAllOrNothing() {
	suite.createTestCategory(models.Category{Title: "Category 1500"})

	categories := make([]models.Category, 2000)
	for i := range categories {
		categories[i] = models.Category{Title: fmt.Sprintf("Category %d", i)}
	}

	_, err := suite.store.CreateCategories(context.Background(), categories)
	assert.ErrorIs(suite.T(), err, models.ErrCategoryTitleNotUnique)

	stored, err := suite.store.Categories(context.Background())
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), stored, 1)
}

func (suite *TestSuiteStandard) TestDeleteTransactionKeepsCategory() {
	transaction := suite.createTestTransaction(models.Transaction{Title: "Rent", Type: models.TransactionTypeOutcome, Value: decimal.NewFromFloat(800)})
	other := suite.createTestTransaction(models.Transaction{Title: "Salary", Type: models.TransactionTypeIncome, Value: decimal.NewFromFloat(1000)})

	found, err := suite.store.FindTransaction(context.Background(), transaction.ID)
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), "Rent category", found.Category.Title)

	err = suite.store.DeleteTransaction(context.Background(), found)
	assert.Nil(suite.T(), err)

	_, err = suite.store.FindTransaction(context.Background(), transaction.ID)
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)

	_, err = suite.store.FindTransaction(context.Background(), other.ID)
	assert.Nil(suite.T(), err, "Unrelated transaction has been deleted")

	_, err = suite.store.FindCategoryByTitle(context.Background(), "Rent category")
	assert.Nil(suite.T(), err, "Category has been deleted with the transaction")
}

func (suite *TestSuiteStandard) TestBalance() {
	balance, err := suite.store.Balance(context.Background())
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), balance.Total.IsZero(), "Balance of an empty store is %s", balance.Total)

	suite.createTestTransaction(models.Transaction{Title: "Salary", Type: models.TransactionTypeIncome, Value: decimal.NewFromFloat(100)})
	suite.createTestTransaction(models.Transaction{Title: "Bonus", Type: models.TransactionTypeIncome, Value: decimal.NewFromFloat(20.5)})
	suite.createTestTransaction(models.Transaction{Title: "Groceries", Type: models.TransactionTypeOutcome, Value: decimal.NewFromFloat(45)})

	balance, err = suite.store.Balance(context.Background())
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), balance.Income.Equal(decimal.NewFromFloat(120.5)), "Income is %s", balance.Income)
	assert.True(suite.T(), balance.Outcome.Equal(decimal.NewFromFloat(45)), "Outcome is %s", balance.Outcome)
	assert.True(suite.T(), balance.Total.Equal(decimal.NewFromFloat(75.5)), "Total is %s", balance.Total)
}

func (suite *TestSuiteStandard) TestStoreDBClosed() {
	suite.CloseDB()

	tests := []struct {
		name string
		f    func() error
	}{
		{"FindCategoryByTitle", func() error {
			_, err := suite.store.FindCategoryByTitle(context.Background(), "Food")
			return err
		}},
		{"CreateCategory", func() error {
			_, err := suite.store.CreateCategory(context.Background(), "Food")
			return err
		}},
		{"CreateCategories", func() error {
			_, err := suite.store.CreateCategories(context.Background(), []models.Category{{Title: "Food"}})
			return err
		}},
		{"CreateTransactions", func() error {
			return suite.store.CreateTransactions(context.Background(), []models.Transaction{{Title: "Bakery", Type: models.TransactionTypeOutcome, Value: decimal.NewFromInt(3), CategoryID: uuid.New()}})
		}},
		{"Transactions", func() error {
			_, err := suite.store.Transactions(context.Background())
			return err
		}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.f(), models.ErrGeneral)
		})
	}

	_, err := suite.store.Balance(context.Background())
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}
