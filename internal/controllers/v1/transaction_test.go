package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/gofinances/backend/internal/controllers/v1"
	"github.com/gofinances/backend/internal/httputil"
	"github.com/gofinances/backend/internal/ledger"
	"github.com/gofinances/backend/internal/models"
	"github.com/gofinances/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) createTestTransaction(t *testing.T, c ledger.TransactionCreate, expectedStatus ...int) v1.TransactionResponse {
	if c.Title == "" {
		c.Title = "Test transaction"
	}

	if c.Category == "" {
		c.Category = "Test category"
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, suite.co, http.MethodPost, "http://example.com/v1/transactions", c)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var transaction v1.TransactionResponse
	test.DecodeResponse(t, &r, &transaction)

	return transaction
}

func (suite *TestSuiteStandard) TestTransactionsCreate() {
	transaction := suite.createTestTransaction(suite.T(), ledger.TransactionCreate{
		Title:    "  Salary  ",
		Type:     models.TransactionTypeIncome,
		Value:    decimal.NewFromInt(1500),
		Category: "Work",
	})

	suite.Require().NotNil(transaction.Data)
	suite.Assert().Nil(transaction.Error)
	suite.Assert().Equal("Salary", transaction.Data.Title)
	suite.Assert().Equal("Work", transaction.Data.Category.Title)
	suite.Assert().Equal(transaction.Data.Category.ID, transaction.Data.CategoryID)
	suite.Assert().True(transaction.Data.Value.Equal(decimal.NewFromInt(1500)))
}

func (suite *TestSuiteStandard) TestTransactionsCreateDeclined() {
	tests := []struct {
		name  string
		value int64
	}{
		{"Empty balance", 50},
		{"Insufficient funds", 150},
	}

	for i, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			// The second case runs with a total of 100
			if i == 1 {
				suite.createTestTransaction(t, ledger.TransactionCreate{Type: models.TransactionTypeIncome, Value: decimal.NewFromInt(100)})
			}

			r := suite.createTestTransaction(t, ledger.TransactionCreate{Type: models.TransactionTypeOutcome, Value: decimal.NewFromInt(tt.value)}, http.StatusBadRequest)
			suite.Require().NotNil(r.Error)
			assert.Equal(t, "transaction declined", *r.Error)
			assert.Nil(t, r.Data)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsCreateInvalidBody() {
	tests := []struct {
		name string
		body any
		err  string
	}{
		{"Broken JSON", `{ "title": "Salary }`, httputil.ErrInvalidBody.Error()},
		{"Empty body", "", "the request body must not be empty"},
		{"Missing category", map[string]any{"title": "Salary", "type": "income", "value": 10}, "Category is required"},
		{"Unknown type", map[string]any{"title": "Salary", "type": "gift", "value": 10, "category": "Work"}, "Type must be one of: income outcome"},
		{"Negative value", map[string]any{"title": "Refund", "type": "income", "value": -10, "category": "Work"}, ledger.ErrValueNegative.Error()},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.co, http.MethodPost, "http://example.com/v1/transactions", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			assert.Contains(t, test.DecodeError(t, r.Body.Bytes()), tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsList() {
	suite.createTestTransaction(suite.T(), ledger.TransactionCreate{Title: "Salary", Type: models.TransactionTypeIncome, Value: decimal.NewFromInt(100), Category: "Work"})
	suite.createTestTransaction(suite.T(), ledger.TransactionCreate{Title: "Groceries", Type: models.TransactionTypeOutcome, Value: decimal.RequireFromString("45.50"), Category: "Food"})

	r := test.Request(suite.T(), suite.co, http.MethodGet, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Data)
	suite.Require().Len(response.Data.Transactions, 2)
	suite.Assert().Equal("Salary", response.Data.Transactions[0].Title)
	suite.Assert().Equal("Food", response.Data.Transactions[1].Category.Title)

	balance := response.Data.Balance
	suite.Assert().True(balance.Income.Equal(decimal.NewFromInt(100)), balance.Income.String())
	suite.Assert().True(balance.Outcome.Equal(decimal.RequireFromString("45.5")), balance.Outcome.String())
	suite.Assert().True(balance.Total.Equal(decimal.RequireFromString("54.5")), balance.Total.String())
}

func (suite *TestSuiteStandard) TestTransactionsGet() {
	transaction := suite.createTestTransaction(suite.T(), ledger.TransactionCreate{Type: models.TransactionTypeIncome, Value: decimal.NewFromInt(10)})

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Existing", transaction.Data.ID.String(), http.StatusOK},
		{"Not existing", uuid.NewString(), http.StatusNotFound},
		{"Not a UUID", "not-a-uuid", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.co, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.TransactionResponse
			test.DecodeResponse(t, &r, &response)
			if tt.status == http.StatusOK {
				assert.Equal(t, transaction.Data.ID, response.Data.ID)
			} else {
				assert.NotNil(t, response.Error)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsDelete() {
	transaction := suite.createTestTransaction(suite.T(), ledger.TransactionCreate{Type: models.TransactionTypeIncome, Value: decimal.NewFromInt(10), Category: "Kept"})

	r := test.Request(suite.T(), suite.co, http.MethodDelete, fmt.Sprintf("http://example.com/v1/transactions/%s", transaction.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), suite.co, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions/%s", transaction.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), suite.co, http.MethodGet, "http://example.com/v1/categories", "")
	var categories v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &categories)
	suite.Require().Len(categories.Data, 1)
	suite.Assert().Equal("Kept", categories.Data[0].Title)
}

func (suite *TestSuiteStandard) TestTransactionsDeleteFails() {
	tests := []struct {
		name string
		id   string
		err  string
	}{
		{"Not existing", uuid.NewString(), "cannot find transaction you want to delete"},
		{"Not a UUID", "not-a-uuid", "the specified resource ID is not a valid UUID"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.co, http.MethodDelete, fmt.Sprintf("http://example.com/v1/transactions/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			assert.Equal(t, tt.err, test.DecodeError(t, r.Body.Bytes()))
		})
	}
}

// TestTransactionsDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestTransactionsDBClosed() {
	suite.CloseDB()

	tests := []struct {
		name   string
		method string
		path   string
		body   any
	}{
		{"List", http.MethodGet, "http://example.com/v1/transactions", ""},
		{"Create", http.MethodPost, "http://example.com/v1/transactions", ledger.TransactionCreate{Title: "Salary", Type: models.TransactionTypeIncome, Value: decimal.NewFromInt(10), Category: "Work"}},
		{"Delete", http.MethodDelete, fmt.Sprintf("http://example.com/v1/transactions/%s", uuid.New()), ""},
		{"Export", http.MethodGet, "http://example.com/v1/transactions/export", ""},
		{"Categories", http.MethodGet, "http://example.com/v1/categories", ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.co, tt.method, tt.path, tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusInternalServerError)
			assert.Contains(t, test.DecodeError(t, r.Body.Bytes()), models.ErrGeneral.Error())
		})
	}
}

func (suite *TestSuiteStandard) TestOptionsHeaderResources() {
	transaction := suite.createTestTransaction(suite.T(), ledger.TransactionCreate{Type: models.TransactionTypeIncome, Value: decimal.NewFromInt(10)})

	optionsHeaderTests := []struct {
		path     string
		response string
	}{
		{"http://example.com/v1", "OPTIONS, GET"},
		{"http://example.com/v1/categories", "OPTIONS, GET"},
		{"http://example.com/v1/transactions", "OPTIONS, GET, POST"},
		{"http://example.com/v1/transactions/import", "OPTIONS, POST"},
		{"http://example.com/v1/transactions/export", "OPTIONS, GET"},
		{fmt.Sprintf("http://example.com/v1/transactions/%s", transaction.Data.ID), "OPTIONS, GET, DELETE"},
	}

	for _, tt := range optionsHeaderTests {
		suite.T().Run(tt.path, func(t *testing.T) {
			recorder := test.Request(t, suite.co, http.MethodOptions, tt.path, "")

			assert.Equal(t, http.StatusNoContent, recorder.Code)
			assert.Equal(t, tt.response, recorder.Header().Get("allow"))
		})
	}

	r := test.Request(suite.T(), suite.co, http.MethodOptions, fmt.Sprintf("http://example.com/v1/transactions/%s", uuid.New()), "")
	suite.Assert().Equal(http.StatusNotFound, r.Code)
}

func (suite *TestSuiteStandard) TestGetV1() {
	r := test.Request(suite.T(), suite.co, http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("http://example.com/v1/transactions", response.Links.Transactions)
	suite.Assert().Equal("http://example.com/v1/transactions/import", response.Links.Import)
}
