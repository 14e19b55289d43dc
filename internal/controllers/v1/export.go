package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gocarina/gocsv"
	"github.com/gofinances/backend/internal/httputil"
)

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Export
// @Success		204
// @Router			/v1/transactions/export [options]
func (co Controller) OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Export transactions
// @Description	Exports all transactions as CSV in the format accepted by the import
// @Tags			Export
// @Produce		text/csv
// @Success		200	{string}	string
// @Failure		500	{object}	httpError
// @Router			/v1/transactions/export [get]
func (co Controller) ExportTransactions(c *gin.Context) {
	transactions, err := co.Ledger.Transactions(c.Request.Context())
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	rows := make([]exportRow, 0, len(transactions))
	for _, transaction := range transactions {
		rows = append(rows, exportRow{
			Title:    transaction.Title,
			Type:     string(transaction.Type),
			Value:    transaction.Value.String(),
			Category: transaction.Category.Title,
		})
	}

	b, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{
			Error: err.Error(),
		})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="transactions.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", b)
}
