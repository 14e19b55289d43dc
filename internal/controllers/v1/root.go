package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gofinances/backend/internal/httputil"
	"github.com/gofinances/backend/internal/models"
)

// RegisterRoutes registers all v1 routes with the RouterGroup that is passed.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)

	co.RegisterTransactionRoutes(r.Group("/transactions"))
	co.RegisterCategoryRoutes(r.Group("/categories"))
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Categories   string `json:"categories" example:"https://example.com/api/v1/categories"`      // URL of Category collection endpoint
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions"`  // URL of Transaction collection endpoint
	Import       string `json:"import" example:"https://example.com/api/v1/transactions/import"` // URL of the CSV import endpoint
	Export       string `json:"export" example:"https://example.com/api/v1/transactions/export"` // URL of the CSV export endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.ContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Categories:   url + "/v1/categories",
			Transactions: url + "/v1/transactions",
			Import:       url + "/v1/transactions/import",
			Export:       url + "/v1/transactions/export",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
