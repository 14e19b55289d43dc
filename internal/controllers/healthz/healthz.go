package healthz

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gofinances/backend/internal/httputil"
	"github.com/gofinances/backend/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type Response struct {
	Error string `json:"error" example:"The database cannot be accessed"`
}

func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB) {
	r.OPTIONS("", Options)
	r.GET("", Get(db))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// Get returns the handler checking the health of the backend.
//
//	@Summary		Get health
//	@Description	Returns the application health and, if not healthy, an error
//	@Tags			General
//	@Produce		json
//	@Success		204
//	@Failure		500	{object}	Response
//	@Router			/healthz [get]
func Get(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}

		if err != nil {
			log.Error().Msgf("Error getting database connection for health check: %v", err)
			c.JSON(http.StatusInternalServerError, Response{
				Error: models.ErrGeneral.Error(),
			})
			return
		}

		c.Status(http.StatusNoContent)
	}
}
