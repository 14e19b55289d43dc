package v1

import (
	"errors"
	"net/http"

	"github.com/gofinances/backend/internal/ledger"
	"github.com/gofinances/backend/internal/models"
	"gorm.io/gorm"
)

// Controller holds the dependencies of all v1 handlers.
type Controller struct {
	DB        *gorm.DB
	Ledger    *ledger.Service
	UploadDir string // Directory uploaded import files are stored in until they are imported
}

// New returns a Controller operating on the given database.
func New(db *gorm.DB, uploadDir string) Controller {
	return Controller{
		DB:        db,
		Ledger:    ledger.NewService(models.NewStore(db)),
		UploadDir: uploadDir,
	}
}

type httpError struct {
	Error string `json:"error" example:"cannot find transaction you want to delete"`
}

type URIID struct {
	ID string `uri:"id" binding:"required,uuid" format:"UUID"` // ID of the resource
}

// status returns the appropriate status for an error
func status(err error) int {
	var e ledger.Error
	if errors.As(err, &e) {
		return e.Status
	}

	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Import errors
var (
	errNoFilePost      = errors.New("you must send a file to this endpoint")
	errWrongFileSuffix = errors.New("this endpoint only supports files of the following types")
)
