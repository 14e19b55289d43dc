package v1

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/gofinances/backend/internal/httputil"
	"github.com/gofinances/backend/internal/importer"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/v1/transactions/import [options]
func (co Controller) OptionsImport(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Import transactions
// @Description	Imports transactions from a CSV file with the columns title, type, value and category. The first line is a header and always skipped. Lines with an empty field are ignored. Missing categories are created. Imported transactions are not checked against the balance.
// @Tags			Import
// @Accept			multipart/form-data
// @Produce		json
// @Success		201		{object}	TransactionImportResponse
// @Failure		400		{object}	TransactionImportResponse
// @Failure		500		{object}	TransactionImportResponse
// @Param			file	formData	file	true	"File to import"
// @Router			/v1/transactions/import [post]
func (co Controller) ImportTransactions(c *gin.Context) {
	formFile, err := getUploadedFile(c, ".csv")
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, TransactionImportResponse{
			Error: &e,
		})
		return
	}

	// The upload is stored with a random name so that concurrent
	// uploads of files with the same name do not collide
	path := filepath.Join(co.UploadDir, fmt.Sprintf("%s.csv", uuid.NewString()))
	err = c.SaveUploadedFile(formFile, path)
	if err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		e := fmt.Sprintf("could not store the uploaded file, the request id is '%s'", requestid.Get(c))
		c.JSON(http.StatusInternalServerError, TransactionImportResponse{
			Error: &e,
		})
		return
	}

	source := importer.FileSource{Path: path}
	transactions, err := co.Ledger.ImportTransactions(c.Request.Context(), source)
	if err != nil {
		// The stored upload cannot be referenced again, clients retry with a new upload
		if removeErr := source.Remove(); removeErr != nil {
			log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", removeErr, removeErr.Error())
		}

		e := err.Error()
		c.JSON(status(err), TransactionImportResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusCreated, TransactionImportResponse{Data: transactions})
}

// getUploadedFile returns the form file and handles potential errors.
func getUploadedFile(c *gin.Context, suffix string) (*multipart.FileHeader, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, errNoFilePost
	}

	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(formFile.Filename, suffix) {
		return nil, fmt.Errorf("%w: %s", errWrongFileSuffix, suffix)
	}

	return formFile, nil
}
