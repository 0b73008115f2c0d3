package handler

import (
	"errors"
	"log"
	"net/http"

	"inventory_api/internal/export"
	"inventory_api/internal/response"
	"inventory_api/internal/service"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps service sentinel errors onto the envelope.
// Anything unrecognized is a database or infrastructure failure: it is
// logged in full and answered as DB_ERROR with the collaborator detail
// preserved under details.db.
func respondServiceError(c *gin.Context, err error, logContext string) {
	switch {
	case errors.Is(err, service.ErrValidation):
		response.Fail(c, http.StatusBadRequest, response.CodeValidation, err.Error())
	case errors.Is(err, service.ErrNotFound):
		response.Fail(c, http.StatusNotFound, response.CodeNotFound, err.Error())
	case errors.Is(err, service.ErrConflict):
		response.Fail(c, http.StatusConflict, response.CodeConflict, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Fail(c, http.StatusUnauthorized, response.CodeAuthError, "Invalid username or password")
	default:
		log.Printf("ERROR: %s: %v", logContext, err)
		response.FailDetails(c, http.StatusInternalServerError, response.CodeDBError,
			"Database operation failed", map[string]any{"db": err.Error()})
	}
}

// exportRowsFunc produces the header and rows for a tabular export
type exportRowsFunc func(c *gin.Context) (header []string, rows [][]string, err error)

// writeCSVExport streams rows as a CSV attachment
func writeCSVExport(c *gin.Context, filename string, load exportRowsFunc) {
	header, rows, err := load(c)
	if err != nil {
		respondServiceError(c, err, "export "+filename)
		return
	}
	buf, err := export.CSV(header, rows)
	if err != nil {
		log.Printf("ERROR: rendering CSV %s: %v", filename, err)
		response.Fail(c, http.StatusInternalServerError, response.CodeInternal, "Failed to render CSV")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

// writePDFExport streams rows as a PDF attachment. A nil exporter means PDF
// support is switched off; the caller gets 501 and a stable code so clients
// can fall back to CSV.
func writePDFExport(c *gin.Context, pdf *export.PDFExporter, filename, title string, load exportRowsFunc) {
	if pdf == nil {
		response.Fail(c, http.StatusNotImplemented, response.CodePDFUnavailable,
			"PDF export is not available on this server")
		return
	}
	header, rows, err := load(c)
	if err != nil {
		respondServiceError(c, err, "export "+filename)
		return
	}
	buf, err := pdf.Render(title, header, rows)
	if err != nil {
		log.Printf("ERROR: rendering PDF %s: %v", filename, err)
		response.Fail(c, http.StatusInternalServerError, response.CodeInternal, "Failed to render PDF")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
