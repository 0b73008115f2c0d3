package handler

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"inventory_api/internal/export"
	"inventory_api/internal/middleware"
	"inventory_api/internal/repository"
	"inventory_api/internal/response"
	"inventory_api/internal/service"
	"inventory_api/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listCategoriesSQL = `SELECT id, name FROM categories ORDER BY id DESC`

func setupCategoryAPI(t *testing.T, pdf *export.PDFExporter) (*gin.Engine, pgxmock.PgxPoolIface, string) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	jwtUtil := utils.NewJWTUtil("test-secret", 1)
	h := NewCategoryHandler(service.NewCategoryService(repository.NewCategoryRepository(mock)), pdf)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	RegisterCategoryRoutes(api, h, middleware.JWTAuthMiddleware(jwtUtil), middleware.AdminMiddleware())

	token, _ := jwtUtil.IssueToken(1, "admin")
	return router, mock, token
}

func TestCategoryExportCSV(t *testing.T) {
	router, mock, token := setupCategoryAPI(t, nil)

	mock.ExpectQuery(regexp.QuoteMeta(listCategoriesSQL)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name"}).
			AddRow(2, "Tools").
			AddRow(1, "Paint, Brushes"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories/export/csv", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "categories.csv")
	assert.Equal(t, "ID,Name\n2,Tools\n1,\"Paint, Brushes\"\n", w.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

// With the PDF exporter switched off the endpoint answers 501 with a
// stable code, so clients can fall back to CSV
func TestCategoryExportPDF_Disabled(t *testing.T) {
	router, _, token := setupCategoryAPI(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories/export/pdf", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotImplemented, w.Code)
	env := envelope(t, w)
	assert.False(t, env.OK)
	assert.Equal(t, response.CodePDFUnavailable, env.Code)
}

func TestCategoryExportPDF_Enabled(t *testing.T) {
	router, mock, token := setupCategoryAPI(t, export.NewPDFExporter())

	mock.ExpectQuery(regexp.QuoteMeta(listCategoriesSQL)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name"}).AddRow(1, "Tools"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories/export/pdf", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, len(w.Body.Bytes()) > 0)
	assert.Equal(t, "%PDF", w.Body.String()[:4])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryDelete_BlockedReturnsConflict(t *testing.T) {
	router, mock, token := setupCategoryAPI(t, nil)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM products WHERE category_id = $1`)).
		WithArgs(5).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/categories/5", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	env := envelope(t, w)
	assert.Equal(t, response.CodeConflict, env.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryDelete_BadReassignParam(t *testing.T) {
	router, _, token := setupCategoryAPI(t, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/categories/5?reassign_to=abc", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := envelope(t, w)
	assert.Equal(t, response.CodeValidation, env.Code)
}
