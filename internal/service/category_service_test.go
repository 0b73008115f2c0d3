package service

import (
	"context"
	"regexp"
	"testing"

	"inventory_api/internal/repository"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const countProductsSQL = `SELECT COUNT(*) FROM products WHERE category_id = $1`
const categoryExistsSQL = `SELECT EXISTS (SELECT 1 FROM categories WHERE id = $1)`
const reassignProductsSQL = `UPDATE products SET category_id = $1 WHERE category_id = $2`
const deleteCategorySQL = `DELETE FROM categories WHERE id = $1`

func newCategoryService(t *testing.T) (CategoryService, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return NewCategoryService(repository.NewCategoryRepository(mock)), mock
}

func TestCategoryService_Delete_EmptyCategory(t *testing.T) {
	svc, mock := newCategoryService(t)

	mock.ExpectQuery(regexp.QuoteMeta(countProductsSQL)).
		WithArgs(5).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(0)))
	mock.ExpectExec(regexp.QuoteMeta(deleteCategorySQL)).
		WithArgs(5).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := svc.Delete(context.Background(), 5, nil)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryService_Delete_MissingCategory(t *testing.T) {
	svc, mock := newCategoryService(t)

	mock.ExpectQuery(regexp.QuoteMeta(countProductsSQL)).
		WithArgs(99).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(0)))
	mock.ExpectExec(regexp.QuoteMeta(deleteCategorySQL)).
		WithArgs(99).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := svc.Delete(context.Background(), 99, nil)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A category that still holds products cannot be deleted without naming
// a successor; nothing is written.
func TestCategoryService_Delete_BlockedWithoutReassign(t *testing.T) {
	svc, mock := newCategoryService(t)

	mock.ExpectQuery(regexp.QuoteMeta(countProductsSQL)).
		WithArgs(5).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))

	err := svc.Delete(context.Background(), 5, nil)

	assert.ErrorIs(t, err, ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryService_Delete_ReassignToSelf(t *testing.T) {
	svc, mock := newCategoryService(t)

	mock.ExpectQuery(regexp.QuoteMeta(countProductsSQL)).
		WithArgs(5).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))

	target := 5
	err := svc.Delete(context.Background(), 5, &target)

	assert.ErrorIs(t, err, ErrValidation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryService_Delete_ReassignTargetMissing(t *testing.T) {
	svc, mock := newCategoryService(t)

	mock.ExpectQuery(regexp.QuoteMeta(countProductsSQL)).
		WithArgs(5).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))
	mock.ExpectQuery(regexp.QuoteMeta(categoryExistsSQL)).
		WithArgs(6).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	target := 6
	err := svc.Delete(context.Background(), 5, &target)

	assert.ErrorIs(t, err, ErrValidation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Reassignment and deletion happen inside one transaction
func TestCategoryService_Delete_WithReassign(t *testing.T) {
	svc, mock := newCategoryService(t)

	mock.ExpectQuery(regexp.QuoteMeta(countProductsSQL)).
		WithArgs(5).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))
	mock.ExpectQuery(regexp.QuoteMeta(categoryExistsSQL)).
		WithArgs(6).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(reassignProductsSQL)).
		WithArgs(6, 5).
		WillReturnResult(pgxmock.NewResult("UPDATE", 3))
	mock.ExpectExec(regexp.QuoteMeta(deleteCategorySQL)).
		WithArgs(5).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectCommit()

	target := 6
	err := svc.Delete(context.Background(), 5, &target)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// When the reassignment update fails the transaction rolls back and the
// category survives
func TestCategoryService_Delete_ReassignFailureRollsBack(t *testing.T) {
	svc, mock := newCategoryService(t)

	mock.ExpectQuery(regexp.QuoteMeta(countProductsSQL)).
		WithArgs(5).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))
	mock.ExpectQuery(regexp.QuoteMeta(categoryExistsSQL)).
		WithArgs(6).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(reassignProductsSQL)).
		WithArgs(6, 5).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	target := 6
	err := svc.Delete(context.Background(), 5, &target)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
