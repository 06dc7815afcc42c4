package store

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-finance-tracker/models"
)

func newTestCategoryRepo(t *testing.T) (*categoryRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return &categoryRepository{db: db, logger: db.logger}, mock
}

func TestCreateCategory_Duplicate(t *testing.T) {
	repo, mock := newTestCategoryRepo(t)

	mock.ExpectQuery("INSERT INTO categories").
		WithArgs(int64(7), "Mercado", "").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateCategory(context.Background(), models.Category{UserID: 7, Name: "Mercado"})

	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestListCategories_SearchAndPage(t *testing.T) {
	repo, mock := newTestCategoryRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM categories WHERE user_id = $1 AND name ILIKE $2 ESCAPE '\\'")).
		WithArgs(int64(7), "%mer%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(11))
	mock.ExpectQuery(regexp.QuoteMeta("FROM categories WHERE user_id = $1 AND name ILIKE $2 ESCAPE '\\' ORDER BY name ASC, id ASC LIMIT 10 OFFSET 10")).
		WithArgs(int64(7), "%mer%").
		WillReturnRows(sqlmock.NewRows(categoryColumns).AddRow(int64(11), int64(7), "Mercearia", "", now, now))

	categories, total, err := repo.ListCategories(context.Background(), 7, models.PageRequest{Page: 2, Limit: 10, Search: "mer"})

	require.NoError(t, err)
	assert.Equal(t, 11, total)
	require.Len(t, categories, 1)
	assert.Equal(t, "Mercearia", categories[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListCategories_SearchIsLiteral(t *testing.T) {
	repo, mock := newTestCategoryRepo(t)

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(int64(7), `%50\%%`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("FROM categories").
		WithArgs(int64(7), `%50\%%`).
		WillReturnRows(sqlmock.NewRows(categoryColumns))

	categories, total, err := repo.ListCategories(context.Background(), 7, models.PageRequest{Page: 1, Limit: 10, Search: "50%"})

	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, categories)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListCategories_CountFails(t *testing.T) {
	repo, mock := newTestCategoryRepo(t)

	mock.ExpectQuery("SELECT COUNT").WillReturnError(assert.AnError)

	_, _, err := repo.ListCategories(context.Background(), 7, models.PageRequest{Page: 1, Limit: 10})

	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestFindCategoryByName(t *testing.T) {
	repo, mock := newTestCategoryRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM categories WHERE user_id = $1 AND name = $2")).
		WithArgs(int64(7), "Mercado").
		WillReturnRows(sqlmock.NewRows(categoryColumns).AddRow(int64(1), int64(7), "Mercado", "compras", now, now))

	found, err := repo.FindCategoryByName(context.Background(), 7, "Mercado")

	require.NoError(t, err)
	assert.Equal(t, "compras", found.Description)
}

func TestUpdateCategory_NotOwned(t *testing.T) {
	repo, mock := newTestCategoryRepo(t)
	description := "x"

	mock.ExpectExec(regexp.QuoteMeta("UPDATE categories SET updated_at = NOW(), description = $1 WHERE id = $2 AND user_id = $3")).
		WithArgs(description, int64(1), int64(8)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.UpdateCategory(context.Background(), 8, 1, models.CategoryUpdate{Description: &description})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateCategory_NameTaken(t *testing.T) {
	repo, mock := newTestCategoryRepo(t)
	name := "Mercado"

	mock.ExpectExec("UPDATE categories").WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.UpdateCategory(context.Background(), 7, 1, models.CategoryUpdate{Name: &name})

	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestDeleteCategory_NotOwned(t *testing.T) {
	repo, mock := newTestCategoryRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM categories WHERE id = $1 AND user_id = $2")).
		WithArgs(int64(1), int64(8)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.DeleteCategory(context.Background(), 8, 1), ErrNotFound)
}
