package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-finance-tracker/internal/logger"
	"github.com/MKhiriev/go-finance-tracker/models"
)

type categoryRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewCategoryRepository(db *DB, logger *logger.Logger) CategoryRepository {
	logger.Debug().Msg("creating category repository")
	return &categoryRepository{
		db:     db,
		logger: logger,
	}
}

func (r *categoryRepository) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	query, args, err := psql.Insert("categories").
		Columns("user_id", "name", "description").
		Values(category.UserID, category.Name, category.Description).
		Suffix("RETURNING " + joinColumns(categoryColumns)).
		ToSql()
	if err != nil {
		return models.Category{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanCategory(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*categoryRepository.CreateCategory").Int64("user_id", category.UserID).Msg("error creating category")
		return models.Category{}, rowError(err)
	}

	return created, nil
}

// ListCategories returns one page of the caller's categories ordered by
// name, plus the total number of matches. Search is a case-insensitive
// substring of the name.
func (r *categoryRepository) ListCategories(ctx context.Context, userID int64, page models.PageRequest) ([]models.Category, int, error) {
	log := logger.FromContext(ctx)

	listBuilder := categoriesTable.selectAll(userID)
	countBuilder := categoriesTable.count(userID)
	if page.Search != "" {
		listBuilder = listBuilder.Where(containsInsensitive("name", page.Search))
		countBuilder = countBuilder.Where(containsInsensitive("name", page.Search))
	}

	total, err := countScoped(ctx, r.db, countBuilder)
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.ListCategories").Int64("user_id", userID).Msg("error counting categories")
		return nil, 0, err
	}

	query, args, err := listBuilder.
		OrderBy("name ASC", "id ASC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.ListCategories").Int64("user_id", userID).Msg("error listing categories")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	categories := make([]models.Category, 0, page.Limit)
	for rows.Next() {
		category, scanErr := scanCategory(rows)
		if scanErr != nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		categories = append(categories, category)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return categories, total, nil
}

func (r *categoryRepository) GetCategory(ctx context.Context, userID, id int64) (models.Category, error) {
	return r.getOne(ctx, categoriesTable.selectByID(userID, id))
}

func (r *categoryRepository) FindCategoryByName(ctx context.Context, userID int64, name string) (models.Category, error) {
	return r.getOne(ctx, categoriesTable.selectAll(userID).Where(sq.Eq{"name": name}))
}

func (r *categoryRepository) getOne(ctx context.Context, builder sq.SelectBuilder) (models.Category, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return models.Category{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	category, err := scanCategory(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Category{}, readError(err)
	}

	return category, nil
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, userID, id int64, update models.CategoryUpdate) (models.Category, error) {
	builder := categoriesTable.update(userID, id)
	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}

	if err := execScoped(ctx, r.db, builder); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*categoryRepository.UpdateCategory").Int64("user_id", userID).Int64("id", id).Msg("error updating category")
		return models.Category{}, err
	}

	return r.GetCategory(ctx, userID, id)
}

// DeleteCategory also removes the transactions filed under the category.
func (r *categoryRepository) DeleteCategory(ctx context.Context, userID, id int64) error {
	if err := execScoped(ctx, r.db, categoriesTable.delete(userID, id)); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*categoryRepository.DeleteCategory").Int64("user_id", userID).Int64("id", id).Msg("error deleting category")
		return err
	}
	return nil
}

func scanCategory(row sq.RowScanner) (models.Category, error) {
	var c models.Category
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}
