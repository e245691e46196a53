package postgres

import (
	"context"
	"errors"

	"skilledup-backend/internal/domain"
	"skilledup-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobCategoryRepo struct {
	db *pgxpool.Pool
}

func NewJobCategoryRepository(db *pgxpool.Pool) domain.JobCategoryRepository {
	return &jobCategoryRepo{db: db}
}

const jobCategoryColumns = `id, name, description, image, created_at, updated_at`

func scanJobCategory(row pgx.Row) (*domain.JobCategory, error) {
	var c domain.JobCategory
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Image, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *jobCategoryRepo) Create(ctx context.Context, category *domain.JobCategory) error {
	query := `INSERT INTO job_categories (name, description, image)
              VALUES ($1, $2, $3)
              RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, query, category.Name, category.Description, category.Image).
		Scan(&category.ID, &category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (r *jobCategoryRepo) GetAll(ctx context.Context) ([]domain.JobCategory, error) {
	query := `SELECT ` + jobCategoryColumns + ` FROM job_categories ORDER BY name`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.JobCategory
	for rows.Next() {
		c, err := scanJobCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, *c)
	}
	return categories, rows.Err()
}

func (r *jobCategoryRepo) GetByID(ctx context.Context, id string) (*domain.JobCategory, error) {
	query := `SELECT ` + jobCategoryColumns + ` FROM job_categories WHERE id = $1`
	return scanJobCategory(r.db.QueryRow(ctx, query, id))
}

func (r *jobCategoryRepo) Update(ctx context.Context, category *domain.JobCategory) error {
	query := `UPDATE job_categories SET name = $2, description = $3, image = $4, updated_at = now()
              WHERE id = $1
              RETURNING updated_at`
	err := r.db.QueryRow(ctx, query, category.ID, category.Name, category.Description, category.Image).
		Scan(&category.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperror.NotFound("Job category not found")
	}
	return err
}

func (r *jobCategoryRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM job_categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("Job category not found")
	}
	return nil
}
