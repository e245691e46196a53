package postgres

import (
	"context"
	"errors"
	"math"

	"skilledup-backend/internal/domain"
	"skilledup-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type jobPostRepo struct {
	db *pgxpool.Pool
}

func NewJobPostRepository(db *pgxpool.Pool) domain.JobPostRepository {
	return &jobPostRepo{db: db}
}

const jobPostColumns = `id, title, description, location, date, company, salary, status,
       image, requirements, created_by, slug, created_at, updated_at`

func scanJobPost(row pgx.Row) (*domain.JobPost, error) {
	var (
		p            domain.JobPost
		requirements []string
	)
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.Location, &p.Date, &p.Company,
		&p.Salary, &p.Status, &p.Image, pq.Array(&requirements),
		&p.CreatedBy, &p.Slug, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	p.Requirements = requirements
	return &p, nil
}

func (r *jobPostRepo) Create(ctx context.Context, post *domain.JobPost) error {
	query := `INSERT INTO job_posts (title, description, location, date, company, salary, status, image, requirements, created_by, slug)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
              RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, query,
		post.Title, post.Description, post.Location, post.Date, post.Company,
		post.Salary, post.Status, post.Image, pq.Array(post.Requirements),
		post.CreatedBy, post.Slug,
	).Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (r *jobPostRepo) GetBySlug(ctx context.Context, slug string) (*domain.JobPost, error) {
	query := `SELECT ` + jobPostColumns + ` FROM job_posts WHERE slug = $1`
	return scanJobPost(r.db.QueryRow(ctx, query, slug))
}

func (r *jobPostRepo) Paginate(ctx context.Context, opts domain.PageOptions) (*domain.Page[domain.JobPost], error) {
	opts = opts.Normalize()

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM job_posts`).Scan(&total); err != nil {
		return nil, err
	}

	query := `SELECT ` + jobPostColumns + ` FROM job_posts
              ORDER BY date DESC
              LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, opts.Limit, (opts.Page-1)*opts.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []domain.JobPost{}
	for rows.Next() {
		p, err := scanJobPost(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &domain.Page[domain.JobPost]{
		Results:      results,
		Page:         opts.Page,
		Limit:        opts.Limit,
		TotalPages:   int(math.Ceil(float64(total) / float64(opts.Limit))),
		TotalResults: total,
	}, nil
}

func (r *jobPostRepo) Update(ctx context.Context, post *domain.JobPost) error {
	query := `UPDATE job_posts
              SET title = $2, description = $3, location = $4, date = $5, company = $6,
                  salary = $7, status = $8, image = $9, requirements = $10, updated_at = now()
              WHERE id = $1
              RETURNING updated_at`
	err := r.db.QueryRow(ctx, query,
		post.ID, post.Title, post.Description, post.Location, post.Date,
		post.Company, post.Salary, post.Status, post.Image, pq.Array(post.Requirements),
	).Scan(&post.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperror.NotFound("Job post not found")
	}
	return err
}

func (r *jobPostRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM job_posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("Job post not found")
	}
	return nil
}
