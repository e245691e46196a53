package postgres

import (
	"context"
	"errors"
	"math"

	"skilledup-backend/internal/domain"
	"skilledup-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type bannerRepo struct {
	db *pgxpool.Pool
}

func NewBannerConfigRepository(db *pgxpool.Pool) domain.BannerConfigRepository {
	return &bannerRepo{db: db}
}

const bannerColumns = `id, name, image, is_active, created_at, updated_at`

func scanBanner(row pgx.Row) (*domain.BannerConfig, error) {
	var b domain.BannerConfig
	err := row.Scan(&b.ID, &b.Name, &b.Image, &b.IsActive, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *bannerRepo) Create(ctx context.Context, banner *domain.BannerConfig) error {
	query := `INSERT INTO banner_configs (name, image, is_active)
              VALUES ($1, $2, $3)
              RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, query, banner.Name, banner.Image, banner.IsActive).
		Scan(&banner.ID, &banner.CreatedAt, &banner.UpdatedAt)
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (r *bannerRepo) Paginate(ctx context.Context, opts domain.PageOptions) (*domain.Page[domain.BannerConfig], error) {
	opts = opts.Normalize()

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM banner_configs`).Scan(&total); err != nil {
		return nil, err
	}

	query := `SELECT ` + bannerColumns + ` FROM banner_configs
              ORDER BY created_at DESC
              LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, opts.Limit, (opts.Page-1)*opts.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []domain.BannerConfig{}
	for rows.Next() {
		b, err := scanBanner(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &domain.Page[domain.BannerConfig]{
		Results:      results,
		Page:         opts.Page,
		Limit:        opts.Limit,
		TotalPages:   int(math.Ceil(float64(total) / float64(opts.Limit))),
		TotalResults: total,
	}, nil
}

func (r *bannerRepo) GetByID(ctx context.Context, id string) (*domain.BannerConfig, error) {
	query := `SELECT ` + bannerColumns + ` FROM banner_configs WHERE id = $1`
	return scanBanner(r.db.QueryRow(ctx, query, id))
}

func (r *bannerRepo) Update(ctx context.Context, banner *domain.BannerConfig) error {
	query := `UPDATE banner_configs SET name = $2, image = $3, is_active = $4, updated_at = now()
              WHERE id = $1
              RETURNING updated_at`
	err := r.db.QueryRow(ctx, query, banner.ID, banner.Name, banner.Image, banner.IsActive).
		Scan(&banner.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperror.NotFound("Banner not found")
	}
	return err
}

func (r *bannerRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM banner_configs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("Banner not found")
	}
	return nil
}
