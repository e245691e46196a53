package domain

import (
	"context"
	"time"
)

// BannerConfig drives the landing-page carousel.
type BannerConfig struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" validate:"required,max=100"`
	Image     string    `json:"image"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type BannerConfigRepository interface {
	Create(ctx context.Context, banner *BannerConfig) error
	Paginate(ctx context.Context, opts PageOptions) (*Page[BannerConfig], error)
	GetByID(ctx context.Context, id string) (*BannerConfig, error)
	Update(ctx context.Context, banner *BannerConfig) error
	Delete(ctx context.Context, id string) error
}

type BannerConfigUsecase interface {
	Create(ctx context.Context, name string, isActive bool, image []byte) (*BannerConfig, error)
	List(ctx context.Context, opts PageOptions) (*Page[BannerConfig], error)
	SetActive(ctx context.Context, id string, active bool) (*BannerConfig, error)
	Delete(ctx context.Context, id string) error
}
