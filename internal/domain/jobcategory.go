package domain

import (
	"context"
	"time"
)

// JobCategory is reference data; applicants point at it from their skills.
type JobCategory struct {
	ID          string    `json:"id"`
	Name        string    `json:"name" validate:"required,min=2,max=100"`
	Description string    `json:"description,omitempty" validate:"max=500"`
	Image       string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateJobCategoryInput struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"max=500"`
}

type UpdateJobCategoryInput struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

type JobCategoryRepository interface {
	Create(ctx context.Context, category *JobCategory) error
	GetAll(ctx context.Context) ([]JobCategory, error)
	GetByID(ctx context.Context, id string) (*JobCategory, error)
	Update(ctx context.Context, category *JobCategory) error
	Delete(ctx context.Context, id string) error
}

type JobCategoryUsecase interface {
	Create(ctx context.Context, input CreateJobCategoryInput, image []byte) (*JobCategory, error)
	GetAll(ctx context.Context) ([]JobCategory, error)
	GetByID(ctx context.Context, id string) (*JobCategory, error)
	Update(ctx context.Context, id string, input UpdateJobCategoryInput) (*JobCategory, error)
	Delete(ctx context.Context, id string) error
}
