package domain

import (
	"context"
	"time"
)

// JobPost is a hirer's vacancy. Slug is derived from the title and the
// posting date at creation time and never recomputed.
type JobPost struct {
	ID           string       `json:"id"`
	Title        string       `json:"title" validate:"required,min=3,max=150"`
	Description  string       `json:"description" validate:"required"`
	Location     string       `json:"location" validate:"required"`
	Date         time.Time    `json:"date" validate:"required"`
	Company      string       `json:"company" validate:"required"`
	Salary       int64        `json:"salary" validate:"required,gt=0"`
	Status       ReviewStatus `json:"status"`
	Image        string       `json:"image,omitempty"`
	Requirements []string     `json:"requirements"`
	CreatedBy    string       `json:"createdBy"`
	Slug         string       `json:"slug"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

type CreateJobPostInput struct {
	Title        string    `json:"title" validate:"required,min=3,max=150"`
	Description  string    `json:"description" validate:"required"`
	Location     string    `json:"location" validate:"required"`
	Date         time.Time `json:"date" validate:"required"`
	Company      string    `json:"company" validate:"required"`
	Salary       int64     `json:"salary" validate:"required,gt=0"`
	Requirements []string  `json:"requirements" validate:"omitempty,dive,min=1"`
}

type UpdateJobPostInput struct {
	Title        *string    `json:"title" validate:"omitempty,min=3,max=150"`
	Description  *string    `json:"description"`
	Location     *string    `json:"location"`
	Date         *time.Time `json:"date"`
	Company      *string    `json:"company"`
	Salary       *int64     `json:"salary" validate:"omitempty,gt=0"`
	Requirements []string   `json:"requirements" validate:"omitempty,dive,min=1"`
}

type JobPostRepository interface {
	Create(ctx context.Context, post *JobPost) error
	GetBySlug(ctx context.Context, slug string) (*JobPost, error)
	Paginate(ctx context.Context, opts PageOptions) (*Page[JobPost], error)
	Update(ctx context.Context, post *JobPost) error
	Delete(ctx context.Context, id string) error
}

type JobPostUsecase interface {
	Create(ctx context.Context, createdBy string, input CreateJobPostInput) (*JobPost, error)
	GetBySlug(ctx context.Context, slug string) (*JobPost, error)
	List(ctx context.Context, opts PageOptions) (*Page[JobPost], error)
	Update(ctx context.Context, slug string, input UpdateJobPostInput) (*JobPost, error)
	Approve(ctx context.Context, slug string) (*JobPost, error)
	Delete(ctx context.Context, slug string) error
}
