package domain

import (
	"context"
	"time"
)

// SearchFilter holds the facet values. Branch precedence (first match
// wins): UserID alone, then Keyword+JobCategory together, then Keyword
// alone, then JobCategory alone, then no filter.
type SearchFilter struct {
	UserID      string
	JobCategory string
	Keyword     string
}

// SearchSkillView is a skill with the full resolved category document.
type SearchSkillView struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description,omitempty"`
	Image             string    `json:"image,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
	YearsOfExperience int       `json:"yearsOfExperience"`
}

// ApplicantSearchView is the flattened row the search endpoint returns.
type ApplicantSearchView struct {
	ID          string            `json:"id"`
	User        *User             `json:"user"`
	Status      ReviewStatus      `json:"status"`
	Skills      []SearchSkillView `json:"skills"`
	VideoResume []VideoResume     `json:"videoResume"`
	Education   []Education       `json:"education"`
	Slug        string            `json:"slug"`
	Intro       string            `json:"intro,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// SearchPage paginates the post-filter view list in memory.
// CurrentItemsCount is the count from the current page to the end of the
// result set, not the page's own size.
type SearchPage struct {
	Results           []ApplicantSearchView `json:"results"`
	Limit             int                   `json:"limit"`
	Page              int                   `json:"page"`
	TotalResults      int                   `json:"totalResults"`
	TotalPages        int                   `json:"totalPages"`
	CurrentItemsCount int                   `json:"currentItemsCount"`
}

type SearchUsecase interface {
	Search(ctx context.Context, filter SearchFilter, page, limit int) (*SearchPage, error)
}
