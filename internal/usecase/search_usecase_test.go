package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"skilledup-backend/internal/domain"
	"skilledup-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func searchFixtures() ([]domain.Applicant, []domain.JobCategory) {
	categories := []domain.JobCategory{
		{ID: "cat-eng", Name: "Software Engineering"},
		{ID: "cat-math", Name: "Applied Mathematics"},
	}

	applicants := []domain.Applicant{
		{
			ID:     "a-1",
			UserID: "u-ada",
			Status: domain.StatusApproved,
			Slug:   "ada-lovelace",
			Skills: []domain.Skill{{JobCategoryID: "cat-eng", YearsOfExperience: 5}},
			Owner:  &domain.User{ID: "u-ada", FirstName: "Ada", LastName: "Lovelace"},
		},
		{
			ID:     "a-2",
			UserID: "u-grace",
			Status: domain.StatusApproved,
			Slug:   "grace-hopper",
			Skills: []domain.Skill{{JobCategoryID: "cat-eng", YearsOfExperience: 10}},
			Owner:  &domain.User{ID: "u-grace", FirstName: "Grace", LastName: "Hopper"},
		},
		{
			ID:     "a-3",
			UserID: "u-alan",
			Status: domain.StatusPending,
			Slug:   "alan-turing",
			Skills: []domain.Skill{{JobCategoryID: "cat-math", YearsOfExperience: 7}},
			Owner:  &domain.User{ID: "u-alan", FirstName: "Alan", LastName: "Turing"},
		},
	}

	return applicants, categories
}

func newSearchUC(t *testing.T, applicants []domain.Applicant, categories []domain.JobCategory) domain.SearchUsecase {
	t.Helper()
	repo := new(MockApplicantRepo)
	catRepo := new(MockCategoryRepo)
	repo.On("FindAll", context.Background()).Return(applicants, nil)
	catRepo.On("GetAll", context.Background()).Return(categories, nil)
	return usecase.NewSearchUsecase(repo, catRepo)
}

func TestSearchFilterPrecedence(t *testing.T) {
	ctx := context.Background()
	applicants, categories := searchFixtures()

	t.Run("userId alone selects the owner and ignores other filters", func(t *testing.T) {
		uc := newSearchUC(t, applicants, categories)
		page, err := uc.Search(ctx, domain.SearchFilter{
			UserID:      "u-alan",
			Keyword:     "engineering",
			JobCategory: "cat-eng",
		}, 1, 10)

		assert.NoError(t, err)
		assert.Len(t, page.Results, 1)
		assert.Equal(t, "a-3", page.Results[0].ID)
	})

	t.Run("keyword with jobCategory matches the owner name within the category", func(t *testing.T) {
		uc := newSearchUC(t, applicants, categories)
		page, err := uc.Search(ctx, domain.SearchFilter{
			Keyword:     "ada",
			JobCategory: "cat-eng",
		}, 1, 10)

		assert.NoError(t, err)
		assert.Len(t, page.Results, 1)
		assert.Equal(t, "a-1", page.Results[0].ID)
	})

	t.Run("keyword alone matches the category name, not the owner name", func(t *testing.T) {
		uc := newSearchUC(t, applicants, categories)

		byCategoryName, err := uc.Search(ctx, domain.SearchFilter{Keyword: "engineering"}, 1, 10)
		assert.NoError(t, err)
		assert.Len(t, byCategoryName.Results, 2)

		byOwnerName, err := uc.Search(ctx, domain.SearchFilter{Keyword: "ada"}, 1, 10)
		assert.NoError(t, err)
		assert.Empty(t, byOwnerName.Results)
	})

	t.Run("jobCategory alone is matched case-insensitively", func(t *testing.T) {
		uc := newSearchUC(t, applicants, categories)
		page, err := uc.Search(ctx, domain.SearchFilter{JobCategory: "CAT-ENG"}, 1, 10)

		assert.NoError(t, err)
		assert.Len(t, page.Results, 2)
	})

	t.Run("empty filter returns the whole corpus", func(t *testing.T) {
		uc := newSearchUC(t, applicants, categories)
		page, err := uc.Search(ctx, domain.SearchFilter{}, 1, 10)

		assert.NoError(t, err)
		assert.Len(t, page.Results, 3)
		assert.Equal(t, 3, page.TotalResults)
	})

	t.Run("search is idempotent", func(t *testing.T) {
		uc := newSearchUC(t, applicants, categories)
		first, err := uc.Search(ctx, domain.SearchFilter{JobCategory: "cat-eng"}, 1, 10)
		assert.NoError(t, err)
		second, err := uc.Search(ctx, domain.SearchFilter{JobCategory: "cat-eng"}, 1, 10)
		assert.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestSearchPagination(t *testing.T) {
	ctx := context.Background()

	var corpus []domain.Applicant
	for i := 0; i < 25; i++ {
		corpus = append(corpus, domain.Applicant{
			ID:     fmt.Sprintf("a-%d", i),
			UserID: fmt.Sprintf("u-%d", i),
			Owner:  &domain.User{ID: fmt.Sprintf("u-%d", i)},
		})
	}

	t.Run("pages slice the corpus with the remaining-items counter", func(t *testing.T) {
		uc := newSearchUC(t, corpus, nil)

		page1, err := uc.Search(ctx, domain.SearchFilter{}, 1, 10)
		assert.NoError(t, err)
		assert.Len(t, page1.Results, 10)
		assert.Equal(t, 25, page1.TotalResults)
		assert.Equal(t, 3, page1.TotalPages)
		assert.Equal(t, 25, page1.CurrentItemsCount)

		page3, err := uc.Search(ctx, domain.SearchFilter{}, 3, 10)
		assert.NoError(t, err)
		assert.Len(t, page3.Results, 5)
		assert.Equal(t, 5, page3.CurrentItemsCount)
	})

	t.Run("a page past the end is empty but keeps the counter arithmetic", func(t *testing.T) {
		uc := newSearchUC(t, corpus, nil)

		page4, err := uc.Search(ctx, domain.SearchFilter{}, 4, 10)
		assert.NoError(t, err)
		assert.Empty(t, page4.Results)
		assert.Equal(t, 25, page4.TotalResults)
		assert.Equal(t, -5, page4.CurrentItemsCount)
	})

	t.Run("zero and negative paging inputs normalize to defaults", func(t *testing.T) {
		uc := newSearchUC(t, corpus, nil)

		page, err := uc.Search(ctx, domain.SearchFilter{}, 0, -1)
		assert.NoError(t, err)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 10, page.Limit)
		assert.Len(t, page.Results, 10)
	})
}
