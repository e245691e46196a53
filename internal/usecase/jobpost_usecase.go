package usecase

import (
	"context"
	"strings"

	"skilledup-backend/internal/domain"
	"skilledup-backend/pkg/apperror"
	"skilledup-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type jobPostUsecase struct {
	repo     domain.JobPostRepository
	validate *validator.Validate
}

func NewJobPostUsecase(repo domain.JobPostRepository, validate *validator.Validate) domain.JobPostUsecase {
	return &jobPostUsecase{repo: repo, validate: validate}
}

func (u *jobPostUsecase) Create(ctx context.Context, createdBy string, input domain.CreateJobPostInput) (*domain.JobPost, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	post := &domain.JobPost{
		Title:        input.Title,
		Description:  input.Description,
		Location:     input.Location,
		Date:         input.Date,
		Company:      input.Company,
		Salary:       input.Salary,
		Status:       domain.StatusPending,
		Requirements: input.Requirements,
		CreatedBy:    createdBy,
		Slug:         slugify(input.Title, input.Date),
	}
	if post.Requirements == nil {
		post.Requirements = []string{}
	}

	if err := u.repo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (u *jobPostUsecase) GetBySlug(ctx context.Context, slug string) (*domain.JobPost, error) {
	post, err := u.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperror.NotFound("Job post not found")
	}
	return post, nil
}

func (u *jobPostUsecase) List(ctx context.Context, opts domain.PageOptions) (*domain.Page[domain.JobPost], error) {
	return u.repo.Paginate(ctx, opts)
}

func (u *jobPostUsecase) Update(ctx context.Context, slug string, input domain.UpdateJobPostInput) (*domain.JobPost, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	post, err := u.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Description != nil {
		post.Description = *input.Description
	}
	if input.Location != nil {
		post.Location = *input.Location
	}
	if input.Date != nil {
		post.Date = *input.Date
	}
	if input.Company != nil {
		post.Company = *input.Company
	}
	if input.Salary != nil {
		post.Salary = *input.Salary
	}
	if input.Requirements != nil {
		post.Requirements = input.Requirements
	}

	if err := u.repo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (u *jobPostUsecase) Approve(ctx context.Context, slug string) (*domain.JobPost, error) {
	post, err := u.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if post.Status == domain.StatusApproved {
		return nil, apperror.AlreadyApproved("Job post is already approved")
	}

	post.Status = domain.StatusApproved
	if err := u.repo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (u *jobPostUsecase) Delete(ctx context.Context, slug string) error {
	post, err := u.GetBySlug(ctx, slug)
	if err != nil {
		return err
	}
	return u.repo.Delete(ctx, post.ID)
}
