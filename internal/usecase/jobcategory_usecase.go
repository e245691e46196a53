package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"skilledup-backend/internal/domain"
	"skilledup-backend/pkg/apperror"
	"skilledup-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// Category images are resized before upload.
const (
	categoryImageMaxDimension = 800
	categoryImageQuality      = 80
)

type jobCategoryUsecase struct {
	repo      domain.JobCategoryRepository
	store     domain.BlobStore
	transform domain.MediaTransform
	validate  *validator.Validate
}

func NewJobCategoryUsecase(
	repo domain.JobCategoryRepository,
	store domain.BlobStore,
	transform domain.MediaTransform,
	validate *validator.Validate,
) domain.JobCategoryUsecase {
	return &jobCategoryUsecase{repo: repo, store: store, transform: transform, validate: validate}
}

func (u *jobCategoryUsecase) Create(ctx context.Context, input domain.CreateJobCategoryInput, image []byte) (*domain.JobCategory, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	category := &domain.JobCategory{
		Name:        input.Name,
		Description: input.Description,
	}

	if len(image) > 0 {
		url, err := u.uploadImage(ctx, image)
		if err != nil {
			return nil, err
		}
		category.Image = url
	}

	if err := u.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (u *jobCategoryUsecase) GetAll(ctx context.Context) ([]domain.JobCategory, error) {
	return u.repo.GetAll(ctx)
}

func (u *jobCategoryUsecase) GetByID(ctx context.Context, id string) (*domain.JobCategory, error) {
	category, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NotFound("Job category not found")
	}
	return category, nil
}

func (u *jobCategoryUsecase) Update(ctx context.Context, id string, input domain.UpdateJobCategoryInput) (*domain.JobCategory, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	category, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Name != nil {
		category.Name = *input.Name
	}
	if input.Description != nil {
		category.Description = *input.Description
	}

	if err := u.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (u *jobCategoryUsecase) Delete(ctx context.Context, id string) error {
	category, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category.Image != "" {
		key := u.store.KeyFromURL(category.Image)
		// Best effort; an orphaned image never blocks the delete.
		_ = u.store.Delete(ctx, domain.FileKindImage, key, domain.FolderJobCategories)
	}
	return u.repo.Delete(ctx, id)
}

func (u *jobCategoryUsecase) uploadImage(ctx context.Context, image []byte) (string, error) {
	resized, err := u.transform.Resize(image, categoryImageMaxDimension, categoryImageQuality)
	if err != nil {
		return "", apperror.BadRequest("Image could not be processed")
	}

	key := fmt.Sprintf("category-%d.jpg", time.Now().UnixNano())
	uploaded, err := u.store.Put(ctx, domain.FileKindImage, resized, key, domain.FolderJobCategories, domain.ContentTypeJPEG)
	if err != nil {
		return "", apperror.UploadFailed("Image could not be uploaded. Please try again", err)
	}
	return uploaded.URL, nil
}
