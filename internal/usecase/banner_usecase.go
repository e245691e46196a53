package usecase

import (
	"context"
	"fmt"
	"time"

	"skilledup-backend/internal/domain"
	"skilledup-backend/pkg/apperror"
)

const (
	bannerImageMaxDimension = 1600
	bannerImageQuality      = 85
)

type bannerUsecase struct {
	repo      domain.BannerConfigRepository
	store     domain.BlobStore
	transform domain.MediaTransform
}

func NewBannerConfigUsecase(
	repo domain.BannerConfigRepository,
	store domain.BlobStore,
	transform domain.MediaTransform,
) domain.BannerConfigUsecase {
	return &bannerUsecase{repo: repo, store: store, transform: transform}
}

func (u *bannerUsecase) Create(ctx context.Context, name string, isActive bool, image []byte) (*domain.BannerConfig, error) {
	if name == "" {
		return nil, apperror.BadRequest("Banner name is required")
	}
	if len(image) == 0 {
		return nil, apperror.BadRequest("Banner image is required")
	}

	resized, err := u.transform.Resize(image, bannerImageMaxDimension, bannerImageQuality)
	if err != nil {
		return nil, apperror.BadRequest("Image could not be processed")
	}

	key := fmt.Sprintf("banner-%d.jpg", time.Now().UnixNano())
	uploaded, err := u.store.Put(ctx, domain.FileKindImage, resized, key, domain.FolderBanners, domain.ContentTypeJPEG)
	if err != nil {
		return nil, apperror.UploadFailed("Banner image could not be uploaded. Please try again", err)
	}

	banner := &domain.BannerConfig{
		Name:     name,
		Image:    uploaded.URL,
		IsActive: isActive,
	}
	if err := u.repo.Create(ctx, banner); err != nil {
		return nil, err
	}
	return banner, nil
}

func (u *bannerUsecase) List(ctx context.Context, opts domain.PageOptions) (*domain.Page[domain.BannerConfig], error) {
	return u.repo.Paginate(ctx, opts)
}

func (u *bannerUsecase) SetActive(ctx context.Context, id string, active bool) (*domain.BannerConfig, error) {
	banner, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if banner == nil {
		return nil, apperror.NotFound("Banner not found")
	}

	banner.IsActive = active
	if err := u.repo.Update(ctx, banner); err != nil {
		return nil, err
	}
	return banner, nil
}

func (u *bannerUsecase) Delete(ctx context.Context, id string) error {
	banner, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if banner == nil {
		return apperror.NotFound("Banner not found")
	}
	if banner.Image != "" {
		key := u.store.KeyFromURL(banner.Image)
		_ = u.store.Delete(ctx, domain.FileKindImage, key, domain.FolderBanners)
	}
	return u.repo.Delete(ctx, id)
}
