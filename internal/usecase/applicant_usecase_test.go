package usecase_test

import (
	"context"
	"errors"
	"testing"

	"skilledup-backend/internal/domain"
	"skilledup-backend/internal/usecase"
	"skilledup-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock Repositories

type MockApplicantRepo struct {
	mock.Mock
}

func (m *MockApplicantRepo) Create(ctx context.Context, applicant *domain.Applicant) error {
	return m.Called(ctx, applicant).Error(0)
}

func (m *MockApplicantRepo) FindByUser(ctx context.Context, userID string) (*domain.Applicant, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Applicant), args.Error(1)
}

func (m *MockApplicantRepo) FindBySlug(ctx context.Context, slug string) (*domain.Applicant, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Applicant), args.Error(1)
}

func (m *MockApplicantRepo) FindByID(ctx context.Context, id string) (*domain.Applicant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Applicant), args.Error(1)
}

func (m *MockApplicantRepo) FindAll(ctx context.Context) ([]domain.Applicant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Applicant), args.Error(1)
}

func (m *MockApplicantRepo) Update(ctx context.Context, userID string, upd domain.ApplicantUpdate) (*domain.Applicant, error) {
	args := m.Called(ctx, userID, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Applicant), args.Error(1)
}

func (m *MockApplicantRepo) SetStatus(ctx context.Context, id string, status domain.ReviewStatus) (*domain.Applicant, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Applicant), args.Error(1)
}

func (m *MockApplicantRepo) PushVideoResume(ctx context.Context, userID string, video domain.VideoResume) (*domain.Applicant, error) {
	args := m.Called(ctx, userID, video)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Applicant), args.Error(1)
}

func (m *MockApplicantRepo) PullVideoResume(ctx context.Context, userID, videoID string) (*domain.Applicant, error) {
	args := m.Called(ctx, userID, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Applicant), args.Error(1)
}

func (m *MockApplicantRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

type MockCategoryRepo struct {
	mock.Mock
}

func (m *MockCategoryRepo) Create(ctx context.Context, category *domain.JobCategory) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepo) GetAll(ctx context.Context) ([]domain.JobCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobCategory), args.Error(1)
}

func (m *MockCategoryRepo) GetByID(ctx context.Context, id string) (*domain.JobCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobCategory), args.Error(1)
}

func (m *MockCategoryRepo) Update(ctx context.Context, category *domain.JobCategory) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockBlobStore struct {
	mock.Mock
}

func (m *MockBlobStore) Put(ctx context.Context, kind domain.FileKind, data []byte, key, folder, contentType string) (*domain.UploadResult, error) {
	args := m.Called(ctx, kind, data, key, folder, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UploadResult), args.Error(1)
}

func (m *MockBlobStore) Delete(ctx context.Context, kind domain.FileKind, key, folder string) error {
	return m.Called(ctx, kind, key, folder).Error(0)
}

func (m *MockBlobStore) KeyFromURL(url string) string {
	return m.Called(url).String(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendEmail(ctx context.Context, to, subject, body string) error {
	return m.Called(ctx, to, subject, body).Error(0)
}

func newApplicantFixture(videos int) *domain.Applicant {
	a := &domain.Applicant{
		ID:     "applicant-1",
		UserID: "user-1",
		Status: domain.StatusPending,
		Slug:   "jane-doe-2026-01-02-03-04-05",
		Owner: &domain.User{
			ID:        "user-1",
			FirstName: "Jane",
			LastName:  "Doe",
			Email:     "jane@example.com",
			Role:      domain.RoleUser,
		},
	}
	for i := 0; i < videos; i++ {
		a.VideoResume = append(a.VideoResume, domain.VideoResume{
			ID:   string(rune('a' + i)),
			File: "https://cdn.example.com/videos/video-resume/video-" + string(rune('a'+i)) + ".mp4",
		})
	}
	return a
}

func newApplicantUC(repo *MockApplicantRepo, users *MockUserRepo, categories *MockCategoryRepo, store *MockBlobStore, notifier domain.Notifier) domain.ApplicantUsecase {
	return usecase.NewApplicantUsecase(repo, users, categories, store, notifier, validator.New())
}

func TestUploadVideoResumeCardinality(t *testing.T) {
	ctx := context.Background()

	t.Run("Should append when the profile holds fewer than three videos", func(t *testing.T) {
		repo := new(MockApplicantRepo)
		categories := new(MockCategoryRepo)
		store := new(MockBlobStore)

		applicant := newApplicantFixture(2)
		repo.On("FindByUser", ctx, "user-1").Return(applicant, nil)
		store.On("Put", ctx, domain.FileKindVideo, mock.Anything, mock.Anything, domain.FolderVideoResume, domain.ContentTypeVideo).
			Return(&domain.UploadResult{URL: "https://cdn.example.com/videos/video-resume/new.mp4", Success: true}, nil)

		updated := newApplicantFixture(2)
		updated.VideoResume = append(updated.VideoResume, domain.VideoResume{ID: "new", File: "https://cdn.example.com/videos/video-resume/new.mp4"})
		repo.On("PushVideoResume", ctx, "user-1", mock.Anything).Return(updated, nil)
		categories.On("GetAll", ctx).Return([]domain.JobCategory{}, nil)

		uc := newApplicantUC(repo, new(MockUserRepo), categories, store, nil)
		view, err := uc.UploadVideoResume(ctx, "user-1", []byte("video-bytes"))

		assert.NoError(t, err)
		assert.Len(t, view.VideoResume, 3)
		repo.AssertExpectations(t)
		store.AssertExpectations(t)
	})

	t.Run("Should reject a full profile before anything reaches storage", func(t *testing.T) {
		repo := new(MockApplicantRepo)
		store := new(MockBlobStore)

		repo.On("FindByUser", ctx, "user-1").Return(newApplicantFixture(3), nil)

		uc := newApplicantUC(repo, new(MockUserRepo), new(MockCategoryRepo), store, nil)
		_, err := uc.UploadVideoResume(ctx, "user-1", []byte("video-bytes"))

		assert.Error(t, err)
		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, 400, appErr.Code)
		store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "PushVideoResume", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should clean up the fresh blob when a concurrent upload fills the last slot", func(t *testing.T) {
		repo := new(MockApplicantRepo)
		store := new(MockBlobStore)

		repo.On("FindByUser", ctx, "user-1").Return(newApplicantFixture(2), nil)
		store.On("Put", ctx, domain.FileKindVideo, mock.Anything, mock.Anything, domain.FolderVideoResume, domain.ContentTypeVideo).
			Return(&domain.UploadResult{URL: "https://cdn.example.com/videos/video-resume/racer.mp4", Success: true}, nil)
		// Guarded push refuses: the array already holds three elements.
		repo.On("PushVideoResume", ctx, "user-1", mock.Anything).Return(nil, nil)
		store.On("Delete", ctx, domain.FileKindVideo, mock.Anything, domain.FolderVideoResume).Return(nil)

		uc := newApplicantUC(repo, new(MockUserRepo), new(MockCategoryRepo), store, nil)
		_, err := uc.UploadVideoResume(ctx, "user-1", []byte("video-bytes"))

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "at most 3")
		store.AssertCalled(t, "Delete", ctx, domain.FileKindVideo, mock.Anything, domain.FolderVideoResume)
	})

	t.Run("Should surface a storage failure without touching the record", func(t *testing.T) {
		repo := new(MockApplicantRepo)
		store := new(MockBlobStore)

		repo.On("FindByUser", ctx, "user-1").Return(newApplicantFixture(0), nil)
		store.On("Put", ctx, domain.FileKindVideo, mock.Anything, mock.Anything, domain.FolderVideoResume, domain.ContentTypeVideo).
			Return(nil, errors.New("connection reset"))

		uc := newApplicantUC(repo, new(MockUserRepo), new(MockCategoryRepo), store, nil)
		_, err := uc.UploadVideoResume(ctx, "user-1", []byte("video-bytes"))

		assert.Error(t, err)
		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, 500, appErr.Code)
		repo.AssertNotCalled(t, "PushVideoResume", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUploadResumeSwap(t *testing.T) {
	ctx := context.Background()

	t.Run("Should upload the new resume before deleting the old one", func(t *testing.T) {
		repo := new(MockApplicantRepo)
		categories := new(MockCategoryRepo)
		store := new(MockBlobStore)

		applicant := newApplicantFixture(0)
		applicant.Resume = &domain.Resume{File: "https://cdn.example.com/files/resume/old.pdf", Status: domain.StatusApproved}
		repo.On("FindByUser", ctx, "user-1").Return(applicant, nil)

		store.On("Put", ctx, domain.FileKindFile, mock.Anything, mock.Anything, domain.FolderResume, domain.ContentTypePDF).
			Return(&domain.UploadResult{URL: "https://cdn.example.com/files/resume/new.pdf", Success: true}, nil)
		store.On("KeyFromURL", "https://cdn.example.com/files/resume/old.pdf").Return("old.pdf")
		store.On("Delete", ctx, domain.FileKindFile, "old.pdf", domain.FolderResume).Return(nil)

		updated := newApplicantFixture(0)
		updated.Resume = &domain.Resume{File: "https://cdn.example.com/files/resume/new.pdf", Status: domain.StatusPending}
		repo.On("Update", ctx, "user-1", mock.MatchedBy(func(upd domain.ApplicantUpdate) bool {
			return upd.Resume != nil &&
				upd.Resume.File == "https://cdn.example.com/files/resume/new.pdf" &&
				upd.Resume.Status == domain.StatusPending
		})).Return(updated, nil)
		categories.On("GetAll", ctx).Return([]domain.JobCategory{}, nil)

		uc := newApplicantUC(repo, new(MockUserRepo), categories, store, nil)
		view, err := uc.UploadResume(ctx, "user-1", []byte("%PDF-1.7"))

		assert.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/files/resume/new.pdf", view.Resume.File)
		assert.Equal(t, domain.StatusPending, view.Resume.Status)
		store.AssertExpectations(t)
	})

	t.Run("Should succeed even when deleting the old blob fails", func(t *testing.T) {
		repo := new(MockApplicantRepo)
		categories := new(MockCategoryRepo)
		store := new(MockBlobStore)

		applicant := newApplicantFixture(0)
		applicant.Resume = &domain.Resume{File: "https://cdn.example.com/files/resume/old.pdf"}
		repo.On("FindByUser", ctx, "user-1").Return(applicant, nil)

		store.On("Put", ctx, domain.FileKindFile, mock.Anything, mock.Anything, domain.FolderResume, domain.ContentTypePDF).
			Return(&domain.UploadResult{URL: "https://cdn.example.com/files/resume/new.pdf", Success: true}, nil)
		store.On("KeyFromURL", mock.Anything).Return("old.pdf")
		store.On("Delete", ctx, domain.FileKindFile, "old.pdf", domain.FolderResume).Return(errors.New("503"))

		updated := newApplicantFixture(0)
		updated.Resume = &domain.Resume{File: "https://cdn.example.com/files/resume/new.pdf", Status: domain.StatusPending}
		repo.On("Update", ctx, "user-1", mock.Anything).Return(updated, nil)
		categories.On("GetAll", ctx).Return([]domain.JobCategory{}, nil)

		uc := newApplicantUC(repo, new(MockUserRepo), categories, store, nil)
		view, err := uc.UploadResume(ctx, "user-1", []byte("%PDF-1.7"))

		assert.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/files/resume/new.pdf", view.Resume.File)
	})

	t.Run("Should not persist anything when the upload itself fails", func(t *testing.T) {
		repo := new(MockApplicantRepo)
		store := new(MockBlobStore)

		repo.On("FindByUser", ctx, "user-1").Return(newApplicantFixture(0), nil)
		store.On("Put", ctx, domain.FileKindFile, mock.Anything, mock.Anything, domain.FolderResume, domain.ContentTypePDF).
			Return(nil, errors.New("timeout"))

		uc := newApplicantUC(repo, new(MockUserRepo), new(MockCategoryRepo), store, nil)
		_, err := uc.UploadResume(ctx, "user-1", []byte("%PDF-1.7"))

		assert.Error(t, err)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
		store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestDeleteVideoResume(t *testing.T) {
	ctx := context.Background()

	t.Run("Should fail when the video id does not exist", func(t *testing.T) {
		repo := new(MockApplicantRepo)
		store := new(MockBlobStore)

		repo.On("FindByUser", ctx, "user-1").Return(newApplicantFixture(2), nil)

		uc := newApplicantUC(repo, new(MockUserRepo), new(MockCategoryRepo), store, nil)
		_, err := uc.DeleteVideoResume(ctx, "user-1", "no-such-id")

		assert.Error(t, err)
		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, 404, appErr.Code)
		store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "PullVideoResume", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should abort before the record when blob deletion fails", func(t *testing.T) {
		repo := new(MockApplicantRepo)
		store := new(MockBlobStore)

		repo.On("FindByUser", ctx, "user-1").Return(newApplicantFixture(2), nil)
		store.On("KeyFromURL", mock.Anything).Return("video-a.mp4")
		store.On("Delete", ctx, domain.FileKindVideo, "video-a.mp4", domain.FolderVideoResume).Return(errors.New("503"))

		uc := newApplicantUC(repo, new(MockUserRepo), new(MockCategoryRepo), store, nil)
		_, err := uc.DeleteVideoResume(ctx, "user-1", "a")

		assert.Error(t, err)
		repo.AssertNotCalled(t, "PullVideoResume", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should pull the element after the blob is gone", func(t *testing.T) {
		repo := new(MockApplicantRepo)
		categories := new(MockCategoryRepo)
		store := new(MockBlobStore)

		repo.On("FindByUser", ctx, "user-1").Return(newApplicantFixture(2), nil)
		store.On("KeyFromURL", mock.Anything).Return("video-a.mp4")
		store.On("Delete", ctx, domain.FileKindVideo, "video-a.mp4", domain.FolderVideoResume).Return(nil)
		repo.On("PullVideoResume", ctx, "user-1", "a").Return(newApplicantFixture(1), nil)
		categories.On("GetAll", ctx).Return([]domain.JobCategory{}, nil)

		uc := newApplicantUC(repo, new(MockUserRepo), categories, store, nil)
		view, err := uc.DeleteVideoResume(ctx, "user-1", "a")

		assert.NoError(t, err)
		assert.Len(t, view.VideoResume, 1)
		repo.AssertExpectations(t)
	})
}

func TestReviewTransitions(t *testing.T) {
	ctx := context.Background()

	t.Run("Should approve a pending profile and notify the owner", func(t *testing.T) {
		repo := new(MockApplicantRepo)
		categories := new(MockCategoryRepo)
		notifier := new(MockNotifier)

		applicant := newApplicantFixture(0)
		repo.On("FindByID", ctx, "applicant-1").Return(applicant, nil)

		approved := newApplicantFixture(0)
		approved.Status = domain.StatusApproved
		repo.On("SetStatus", ctx, "applicant-1", domain.StatusApproved).Return(approved, nil)
		notifier.On("SendEmail", ctx, "jane@example.com", mock.Anything, mock.Anything).Return(nil)
		categories.On("GetAll", ctx).Return([]domain.JobCategory{}, nil)

		uc := newApplicantUC(repo, new(MockUserRepo), categories, new(MockBlobStore), notifier)
		view, err := uc.Approve(ctx, "applicant-1")

		assert.NoError(t, err)
		assert.Equal(t, domain.StatusApproved, view.Status)
		notifier.AssertExpectations(t)
	})

	t.Run("Should refuse to approve twice", func(t *testing.T) {
		repo := new(MockApplicantRepo)

		applicant := newApplicantFixture(0)
		applicant.Status = domain.StatusApproved
		repo.On("FindByID", ctx, "applicant-1").Return(applicant, nil)

		uc := newApplicantUC(repo, new(MockUserRepo), new(MockCategoryRepo), new(MockBlobStore), nil)
		_, err := uc.Approve(ctx, "applicant-1")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already approved")
		repo.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should only reject pending profiles", func(t *testing.T) {
		repo := new(MockApplicantRepo)

		applicant := newApplicantFixture(0)
		applicant.Status = domain.StatusApproved
		repo.On("FindByID", ctx, "applicant-1").Return(applicant, nil)

		uc := newApplicantUC(repo, new(MockUserRepo), new(MockCategoryRepo), new(MockBlobStore), nil)
		_, err := uc.Reject(ctx, "applicant-1")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only pending profiles")
		repo.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should move a rejected profile back to pending on update", func(t *testing.T) {
		repo := new(MockApplicantRepo)
		categories := new(MockCategoryRepo)

		applicant := newApplicantFixture(0)
		applicant.Status = domain.StatusRejected
		repo.On("FindByUser", ctx, "user-1").Return(applicant, nil)

		resubmitted := newApplicantFixture(0)
		repo.On("Update", ctx, "user-1", mock.MatchedBy(func(upd domain.ApplicantUpdate) bool {
			return upd.Status != nil && *upd.Status == domain.StatusPending
		})).Return(resubmitted, nil)
		categories.On("GetAll", ctx).Return([]domain.JobCategory{}, nil)

		intro := "Updated intro"
		uc := newApplicantUC(repo, new(MockUserRepo), categories, new(MockBlobStore), nil)
		_, err := uc.UpdateProfile(ctx, "user-1", domain.UpdateApplicantInput{Intro: &intro})

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestProvision(t *testing.T) {
	ctx := context.Background()

	t.Run("Should refuse non-applicant accounts", func(t *testing.T) {
		repo := new(MockApplicantRepo)
		users := new(MockUserRepo)

		users.On("GetByID", ctx, "hirer-1").Return(&domain.User{ID: "hirer-1", Role: domain.RoleHirer}, nil)

		uc := newApplicantUC(repo, users, new(MockCategoryRepo), new(MockBlobStore), nil)
		_, err := uc.Provision(ctx, "hirer-1")

		assert.Error(t, err)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should create a pending skeleton with a name-derived slug", func(t *testing.T) {
		repo := new(MockApplicantRepo)
		users := new(MockUserRepo)
		categories := new(MockCategoryRepo)

		users.On("GetByID", ctx, "user-1").Return(&domain.User{
			ID:        "user-1",
			FirstName: "Ada",
			LastName:  "Lovelace",
			Role:      domain.RoleUser,
		}, nil)
		repo.On("Create", ctx, mock.MatchedBy(func(a *domain.Applicant) bool {
			return a.Status == domain.StatusPending &&
				len(a.Slug) > len("Ada-Lovelace-") &&
				a.Slug[:len("Ada-Lovelace-")] == "Ada-Lovelace-"
		})).Return(nil)
		categories.On("GetAll", ctx).Return([]domain.JobCategory{}, nil)

		uc := newApplicantUC(repo, users, categories, new(MockBlobStore), nil)
		view, err := uc.Provision(ctx, "user-1")

		assert.NoError(t, err)
		assert.Equal(t, domain.StatusPending, view.Status)
		repo.AssertExpectations(t)
	})
}

func TestDeleteApplicant(t *testing.T) {
	ctx := context.Background()

	t.Run("Should delete the record even when blob cleanup fails", func(t *testing.T) {
		repo := new(MockApplicantRepo)
		store := new(MockBlobStore)

		applicant := newApplicantFixture(2)
		applicant.Resume = &domain.Resume{File: "https://cdn.example.com/files/resume/r.pdf"}
		repo.On("FindByID", ctx, "applicant-1").Return(applicant, nil)
		store.On("KeyFromURL", mock.Anything).Return("key")
		store.On("Delete", ctx, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("503"))
		repo.On("Delete", ctx, "applicant-1").Return(nil)

		uc := newApplicantUC(repo, new(MockUserRepo), new(MockCategoryRepo), store, nil)
		err := uc.DeleteApplicant(ctx, "applicant-1")

		assert.NoError(t, err)
		repo.AssertCalled(t, "Delete", ctx, "applicant-1")
	})
}
