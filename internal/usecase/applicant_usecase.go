package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"skilledup-backend/internal/domain"
	"skilledup-backend/pkg/apperror"
	"skilledup-backend/pkg/email"
	"skilledup-backend/pkg/logger"
	"skilledup-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type applicantUsecase struct {
	repo       domain.ApplicantRepository
	users      domain.UserRepository
	categories domain.JobCategoryRepository
	store      domain.BlobStore
	notifier   domain.Notifier
	validate   *validator.Validate
}

func NewApplicantUsecase(
	repo domain.ApplicantRepository,
	users domain.UserRepository,
	categories domain.JobCategoryRepository,
	store domain.BlobStore,
	notifier domain.Notifier,
	validate *validator.Validate,
) domain.ApplicantUsecase {
	return &applicantUsecase{
		repo:       repo,
		users:      users,
		categories: categories,
		store:      store,
		notifier:   notifier,
		validate:   validate,
	}
}

// swapEffects records what a media swap has already done, so a partial
// failure leaves a diagnosable trail instead of a silent orphan.
type swapEffects struct {
	Uploaded string
	Orphaned []string
}

func (e *swapEffects) orphan(url string) {
	e.Orphaned = append(e.Orphaned, url)
}

func (e *swapEffects) log(op string) {
	if len(e.Orphaned) == 0 {
		return
	}
	logger.Log.Warn("media swap left orphaned blobs",
		"operation", op,
		"uploaded", e.Uploaded,
		"orphaned", e.Orphaned,
	)
}

// slugify derives a URL slug from a display name and a timestamp. Slugs
// are computed once at creation time and never recomputed.
func slugify(name string, t time.Time) string {
	parts := strings.Join(strings.Fields(name), "-")
	return parts + "-" + t.Format("2006-01-02-15-04-05")
}

// Provision creates the empty profile skeleton for a freshly registered
// applicant account.
func (u *applicantUsecase) Provision(ctx context.Context, userID string) (*domain.ApplicantView, error) {
	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}
	if user.Role != domain.RoleUser {
		return nil, apperror.BadRequest("Only applicant accounts have profiles")
	}

	applicant := &domain.Applicant{
		UserID: userID,
		Status: domain.StatusPending,
		Slug:   slugify(user.FullName(), time.Now()),
	}
	if err := u.repo.Create(ctx, applicant); err != nil {
		return nil, err
	}
	applicant.Owner = user
	return u.buildView(ctx, applicant, user)
}

func (u *applicantUsecase) GetProfile(ctx context.Context, userID string) (*domain.ApplicantView, error) {
	applicant, err := u.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if applicant == nil {
		return nil, apperror.NotFound("Applicant not found")
	}
	return u.buildView(ctx, applicant, applicant.Owner)
}

func (u *applicantUsecase) GetBySlug(ctx context.Context, slug string) (*domain.ApplicantView, error) {
	applicant, err := u.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if applicant == nil {
		return nil, apperror.NotFound("Applicant not found")
	}
	return u.buildView(ctx, applicant, applicant.Owner)
}

// UpdateProfile applies a partial update. Scalars replace; slices replace
// the stored collection wholesale. A rejected profile goes back to
// pending (re-submission).
func (u *applicantUsecase) UpdateProfile(ctx context.Context, userID string, input domain.UpdateApplicantInput) (*domain.ApplicantView, error) {
	applicant, err := u.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if applicant == nil {
		return nil, apperror.NotFound("Applicant not found")
	}

	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	// The route-level guard enforces the same cap; kept here too so the
	// engine stands on its own.
	if len(input.VideoResume) > domain.MaxVideoResumes {
		return nil, apperror.LimitExceeded(
			fmt.Sprintf("A profile may hold at most %d video resumes", domain.MaxVideoResumes))
	}

	upd := domain.ApplicantUpdate{
		Intro:       input.Intro,
		Skills:      input.Skills,
		Education:   input.Education,
		Experience:  input.Experience,
		VideoResume: input.VideoResume,
	}
	if applicant.Status == domain.StatusRejected {
		pending := domain.StatusPending
		upd.Status = &pending
	}

	updated, err := u.repo.Update(ctx, userID, upd)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperror.NotFound("Applicant not found")
	}
	return u.buildView(ctx, updated, applicant.Owner)
}

// UploadResume swaps the single resume slot: put the new file first, then
// best-effort delete the old one, then persist. Deleting the old blob may
// fail without failing the operation; the fresh upload always wins.
func (u *applicantUsecase) UploadResume(ctx context.Context, userID string, file []byte) (*domain.ApplicantView, error) {
	applicant, err := u.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if applicant == nil {
		return nil, apperror.NotFound("Applicant not found")
	}

	key := fmt.Sprintf("resume-%s-%d.pdf", userID, time.Now().UnixMilli())
	uploaded, err := u.store.Put(ctx, domain.FileKindFile, file, key, domain.FolderResume, domain.ContentTypePDF)
	if err != nil {
		return nil, apperror.UploadFailed("Resume could not be uploaded. Please try again", err)
	}

	effects := swapEffects{Uploaded: uploaded.URL}
	defer effects.log("uploadResume")

	if applicant.Resume != nil && applicant.Resume.File != "" {
		oldKey := u.store.KeyFromURL(applicant.Resume.File)
		if err := u.store.Delete(ctx, domain.FileKindFile, oldKey, domain.FolderResume); err != nil {
			// The new resume is already durable; prefer an orphan blob
			// over failing the user's upload.
			effects.orphan(applicant.Resume.File)
		}
	}

	resume := domain.Resume{
		File:   uploaded.URL,
		Status: domain.StatusPending,
		Date:   time.Now(),
	}
	updated, err := u.repo.Update(ctx, userID, domain.ApplicantUpdate{Resume: &resume})
	if err != nil {
		effects.orphan(uploaded.URL)
		return nil, err
	}
	if updated == nil {
		effects.orphan(uploaded.URL)
		return nil, apperror.NotFound("Applicant not found")
	}
	return u.buildView(ctx, updated, applicant.Owner)
}

// UploadVideoResume appends one video attachment. The length pre-check
// keeps a full profile from ever reaching storage; the guarded push at
// the repository closes the remaining race.
func (u *applicantUsecase) UploadVideoResume(ctx context.Context, userID string, file []byte) (*domain.ApplicantView, error) {
	applicant, err := u.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if applicant == nil {
		return nil, apperror.NotFound("Applicant not found")
	}
	if len(applicant.VideoResume) >= domain.MaxVideoResumes {
		return nil, apperror.LimitExceeded(
			fmt.Sprintf("A profile may hold at most %d video resumes", domain.MaxVideoResumes))
	}

	videoID := uuid.NewString()
	key := fmt.Sprintf("video-%s-%s.mp4", userID, videoID)
	uploaded, err := u.store.Put(ctx, domain.FileKindVideo, file, key, domain.FolderVideoResume, domain.ContentTypeVideo)
	if err != nil {
		return nil, apperror.UploadFailed("Video resume could not be uploaded. Please try again", err)
	}

	effects := swapEffects{Uploaded: uploaded.URL}
	defer effects.log("uploadVideoResume")

	updated, err := u.repo.PushVideoResume(ctx, userID, domain.VideoResume{ID: videoID, File: uploaded.URL})
	if err != nil {
		effects.orphan(uploaded.URL)
		return nil, err
	}
	if updated == nil {
		// A concurrent upload filled the last slot between the pre-check
		// and the push. Clean up the blob we just stored.
		if err := u.store.Delete(ctx, domain.FileKindVideo, key, domain.FolderVideoResume); err != nil {
			effects.orphan(uploaded.URL)
		}
		return nil, apperror.LimitExceeded(
			fmt.Sprintf("A profile may hold at most %d video resumes", domain.MaxVideoResumes))
	}
	return u.buildView(ctx, updated, applicant.Owner)
}

// DeleteVideoResume removes one attachment by its element id. The blob is
// deleted before the record is touched: a storage failure leaves the
// record pointing at a blob that still exists, never the reverse.
func (u *applicantUsecase) DeleteVideoResume(ctx context.Context, userID, videoID string) (*domain.ApplicantView, error) {
	applicant, err := u.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if applicant == nil {
		return nil, apperror.NotFound("Applicant not found")
	}

	var target *domain.VideoResume
	for i := range applicant.VideoResume {
		if applicant.VideoResume[i].ID == videoID {
			target = &applicant.VideoResume[i]
			break
		}
	}
	if target == nil {
		return nil, apperror.NotFound("Video resume not found")
	}

	key := u.store.KeyFromURL(target.File)
	if err := u.store.Delete(ctx, domain.FileKindVideo, key, domain.FolderVideoResume); err != nil {
		return nil, apperror.New(500, "Video resume could not be deleted. Please try again", err)
	}

	updated, err := u.repo.PullVideoResume(ctx, userID, videoID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperror.NotFound("Applicant not found")
	}
	return u.buildView(ctx, updated, applicant.Owner)
}

// Approve moves a profile to approved. Re-approval is a user error, not
// an idempotent no-op.
func (u *applicantUsecase) Approve(ctx context.Context, applicantID string) (*domain.ApplicantView, error) {
	applicant, err := u.repo.FindByID(ctx, applicantID)
	if err != nil {
		return nil, err
	}
	if applicant == nil {
		return nil, apperror.NotFound("Applicant not found")
	}
	if applicant.Status == domain.StatusApproved {
		return nil, apperror.AlreadyApproved("Applicant profile is already approved")
	}

	updated, err := u.repo.SetStatus(ctx, applicantID, domain.StatusApproved)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperror.NotFound("Applicant not found")
	}

	u.notifyReviewOutcome(ctx, applicant.Owner, true)
	return u.buildView(ctx, updated, applicant.Owner)
}

// Reject moves a pending profile to rejected. Approved profiles stay
// approved unless an administrator re-provisions them.
func (u *applicantUsecase) Reject(ctx context.Context, applicantID string) (*domain.ApplicantView, error) {
	applicant, err := u.repo.FindByID(ctx, applicantID)
	if err != nil {
		return nil, err
	}
	if applicant == nil {
		return nil, apperror.NotFound("Applicant not found")
	}
	if applicant.Status != domain.StatusPending {
		return nil, apperror.BadRequest("Only pending profiles can be rejected")
	}

	updated, err := u.repo.SetStatus(ctx, applicantID, domain.StatusRejected)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperror.NotFound("Applicant not found")
	}

	u.notifyReviewOutcome(ctx, applicant.Owner, false)
	return u.buildView(ctx, updated, applicant.Owner)
}

// DeleteApplicant is the administrative hard delete: record plus all
// dependent media. Blob deletions are best-effort per object.
func (u *applicantUsecase) DeleteApplicant(ctx context.Context, applicantID string) error {
	applicant, err := u.repo.FindByID(ctx, applicantID)
	if err != nil {
		return err
	}
	if applicant == nil {
		return apperror.NotFound("Applicant not found")
	}

	effects := swapEffects{}
	defer effects.log("deleteApplicant")

	if applicant.Resume != nil && applicant.Resume.File != "" {
		key := u.store.KeyFromURL(applicant.Resume.File)
		if err := u.store.Delete(ctx, domain.FileKindFile, key, domain.FolderResume); err != nil {
			effects.orphan(applicant.Resume.File)
		}
	}
	for _, v := range applicant.VideoResume {
		key := u.store.KeyFromURL(v.File)
		if err := u.store.Delete(ctx, domain.FileKindVideo, key, domain.FolderVideoResume); err != nil {
			effects.orphan(v.File)
		}
	}

	return u.repo.Delete(ctx, applicantID)
}

// notifyReviewOutcome mails the owner about an approval decision.
// Delivery failures are logged and swallowed; the state transition has
// already committed.
func (u *applicantUsecase) notifyReviewOutcome(ctx context.Context, owner *domain.User, approved bool) {
	if u.notifier == nil || owner == nil || owner.Email == "" {
		return
	}
	body, err := email.ProfileReviewedBody(owner.FirstName, approved)
	if err != nil {
		logger.Log.Warn("failed to render review notification", "error", err)
		return
	}
	if err := u.notifier.SendEmail(ctx, owner.Email, "Your profile review has been updated", body); err != nil {
		logger.Log.Warn("failed to send review notification", "to", owner.Email, "error", err)
	}
}

// buildView joins the profile with the owner's public fields and resolves
// each skill's category to an {id, name} pair.
func (u *applicantUsecase) buildView(ctx context.Context, applicant *domain.Applicant, owner *domain.User) (*domain.ApplicantView, error) {
	if owner == nil {
		var err error
		owner, err = u.users.GetByID(ctx, applicant.UserID)
		if err != nil {
			return nil, err
		}
		if owner == nil {
			return nil, apperror.NotFound("User not found")
		}
	}

	byID, err := u.categoriesByID(ctx)
	if err != nil {
		return nil, err
	}

	skills := make([]domain.SkillView, 0, len(applicant.Skills))
	for _, s := range applicant.Skills {
		view := domain.SkillView{
			ID:                s.JobCategoryID,
			YearsOfExperience: s.YearsOfExperience,
		}
		if cat, ok := byID[s.JobCategoryID]; ok {
			view.Name = cat.Name
		}
		skills = append(skills, view)
	}

	return &domain.ApplicantView{
		ID:          applicant.ID,
		FirstName:   owner.FirstName,
		LastName:    owner.LastName,
		PhoneNumber: owner.PhoneNumber,
		Role:        owner.Role,
		Status:      applicant.Status,
		Resume:      applicant.Resume,
		Intro:       applicant.Intro,
		Skills:      skills,
		VideoResume: orEmptyVideos(applicant.VideoResume),
		Education:   applicant.Education,
	}, nil
}

func (u *applicantUsecase) categoriesByID(ctx context.Context) (map[string]domain.JobCategory, error) {
	categories, err := u.categories.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.JobCategory, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}
	return byID, nil
}

func orEmptyVideos(v []domain.VideoResume) []domain.VideoResume {
	if v == nil {
		return []domain.VideoResume{}
	}
	return v
}
