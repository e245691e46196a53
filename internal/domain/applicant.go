package domain

import (
	"context"
	"time"
)

// ReviewStatus is the moderation state shared by applicant profiles,
// resumes and job posts.
type ReviewStatus string

const (
	StatusPending  ReviewStatus = "pending"
	StatusApproved ReviewStatus = "approved"
	StatusRejected ReviewStatus = "rejected"
)

// MaxVideoResumes caps the videoResume attachments per applicant.
const MaxVideoResumes = 3

// Resume is the structured resume record. Every swap resets Status to
// pending and restamps Date.
type Resume struct {
	File   string       `json:"file"`
	Status ReviewStatus `json:"status"`
	Date   time.Time    `json:"date"`
}

type Skill struct {
	JobCategoryID     string `json:"jobCategory" validate:"required"`
	YearsOfExperience int    `json:"yearsOfExperience" validate:"gte=0"`
}

type VideoResume struct {
	ID   string `json:"id"`
	File string `json:"file"`
}

type Education struct {
	School       string `json:"school" validate:"required"`
	Degree       string `json:"degree" validate:"required"`
	FieldOfStudy string `json:"fieldOfStudy,omitempty"`
	StartYear    int    `json:"startYear" validate:"required"`
	EndYear      int    `json:"endYear" validate:"required,gtefield=StartYear"`
}

type Experience struct {
	Title       string     `json:"title" validate:"required"`
	Company     string     `json:"company,omitempty"`
	Location    string     `json:"location,omitempty"`
	StartDate   time.Time  `json:"startDate" validate:"required"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Description string     `json:"description,omitempty"`
}

// Applicant is the job-seeker profile, exactly one per user.
type Applicant struct {
	ID          string        `json:"id"`
	UserID      string        `json:"user"`
	Resume      *Resume       `json:"resume,omitempty"`
	Intro       string        `json:"intro,omitempty"`
	Skills      []Skill       `json:"skills"`
	VideoResume []VideoResume `json:"videoResume"`
	Education   []Education   `json:"education"`
	Experience  []Experience  `json:"experience"`
	Status      ReviewStatus  `json:"status"`
	Slug        string        `json:"slug"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`

	// Owner is filled on joined reads, never persisted from here.
	Owner *User `json:"-"`
}

// UpdateApplicantInput is a partial profile update. Nil fields are left
// untouched; non-nil slices replace the stored collection wholesale.
type UpdateApplicantInput struct {
	Intro       *string       `json:"intro" validate:"omitempty,max=2000"`
	Skills      []Skill       `json:"skills" validate:"omitempty,dive"`
	Education   []Education   `json:"education" validate:"omitempty,dive"`
	Experience  []Experience  `json:"experience" validate:"omitempty,dive"`
	VideoResume []VideoResume `json:"videoResume" validate:"omitempty,max=3,dive"`
}

// ApplicantUpdate is the storage-level counterpart of UpdateApplicantInput,
// extended with the fields the workflows mutate directly.
type ApplicantUpdate struct {
	Intro       *string
	Skills      []Skill
	Education   []Education
	Experience  []Experience
	VideoResume []VideoResume
	Resume      *Resume
	Status      *ReviewStatus
}

// IsEmpty reports whether the update would touch no columns.
func (u ApplicantUpdate) IsEmpty() bool {
	return u.Intro == nil && u.Skills == nil && u.Education == nil &&
		u.Experience == nil && u.VideoResume == nil && u.Resume == nil && u.Status == nil
}

// SkillView is a skill with its category resolved, as exposed to clients.
type SkillView struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	YearsOfExperience int    `json:"yearsOfExperience"`
}

// ApplicantView is the shape every applicant-facing operation returns:
// the profile flattened together with the owner's public fields.
type ApplicantView struct {
	ID          string        `json:"id"`
	FirstName   string        `json:"firstName"`
	LastName    string        `json:"lastName"`
	PhoneNumber string        `json:"phoneNumber"`
	Role        string        `json:"role"`
	Status      ReviewStatus  `json:"status"`
	Resume      *Resume       `json:"resume,omitempty"`
	Intro       string        `json:"intro,omitempty"`
	Skills      []SkillView   `json:"skills"`
	VideoResume []VideoResume `json:"videoResume"`
	Education   []Education   `json:"education"`
}

type ApplicantRepository interface {
	// Create inserts a new applicant. A second applicant for the same
	// user fails with a uniqueness conflict.
	Create(ctx context.Context, applicant *Applicant) error
	// FindByUser returns the applicant owned by userID, nil if none.
	FindByUser(ctx context.Context, userID string) (*Applicant, error)
	FindBySlug(ctx context.Context, slug string) (*Applicant, error)
	FindByID(ctx context.Context, id string) (*Applicant, error)
	// FindAll loads the whole corpus joined with each owning user.
	FindAll(ctx context.Context) ([]Applicant, error)
	// Update applies the partial update matched by user id in a single
	// statement. Returns nil if no applicant exists for that user.
	Update(ctx context.Context, userID string, upd ApplicantUpdate) (*Applicant, error)
	// SetStatus transitions the review status, matched by applicant id.
	SetStatus(ctx context.Context, id string, status ReviewStatus) (*Applicant, error)
	// PushVideoResume appends one element iff the stored array holds
	// fewer than MaxVideoResumes entries. Returns nil when the guard
	// rejects the append or the applicant does not exist.
	PushVideoResume(ctx context.Context, userID string, video VideoResume) (*Applicant, error)
	// PullVideoResume removes the element with the given id. Returns nil
	// when the applicant does not exist.
	PullVideoResume(ctx context.Context, userID, videoID string) (*Applicant, error)
	Delete(ctx context.Context, id string) error
}

type ApplicantUsecase interface {
	Provision(ctx context.Context, userID string) (*ApplicantView, error)
	GetProfile(ctx context.Context, userID string) (*ApplicantView, error)
	GetBySlug(ctx context.Context, slug string) (*ApplicantView, error)
	UpdateProfile(ctx context.Context, userID string, input UpdateApplicantInput) (*ApplicantView, error)
	UploadResume(ctx context.Context, userID string, file []byte) (*ApplicantView, error)
	UploadVideoResume(ctx context.Context, userID string, file []byte) (*ApplicantView, error)
	DeleteVideoResume(ctx context.Context, userID, videoID string) (*ApplicantView, error)
	Approve(ctx context.Context, applicantID string) (*ApplicantView, error)
	Reject(ctx context.Context, applicantID string) (*ApplicantView, error)
	DeleteApplicant(ctx context.Context, applicantID string) error
}
