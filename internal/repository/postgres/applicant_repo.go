package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"skilledup-backend/internal/domain"
	"skilledup-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicantRepo struct {
	db *pgxpool.Pool
}

func NewApplicantRepository(db *pgxpool.Pool) domain.ApplicantRepository {
	return &applicantRepo{db: db}
}

const applicantColumns = `a.id, a.user_id, a.resume, a.intro, a.skills, a.video_resume,
       a.education, a.experience, a.status, a.slug, a.created_at, a.updated_at`

// scanApplicant reads one applicant row. JSONB columns arrive as raw
// bytes and are unmarshalled here; withOwner additionally consumes the
// joined user columns.
func scanApplicant(row pgx.Row, withOwner bool) (*domain.Applicant, error) {
	var (
		a           domain.Applicant
		resumeRaw   []byte
		skillsRaw   []byte
		videoRaw    []byte
		eduRaw      []byte
		expRaw      []byte
		ownerFields []any
	)

	dest := []any{
		&a.ID, &a.UserID, &resumeRaw, &a.Intro, &skillsRaw, &videoRaw,
		&eduRaw, &expRaw, &a.Status, &a.Slug, &a.CreatedAt, &a.UpdatedAt,
	}
	if withOwner {
		a.Owner = &domain.User{}
		ownerFields = []any{
			&a.Owner.ID, &a.Owner.FirstName, &a.Owner.LastName, &a.Owner.Email,
			&a.Owner.PhoneNumber, &a.Owner.Role, &a.Owner.CreatedAt, &a.Owner.UpdatedAt,
		}
		dest = append(dest, ownerFields...)
	}

	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if len(resumeRaw) > 0 {
		a.Resume = &domain.Resume{}
		if err := json.Unmarshal(resumeRaw, a.Resume); err != nil {
			return nil, fmt.Errorf("decode resume: %w", err)
		}
	}
	for _, col := range []struct {
		raw  []byte
		dest any
	}{
		{skillsRaw, &a.Skills},
		{videoRaw, &a.VideoResume},
		{eduRaw, &a.Education},
		{expRaw, &a.Experience},
	} {
		if len(col.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(col.raw, col.dest); err != nil {
			return nil, fmt.Errorf("decode applicant field: %w", err)
		}
	}

	return &a, nil
}

func marshalJSONB(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode jsonb: %w", err)
	}
	return b, nil
}

func (r *applicantRepo) Create(ctx context.Context, applicant *domain.Applicant) error {
	skills, err := marshalJSONB(orEmpty(applicant.Skills))
	if err != nil {
		return err
	}
	videos, err := marshalJSONB(orEmpty(applicant.VideoResume))
	if err != nil {
		return err
	}
	education, err := marshalJSONB(orEmpty(applicant.Education))
	if err != nil {
		return err
	}
	experience, err := marshalJSONB(orEmpty(applicant.Experience))
	if err != nil {
		return err
	}

	query := `INSERT INTO applicants (user_id, intro, skills, video_resume, education, experience, status, slug)
              VALUES ($1, $2, $3::jsonb, $4::jsonb, $5::jsonb, $6::jsonb, $7, $8)
              RETURNING id, created_at, updated_at`
	err = r.db.QueryRow(ctx, query,
		applicant.UserID, applicant.Intro, skills, videos, education, experience,
		applicant.Status, applicant.Slug,
	).Scan(&applicant.ID, &applicant.CreatedAt, &applicant.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("Applicant already exists for this user")
		}
		return apperror.Internal(err)
	}
	return nil
}

const applicantWithOwnerQuery = `SELECT ` + applicantColumns + `, ` +
	`u.id, u.first_name, u.last_name, u.email, u.phone_number, u.role, u.created_at, u.updated_at
     FROM applicants a
     JOIN users u ON u.id = a.user_id`

func (r *applicantRepo) FindByUser(ctx context.Context, userID string) (*domain.Applicant, error) {
	return scanApplicant(r.db.QueryRow(ctx, applicantWithOwnerQuery+` WHERE a.user_id = $1`, userID), true)
}

func (r *applicantRepo) FindBySlug(ctx context.Context, slug string) (*domain.Applicant, error) {
	return scanApplicant(r.db.QueryRow(ctx, applicantWithOwnerQuery+` WHERE a.slug = $1`, slug), true)
}

func (r *applicantRepo) FindByID(ctx context.Context, id string) (*domain.Applicant, error) {
	return scanApplicant(r.db.QueryRow(ctx, applicantWithOwnerQuery+` WHERE a.id = $1`, id), true)
}

// FindAll loads the full corpus for the in-memory search. Intentionally a
// full scan; applicant volumes are small.
func (r *applicantRepo) FindAll(ctx context.Context) ([]domain.Applicant, error) {
	rows, err := r.db.Query(ctx, applicantWithOwnerQuery+` ORDER BY a.created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applicants []domain.Applicant
	for rows.Next() {
		a, err := scanApplicant(rows, true)
		if err != nil {
			return nil, err
		}
		applicants = append(applicants, *a)
	}
	return applicants, rows.Err()
}

// Update applies the partial update in a single statement matched by
// user id, so the existence check and the mutation cannot interleave
// with a concurrent writer.
func (r *applicantRepo) Update(ctx context.Context, userID string, upd domain.ApplicantUpdate) (*domain.Applicant, error) {
	if upd.IsEmpty() {
		return r.FindByUser(ctx, userID)
	}

	sets := []string{"updated_at = now()"}
	args := []any{userID}

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	addJSONB := func(column string, value any) error {
		b, err := marshalJSONB(value)
		if err != nil {
			return err
		}
		args = append(args, b)
		sets = append(sets, fmt.Sprintf("%s = $%d::jsonb", column, len(args)))
		return nil
	}

	if upd.Intro != nil {
		add("intro", *upd.Intro)
	}
	if upd.Status != nil {
		add("status", *upd.Status)
	}
	if upd.Skills != nil {
		if err := addJSONB("skills", upd.Skills); err != nil {
			return nil, err
		}
	}
	if upd.Education != nil {
		if err := addJSONB("education", upd.Education); err != nil {
			return nil, err
		}
	}
	if upd.Experience != nil {
		if err := addJSONB("experience", upd.Experience); err != nil {
			return nil, err
		}
	}
	if upd.VideoResume != nil {
		if err := addJSONB("video_resume", upd.VideoResume); err != nil {
			return nil, err
		}
	}
	if upd.Resume != nil {
		if err := addJSONB("resume", upd.Resume); err != nil {
			return nil, err
		}
	}

	query := fmt.Sprintf(`UPDATE applicants a SET %s WHERE a.user_id = $1 RETURNING %s`,
		strings.Join(sets, ", "), applicantColumns)
	return scanApplicant(r.db.QueryRow(ctx, query, args...), false)
}

func (r *applicantRepo) SetStatus(ctx context.Context, id string, status domain.ReviewStatus) (*domain.Applicant, error) {
	query := `UPDATE applicants a SET status = $2, updated_at = now() WHERE a.id = $1 RETURNING ` + applicantColumns
	return scanApplicant(r.db.QueryRow(ctx, query, id, status), false)
}

// PushVideoResume appends atomically, guarded by the cardinality cap in
// the same statement. A stale in-process length check can never oversize
// the stored array.
func (r *applicantRepo) PushVideoResume(ctx context.Context, userID string, video domain.VideoResume) (*domain.Applicant, error) {
	element, err := marshalJSONB(video)
	if err != nil {
		return nil, err
	}

	query := `UPDATE applicants a
              SET video_resume = video_resume || $2::jsonb, updated_at = now()
              WHERE a.user_id = $1 AND jsonb_array_length(video_resume) < $3
              RETURNING ` + applicantColumns
	return scanApplicant(r.db.QueryRow(ctx, query, userID, element, domain.MaxVideoResumes), false)
}

func (r *applicantRepo) PullVideoResume(ctx context.Context, userID, videoID string) (*domain.Applicant, error) {
	query := `UPDATE applicants a
              SET video_resume = (
                  SELECT COALESCE(jsonb_agg(elem), '[]'::jsonb)
                  FROM jsonb_array_elements(a.video_resume) elem
                  WHERE elem->>'id' <> $2
              ), updated_at = now()
              WHERE a.user_id = $1
              RETURNING ` + applicantColumns
	return scanApplicant(r.db.QueryRow(ctx, query, userID, videoID), false)
}

func (r *applicantRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM applicants WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("Applicant not found")
	}
	return nil
}

// orEmpty keeps jsonb columns as [] rather than null for nil slices.
func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
