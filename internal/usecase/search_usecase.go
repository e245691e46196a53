package usecase

import (
	"context"
	"math"
	"strings"

	"skilledup-backend/internal/domain"
)

type searchUsecase struct {
	applicants domain.ApplicantRepository
	categories domain.JobCategoryRepository
}

func NewSearchUsecase(applicants domain.ApplicantRepository, categories domain.JobCategoryRepository) domain.SearchUsecase {
	return &searchUsecase{applicants: applicants, categories: categories}
}

// Search loads the entire applicant corpus and filters it in process.
// Volumes are assumed small; nothing is pushed down to the database.
//
// Filter precedence, first match wins:
//  1. userId set: match on the owning user's id, other filters ignored.
//  2. keyword and jobCategory both set: the profile needs a skill in that
//     category AND the owner's first or last name must contain the
//     keyword (case-insensitive).
//  3. keyword only: a skill's resolved category NAME must contain the
//     keyword. Deliberately not the owner's name; the asymmetry with
//     branch 2 is long-standing observable behaviour.
//  4. jobCategory only: a skill must reference that category id.
//  5. nothing set: the whole corpus.
func (u *searchUsecase) Search(ctx context.Context, filter domain.SearchFilter, page, limit int) (*domain.SearchPage, error) {
	corpus, err := u.applicants.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	categories, err := u.categories.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.JobCategory, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	matched := filterApplicants(corpus, byID, filter)

	views := make([]domain.ApplicantSearchView, 0, len(matched))
	for i := range matched {
		views = append(views, reshape(&matched[i], byID))
	}

	return paginate(views, page, limit), nil
}

func filterApplicants(corpus []domain.Applicant, byID map[string]domain.JobCategory, filter domain.SearchFilter) []domain.Applicant {
	if filter.UserID == "" && filter.Keyword == "" && filter.JobCategory == "" {
		return corpus
	}

	var keep func(a *domain.Applicant) bool
	switch {
	case filter.UserID != "":
		keep = func(a *domain.Applicant) bool {
			return a.Owner != nil && a.Owner.ID == filter.UserID
		}
	case filter.Keyword != "" && filter.JobCategory != "":
		keyword := strings.ToLower(filter.Keyword)
		keep = func(a *domain.Applicant) bool {
			if a.Owner == nil || !hasCategory(a.Skills, filter.JobCategory) {
				return false
			}
			return strings.Contains(strings.ToLower(a.Owner.FirstName), keyword) ||
				strings.Contains(strings.ToLower(a.Owner.LastName), keyword)
		}
	case filter.Keyword != "":
		keyword := strings.ToLower(filter.Keyword)
		keep = func(a *domain.Applicant) bool {
			for _, s := range a.Skills {
				cat, ok := byID[s.JobCategoryID]
				if !ok {
					continue
				}
				if strings.Contains(strings.ToLower(cat.Name), keyword) {
					return true
				}
			}
			return false
		}
	default:
		keep = func(a *domain.Applicant) bool {
			return hasCategory(a.Skills, filter.JobCategory)
		}
	}

	var matched []domain.Applicant
	for i := range corpus {
		if keep(&corpus[i]) {
			matched = append(matched, corpus[i])
		}
	}
	return matched
}

func hasCategory(skills []domain.Skill, categoryID string) bool {
	for _, s := range skills {
		if strings.EqualFold(s.JobCategoryID, categoryID) {
			return true
		}
	}
	return false
}

func reshape(a *domain.Applicant, byID map[string]domain.JobCategory) domain.ApplicantSearchView {
	skills := make([]domain.SearchSkillView, 0, len(a.Skills))
	for _, s := range a.Skills {
		view := domain.SearchSkillView{
			ID:                s.JobCategoryID,
			YearsOfExperience: s.YearsOfExperience,
		}
		if cat, ok := byID[s.JobCategoryID]; ok {
			view.Name = cat.Name
			view.Description = cat.Description
			view.Image = cat.Image
			view.CreatedAt = cat.CreatedAt
			view.UpdatedAt = cat.UpdatedAt
		}
		skills = append(skills, view)
	}

	return domain.ApplicantSearchView{
		ID:          a.ID,
		User:        a.Owner,
		Status:      a.Status,
		Skills:      skills,
		VideoResume: orEmptyVideos(a.VideoResume),
		Education:   a.Education,
		Slug:        a.Slug,
		Intro:       a.Intro,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// paginate slices the post-filter list in memory. CurrentItemsCount is
// the remaining item count from this page onwards, which is what the API
// has always reported.
func paginate(views []domain.ApplicantSearchView, page, limit int) *domain.SearchPage {
	if limit <= 0 {
		limit = 10
	}
	if page <= 0 {
		page = 1
	}

	total := len(views)
	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return &domain.SearchPage{
		Results:           views[start:end],
		Limit:             limit,
		Page:              page,
		TotalResults:      total,
		TotalPages:        int(math.Ceil(float64(total) / float64(limit))),
		CurrentItemsCount: total - (page-1)*limit,
	}
}
