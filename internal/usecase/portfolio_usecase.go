package usecase

import (
	"context"
	"fmt"

	"portfolio-backend/internal/domain"
)

type portfolioUsecase struct {
	repo domain.ContentRepository
}

func NewPortfolioUsecase(repo domain.ContentRepository) domain.PortfolioUsecase {
	return &portfolioUsecase{repo: repo}
}

func (uc *portfolioUsecase) GetProfile(ctx context.Context) (*domain.Profile, error) {
	return uc.repo.Profile(ctx)
}

// ListProjects returns projects matching filter in content order
func (uc *portfolioUsecase) ListProjects(ctx context.Context, filter domain.ProjectFilter) ([]domain.Project, error) {
	if filter.Category != "" && !filter.Category.Valid() {
		return nil, fmt.Errorf("%w: unknown project category %q", domain.ErrInvalidFilter, filter.Category)
	}

	projects, err := uc.repo.Projects(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Project, 0, len(projects))
	for _, p := range projects {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.Featured != nil && p.Featured != *filter.Featured {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (uc *portfolioUsecase) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	projects, err := uc.repo.Projects(ctx)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if projects[i].ID == id {
			return &projects[i], nil
		}
	}
	return nil, fmt.Errorf("project %q: %w", id, domain.ErrNotFound)
}

func (uc *portfolioUsecase) ListSkills(ctx context.Context, category domain.SkillCategory) ([]domain.Skill, error) {
	if category != "" && !category.Valid() {
		return nil, fmt.Errorf("%w: unknown skill category %q", domain.ErrInvalidFilter, category)
	}

	skills, err := uc.repo.Skills(ctx)
	if err != nil {
		return nil, err
	}
	if category == "" {
		return skills, nil
	}

	out := make([]domain.Skill, 0, len(skills))
	for _, s := range skills {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out, nil
}

// GroupSkills buckets skills by category in display order. Empty
// categories are omitted.
func (uc *portfolioUsecase) GroupSkills(ctx context.Context) ([]domain.SkillGroup, error) {
	skills, err := uc.repo.Skills(ctx)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[domain.SkillCategory][]domain.Skill)
	for _, s := range skills {
		byCategory[s.Category] = append(byCategory[s.Category], s)
	}

	groups := make([]domain.SkillGroup, 0, len(byCategory))
	for _, c := range domain.SkillCategories {
		if len(byCategory[c]) == 0 {
			continue
		}
		groups = append(groups, domain.SkillGroup{Category: c, Skills: byCategory[c]})
	}
	return groups, nil
}

func (uc *portfolioUsecase) ListJourney(ctx context.Context, kind domain.ExperienceType) ([]domain.Experience, error) {
	if kind != "" && !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown experience type %q", domain.ErrInvalidFilter, kind)
	}

	entries, err := uc.repo.Experiences(ctx)
	if err != nil {
		return nil, err
	}
	if kind == "" {
		return entries, nil
	}

	out := make([]domain.Experience, 0, len(entries))
	for _, e := range entries {
		if e.Type == kind {
			out = append(out, e)
		}
	}
	return out, nil
}
