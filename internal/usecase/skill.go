package usecase

import (
	"context"
	"strings"
	"time"
)

type Skill struct {
	ID          uint
	Name        string
	Category    string
	Proficiency int
	Icon        string
	OrderIndex  int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (u Usecase) ListSkills(ctx context.Context) ([]Skill, error) {
	return u.repo.ListSkills(ctx)
}

func (u Usecase) ListSkillsByCategory(ctx context.Context, category string) ([]Skill, error) {
	return u.repo.ListSkillsByCategory(ctx, category)
}

func (u Usecase) GetSkillByID(ctx context.Context, id uint) (Skill, error) {
	return u.repo.GetSkillByID(ctx, id)
}

func (u Usecase) CreateSkill(ctx context.Context, skill Skill) (Skill, error) {
	if strings.TrimSpace(skill.Name) == "" {
		return Skill{}, ErrValidation{Field: "name", Message: "skill name is required"}
	}
	return u.repo.CreateSkill(ctx, skill)
}

func (u Usecase) UpdateSkill(ctx context.Context, skill Skill) (Skill, error) {
	if strings.TrimSpace(skill.Name) == "" {
		return Skill{}, ErrValidation{Field: "name", Message: "skill name is required"}
	}
	if _, err := u.repo.GetSkillByID(ctx, skill.ID); err != nil {
		return Skill{}, err
	}
	return u.repo.UpdateSkill(ctx, skill)
}

func (u Usecase) DeleteSkill(ctx context.Context, id uint) error {
	if _, err := u.repo.GetSkillByID(ctx, id); err != nil {
		return err
	}
	return u.repo.DeleteSkill(ctx, id)
}
