package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/anaphygon/portfolio/internal/usecase"
)

type Skill struct {
	ID          uint      `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name;type:varchar(255);not null"`
	Category    string    `gorm:"column:category;type:varchar(100);index"`
	Proficiency int       `gorm:"column:proficiency;default:0"`
	Icon        string    `gorm:"column:icon;type:varchar(255)"`
	OrderIndex  int       `gorm:"column:order_index;default:0;index"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (Skill) TableName() string {
	return "skills"
}

func (s *service) ListSkills(ctx context.Context) ([]usecase.Skill, error) {
	var skills []Skill

	err := s.db.
		WithContext(ctx).
		Order("order_index ASC, id ASC").
		Find(&skills).
		Error
	if err != nil {
		return nil, err
	}

	list := make([]usecase.Skill, 0, len(skills))
	for _, sk := range skills {
		list = append(list, sk.ConvertToUsecase())
	}
	return list, nil
}

func (s *service) ListSkillsByCategory(ctx context.Context, category string) ([]usecase.Skill, error) {
	var skills []Skill

	err := s.db.
		WithContext(ctx).
		Where("category = ?", category).
		Order("order_index ASC, id ASC").
		Find(&skills).
		Error
	if err != nil {
		return nil, err
	}

	list := make([]usecase.Skill, 0, len(skills))
	for _, sk := range skills {
		list = append(list, sk.ConvertToUsecase())
	}
	return list, nil
}

func (s *service) GetSkillByID(ctx context.Context, id uint) (usecase.Skill, error) {
	var sk Skill

	err := s.db.WithContext(ctx).First(&sk, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usecase.Skill{}, usecase.ErrNotFound{
				ID:      id,
				Code:    "skill_not_found",
				Message: fmt.Sprintf("skill %d not found", id),
			}
		}
		return usecase.Skill{}, err
	}

	return sk.ConvertToUsecase(), nil
}

func (s *service) CreateSkill(ctx context.Context, skill usecase.Skill) (usecase.Skill, error) {
	sk := Skill{
		Name:        skill.Name,
		Category:    skill.Category,
		Proficiency: skill.Proficiency,
		Icon:        skill.Icon,
		OrderIndex:  skill.OrderIndex,
	}

	if err := s.db.WithContext(ctx).Create(&sk).Error; err != nil {
		return usecase.Skill{}, err
	}
	return sk.ConvertToUsecase(), nil
}

func (s *service) UpdateSkill(ctx context.Context, skill usecase.Skill) (usecase.Skill, error) {
	sk := Skill{
		ID:          skill.ID,
		Name:        skill.Name,
		Category:    skill.Category,
		Proficiency: skill.Proficiency,
		Icon:        skill.Icon,
		OrderIndex:  skill.OrderIndex,
		CreatedAt:   skill.CreatedAt,
	}

	if err := s.db.WithContext(ctx).Save(&sk).Error; err != nil {
		return usecase.Skill{}, err
	}
	return sk.ConvertToUsecase(), nil
}

func (s *service) DeleteSkill(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&Skill{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrNotFound{
			ID:      id,
			Code:    "skill_not_found",
			Message: fmt.Sprintf("skill %d not found", id),
		}
	}
	return nil
}

// Convert core model to Usecase
func (sk Skill) ConvertToUsecase() usecase.Skill {
	return usecase.Skill{
		ID:          sk.ID,
		Name:        sk.Name,
		Category:    sk.Category,
		Proficiency: sk.Proficiency,
		Icon:        sk.Icon,
		OrderIndex:  sk.OrderIndex,
		CreatedAt:   sk.CreatedAt,
		UpdatedAt:   sk.UpdatedAt,
	}
}
