package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/moodbite/backend/internal/model"
)

// PlannerService generates and stores weekly meal plans.
type PlannerService struct {
	db        *gorm.DB
	generator TextGenerator
	extractor *Extractor
}

func NewPlannerService(db *gorm.DB, generator TextGenerator, extractor *Extractor) *PlannerService {
	return &PlannerService{
		db:        db,
		generator: generator,
		extractor: extractor,
	}
}

// GenerateWeeklyPlan asks the model for a day-by-day plan, parses it and
// persists it for the user. The stored plan is returned as-is.
func (s *PlannerService) GenerateWeeklyPlan(ctx context.Context, userID uuid.UUID, mood, diet string, days int) ([]map[string]interface{}, error) {
	if days <= 0 {
		days = 7
	}

	prompt := BuildMealPlanPrompt(mood, diet, days)

	raw, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	weekPlan, err := s.extractor.ExtractArray(raw)
	if err != nil {
		return nil, err
	}

	plan := model.MealPlan{
		UserID:   userID,
		WeekPlan: model.JSONBArray(weekPlan),
	}
	if err := s.db.WithContext(ctx).Create(&plan).Error; err != nil {
		return nil, &PersistenceError{Err: err}
	}

	return weekPlan, nil
}

// ListPlans returns the user's meal plans, newest first.
func (s *PlannerService) ListPlans(ctx context.Context, userID uuid.UUID) ([]model.MealPlan, error) {
	var plans []model.MealPlan
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}
