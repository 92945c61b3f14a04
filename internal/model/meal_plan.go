package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MealPlan stores a generated weekly plan as an array of day objects.
type MealPlan struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	WeekPlan  JSONBArray `gorm:"type:jsonb;not null;default:'[]'" json:"week_plan"`
}

func (MealPlan) TableName() string {
	return "meal_plans"
}

func (p *MealPlan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
