package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecipeLog is an append-only record of a generation request and the
// recipes that were returned for it. Rows are never updated or deleted
// by the pipeline.
type RecipeLog struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt       time.Time  `json:"created_at"`
	UserID          uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Mood            string     `gorm:"size:100" json:"mood"`
	QueryBody       JSONBMap   `gorm:"type:jsonb" json:"query_body"`
	RecipesReturned JSONBArray `gorm:"type:jsonb;not null;default:'[]'" json:"recipes_returned"`
}

func (RecipeLog) TableName() string {
	return "recipe_logs"
}

func (l *RecipeLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
