package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TrainingAudienceResident  = "resident"
	TrainingAudienceCollector = "collector"
)

// TrainingModule is a seeded awareness module with a quiz. The slug is stable
// across reseeds so progress rows keep pointing at the right module.
type TrainingModule struct {
	ID               uuid.UUID          `gorm:"type:uuid;primaryKey" json:"id"`
	Slug             string             `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Title            string             `gorm:"size:200;not null" json:"title"`
	ShortTitle       string             `gorm:"size:100" json:"short_title"`
	Description      string             `gorm:"type:text" json:"description"`
	Audience         string             `gorm:"size:20;not null;index" json:"audience"`
	Level            string             `gorm:"size:20" json:"level"`
	EstimatedMinutes int                `json:"estimated_minutes"`
	VideoSrc         string             `gorm:"type:text" json:"video_src,omitempty"`
	Questions        []TrainingQuestion `gorm:"constraint:OnDelete:CASCADE" json:"questions,omitempty"`
	CreatedAt        time.Time          `gorm:"autoCreateTime" json:"created_at"`
}

func (m *TrainingModule) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

type TrainingQuestion struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TrainingModuleID uuid.UUID `gorm:"type:uuid;not null;index" json:"module_id"`
	Position         int       `gorm:"not null" json:"position"`
	Text             string    `gorm:"type:text;not null" json:"text"`
	OptionA          string    `gorm:"type:text;not null" json:"option_a"`
	OptionB          string    `gorm:"type:text;not null" json:"option_b"`
	OptionC          string    `gorm:"type:text;not null" json:"option_c"`
	// CorrectIndex is the answer key (0-2). Never serialized to clients.
	CorrectIndex int `gorm:"not null" json:"-"`
}

func (q *TrainingQuestion) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

// TrainingProgress is server-persisted per user per module, so completion
// survives devices and sessions.
type TrainingProgress struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_progress_user_module" json:"user_id"`
	TrainingModuleID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_progress_user_module" json:"module_id"`
	Completed        bool      `gorm:"default:false" json:"completed"`
	Score            int       `json:"score"`
	CompletedAt      time.Time `json:"completed_at"`
}

func (p *TrainingProgress) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
