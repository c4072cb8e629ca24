package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tip is an immutable record of a resident tipping a collector. There is no
// wallet or ledger; tips exist only for the earnings/analytics views.
type Tip struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	FromResidentID uuid.UUID  `gorm:"type:uuid;not null;index" json:"from_resident_id"`
	FromResident   *User      `gorm:"foreignKey:FromResidentID" json:"from_resident,omitempty"`
	ToCollectorID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"to_collector_id"`
	HouseID        *uuid.UUID `gorm:"type:uuid" json:"house_id,omitempty"`
	Amount         int        `gorm:"not null" json:"amount"`
	Message        string     `gorm:"type:text" json:"message,omitempty"`
	SentAt         time.Time  `gorm:"autoCreateTime" json:"sent_at"`
}

func (t *Tip) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// Feedback is an immutable 1-5 star rating a resident gave a collector.
type Feedback struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ResidentID  uuid.UUID `gorm:"type:uuid;not null;index" json:"resident_id"`
	Resident    *User     `gorm:"foreignKey:ResidentID" json:"resident,omitempty"`
	CollectorID uuid.UUID `gorm:"type:uuid;not null;index" json:"collector_id"`
	Rating      int       `gorm:"not null" json:"rating"`
	Comment     string    `gorm:"type:text" json:"comment,omitempty"`
	SubmittedAt time.Time `gorm:"autoCreateTime" json:"submitted_at"`
}

func (f *Feedback) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
