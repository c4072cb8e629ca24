package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DistributeStatusPending  = "pending"
	DistributeStatusAccepted = "accepted"
	DistributeStatusIgnored  = "ignored"
)

// DistributeRequest is a resident's request for a collector to pick up
// reusable items (clothes, electronics, etc.), separate from waste collection.
type DistributeRequest struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ResidentID  uuid.UUID `gorm:"type:uuid;not null;index" json:"resident_id"`
	ItemType    string    `gorm:"size:50;not null" json:"item_type"`
	Status      string    `gorm:"size:20;default:pending;index" json:"status"`
	RequestedAt time.Time `gorm:"autoCreateTime" json:"requested_at"`
}

func (d *DistributeRequest) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
