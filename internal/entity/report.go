package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ReportStatusPending  = "pending"
	ReportStatusAssigned = "assigned"
	ReportStatusResolved = "resolved"
)

// OverflowReport is a resident-submitted, geo-tagged notice of waste overflow
// or illegal dumping. State is overwritten on transition; reports are never
// deleted.
type OverflowReport struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	ResidentID          uuid.UUID  `gorm:"type:uuid;not null;index" json:"resident_id"`
	Resident            *User      `gorm:"foreignKey:ResidentID" json:"resident,omitempty"`
	OverflowType        string     `gorm:"size:50;not null" json:"overflow_type"`
	Lat                 float64    `gorm:"not null" json:"lat"`
	Lng                 float64    `gorm:"not null" json:"lng"`
	Address             string     `gorm:"type:text" json:"address,omitempty"`
	Remarks             string     `gorm:"type:text" json:"remarks,omitempty"`
	PhotoURL            string     `gorm:"type:text" json:"photo_url,omitempty"`
	Status              string     `gorm:"size:20;default:pending;index" json:"status"`
	AssignedCollectorID *uuid.UUID `gorm:"type:uuid;index" json:"assigned_collector_id,omitempty"`
	ReportedAt          time.Time  `gorm:"autoCreateTime" json:"reported_at"`
}

func (r *OverflowReport) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// SegregationViolation records an improper-segregation report a collector
// filed against a house. Creating one decrements the house beacon score.
type SegregationViolation struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	HouseID     uuid.UUID `gorm:"type:uuid;not null;index" json:"house_id"`
	CollectorID uuid.UUID `gorm:"type:uuid;not null" json:"collector_id"`
	Reason      string    `gorm:"type:text;not null" json:"reason"`
	ReportedAt  time.Time `gorm:"autoCreateTime" json:"reported_at"`
}

func (v *SegregationViolation) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

const (
	CollectionStatusCollected = "collected"
	CollectionStatusPending   = "pending"
	CollectionStatusReported  = "reported"
)

// CollectionRecord is one completed (or skipped) doorstep pickup.
type CollectionRecord struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	ResidentID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"resident_id"`
	CollectorID *uuid.UUID `gorm:"type:uuid" json:"collector_id,omitempty"`
	WasteType   string     `gorm:"size:50;not null" json:"waste_type"`
	Status      string     `gorm:"size:20;not null" json:"status"`
	CollectedAt time.Time  `gorm:"autoCreateTime" json:"collected_at"`
}

func (c *CollectionRecord) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
