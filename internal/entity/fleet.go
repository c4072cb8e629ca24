package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Waypoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// TruckRoute is a collection truck's route for one day in one ward.
// CurrentIndex points into Path and drives the live tracker simulation.
type TruckRoute struct {
	ID           uuid.UUID                     `gorm:"type:uuid;primaryKey" json:"id"`
	Date         string                        `gorm:"size:10;not null;index" json:"date"`
	WardNumber   string                        `gorm:"size:50;not null;index" json:"ward_number"`
	CollectorID  uuid.UUID                     `gorm:"type:uuid;not null" json:"collector_id"`
	Path         datatypes.JSONSlice[Waypoint] `json:"path"`
	CurrentIndex int                           `gorm:"default:0" json:"current_index"`
	StartedAt    *time.Time                    `json:"started_at,omitempty"`
	CompletedAt  *time.Time                    `json:"completed_at,omitempty"`
	CreatedAt    time.Time                     `gorm:"autoCreateTime" json:"created_at"`
}

func (r *TruckRoute) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceHalfDay = "half-day"
)

// Attendance is one collector work day; at most one row per collector per date.
type Attendance struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	CollectorID  uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_attendance_collector_date" json:"collector_id"`
	Date         string     `gorm:"size:10;not null;uniqueIndex:idx_attendance_collector_date" json:"date"`
	CheckInTime  *time.Time `json:"check_in_time,omitempty"`
	CheckOutTime *time.Time `json:"check_out_time,omitempty"`
	Status       string     `gorm:"size:20;not null;default:present" json:"status"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (a *Attendance) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
