package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleResident  = "resident"
	RoleCollector = "collector"
	RoleAuthority = "authority"
)

type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string     `gorm:"size:100;not null" json:"name"`
	Phone        string     `gorm:"size:20;uniqueIndex;not null" json:"phone"`
	PasswordHash string     `gorm:"size:255;not null" json:"-"`
	Role         string     `gorm:"size:20;not null" json:"role"`
	HouseID      *uuid.UUID `gorm:"type:uuid" json:"house_id,omitempty"`
	House        *House     `gorm:"constraint:OnDelete:SET NULL" json:"house,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`

	ResidentProfile  *ResidentProfile  `gorm:"constraint:OnDelete:CASCADE" json:"resident_profile,omitempty"`
	CollectorProfile *CollectorProfile `gorm:"constraint:OnDelete:CASCADE" json:"collector_profile,omitempty"`
	AuthorityProfile *AuthorityProfile `gorm:"constraint:OnDelete:CASCADE" json:"authority_profile,omitempty"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// House is the dwelling record linked to exactly one resident at registration.
// Its BeaconScore is the per-house compliance counter decremented by
// segregation violations; the resident's own score lives on ResidentProfile.
type House struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	WardNumber  string    `gorm:"size:50;not null" json:"ward_number"`
	HouseNumber string    `gorm:"size:50;not null" json:"house_number"`
	HouseCode   string    `gorm:"size:100;uniqueIndex;not null" json:"house_code"`
	Address     string    `gorm:"type:text" json:"address"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	BeaconScore int       `gorm:"default:80" json:"beacon_score"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (h *House) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

type ResidentProfile struct {
	UserID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	DoorNumber  string    `gorm:"size:50" json:"door_number"`
	Address     string    `gorm:"type:text" json:"address"`
	BeaconScore int       `gorm:"default:80" json:"beacon_score"`
	IsAvailable bool      `gorm:"default:true" json:"is_available"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type CollectorProfile struct {
	UserID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	EmployeeID         string    `gorm:"size:50" json:"employee_id"`
	AreaAssigned       string    `gorm:"size:100" json:"area_assigned"`
	CollectionProgress int       `gorm:"default:0" json:"collection_progress"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type AuthorityProfile struct {
	UserID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	AuthorityName string    `gorm:"size:100" json:"authority_name"`
	EmployeeID    string    `gorm:"size:50" json:"employee_id"`
	Email         string    `gorm:"size:100" json:"email"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}
