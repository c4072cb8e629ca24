package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AudienceAll         = "all"
	AudienceResidents   = "residents"
	AudienceCollectors  = "collectors"
	AudienceAuthorities = "authorities"
)

// Broadcast is an append-only announcement from an authority.
type Broadcast struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AuthorityID    uuid.UUID `gorm:"type:uuid;not null;index" json:"authority_id"`
	Authority      *User     `gorm:"foreignKey:AuthorityID" json:"authority,omitempty"`
	Message        string    `gorm:"type:text;not null" json:"message"`
	TargetAudience string    `gorm:"size:20;not null" json:"target_audience"`
	SentAt         time.Time `gorm:"autoCreateTime" json:"sent_at"`
}

func (b *Broadcast) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// Chat is one append-only message, either private (ReceiverID set) or group
// (Group set). Ordering is insertion order only.
type Chat struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	SenderID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"sender_id"`
	Sender     *User      `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	ReceiverID *uuid.UUID `gorm:"type:uuid;index" json:"receiver_id,omitempty"`
	Receiver   *User      `gorm:"foreignKey:ReceiverID" json:"receiver,omitempty"`
	Group      string     `gorm:"size:50;index" json:"group,omitempty"`
	Message    string     `gorm:"type:text;not null" json:"message"`
	SentAt     time.Time  `gorm:"autoCreateTime" json:"sent_at"`
}

func (c *Chat) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
