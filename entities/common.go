package entities

import "time"

type Timestamp struct {
	CreatedAt time.Time `gorm:"type:timestamp with time zone;not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp with time zone;not null" json:"updated_at"`
}

const (
	SubscriptionActive = "active"
	SubscriptionClosed = "closed"
)
