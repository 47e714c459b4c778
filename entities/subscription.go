package entities

import (
	"github.com/google/uuid"
	"time"
)

type Subscription struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name        string    `gorm:"not null;uniqueIndex" json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `gorm:"not null" json:"price"`
	IsActive    bool      `gorm:"not null" json:"is_active"`

	Timestamp
}

func (Subscription) TableName() string {
	return "subscriptions"
}

// UserSubscription links a user to a plan for a start date. A row is the
// active one when Status is active and CloseDate is nil.
type UserSubscription struct {
	UserID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"user_id"`
	SubscriptionID uuid.UUID  `gorm:"type:uuid;primaryKey" json:"subscription_id"`
	StartDate      time.Time  `gorm:"type:date;primaryKey" json:"start_date"`
	Status         string     `gorm:"not null" json:"status"`
	CloseDate      *time.Time `gorm:"type:date" json:"close_date,omitempty"`

	User         *User         `gorm:"foreignKey:UserID" json:"-"`
	Subscription *Subscription `gorm:"foreignKey:SubscriptionID" json:"subscription,omitempty"`
}

func (UserSubscription) TableName() string {
	return "user_subscriptions"
}
