package models

import (
	"time"

	"voya/internal/domain"
)

// Subscription is the user's current entitlement. One row per user; a later
// successful payment overwrites the period wholesale, no history is kept.
type Subscription struct {
	UserID             string                    `gorm:"primaryKey;size:36" json:"user_id"`
	PlanType           domain.PlanType           `gorm:"size:20;not null" json:"plan_type"`
	Status             domain.SubscriptionStatus `gorm:"size:20;not null" json:"status"`
	CurrentPeriodStart time.Time                 `json:"current_period_start"`
	CurrentPeriodEnd   time.Time                 `json:"current_period_end"`
	CreatedAt          time.Time                 `json:"created_at"`
	UpdatedAt          time.Time                 `json:"updated_at"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
