package models

import (
	"time"

	"voya/internal/domain"
)

// PaymentIntent is one purchase attempt. The primary key is the id Ziina
// assigned when the intent was created; the row stays pending until the
// webhook reports a terminal state.
type PaymentIntent struct {
	ID                   string              `gorm:"primaryKey;size:255" json:"id"`
	UserID               string              `gorm:"size:36;not null;index;uniqueIndex:idx_payment_intents_user_key" json:"user_id"`
	PlanType             domain.PlanType     `gorm:"size:20;not null" json:"plan_type"`
	AutoRenew            bool                `json:"auto_renew"`
	Amount               int64               `gorm:"not null" json:"amount"` // fils
	Status               domain.IntentStatus `gorm:"size:20;not null;index" json:"status"`
	ZiinaPaymentIntentID string              `gorm:"size:255;uniqueIndex" json:"ziina_payment_intent_id"`
	RedirectURL          string              `gorm:"size:512" json:"redirect_url"`
	IdempotencyKey       *string             `gorm:"size:255;uniqueIndex:idx_payment_intents_user_key" json:"-"`
	CreatedAt            time.Time           `json:"created_at"`
	UpdatedAt            time.Time           `json:"updated_at"`
}

func (PaymentIntent) TableName() string {
	return "payment_intents"
}
