package handler

import (
	"voya/internal/domain"
	"voya/internal/models"
)

// Store interfaces are declared here, on the consuming side, so handlers can
// be wired with the gorm repositories in production and doubles in tests.

type PaymentIntentStore interface {
	Create(pi *models.PaymentIntent) error
	GetByZiinaID(ziinaID string) (*models.PaymentIntent, error)
	GetByUserAndIdempotencyKey(userID, key string) (*models.PaymentIntent, error)
	Settle(id string, status domain.IntentStatus) error
	SettleByZiinaID(ziinaID string, status domain.IntentStatus) error
	ListByUser(userID string) ([]models.PaymentIntent, error)
}

type SubscriptionStore interface {
	Upsert(sub *models.Subscription) error
	GetByUserID(userID string) (*models.Subscription, error)
}
