package repository

import (
	"voya/internal/domain"
	"voya/internal/models"

	"gorm.io/gorm"
)

type PaymentIntentRepository struct {
	db *gorm.DB
}

func NewPaymentIntentRepository(db *gorm.DB) *PaymentIntentRepository {
	return &PaymentIntentRepository{db: db}
}

func (r *PaymentIntentRepository) Create(pi *models.PaymentIntent) error {
	return r.db.Create(pi).Error
}

func (r *PaymentIntentRepository) GetByID(id string) (*models.PaymentIntent, error) {
	var pi models.PaymentIntent
	err := r.db.Where("id = ?", id).First(&pi).Error
	if err != nil {
		return nil, err
	}
	return &pi, nil
}

func (r *PaymentIntentRepository) GetByZiinaID(ziinaID string) (*models.PaymentIntent, error) {
	var pi models.PaymentIntent
	err := r.db.Where("ziina_payment_intent_id = ?", ziinaID).First(&pi).Error
	if err != nil {
		return nil, err
	}
	return &pi, nil
}

func (r *PaymentIntentRepository) GetByUserAndIdempotencyKey(userID, key string) (*models.PaymentIntent, error) {
	var pi models.PaymentIntent
	err := r.db.Where("user_id = ? AND idempotency_key = ?", userID, key).First(&pi).Error
	if err != nil {
		return nil, err
	}
	return &pi, nil
}

// Settle moves a pending intent to a terminal status. Status is monotonic:
// a row already settled is left untouched, so a late failed event cannot
// reverse a succeeded one. Settling an already-settled row is not an error.
func (r *PaymentIntentRepository) Settle(id string, status domain.IntentStatus) error {
	return r.db.Model(&models.PaymentIntent{}).
		Where("id = ?", id).
		Where("status = ?", domain.IntentPending).
		Update("status", status).Error
}

func (r *PaymentIntentRepository) SettleByZiinaID(ziinaID string, status domain.IntentStatus) error {
	return r.db.Model(&models.PaymentIntent{}).
		Where("ziina_payment_intent_id = ?", ziinaID).
		Where("status = ?", domain.IntentPending).
		Update("status", status).Error
}

func (r *PaymentIntentRepository) ListByUser(userID string) ([]models.PaymentIntent, error) {
	var intents []models.PaymentIntent
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&intents).Error
	return intents, err
}
