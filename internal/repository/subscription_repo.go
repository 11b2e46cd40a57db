package repository

import (
	"voya/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// Upsert writes the subscription keyed on user_id, overwriting any prior
// period. The store's ON CONFLICT is the only mutual exclusion between
// concurrent webhook deliveries for the same user.
func (r *SubscriptionRepository) Upsert(sub *models.Subscription) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"plan_type", "status", "current_period_start", "current_period_end", "updated_at"}),
	}).Create(sub).Error
}

func (r *SubscriptionRepository) GetByUserID(userID string) (*models.Subscription, error) {
	var sub models.Subscription
	err := r.db.Where("user_id = ?", userID).First(&sub).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}
