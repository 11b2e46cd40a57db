package handler

import (
	"errors"

	"voya/internal/domain"
	"voya/internal/models"
)

var errNotFound = errors.New("record not found")

type statusUpdate struct {
	id     string
	status domain.IntentStatus
}

type fakeIntentStore struct {
	byZiinaID map[string]*models.PaymentIntent
	byUserKey map[string]*models.PaymentIntent
	created   []*models.PaymentIntent
	settled   []statusUpdate
	createErr error
	settleErr error
}

func newFakeIntentStore() *fakeIntentStore {
	return &fakeIntentStore{
		byZiinaID: make(map[string]*models.PaymentIntent),
		byUserKey: make(map[string]*models.PaymentIntent),
	}
}

func userKey(userID, key string) string {
	return userID + "\x00" + key
}

func (f *fakeIntentStore) Create(pi *models.PaymentIntent) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, pi)
	f.byZiinaID[pi.ZiinaPaymentIntentID] = pi
	if pi.IdempotencyKey != nil {
		f.byUserKey[userKey(pi.UserID, *pi.IdempotencyKey)] = pi
	}
	return nil
}

func (f *fakeIntentStore) GetByZiinaID(ziinaID string) (*models.PaymentIntent, error) {
	pi, ok := f.byZiinaID[ziinaID]
	if !ok {
		return nil, errNotFound
	}
	return pi, nil
}

func (f *fakeIntentStore) GetByUserAndIdempotencyKey(userID, key string) (*models.PaymentIntent, error) {
	pi, ok := f.byUserKey[userKey(userID, key)]
	if !ok {
		return nil, errNotFound
	}
	return pi, nil
}

// Settle mirrors the repository's guarded update: only pending rows move to
// a terminal status, settled rows stay put without error.
func (f *fakeIntentStore) Settle(id string, status domain.IntentStatus) error {
	if f.settleErr != nil {
		return f.settleErr
	}
	for _, pi := range f.byZiinaID {
		if pi.ID == id && pi.Status == domain.IntentPending {
			pi.Status = status
			f.settled = append(f.settled, statusUpdate{id: id, status: status})
		}
	}
	return nil
}

func (f *fakeIntentStore) SettleByZiinaID(ziinaID string, status domain.IntentStatus) error {
	if f.settleErr != nil {
		return f.settleErr
	}
	if pi, ok := f.byZiinaID[ziinaID]; ok && pi.Status == domain.IntentPending {
		pi.Status = status
		f.settled = append(f.settled, statusUpdate{id: ziinaID, status: status})
	}
	return nil
}

func (f *fakeIntentStore) ListByUser(userID string) ([]models.PaymentIntent, error) {
	var out []models.PaymentIntent
	for _, pi := range f.byZiinaID {
		if pi.UserID == userID {
			out = append(out, *pi)
		}
	}
	return out, nil
}

type fakeSubStore struct {
	upserts   []*models.Subscription
	byUser    map[string]*models.Subscription
	upsertErr error
}

func newFakeSubStore() *fakeSubStore {
	return &fakeSubStore{byUser: make(map[string]*models.Subscription)}
}

func (f *fakeSubStore) Upsert(sub *models.Subscription) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserts = append(f.upserts, sub)
	f.byUser[sub.UserID] = sub
	return nil
}

func (f *fakeSubStore) GetByUserID(userID string) (*models.Subscription, error) {
	sub, ok := f.byUser[userID]
	if !ok {
		return nil, errNotFound
	}
	return sub, nil
}
