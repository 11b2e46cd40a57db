package payment

import "context"

// IntentRequest is everything the processor needs to open a hosted payment
// page for one purchase attempt.
type IntentRequest struct {
	Amount      int64 // minor currency units (fils)
	Currency    string
	Description string
	Metadata    map[string]string
	SuccessURL  string
	CancelURL   string
}

// Intent is the processor's view of a created payment intent.
type Intent struct {
	ID          string
	Status      string
	RedirectURL string
}

type Provider interface {
	CreateIntent(ctx context.Context, req IntentRequest) (*Intent, error)
}
