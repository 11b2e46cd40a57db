package payment

import (
	"context"

	"github.com/google/uuid"
)

// StubProvider accepts every intent without any network call. It exists for
// tests; the server always wires the real Ziina client and reports a missing
// access token instead of falling back here.
type StubProvider struct{}

func (s *StubProvider) CreateIntent(ctx context.Context, req IntentRequest) (*Intent, error) {
	id := "pi_stub_" + uuid.New().String()
	return &Intent{
		ID:          id,
		Status:      "requires_payment_instrument",
		RedirectURL: "https://pay.ziina.com/payment_intent/" + id,
	}, nil
}
