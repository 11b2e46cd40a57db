package domain

import "time"

// Currency is the only currency the service charges in. Ziina amounts are
// expressed in fils, the minor unit of AED.
const Currency = "AED"

type PlanType string

const (
	PlanMonthly    PlanType = "monthly"
	PlanSemiannual PlanType = "semiannual"
	PlanAnnual     PlanType = "annual"
)

// AmountFils returns the fixed charge for a plan in fils. The second return
// is false for anything outside the three sold plans.
func (p PlanType) AmountFils() (int64, bool) {
	switch p {
	case PlanMonthly:
		return 299, true // 2.99 AED
	case PlanSemiannual:
		return 999, true // 9.99 AED
	case PlanAnnual:
		return 1999, true // 19.99 AED
	default:
		return 0, false
	}
}

// Period returns the subscription length granted by a successful payment.
// Plans are validated at intent creation, but a stored row may have drifted,
// so unknown values fall back to the monthly period instead of erroring.
func (p PlanType) Period() time.Duration {
	switch p {
	case PlanSemiannual:
		return 180 * 24 * time.Hour
	case PlanAnnual:
		return 365 * 24 * time.Hour
	case PlanMonthly:
		return 30 * 24 * time.Hour
	default:
		return 30 * 24 * time.Hour
	}
}

type IntentStatus string

const (
	IntentPending   IntentStatus = "pending"
	IntentSucceeded IntentStatus = "succeeded"
	IntentFailed    IntentStatus = "failed"
)

type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionInactive SubscriptionStatus = "inactive"
)

// Ziina webhook event types the reconciler acts on. Anything else is
// acknowledged and ignored.
const (
	EventPaymentIntentSucceeded = "payment_intent.succeeded"
	EventPaymentIntentFailed    = "payment_intent.failed"
)
