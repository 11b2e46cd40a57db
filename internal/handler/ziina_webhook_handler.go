package handler

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"voya/config"
	"voya/internal/domain"
	"voya/internal/models"

	"github.com/gin-gonic/gin"
)

type ZiinaWebhookHandler struct {
	cfg     *config.Config
	intents PaymentIntentStore
	subs    SubscriptionStore
}

func NewZiinaWebhookHandler(cfg *config.Config, intents PaymentIntentStore, subs SubscriptionStore) *ZiinaWebhookHandler {
	return &ZiinaWebhookHandler{cfg: cfg, intents: intents, subs: subs}
}

type ziinaEvent struct {
	Type string `json:"type"`
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

// Handle processes Ziina webhook events. Once the request parses and carries
// a signature, the response is always 200 {"received": true}; store errors
// past that point are logged so Ziina does not retry-storm an event whose
// side effects already partially applied.
func (h *ZiinaWebhookHandler) Handle(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.String(http.StatusBadRequest, "Webhook error: invalid body")
		return
	}
	sig := c.GetHeader("ziina-signature")
	if sig == "" {
		c.String(http.StatusBadRequest, "Webhook error: missing signature")
		return
	}
	if h.cfg.Ziina.WebhookSecret != "" && !h.verifySignature(body, sig) {
		c.String(http.StatusBadRequest, "Webhook error: invalid signature")
		return
	}
	var event ziinaEvent
	if err := json.Unmarshal(body, &event); err != nil {
		c.String(http.StatusBadRequest, "Webhook error: invalid json")
		return
	}
	switch event.Type {
	case domain.EventPaymentIntentSucceeded:
		h.handleSucceeded(event.Data.ID)
	case domain.EventPaymentIntentFailed:
		h.handleFailed(event.Data.ID)
	default:
		// not a payment event we track
	}
	c.JSON(http.StatusOK, gin.H{"received": true})
}

// handleSucceeded activates the paying user's subscription for the period the
// plan grants, then settles the intent row. A missing row is a no-op: the
// intent may predate this store or belong to another environment.
func (h *ZiinaWebhookHandler) handleSucceeded(ziinaID string) {
	pi, err := h.intents.GetByZiinaID(ziinaID)
	if err != nil || pi == nil {
		log.Printf("[ZIINA webhook] payment intent not found: %s", ziinaID)
		return
	}
	// Status is monotonic. A redelivered succeeded event recomputes the
	// period, but a succeeded event for an intent that already failed is
	// dropped rather than activating a subscription the failed row
	// contradicts.
	if pi.Status == domain.IntentFailed {
		log.Printf("[ZIINA webhook] ignoring succeeded event for failed intent %s", pi.ID)
		return
	}
	now := time.Now()
	sub := &models.Subscription{
		UserID:             pi.UserID,
		PlanType:           pi.PlanType,
		Status:             domain.SubscriptionActive,
		CurrentPeriodStart: now,
		CurrentPeriodEnd:   now.Add(pi.PlanType.Period()),
	}
	if err := h.subs.Upsert(sub); err != nil {
		log.Printf("[ZIINA webhook] subscription upsert for user %s failed: %v", pi.UserID, err)
	}
	if err := h.intents.Settle(pi.ID, domain.IntentSucceeded); err != nil {
		log.Printf("[ZIINA webhook] mark intent %s succeeded failed: %v", pi.ID, err)
	}
}

func (h *ZiinaWebhookHandler) handleFailed(ziinaID string) {
	if err := h.intents.SettleByZiinaID(ziinaID, domain.IntentFailed); err != nil {
		log.Printf("[ZIINA webhook] mark intent %s failed failed: %v", ziinaID, err)
	}
}

func (h *ZiinaWebhookHandler) verifySignature(body []byte, signature string) bool {
	mac := hmac.New(sha256.New, []byte(h.cfg.Ziina.WebhookSecret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(signature), []byte(expected))
}
