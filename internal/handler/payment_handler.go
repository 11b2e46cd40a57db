package handler

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"voya/config"
	"voya/internal/domain"
	"voya/internal/middleware"
	"voya/internal/models"
	"voya/pkg/payment"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	cfg      *config.Config
	intents  PaymentIntentStore
	provider payment.Provider
}

func NewPaymentHandler(cfg *config.Config, intents PaymentIntentStore, provider payment.Provider) *PaymentHandler {
	return &PaymentHandler{cfg: cfg, intents: intents, provider: provider}
}

type initiateRequest struct {
	PlanType       domain.PlanType `json:"planType"`
	AutoRenew      bool            `json:"autoRenew"`
	SuccessURL     string          `json:"successUrl"`
	CancelURL      string          `json:"cancelUrl"`
	IdempotencyKey string          `json:"idempotencyKey"`
}

// Initiate creates a Ziina payment intent for one of the fixed subscription
// plans and stores it as pending until the webhook settles it. All failures
// answer 400 with {"error": message}.
func (h *PaymentHandler) Initiate(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req initiateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	amount, ok := req.PlanType.AmountFils()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid plan type: %s", req.PlanType)})
		return
	}
	if h.cfg.Ziina.AccessToken == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ziina not configured. Please configure ZIINA_ACCESS_TOKEN environment variable."})
		return
	}
	// Replays with the same idempotency key return the stored intent instead
	// of opening a second one with Ziina. Keys are scoped per user; another
	// caller reusing the key gets a fresh intent, not this one.
	if req.IdempotencyKey != "" {
		if existing, err := h.intents.GetByUserAndIdempotencyKey(userID, req.IdempotencyKey); err == nil && existing != nil {
			c.JSON(http.StatusOK, gin.H{
				"redirectUrl":     existing.RedirectURL,
				"paymentIntentId": existing.ID,
			})
			return
		}
	}
	intent, err := h.provider.CreateIntent(c.Request.Context(), payment.IntentRequest{
		Amount:      amount,
		Currency:    domain.Currency,
		Description: fmt.Sprintf("Voya %s subscription", req.PlanType),
		Metadata: map[string]string{
			"user_id":    userID,
			"plan_type":  string(req.PlanType),
			"auto_renew": strconv.FormatBool(req.AutoRenew),
		},
		SuccessURL: req.SuccessURL,
		CancelURL:  req.CancelURL,
	})
	if err != nil {
		log.Printf("[ZIINA] create intent for user %s failed: %v", userID, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Payment processing temporarily unavailable. Please try again."})
		return
	}
	pi := &models.PaymentIntent{
		ID:                   intent.ID,
		UserID:               userID,
		PlanType:             req.PlanType,
		AutoRenew:            req.AutoRenew,
		Amount:               amount,
		Status:               domain.IntentPending,
		ZiinaPaymentIntentID: intent.ID,
		RedirectURL:          intent.RedirectURL,
	}
	if req.IdempotencyKey != "" {
		pi.IdempotencyKey = &req.IdempotencyKey
	}
	if err := h.intents.Create(pi); err != nil {
		// Ziina already accepted the intent; the caller can still pay, but
		// the webhook will have no row to settle.
		log.Printf("[ZIINA] persist intent %s failed: %v", intent.ID, err)
	}
	c.JSON(http.StatusOK, gin.H{
		"redirectUrl":     intent.RedirectURL,
		"paymentIntentId": intent.ID,
	})
}
