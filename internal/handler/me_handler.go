package handler

import (
	"net/http"

	"voya/internal/middleware"

	"github.com/gin-gonic/gin"
)

type MeHandler struct {
	intents PaymentIntentStore
	subs    SubscriptionStore
}

func NewMeHandler(intents PaymentIntentStore, subs SubscriptionStore) *MeHandler {
	return &MeHandler{intents: intents, subs: subs}
}

// GetSubscription returns the caller's current subscription, if any.
func (h *MeHandler) GetSubscription(c *gin.Context) {
	sub, err := h.subs.GetByUserID(middleware.GetUserID(c))
	if err != nil || sub == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no subscription"})
		return
	}
	c.JSON(http.StatusOK, sub)
}

// ListPayments returns the caller's payment intents, newest first.
func (h *MeHandler) ListPayments(c *gin.Context) {
	intents, err := h.intents.ListByUser(middleware.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load payments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": intents})
}
