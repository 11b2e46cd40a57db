package router

import (
	"time"

	"voya/config"
	"voya/internal/handler"
	"voya/internal/middleware"
	"voya/internal/repository"
	"voya/pkg/payment"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.RateLimit(middleware.NewInMemoryRateLimiter(100, 60*time.Second)))

	intentRepo := repository.NewPaymentIntentRepository(db)
	subRepo := repository.NewSubscriptionRepository(db)
	provider := payment.NewZiinaProvider(cfg.Ziina.BaseURL, cfg.Ziina.AccessToken)

	paymentHandler := handler.NewPaymentHandler(cfg, intentRepo, provider)
	webhookHandler := handler.NewZiinaWebhookHandler(cfg, intentRepo, subRepo)
	meHandler := handler.NewMeHandler(intentRepo, subRepo)

	authMw := middleware.AuthRequired(&cfg.Identity)

	api := r.Group("/api/v1")
	{
		api.POST("/payments/ziina/initiate", authMw, paymentHandler.Initiate)
		api.POST("/webhooks/ziina", webhookHandler.Handle)

		me := api.Group("/me")
		me.Use(authMw)
		{
			me.GET("/subscription", meHandler.GetSubscription)
			me.GET("/payments", meHandler.ListPayments)
		}
	}
	return r
}
