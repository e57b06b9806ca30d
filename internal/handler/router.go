package handler

import (
	"time"

	"github.com/yNatanzinn/SalesTrackPro/internal/middleware"
	"github.com/yNatanzinn/SalesTrackPro/internal/session"
	"github.com/yNatanzinn/SalesTrackPro/internal/store"

	"github.com/gin-gonic/gin"
)

// Register wires every API route onto the engine. All routes below
// /api except the auth endpoints require a valid session cookie.
func Register(r *gin.Engine, st *store.Store, sessions session.Store, sessionTTL time.Duration) {
	authHandler := &AuthHandler{Store: st, Sessions: sessions, TTL: sessionTTL}
	productHandler := &ProductHandler{Store: st}
	customerHandler := &CustomerHandler{Store: st}
	saleHandler := &SaleHandler{Store: st}
	paymentHandler := &PaymentHandler{Store: st}
	analyticsHandler := &AnalyticsHandler{Store: st}

	r.POST("/api/register", authHandler.Register)
	r.POST("/api/login", authHandler.Login)
	r.POST("/api/logout", authHandler.Logout)

	api := r.Group("/api")
	api.Use(middleware.Auth(sessions))
	{
		api.GET("/user", authHandler.CurrentUser)

		api.GET("/products", productHandler.List)
		api.POST("/products", productHandler.Create)
		api.PUT("/products/:id", productHandler.Update)
		api.DELETE("/products/:id", productHandler.Delete)

		api.GET("/customers", customerHandler.List)
		api.GET("/customers/search", customerHandler.Search)
		api.POST("/customers", customerHandler.Create)

		api.GET("/sales", saleHandler.List)
		api.GET("/sales/pending", saleHandler.ListPending)
		api.POST("/sales", saleHandler.Create)
		api.PUT("/sales/:id/status", saleHandler.UpdateStatus)
		api.DELETE("/sales/:id", saleHandler.Delete)

		api.POST("/payments", paymentHandler.Create)

		api.GET("/analytics/stats", analyticsHandler.Stats)
	}
}
