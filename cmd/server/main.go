package main

import (
	"time"

	"github.com/yNatanzinn/SalesTrackPro/config"
	"github.com/yNatanzinn/SalesTrackPro/internal/handler"
	"github.com/yNatanzinn/SalesTrackPro/internal/models"
	"github.com/yNatanzinn/SalesTrackPro/internal/session"
	"github.com/yNatanzinn/SalesTrackPro/internal/store"
	"github.com/yNatanzinn/SalesTrackPro/pkg/database"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

func main() {
	// 1. Load Configuration
	config.LoadConfig()

	// 2. Connect to Database
	database.Connect()

	// 3. Auto-Migrate Models
	log.Info().Msg("Running migrations...")
	err := database.DB.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Customer{},
		&models.Sale{},
		&models.SaleItem{},
		&models.Payment{},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Migration failed")
	}
	log.Info().Msg("Migrations completed")

	// 3a. Seed Data
	database.SeedAdminUser()

	// 4. Session Store
	sessionTTL := time.Duration(config.AppConfig.Session.TTLHours) * time.Hour
	var sessions session.Store
	if addr := config.AppConfig.Session.RedisAddr; addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: config.AppConfig.Session.RedisPassword,
		})
		sessions = session.NewRedisStore(client, sessionTTL)
		log.Info().Str("addr", addr).Msg("Using Redis session store")
	} else {
		sessions = session.NewMemoryStore(sessionTTL)
		log.Info().Msg("Using in-memory session store")
	}

	// 5. Initialize Router
	r := gin.Default()

	// CORS Configuration (credentialed: the session cookie must cross
	// the dev origin)
	r.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 6. Setup Routes
	handler.Register(r, store.New(database.DB), sessions, sessionTTL)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// 7. Start Server
	port := config.AppConfig.Server.Port
	log.Info().Str("port", port).Msg("Server starting")
	if err := r.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("Failed to run server")
	}
}
