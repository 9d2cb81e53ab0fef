package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/dailyquiz/internal/config"
	"github.com/example/dailyquiz/internal/handlers"
	"github.com/example/dailyquiz/internal/middleware"
	"github.com/example/dailyquiz/internal/models"
	"github.com/example/dailyquiz/internal/services"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config, loc *time.Location) {
	whatsappService := services.NewWhatsAppService(cfg.WhatsAppBaseURL, cfg.WhatsAppInstanceID, cfg.WhatsAppAccessToken)
	scoringService := services.NewScoringService(db)
	answerService := services.NewAnswerService(db, scoringService)

	authHandler := handlers.NewAuthHandler(db, cfg, whatsappService)
	profileHandler := handlers.NewProfileHandler(db)
	dailyHandler := handlers.NewDailyHandler(db, cfg, loc)
	answerHandler := handlers.NewAnswerHandler(answerService)
	adminHandler := handlers.NewAdminHandler(db)
	leaderboardHandler := handlers.NewLeaderboardHandler(db, cfg.LeaderboardLimit)
	healthHandler := handlers.NewHealthHandler(whatsappService)

	api := app.Group("/api")

	api.Get("/health", healthHandler.Health)
	api.Get("/health/whatsapp", healthHandler.WhatsApp)

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/phone/send-otp", authHandler.SendOTP)
	auth.Post("/phone/verify", authHandler.VerifyOTP)

	// Today summary is public; the streak inside it only appears for
	// callers presenting a valid session token.
	api.Get("/today", dailyHandler.Today)

	// Protected routes
	protected := api.Group("", middleware.AuthMiddleware(cfg))

	protected.Post("/answer", answerHandler.Submit)

	protected.Get("/profile", profileHandler.GetProfile)
	protected.Post("/profile", profileHandler.UpdateProfile)

	protected.Get("/leaderboard",
		middleware.RequireRole(db, models.RoleAdmin, models.RoleModerator),
		leaderboardHandler.List)

	admin := protected.Group("/admin", middleware.RequireRole(db, models.RoleAdmin))
	admin.Get("/questions", adminHandler.ListQuestions)
	admin.Post("/questions", adminHandler.CreateQuestion)
}
