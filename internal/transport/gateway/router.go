package gateway

import (
	"net/http"
	"wellness-service/internal/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter sets up all HTTP routes
func NewRouter(handler *Handler, identity *Identity, limiter *RateLimiter, cfg *config.HTTPConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", userIDHeader)
	if len(cfg.AllowedOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsConfig))

	if limiter != nil {
		r.Use(limiter.Middleware())
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	if cfg.Swagger {
		r.GET("/swagger/*any", gin.WrapH(httpSwagger.WrapHandler))
	}

	api := r.Group("/api/v1", identity.Middleware())

	api.POST("/mood", handler.CreateMoodEntry)
	api.GET("/mood", handler.ListMoodEntries)
	api.PATCH("/mood/:id", handler.UpdateMoodEntry)

	intakeGroup(api.Group("/medications"), handler.medications())
	intakeGroup(api.Group("/supplements"), handler.supplements())

	habits := api.Group("/habits")
	habits.POST("", handler.CreateHabit)
	habits.GET("", handler.ListHabits)
	habits.GET("/logs", handler.ListHabitLogs)
	habits.PATCH("/:id", handler.UpdateHabit)
	habits.POST("/:id/logs", handler.LogHabit)

	api.POST("/reminders", handler.CreateReminder)
	api.GET("/reminders", handler.ListReminders)
	api.PATCH("/reminders/:id", handler.UpdateReminder)

	analytics := api.Group("/analytics")
	analytics.GET("/mood", handler.MoodAnalytics)
	analytics.GET("/habits", handler.HabitAnalytics)
	analytics.GET("/medications", handler.MedicationAdherence)
	analytics.GET("/supplements", handler.SupplementAdherence)
	analytics.GET("/overview", handler.Overview)

	api.GET("/export", handler.Export)
	api.GET("/notifications", handler.ListNotifications)

	return r
}

func intakeGroup(g *gin.RouterGroup, routes *intakeRoutes) {
	g.POST("", routes.Create)
	g.GET("", routes.List)
	g.GET("/logs", routes.ListLogs)
	g.PATCH("/:id", routes.Update)
	g.POST("/:id/logs", routes.Log)
}
