package routes

import (
	"knowledge-saas-backend/internal/api/handlers"
	"knowledge-saas-backend/internal/api/middleware"
	"knowledge-saas-backend/internal/auth"
	"knowledge-saas-backend/internal/config"
	"knowledge-saas-backend/internal/database/models"
	"knowledge-saas-backend/internal/repository"
	"knowledge-saas-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	validator := validator.New()

	// Repositories
	organizationRepo := repository.NewOrganizationRepository(db)
	userRepo := repository.NewUserRepository(db)
	articleRepo := repository.NewArticleRepository(db)

	// Services
	aiService := service.NewAIService(cfg)
	articleService := service.NewArticleService(articleRepo, aiService, validator)
	authService := auth.NewAuthService(userRepo, organizationRepo, cfg.JWTSecret)

	// Handlers and middleware
	authHandler := auth.NewAuthHandler(authService, validator)
	authMiddleware := auth.NewAuthMiddleware(authService)
	articleHandler := handlers.NewArticleHandler(articleService)
	healthHandler := handlers.NewHealthHandler(db)

	// Probes stay unauthenticated; /health itself is a protected route
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)
	router.GET("/health", authMiddleware.RequireAuth(), healthHandler.Health)

	// Auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/validate", authHandler.ValidateToken)
	}

	// Article routes - all require authentication
	articles := router.Group("/api/articles")
	articles.Use(authMiddleware.RequireAuth())
	{
		articles.POST("", authMiddleware.RequireRoles(models.RoleAdmin, models.RoleEditor), articleHandler.CreateArticle)
		articles.POST("/:id/summarize", authMiddleware.RequireRoles(models.RoleAdmin, models.RoleEditor), articleHandler.SummarizeArticle)
		articles.GET("", articleHandler.ListArticles)
		articles.GET("/:id", articleHandler.GetArticle)
		articles.PUT("/:id", authMiddleware.RequireRoles(models.RoleAdmin, models.RoleEditor), articleHandler.UpdateArticle)
		articles.DELETE("/:id", authMiddleware.RequireRoles(models.RoleAdmin), articleHandler.DeleteArticle)
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"success":    false,
			"message":    "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}
