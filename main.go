package main

import (
	"log"
	"net/http"

	"bahasa-indah-nusantara/config"
	"bahasa-indah-nusantara/handlers"
	"bahasa-indah-nusantara/middleware"
	"bahasa-indah-nusantara/models"
	"bahasa-indah-nusantara/repositories"
	"bahasa-indah-nusantara/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize database
	db := config.InitDB(cfg)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	izinRepo := repositories.NewIzinRepository(db)
	suspendRepo := repositories.NewSuspendRepository(db)
	tagRepo := repositories.NewTagRepository(db)
	kontenRepo := repositories.NewKontenRepository(db)
	kamusRepo := repositories.NewKamusRepository(db)

	// Initialize services
	mediaService, err := services.NewMediaService(cfg)
	if err != nil {
		log.Fatal("Failed to initialize media storage:", err)
	}
	suspendService := services.NewSuspendService(suspendRepo)
	authService := services.NewAuthService(userRepo, suspendService)
	izinService := services.NewIzinService(izinRepo)
	tagService := services.NewTagService(tagRepo)
	workflowService := services.NewWorkflowService(kontenRepo, tagService, izinService, mediaService)
	kamusService := services.NewKamusService(kamusRepo, workflowService, izinService)
	adminService := services.NewAdminService(userRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, izinService)
	tagHandler := handlers.NewTagHandler(tagService)
	adminHandler := handlers.NewAdminHandler(adminService, suspendService)
	kamusHandler := handlers.NewKamusHandler(workflowService, kamusService)
	ceritaHandler := handlers.NewCeritaHandler(workflowService)
	maknaKataHandler := handlers.NewMaknaKataHandler(workflowService)
	artikelHandler := handlers.NewArtikelHandler(workflowService)

	// Setup router
	router := gin.Default()
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check and metrics
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Privileged endpoints, gated by the service-role key
	privileged := router.Group("/")
	privileged.Use(middleware.ServiceKey(cfg.ServiceRoleKey))
	{
		privileged.GET("/admin-get-users", adminHandler.GetUsers)
		privileged.GET("/some-function", adminHandler.GetUsers)
		privileged.GET("/expire-suspensions", adminHandler.ExpireSuspensions)
		privileged.POST("/get-email-by-username", adminHandler.GetEmailByUsername)
	}

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Public routes (terbit only)
		public := v1.Group("/public")
		public.GET("/tags", tagHandler.GetTags)

		// Protected routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/profile", authHandler.GetProfile)
			protected.GET("/izin", authHandler.GetIzin)

			// Zona moderasi menyamar sebagai not-found untuk user biasa
			moderasi := protected.Group("/moderasi")
			moderasi.Use(middleware.RequireRoleNotFound(models.RoleModerator, models.RoleAdmin))

			kamusHandler.RegisterRoutes(protected, moderasi, public, "kamus")
			ceritaHandler.RegisterRoutes(protected, moderasi, public, "cerita")
			maknaKataHandler.RegisterRoutes(protected, moderasi, public, "makna-kata")
			artikelHandler.RegisterRoutes(protected, moderasi, public, "artikel")

			protected.POST("/kamus/batch", kamusHandler.CreateBatch)

			tags := protected.Group("/tags")
			{
				tags.POST("", tagHandler.CreateTag)
				tags.GET("", tagHandler.GetTags)
				tags.GET("/:id", tagHandler.GetTag)
			}
		}
	}

	log.Printf("Server starting on port %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}
