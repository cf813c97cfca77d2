package main

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/halcyon-app/halcyon/backend/internal/config"
	"github.com/halcyon-app/halcyon/backend/internal/handlers"
	"github.com/halcyon-app/halcyon/backend/internal/llm"
	"github.com/halcyon-app/halcyon/backend/internal/logger"
	"github.com/halcyon-app/halcyon/backend/internal/middleware"
	"github.com/halcyon-app/halcyon/backend/internal/repository"
	"github.com/halcyon-app/halcyon/backend/internal/service"
	"github.com/halcyon-app/halcyon/backend/pkg/supabase"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for requests.`,
	RunE:  runServe,
}

var (
	port string
)

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Override port from flag if provided
	if port != "" {
		cfg.Server.Port = port
	}

	// Configure structured logging
	logCfg := logger.DefaultConfig()
	if cfg.Server.Env == "production" {
		logCfg.Format = "json"
	}
	logger.SetDefault(logger.NewSlogLogger(logCfg))
	log := logger.Default()

	log.Info("starting halcyon API server",
		logger.String("env", cfg.Server.Env),
		logger.String("supabase_url", cfg.Supabase.URL),
	)

	// Initialize Supabase client
	supabaseClient := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.ServiceKey)

	// Initialize repositories
	moodRepo := repository.NewMoodEntryRepository(supabaseClient)
	journalRepo := repository.NewJournalRepository(supabaseClient)
	voiceRepo := repository.NewVoiceAnalysisRepository(supabaseClient)
	chatRepo := repository.NewChatRepository(supabaseClient)
	userRepo := repository.NewUserRepository(supabaseClient)

	// Initialize chat companion client
	var llmClient llm.Client
	if cfg.LLM.UseMock {
		log.Warn("using mock LLM client, chat replies are canned")
		llmClient = llm.NewMock()
	} else {
		llmClient, err = llm.NewGeminiClient(context.Background(), cfg.LLM.APIKey, cfg.LLM.Model)
		if err != nil {
			return fmt.Errorf("failed to initialize LLM client: %w", err)
		}
	}

	// Initialize services
	moodService := service.NewMoodService(moodRepo)
	journalService := service.NewJournalService(journalRepo)
	voiceService := service.NewVoiceService(voiceRepo)
	chatService := service.NewChatService(chatRepo, llmClient)
	analyticsService := service.NewAnalyticsService(moodRepo, journalRepo, cfg.Analytics.TrendWindowDays)
	authService := service.NewAuthService(supabaseClient, userRepo)

	// Initialize handlers
	moodHandler := handlers.NewMoodHandler(moodService)
	journalHandler := handlers.NewJournalHandler(journalService)
	voiceHandler := handlers.NewVoiceHandler(voiceService)
	chatHandler := handlers.NewChatHandler(chatService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	authHandler := handlers.NewAuthHandler(authService)

	// Set Gin mode based on environment
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())

	// Middleware
	router.Use(middleware.CORS())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.Logger())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"env":    cfg.Server.Env,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(middleware.RateLimit())
	{
		// Auth routes
		auth := v1.Group("/auth")
		auth.Use(middleware.RateLimitAuth())
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.Auth(supabaseClient), authHandler.Me)
		}

		// Protected routes
		protected := v1.Group("")
		protected.Use(middleware.Auth(supabaseClient))
		{
			// Mood routes
			protected.POST("/moods", moodHandler.CreateMood)
			protected.GET("/moods", moodHandler.GetMoods)
			protected.DELETE("/moods/:id", moodHandler.DeleteMood)

			// Journal routes
			protected.POST("/journal", journalHandler.CreateEntry)
			protected.GET("/journal", journalHandler.GetEntries)
			protected.GET("/journal/:id", journalHandler.GetEntry)
			protected.PUT("/journal/:id", journalHandler.UpdateEntry)
			protected.DELETE("/journal/:id", journalHandler.DeleteEntry)

			// Voice analysis routes
			protected.POST("/voice", voiceHandler.CreateAnalysis)
			protected.GET("/voice", voiceHandler.GetAnalyses)

			// Chat companion routes
			protected.POST("/chat/sessions", chatHandler.CreateSession)
			protected.GET("/chat/sessions", chatHandler.GetSessions)
			protected.GET("/chat/sessions/:id/messages", chatHandler.GetMessages)
			protected.POST("/chat/sessions/:id/messages", chatHandler.SendMessage)

			// Analytics routes
			protected.GET("/analytics/summary", analyticsHandler.GetSummary)
		}
	}

	log.Info("server listening", logger.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
