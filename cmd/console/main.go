package main

import (
	"flag"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ashhad25/moderateai-console/internal/api"
	"github.com/ashhad25/moderateai-console/internal/api/auth"
	"github.com/ashhad25/moderateai-console/internal/api/pages"
	"github.com/ashhad25/moderateai-console/internal/backend"
	"github.com/ashhad25/moderateai-console/internal/pkg/config"
	"github.com/ashhad25/moderateai-console/internal/pkg/logger"
	"github.com/ashhad25/moderateai-console/internal/pkg/redis"
	"github.com/ashhad25/moderateai-console/internal/session"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	zap.L().Info("Starting ModerateAI Admin Console")

	// Open the session store and restore any persisted credential before
	// the first page is served
	store, err := session.Open(cfg.Session.StorePath)
	if err != nil {
		zap.L().Fatal("Failed to open session store", zap.Error(err))
	}
	defer store.Close()

	client := backend.New(cfg.Backend.BaseURL, cfg.BackendTimeout())

	token, err := store.Credential()
	if err != nil {
		zap.L().Fatal("Failed to read stored credential", zap.Error(err))
	}
	if token != "" {
		client.SetToken(token)
		zap.L().Info("Restored admin session from store")
	}

	// Initialize Redis (optional)
	if cfg.RedisEnabled() {
		if err := redis.Init(cfg); err != nil {
			zap.L().Warn("Redis initialization failed, login limiting stays in-memory",
				zap.Error(err))
		} else {
			defer redis.Close()
		}
	}

	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Create router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.Logger())

	r.SetFuncMap(api.TemplateFuncs())
	r.LoadHTMLGlob("web/templates/*.tmpl")

	// Setup routes
	authHandler := auth.NewHandler(client, store)
	pageHandler := pages.NewHandler(authHandler, client, store)
	api.SetupRouter(r, authHandler, pageHandler)

	zap.L().Info("Console listening",
		zap.String("addr", cfg.GetConsoleAddr()),
		zap.String("backend", cfg.Backend.BaseURL))

	// Start server
	if err := r.Run(cfg.GetConsoleAddr()); err != nil {
		zap.L().Fatal("Failed to start console", zap.Error(err))
	}
}
