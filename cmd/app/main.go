package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "subhub-backend/docs"
	"subhub-backend/internal/common/config"
	"subhub-backend/internal/common/logger"
	"subhub-backend/internal/common/middleware"
	credentialHTTP "subhub-backend/internal/features/credential/delivery/http"
	credentialService "subhub-backend/internal/features/credential/service"
	gatewaykeyHTTP "subhub-backend/internal/features/gatewaykey/delivery/http"
	gatewaykeyService "subhub-backend/internal/features/gatewaykey/service"
	proofHTTP "subhub-backend/internal/features/proof/delivery/http"
	proofRepo "subhub-backend/internal/features/proof/repository/redis"
	proofService "subhub-backend/internal/features/proof/service"
	redisplatform "subhub-backend/internal/platform/redis"
	"subhub-backend/internal/platform/storage"
	"subhub-backend/internal/platform/stripe"
	"subhub-backend/internal/platform/telegram"
)

// @title           SubHub Integrations API
// @version         1.0
// @description     External-integration validation and manual-payment-proof backend for the subscription dashboard. All /api/v1 endpoints require init_data authentication.

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey TelegramInitData
// @in header
// @name init_data
// @description Telegram Mini App init_data string for authentication

// @tag.name integrations
// @tag.description Validation of third-party credentials before a project goes live

// @tag.name proofs
// @tag.description Manual payment-proof upload and confirmation

func main() {
	cfg := config.Load()

	logger.Init("subhub-backend", cfg.Debug)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rdb, err := redisplatform.Open(ctx, cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// Platform clients for the two external authorities.
	telegramClient := telegram.NewClient(cfg.Telegram.APIBaseURL)
	stripeClient := stripe.NewClient(cfg.Stripe.APIBaseURL)

	// Object storage and retrieval-URL signing.
	store := storage.NewRedisStore(rdb)
	signer := storage.NewURLSigner(cfg.Server.PublicBaseURL, cfg.Proof.SigningSecret)

	credentialSvc := credentialService.NewCredentialService(telegramClient)
	gatewaykeySvc := gatewaykeyService.NewKeyService(stripeClient)
	proofSvc := proofService.NewProofService(
		store,
		signer,
		proofRepo.NewProofRecordRepository(rdb),
		time.Duration(cfg.Proof.URLTTLSec)*time.Second,
	)

	logger.Info().Msg("Services initialized")

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.Logger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.Origin}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization", "Accept", "init_data"}
	router.Use(cors.New(corsConfig))

	v1 := router.Group("/api/v1")
	v1.Use(middleware.TelegramInitData(cfg.Telegram.BotToken, time.Duration(cfg.Telegram.InitDataTTL)*time.Second))
	v1.Use(middleware.RequireAuth())

	credentialHTTP.NewCredentialHandler(credentialSvc).RegisterRoutes(v1)
	gatewaykeyHTTP.NewKeyHandler(gatewaykeySvc).RegisterRoutes(v1)
	proofHTTP.NewProofHandler(proofSvc).RegisterRoutes(v1)

	// Signed retrieval URLs are served outside the authenticated group.
	proofHTTP.NewFilesHandler(store, signer).RegisterRoutes(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC(),
			"service":   "subhub-backend",
		})
	})
	router.GET("/live", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/ready", func(c *gin.Context) {
		readyCtx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := rdb.Ping(readyCtx).Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unready",
				"error":  "redis unavailable",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
		os.Exit(1)
	}

	logger.Info().Msg("Server exited")
}
