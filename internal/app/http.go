package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/okkkkun/uuid-qr-generator/internal/auth/handler"
	"github.com/okkkkun/uuid-qr-generator/internal/auth/provider"
	"github.com/okkkkun/uuid-qr-generator/internal/auth/provider/google"
	"github.com/okkkkun/uuid-qr-generator/internal/config"
	"github.com/okkkkun/uuid-qr-generator/internal/credentials"
	"github.com/okkkkun/uuid-qr-generator/internal/drive"
	"github.com/okkkkun/uuid-qr-generator/internal/logger"
	"github.com/okkkkun/uuid-qr-generator/internal/middleware"
	"github.com/okkkkun/uuid-qr-generator/internal/qrpdf"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, error) {

	// ----------------------------
	// Dependencies
	// ----------------------------

	cookieOpts := credentials.CookieOptions{
		Secure:   cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}

	var googleProvider provider.Provider
	var tokens credentials.TokenClient

	if cfg.OAuthConfigured() {
		p, err := google.New(
			ctx,
			cfg.GoogleClientID,
			cfg.GoogleClientSecret,
			cfg.GoogleRedirectURI,
		)
		if err != nil {
			return nil, err
		}
		googleProvider = p
		tokens = p
	} else {
		logger.Warn("google oauth not configured, auth routes will report errors", nil)
	}

	authHandler := handler.NewHandler(googleProvider, cookieOpts)

	manager := credentials.NewManager(tokens)
	guard := middleware.NewGuard()

	uploadHandler := drive.NewHandler(
		manager,
		qrpdf.NewGenerator(),
		drive.NewDriveUploader(),
		cfg.DriveFolderID,
		cookieOpts,
	)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())
	router.HandleMethodNotAllowed = true

	// ----------------------------
	// Public Routes
	// ----------------------------

	authHandler.RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ----------------------------
	// Protected Drive Routes
	// ----------------------------

	api := router.Group("/api/drive")
	api.Use(middleware.GinRequireCredentials(guard))

	uploadHandler.RegisterRoutes(api)

	return router, nil
}
