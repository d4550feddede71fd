package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/okkkkun/uuid-qr-generator/internal/auth/provider"
	"github.com/okkkkun/uuid-qr-generator/internal/credentials"
	"github.com/okkkkun/uuid-qr-generator/internal/logger"
)

type Handler struct {
	// provider is nil when client id/secret are not configured; the routes
	// that need it answer with a config error instead.
	provider provider.Provider
	cookies  credentials.CookieOptions
}

func NewHandler(p provider.Provider, cookies credentials.CookieOptions) *Handler {
	return &Handler{
		provider: p,
		cookies:  cookies,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/api/auth/google", h.authorize)
	r.GET("/api/auth/callback", h.callback)
	r.GET("/api/auth/status", h.status)
	r.POST("/api/auth/logout", h.logout)
}

func (h *Handler) authorize(c *gin.Context) {
	if h.provider == nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "google oauth is not configured",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"authUrl": h.provider.AuthCodeURL(),
	})
}

func (h *Handler) callback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "missing authorization code",
		})
		return
	}

	if h.provider == nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "google oauth is not configured",
		})
		return
	}

	pair, err := h.provider.Exchange(c.Request.Context(), code)
	if err != nil {
		logger.Error("token exchange failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "token exchange failed: " + err.Error(),
		})
		return
	}

	// Partial success is rejected: without a refresh token the pair would
	// become unusable as soon as the access token expires.
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		logger.Error("token exchange returned incomplete pair", map[string]any{
			"access_present":  pair.AccessToken != "",
			"refresh_present": pair.RefreshToken != "",
		})
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "provider did not return both tokens",
		})
		return
	}

	now := time.Now()
	if pair.AccessExpiry.IsZero() {
		pair.AccessExpiry = now.Add(credentials.DefaultAccessTTL)
	}
	pair.RefreshExpiry = now.Add(credentials.RefreshTTL)

	store := credentials.NewCookieStore(c.Writer, c.Request, h.cookies)
	store.SetPair(pair)

	logger.Info("authorization completed", map[string]any{
		"access_expiry_unix": pair.AccessExpiry.Unix(),
	})

	c.Redirect(http.StatusFound, "/?auth=success")
}

func (h *Handler) status(c *gin.Context) {
	store := credentials.NewCookieStore(c.Writer, c.Request, h.cookies)

	c.JSON(http.StatusOK, gin.H{
		"isAuthenticated": !store.Pair().Empty(),
	})
}

// logout clears both credential cookies. Idempotent.
func (h *Handler) logout(c *gin.Context) {
	store := credentials.NewCookieStore(c.Writer, c.Request, h.cookies)
	store.Clear()

	c.Status(http.StatusNoContent)
}
