package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ashhad25/moderateai-console/internal/backend"
	"github.com/ashhad25/moderateai-console/internal/model"
	"github.com/ashhad25/moderateai-console/internal/pkg/config"
	"github.com/ashhad25/moderateai-console/internal/pkg/jwt"
	"github.com/ashhad25/moderateai-console/internal/service"
	"github.com/ashhad25/moderateai-console/internal/session"
)

// CookieName is the console's own browser-session cookie
const CookieName = "console_session"

// Handler owns the login/logout flow and the auth gate for all pages
type Handler struct {
	backend *backend.Client
	store   *session.Store
	limiter *service.LoginRateLimit
}

// NewHandler creates an auth handler
func NewHandler(client *backend.Client, store *session.Store) *Handler {
	return &Handler{
		backend: client,
		store:   store,
		limiter: service.NewLoginRateLimit(5*time.Minute, 10),
	}
}

// ShowLogin renders the login form
func (h *Handler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login", gin.H{"Email": ""})
}

// Login exchanges the submitted admin credentials for a backend token,
// persists it, and issues the console session cookie
func (h *Handler) Login(c *gin.Context) {
	var req model.AdminLogin
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusBadRequest, "login", gin.H{"Error": "Email and password are required", "Email": req.Email})
		return
	}

	clientIP := c.ClientIP()
	if !h.limiter.Check(clientIP) {
		c.HTML(http.StatusTooManyRequests, "login", gin.H{
			"Error": "Too many login attempts. Try again in a few minutes.",
			"Email": req.Email,
		})
		return
	}

	token, err := h.backend.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// A failed login never clears an existing session
		msg := "Invalid credentials"
		if apiErr, ok := err.(*backend.APIError); ok && apiErr.Kind == backend.KindNetwork {
			msg = "Cannot reach the moderation backend"
		}
		c.HTML(http.StatusUnauthorized, "login", gin.H{"Error": msg, "Email": req.Email})
		return
	}

	if err := h.store.SetCredential(token); err != nil {
		zap.L().Error("Failed to persist credential", zap.Error(err))
		c.HTML(http.StatusInternalServerError, "login", gin.H{"Error": "Failed to save session", "Email": req.Email})
		return
	}
	h.backend.SetToken(token)
	h.limiter.Reset(clientIP)

	cookie, err := jwt.GenerateToken(req.Email)
	if err != nil {
		zap.L().Error("Failed to issue session cookie", zap.Error(err))
		c.HTML(http.StatusInternalServerError, "login", gin.H{"Error": "Failed to start session", "Email": req.Email})
		return
	}

	maxAge := config.Get().Session.ExpireHours * 3600
	c.SetCookie(CookieName, cookie, maxAge, "/", "", false, true)

	zap.L().Info("Admin logged in", zap.String("email", req.Email))
	c.Redirect(http.StatusFound, "/dashboard")
}

// Logout clears the session globally and returns to the dashboard, which
// now shows the login view. Logging out while already logged out is a no-op.
func (h *Handler) Logout(c *gin.Context) {
	if err := h.store.ClearCredential(); err != nil {
		zap.L().Error("Failed to clear credential", zap.Error(err))
	}
	h.backend.ClearToken()
	c.SetCookie(CookieName, "", -1, "/", "", false, true)

	c.Redirect(http.StatusFound, "/dashboard")
}

// ForceLogin clears the session after the backend rejected the credential
// and sends the browser back to the login view
func (h *Handler) ForceLogin(c *gin.Context) {
	zap.L().Warn("Backend rejected credential, forcing re-login")
	if err := h.store.ClearCredential(); err != nil {
		zap.L().Error("Failed to clear credential", zap.Error(err))
	}
	h.backend.ClearToken()
	c.SetCookie(CookieName, "", -1, "/", "", false, true)

	c.Redirect(http.StatusFound, "/login")
}

// Middleware gates every page: without a stored credential and a valid
// console cookie the browser is sent to the login view and no
// authenticated backend call is issued
func (h *Handler) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !h.backend.HasToken() {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		cookie, err := c.Cookie(CookieName)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		claims, err := jwt.ValidateToken(cookie)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set("admin_email", claims.Email)
		c.Next()
	}
}
