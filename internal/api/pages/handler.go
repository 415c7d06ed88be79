package pages

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ashhad25/moderateai-console/internal/api/auth"
	"github.com/ashhad25/moderateai-console/internal/backend"
	"github.com/ashhad25/moderateai-console/internal/view"
)

// Default values pre-filled on the manual-test form
const (
	defaultTestText   = "Congratulations! You won a FREE prize! Click here to claim your $1000!"
	defaultTestAPIKey = "mod_test_key_12345678901234567890"
)

// Handler mounts one coordinator per page and renders its state
type Handler struct {
	auth        *auth.Handler
	dashboard   *view.DashboardCoordinator
	submissions *view.SubmissionsCoordinator
	clients     *view.ClientsCoordinator
	test        *view.ManualTestCoordinator
	logs        *view.LogsCoordinator
}

// NewHandler creates the page handler with its coordinators
func NewHandler(authHandler *auth.Handler, client view.Backend, history view.TestHistory) *Handler {
	return &Handler{
		auth:        authHandler,
		dashboard:   view.NewDashboardCoordinator(client),
		submissions: view.NewSubmissionsCoordinator(client),
		clients:     view.NewClientsCoordinator(client),
		test:        view.NewManualTestCoordinator(client, history),
		logs:        view.NewLogsCoordinator(client),
	}
}

// Home redirects to the dashboard
func (h *Handler) Home(c *gin.Context) {
	c.Redirect(http.StatusFound, "/dashboard")
}

// Dashboard renders the analytics overview
func (h *Handler) Dashboard(c *gin.Context) {
	h.dashboard.Load(c.Request.Context())

	phase, data, err := h.dashboard.State()
	if h.rejected(c, err) {
		return
	}
	if phase == view.PhaseFailed {
		zap.L().Error("Failed to load analytics", zap.Error(err))
	}

	c.HTML(http.StatusOK, "dashboard", gin.H{
		"Page":  "dashboard",
		"Phase": phase.String(),
		"Data":  data,
	})
}

// Submissions renders the submissions list for the selected filter
func (h *Handler) Submissions(c *gin.Context) {
	filter := view.NormalizeFilter(c.Query("filter"))
	h.submissions.Load(c.Request.Context(), filter)

	phase, data, err := h.submissions.State()
	if h.rejected(c, err) {
		return
	}
	if phase == view.PhaseFailed {
		zap.L().Error("Failed to load submissions",
			zap.String("filter", filter),
			zap.Error(err))
	}

	c.HTML(http.StatusOK, "submissions", gin.H{
		"Page":   "submissions",
		"Phase":  phase.String(),
		"Filter": filter,
		"Data":   data,
	})
}

// Clients renders the client list
func (h *Handler) Clients(c *gin.Context) {
	h.clients.Load(c.Request.Context())
	h.renderClients(c, "")
}

// CreateClient registers a new API client. On failure the error is shown
// inline above the form and the displayed list is left as it was.
func (h *Handler) CreateClient(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	if name == "" || email == "" {
		// Show the current list alongside the validation error
		h.clients.Load(c.Request.Context())
		h.renderClients(c, "Name and email are required")
		return
	}

	if err := h.clients.Create(c.Request.Context(), name, email); err != nil {
		if h.rejected(c, err) {
			return
		}
		zap.L().Error("Failed to create client", zap.Error(err))
		h.renderClients(c, "Error creating client")
		return
	}

	c.Redirect(http.StatusFound, "/clients")
}

// ToggleClient flips a client's active flag and reloads the list
func (h *Handler) ToggleClient(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/clients")
		return
	}

	h.clients.Toggle(c.Request.Context(), id)
	c.Redirect(http.StatusFound, "/clients")
}

// Test renders the manual moderation test page. A rejected API key is a
// failure of the submitted key, not of the admin session, so it is shown
// inline and never forces re-login.
func (h *Handler) Test(c *gin.Context) {
	phase, data, err := h.test.State()

	if data.Text == "" {
		data.Text = defaultTestText
	}
	if data.APIKey == "" {
		data.APIKey = defaultTestAPIKey
	}

	var errMsg string
	if phase == view.PhaseFailed && err != nil {
		errMsg = err.Error()
		if backend.IsUnauthorized(err) {
			errMsg = "The backend rejected this API key"
		}
	}

	c.HTML(http.StatusOK, "test", gin.H{
		"Page":  "test",
		"Phase": phase.String(),
		"Data":  data,
		"Error": errMsg,
	})
}

// RunTest issues a one-off moderation call with the submitted API key
func (h *Handler) RunTest(c *gin.Context) {
	apiKey := c.PostForm("api_key")
	text := c.PostForm("text")

	h.test.Run(c.Request.Context(), apiKey, text)
	c.Redirect(http.StatusFound, "/test")
}

// Logs renders the backend moderation log
func (h *Handler) Logs(c *gin.Context) {
	h.logs.Load(c.Request.Context())

	phase, data, err := h.logs.State()
	if h.rejected(c, err) {
		return
	}
	if phase == view.PhaseFailed {
		zap.L().Error("Failed to load moderation logs", zap.Error(err))
	}

	c.HTML(http.StatusOK, "logs", gin.H{
		"Page":  "logs",
		"Phase": phase.String(),
		"Data":  data,
	})
}

func (h *Handler) renderClients(c *gin.Context, formError string) {
	phase, data, err := h.clients.State()
	if h.rejected(c, err) {
		return
	}
	if phase == view.PhaseFailed {
		zap.L().Error("Failed to load clients", zap.Error(err))
	}

	c.HTML(http.StatusOK, "clients", gin.H{
		"Page":      "clients",
		"Phase":     phase.String(),
		"Data":      data,
		"FormError": formError,
	})
}

// rejected handles a credential rejection from the backend by forcing the
// browser back to the login view
func (h *Handler) rejected(c *gin.Context, err error) bool {
	if err != nil && backend.IsUnauthorized(err) {
		h.auth.ForceLogin(c)
		return true
	}
	return false
}
