package api

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ashhad25/moderateai-console/internal/api/auth"
	"github.com/ashhad25/moderateai-console/internal/api/pages"
	"github.com/ashhad25/moderateai-console/internal/view"
)

// SetupRouter configures all console routes. The router is the navigation
// shell: it owns the page set and the auth gate in front of it.
func SetupRouter(r *gin.Engine, authHandler *auth.Handler, pageHandler *pages.Handler) {
	r.Static("/static", "./web/static")

	// Login flow, reachable without a session
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.POST("/logout", authHandler.Logout)

	// Pages behind the auth gate
	authorized := r.Group("/")
	authorized.Use(authHandler.Middleware())
	{
		authorized.GET("/", pageHandler.Home)
		authorized.GET("/dashboard", pageHandler.Dashboard)
		authorized.GET("/submissions", pageHandler.Submissions)
		authorized.GET("/clients", pageHandler.Clients)
		authorized.POST("/clients", pageHandler.CreateClient)
		authorized.POST("/clients/:id/toggle", pageHandler.ToggleClient)
		authorized.GET("/test", pageHandler.Test)
		authorized.POST("/test", pageHandler.RunTest)
		authorized.GET("/logs", pageHandler.Logs)
	}
}

// TemplateFuncs returns the helpers the page templates render with
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"scorePct": func(score float64) string {
			return fmt.Sprintf("%.0f%%", score*100)
		},
		"confidencePct": func(score float64) string {
			return fmt.Sprintf("%.1f%%", score*100)
		},
		"pct": func(value float64) string {
			return fmt.Sprintf("%.0f%%", value)
		},
		"ms": func(value float64) string {
			return fmt.Sprintf("%.2fms", value)
		},
		"badgeClass": view.RecommendationClass,
		"flagClass": func(flagged bool) string {
			if flagged {
				return "danger"
			}
			return "success"
		},
		"yesNo": func(flagged bool) string {
			if flagged {
				return "Yes"
			}
			return "No"
		},
		"joinWords": func(words []string) string {
			return strings.Join(words, ", ")
		},
	}
}
