package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/arnavshah/office-dashboard/pkg/metrics"
	"github.com/arnavshah/office-dashboard/pkg/models"
	"github.com/arnavshah/office-dashboard/pkg/reminders"
	"github.com/arnavshah/office-dashboard/pkg/seating"
	"github.com/arnavshah/office-dashboard/pkg/seed"
	"github.com/gin-gonic/gin"
)

// Version is reported by the root route.
const Version = "1.0.0"

// RosterSource lists the active team members.
type RosterSource interface {
	ListActive(ctx context.Context) ([]models.TeamMember, error)
}

// Handler contains dependencies for the route handlers
type Handler struct {
	Seeds    *seed.Service
	Team     RosterSource
	Seating  *seating.Assigner
	Inbox    *reminders.Inbox
	Rules    reminders.RuleSet
	TeamName string
	Roles    []string
	Layout   seating.Layout
	Origins  []string
	Logger   *slog.Logger

	// Lifetime bounds background shuffle playback; cancelling it settles a
	// playing board at once. Defaults to context.Background().
	Lifetime context.Context
	// Stateless drops the routes backed by the live board and the reminder
	// inbox, for deployments that keep no state between requests.
	Stateless bool
}

// NewRouter registers every route on a fresh engine.
func NewRouter(h *Handler) *gin.Engine {
	if h.Logger == nil {
		h.Logger = slog.Default()
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), h.CORSMiddleware())

	r.GET("/", h.Root)
	r.GET("/health", h.Health)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api")
	{
		api.GET("/team", h.GetTeamInfo)
		api.GET("/team/members", h.GetTeamMembers)

		api.GET("/seating", h.GetSeed)
		api.PUT("/seating", h.UpdateSeed)
		api.GET("/seating/arrangement", h.GetArrangement)
		api.GET("/reminders/rules", h.ListReminderRules)

		if !h.Stateless {
			api.GET("/seating/board", h.GetBoard)
			api.POST("/seating/shuffle", h.Shuffle)

			api.GET("/reminders/current", h.CurrentReminder)
			api.POST("/reminders/:id/dismiss", h.DismissReminder)
		}
	}
	return r
}

func (h *Handler) lifetime() context.Context {
	if h.Lifetime == nil {
		return context.Background()
	}
	return h.Lifetime
}

// CORSMiddleware echoes an allowed Origin, or "*" when every origin is allowed.
func (h *Handler) CORSMiddleware() gin.HandlerFunc {
	allowAll := false
	for _, o := range h.Origins {
		if o == "*" {
			allowAll = true
		}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		allowed := matchOrigin(origin, h.Origins, allowAll)

		if origin != "" && allowed != "" {
			c.Header("Access-Control-Allow-Origin", allowed)
			if allowed != "*" {
				c.Header("Vary", "Origin")
			}
			c.Header("Access-Control-Allow-Methods", "GET,POST,PUT,PATCH,DELETE,OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type,Authorization")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func matchOrigin(origin string, allowed []string, allowAll bool) string {
	for _, a := range allowed {
		if origin != "" && strings.EqualFold(a, origin) {
			return a
		}
	}
	if allowAll {
		return "*"
	}
	return ""
}

// Root describes the service
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Office Dashboard API",
		"version": Version,
	})
}

// Health is the liveness probe
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"team":      h.TeamName,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func ok(c *gin.Context, status int, data any) {
	c.JSON(status, models.Envelope{Success: true, Data: data})
}

func fail(c *gin.Context, status int, msg string) {
	c.JSON(status, models.Envelope{Success: false, Error: msg})
}
