package handler

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/arnavshah/office-dashboard/pkg/auth"
	"github.com/arnavshah/office-dashboard/pkg/config"
	"github.com/arnavshah/office-dashboard/pkg/database"
	"github.com/arnavshah/office-dashboard/pkg/handlers"
	"github.com/arnavshah/office-dashboard/pkg/reminders"
	"github.com/arnavshah/office-dashboard/pkg/seed"
	"github.com/gin-gonic/gin"
)

var r *gin.Engine

// Serverless instances keep no reminder poller or live board between
// requests, so the router is built without those routes.
func init() {
	config.LoadDotEnv()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	db, err := database.InitDB(cfg.DatabaseURL, cfg.DataPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}

	rules := reminders.DefaultRules()
	if cfg.ReminderRulesFile != "" {
		if loaded, err := reminders.LoadRules(cfg.ReminderRulesFile); err == nil {
			rules = loaded
		} else {
			logger.Error("failed to load reminder rules", "error", err)
		}
	}

	secret := auth.NewSharedSecret(cfg.ShufflePassword, cfg.ShufflePasswordHash)
	h := &handlers.Handler{
		Seeds:     seed.NewService(database.SeedStore{DB: db}, secret, seed.WithLocation(cfg.Location), seed.WithLogger(logger)),
		Team:      database.TeamStore{DB: db},
		Rules:     rules,
		TeamName:  cfg.TeamName,
		Roles:     cfg.SeatRoles,
		Layout:    cfg.Layout,
		Origins:   cfg.CORSOrigins,
		Logger:    logger,
		Stateless: true,
	}

	gin.SetMode(gin.ReleaseMode)
	r = handlers.NewRouter(h)
}

// Handler is the entry point for Vercel Go Runtime
func Handler(w http.ResponseWriter, req *http.Request) {
	r.ServeHTTP(w, req)
}
