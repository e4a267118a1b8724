package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arnavshah/office-dashboard/pkg/auth"
	"github.com/arnavshah/office-dashboard/pkg/config"
	"github.com/arnavshah/office-dashboard/pkg/database"
	"github.com/arnavshah/office-dashboard/pkg/handlers"
	"github.com/arnavshah/office-dashboard/pkg/reminders"
	"github.com/arnavshah/office-dashboard/pkg/seating"
	"github.com/arnavshah/office-dashboard/pkg/seed"
	"github.com/gin-gonic/gin"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	config.LoadDotEnv()
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	if cfg.GinMode == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.InitDB(cfg.DatabaseURL, cfg.DataPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}

	rules := reminders.DefaultRules()
	if cfg.ReminderRulesFile != "" {
		rules, err = reminders.LoadRules(cfg.ReminderRulesFile)
		if err != nil {
			logger.Error("failed to load reminder rules", "path", cfg.ReminderRulesFile, "error", err)
			os.Exit(1)
		}
	}

	secret := auth.NewSharedSecret(cfg.ShufflePassword, cfg.ShufflePasswordHash)
	if !secret.Configured() {
		logger.Warn("no shuffle password configured; seed updates will be rejected")
	}

	team := database.TeamStore{DB: db}
	seeds := seed.NewService(database.SeedStore{DB: db}, secret, seed.WithLocation(cfg.Location), seed.WithLogger(logger))
	assigner := seating.NewAssigner(cfg.Layout, seating.WithLogger(logger))
	inbox := reminders.NewInbox()

	if current, source, err := seeds.Current(ctx); err != nil {
		logger.Error("failed to read seating seed", "error", err)
	} else if roster, err := handlers.LoadRoster(ctx, team, cfg.SeatRoles); err != nil {
		logger.Error("failed to load roster", "error", err)
	} else if !assigner.Load(roster, current) {
		logger.Warn("no members to seat", "roles", cfg.SeatRoles)
	} else {
		logger.Info("initial seating loaded", "seed", current, "source", source, "members", len(roster))
	}

	if cfg.RemindersEnabled {
		queue := &reminders.Queue{}
		presenter := reminders.NewPresenter(queue, inbox, reminders.LogPlayer{Logger: logger}, reminders.WithPresenterLogger(logger))
		scheduler := reminders.NewScheduler(rules, queue, presenter,
			reminders.WithSchedulerLocation(cfg.Location),
			reminders.WithSchedulerLogger(logger),
		)
		go scheduler.Run(ctx, cfg.ReminderInterval)
		defer presenter.Wait()
	}

	h := &handlers.Handler{
		Seeds:    seeds,
		Team:     team,
		Seating:  assigner,
		Inbox:    inbox,
		Rules:    rules,
		TeamName: cfg.TeamName,
		Roles:    cfg.SeatRoles,
		Layout:   cfg.Layout,
		Origins:  cfg.CORSOrigins,
		Logger:   logger,
		Lifetime: ctx,
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handlers.NewRouter(h),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to shutdown server", "error", err)
		}
	}()

	logger.Info("office dashboard listening", "addr", server.Addr, "team", cfg.TeamName)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server encountered error", "error", err)
		os.Exit(1)
	}
}
