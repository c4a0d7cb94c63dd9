package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/msomdec/userdesk/internal/config"
	"github.com/msomdec/userdesk/internal/domain"
	"github.com/msomdec/userdesk/internal/handler"
	"github.com/msomdec/userdesk/internal/service"
	"github.com/msomdec/userdesk/internal/store"
)

func main() {
	logOpts := &slog.HandlerOptions{Level: slog.LevelInfo}
	logger := slog.New(slog.NewMultiHandler(
		slog.NewTextHandler(os.Stdout, logOpts),
		slog.NewJSONHandler(os.Stderr, logOpts),
	))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load configuration", "error", err)
		os.Exit(1)
	}
	slog.Info("configuration loaded",
		"page_size", cfg.Rules.PageSize,
		"editable", cfg.Rules.Editable,
		"rules_file", cfg.RulesPath)

	users := store.NewMemory()
	users.Subscribe(func(snapshot []domain.User) {
		slog.Info("user collection changed", "count", len(snapshot))
	})

	userService := service.NewUserService(users, cfg.Rules, nil)

	if cfg.SeedDemo {
		seedDemoUsers(userService)
		slog.Info("demo users seeded", "count", users.Len())
	}

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, userService, cfg.Rules)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.SecurityHeaders(mux),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// seedDemoUsers loads a handful of valid users through the normal
// create path so a fresh process has something to page through.
func seedDemoUsers(users *service.UserService) {
	ctx := context.Background()
	inputs := []service.UserInput{
		{
			Name: "Jane Doe", Email: "jane@example.com",
			LinkedinURL: "https://www.linkedin.com/in/janedoe", Gender: "female",
			Address: service.AddressInput{Line1: "1 Main St", State: "Goa", City: "Panaji", PIN: "403001"},
		},
		{
			Name: "Arjun Mehta", Email: "arjun@example.com",
			LinkedinURL: "https://in.linkedin.com/in/arjunmehta", Gender: "male",
			Address: service.AddressInput{Line1: "22 Lake Rd", Line2: "Flat 4B", State: "Maharashtra", City: "Pune", PIN: "411001"},
		},
		{
			Name: "Priya Nair", Email: "priya@example.com",
			LinkedinURL: "https://www.linkedin.com/in/priyanair", Gender: "female",
			Address: service.AddressInput{Line1: "7 Beach Ave", State: "Kerala", City: "Kochi", PIN: "682001"},
		},
	}
	for _, in := range inputs {
		if _, err := users.Create(ctx, in); err != nil {
			slog.Error("seed demo user", "name", in.Name, "error", err)
		}
	}
}
