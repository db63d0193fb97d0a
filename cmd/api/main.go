package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/bolao/internal/agent"
	agentStore "github.com/MrJamesThe3rd/bolao/internal/agent/store"
	"github.com/MrJamesThe3rd/bolao/internal/ai"
	"github.com/MrJamesThe3rd/bolao/internal/auth"
	"github.com/MrJamesThe3rd/bolao/internal/comment"
	commentStore "github.com/MrJamesThe3rd/bolao/internal/comment/store"
	"github.com/MrJamesThe3rd/bolao/internal/config"
	"github.com/MrJamesThe3rd/bolao/internal/database"
	bolaoHttp "github.com/MrJamesThe3rd/bolao/internal/http"
	agentHandler "github.com/MrJamesThe3rd/bolao/internal/http/agent"
	commentHandler "github.com/MrJamesThe3rd/bolao/internal/http/comment"
	importHandler "github.com/MrJamesThe3rd/bolao/internal/http/importcsv"
	registrationHandler "github.com/MrJamesThe3rd/bolao/internal/http/registration"
	txHandler "github.com/MrJamesThe3rd/bolao/internal/http/transaction"
	"github.com/MrJamesThe3rd/bolao/internal/pool"
	poolStore "github.com/MrJamesThe3rd/bolao/internal/pool/store"
	"github.com/MrJamesThe3rd/bolao/internal/reconcile"
	"github.com/MrJamesThe3rd/bolao/internal/registration"
	registrationStore "github.com/MrJamesThe3rd/bolao/internal/registration/store"
	"github.com/MrJamesThe3rd/bolao/internal/statement"
	statementStore "github.com/MrJamesThe3rd/bolao/internal/statement/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if cfg.Auth.JWTSecret == "" {
		slog.Error("AUTH_JWT_SECRET is required")
		os.Exit(1)
	}

	ctx := context.Background()

	db, err := database.New(ctx, cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		gen      ai.Generator
		analyzer reconcile.Analyzer
	)

	if cfg.AIEnabled() {
		gemini, err := ai.NewGemini(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			slog.Error("failed to create gemini client", "error", err)
			os.Exit(1)
		}

		gen = gemini
		analyzer = reconcile.NewAIAnalyzer(gemini)
	} else {
		slog.Warn("GEMINI_API_KEY not set, AI features run their local fallback")
	}

	var (
		poolService         = pool.NewService(poolStore.New(db))
		statementService    = statement.NewService(statementStore.New(db), poolService, reconcile.New(analyzer))
		commentService      = comment.NewService(commentStore.New(db), gen)
		registrationService = registration.NewService(registrationStore.New(db), cfg.Registration.FallbackDomain)
		agentService        = agent.NewService(agentStore.New(db), poolService, commentService, statementService, gen)
	)

	handlers := bolaoHttp.Handlers{
		Registration: registrationHandler.NewHandler(registrationService),
		Comments:     commentHandler.NewHandler(commentService),
		Import:       importHandler.NewHandler(statementService, poolService, cfg.Upload.MaxBytes),
		Transactions: txHandler.NewHandler(statementService),
		Agents:       agentHandler.NewHandler(agentService),
	}

	router := bolaoHttp.New(handlers, auth.New(cfg.Auth.JWTSecret, cfg.Auth.AdminEmails), cfg.CORS.AllowedOrigins)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	slog.Info("starting server", "addr", srv.Addr, "ai", cfg.AIEnabled(), "admins", len(cfg.Auth.AdminEmails))

	if err := srv.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
