package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "resume-builder/internal/adapter/http"
	repo "resume-builder/internal/adapter/repository"
	"resume-builder/internal/config"
	"resume-builder/internal/infrastructure/migration"
	"resume-builder/internal/usecase"
	"resume-builder/pkg/ai"
	infra "resume-builder/pkg/infrastructure"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	config.LoadDotEnv()
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config: unable to load", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := ai.NewClient(cfg.AI, &http.Client{Timeout: cfg.AI.Timeout})
	if err != nil {
		slog.Error("ai: unable to create client", "error", err)
		os.Exit(1)
	}

	var (
		resumes usecase.ResumesRepo = repo.NewMemoryResumesRepo()
		drafts  usecase.DraftStore  = repo.NewMemoryDraftsRepo()
	)

	if cfg.DatabaseURL != "" {
		pool, err := infra.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			slog.Error("postgres: unable to connect", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		if err := migration.RunMigrations(ctx, pool); err != nil {
			slog.Error("postgres: migrations failed", "error", err)
			os.Exit(1)
		}
		resumes = repo.NewResumesRepo(pool)
		drafts = repo.NewDraftsRepo(pool)
		slog.Info("storage: using postgres")
	}

	if cfg.RedisURL != "" {
		rdb, err := infra.NewRedis(ctx, cfg.RedisURL)
		if err != nil {
			slog.Error("redis: unable to connect", "error", err)
			os.Exit(1)
		}
		defer rdb.Close()
		drafts = repo.NewRedisDraftsRepo(rdb, cfg.DraftTTL)
		slog.Info("drafts: using redis", "ttl", cfg.DraftTTL.String())
	}

	renderer := infra.NewChromedpRenderer(cfg.ChromePath)
	if renderer.Paper, err = infra.PaperByName(cfg.PDFPaper); err != nil {
		slog.Error("config: PDF_PAPER", "error", err)
		os.Exit(1)
	}
	processor := usecase.NewProcessor(client, resumes, drafts, renderer, cfg.TemplatesDir, client.Model())
	app := httpadapter.NewApp(httpadapter.NewHandler(processor, client))

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()
	slog.Info("server listening", "port", cfg.Port, "model", client.Model())

	<-ctx.Done()
	slog.Info("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		slog.Error("shutdown", "error", err)
	}
}
