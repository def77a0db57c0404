package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prepdesk/bankdigest/app/api"
	"github.com/prepdesk/bankdigest/app/cfg"
	"github.com/prepdesk/bankdigest/app/config"
	"github.com/prepdesk/bankdigest/app/database"
	"github.com/prepdesk/bankdigest/app/digest"
	"github.com/prepdesk/bankdigest/app/llm"
	"github.com/prepdesk/bankdigest/app/mail"
	"github.com/prepdesk/bankdigest/app/pdf"
	"github.com/prepdesk/bankdigest/app/report"
	"github.com/prepdesk/bankdigest/app/sources"
	"github.com/prepdesk/bankdigest/app/tasks"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if appCfg == nil {
		return
	}

	logLevel := slog.LevelInfo
	if appCfg.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	slog.Info("Starting Bank Digest", "version", cfg.GetVersion())

	catalog, err := config.Load(appCfg.CatalogPath)
	if err != nil {
		slog.Error("Failed to load source catalog", "path", appCfg.CatalogPath, "error", err)
		os.Exit(1)
	}
	slog.Info("Source catalog loaded",
		"queries", len(catalog.Queries),
		"feeds", len(catalog.Feeds),
		"pages", len(catalog.Pages))

	db, err := database.NewConnection(appCfg.DBPath)
	if err != nil {
		slog.Error("Failed to open database", "path", appCfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	version, dirty, err := database.RunMigrations(db)
	if err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database ready", "path", appCfg.DBPath, "migration_version", version, "dirty", dirty)

	reportRepo := database.NewReportRepository(db)
	pipeline := digest.NewPipeline(catalog)

	httpClient := &http.Client{Timeout: time.Duration(appCfg.FetchTimeout) * time.Second}
	enricher := sources.NewEnricher(appCfg.UserAgent, catalog.Limits.DescriptionLength, httpClient)

	collector := sources.NewCollector(
		sources.NewQuerySource(appCfg.NewsAPIEndpoint, appCfg.NewsAPIKey, catalog.Queries,
			catalog.Limits.PageSize, pipeline, enricher, httpClient),
		sources.NewFeedSource(catalog.Feeds, catalog.Limits.PerSource, appCfg.UserAgent,
			pipeline, enricher, httpClient),
		sources.NewPageSource(catalog.Pages, catalog.Limits.PerSource, catalog.Limits.MinHeadingLength,
			appCfg.UserAgent, pipeline, httpClient),
	)

	generator := llm.NewClient(appCfg.GeminiEndpoint, appCfg.GeminiModel, appCfg.GeminiAPIKey,
		appCfg.Temperature, appCfg.MaxTokens)

	service := report.NewService(report.Deps{
		Collector: collector,
		Pipeline:  pipeline,
		Generator: generator,
		Renderer:  pdf.NewRenderer(),
		Mailer: mail.NewSender(appCfg.SMTPHost, appCfg.SMTPPort, appCfg.EmailUser,
			appCfg.EmailPassword, appCfg.RecipientEmail),
		Reports:  reportRepo,
		Location: appCfg.Location(),
	})

	scheduler := tasks.NewScheduler(service)
	scheduler.Start()
	defer scheduler.Stop()
	slog.Info("Daily trigger scheduled",
		"hour", appCfg.ScheduleHour, "minute", appCfg.ScheduleMinute, "timezone", appCfg.Timezone)

	handler := api.NewHandler(service, reportRepo)
	server := api.NewServer(handler, appCfg.APIAccessKey)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 15 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "port", appCfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
