// Command httpd runs the brand voice pattern extraction HTTP service.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/time/rate"

	"github.com/jonesrussell/brand-voice/internal/api"
	"github.com/jonesrussell/brand-voice/internal/config"
	"github.com/jonesrussell/brand-voice/internal/extractor"
	"github.com/jonesrussell/brand-voice/internal/logging"
	"github.com/jonesrussell/brand-voice/internal/scrapeclient"
	"github.com/jonesrussell/brand-voice/internal/telemetry"
	"github.com/jonesrussell/brand-voice/internal/transcriptclient"
	"github.com/jonesrussell/brand-voice/internal/voice"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "brand-voice: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "config.yml", "path to the configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := logging.Must(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	defer func() { _ = logger.Sync() }()

	logger.Info("starting brand voice service",
		logging.String("version", cfg.Service.Version),
		logging.Int("port", cfg.Service.Port))

	provider := telemetry.NewProvider()

	scrapeOpts := []scrapeclient.Option{
		scrapeclient.WithTimeout(cfg.Scrape.Timeout),
	}
	if cfg.Scrape.RPS > 0 {
		scrapeOpts = append(scrapeOpts,
			scrapeclient.WithRateLimiter(rate.NewLimiter(rate.Limit(cfg.Scrape.RPS), cfg.Scrape.Burst)))
	}
	scraper := scrapeclient.New(cfg.Scrape.BaseURL, logger, scrapeOpts...)

	transcripts := transcriptclient.NewWithTimeout(cfg.Transcript.BaseURL, cfg.Transcript.Timeout, logger)

	pipeline := extractor.New(scraper, transcripts, logger,
		extractor.WithTelemetry(provider))

	handler := api.NewHandler(pipeline,
		[]*voice.Catalog{voice.GenericCatalog, voice.VideoToneCatalog},
		logger, cfg.Service.Version)

	server := api.NewServer(cfg, handler, provider, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		logger.Info("received shutdown signal", logging.String("signal", sig.String()))
	}

	if err := server.Shutdown(context.Background()); err != nil {
		return err
	}
	return <-errCh
}
