package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nguyentantai21042004/summarize-flow/internal/config"
	"github.com/nguyentantai21042004/summarize-flow/internal/extract"
	"github.com/nguyentantai21042004/summarize-flow/internal/logger"
	"github.com/nguyentantai21042004/summarize-flow/internal/pipeline"
	"github.com/nguyentantai21042004/summarize-flow/internal/provider/gemini"
	"github.com/nguyentantai21042004/summarize-flow/internal/provider/huggingface"
	"github.com/nguyentantai21042004/summarize-flow/internal/summarize"
	"github.com/nguyentantai21042004/summarize-flow/internal/transcribe"
	"github.com/nguyentantai21042004/summarize-flow/internal/watcher"
	"github.com/nguyentantai21042004/summarize-flow/pkg/executor"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Summarization Pipeline")
	log.Info(ctx, "========================================")

	// Verify required directories exist
	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	// Initialize dependencies
	hf := huggingface.New(cfg.HuggingFace)
	gm := gemini.New(cfg.Gemini)
	for _, p := range []summarize.Provider{hf, gm} {
		if !p.Configured() {
			log.Warn(ctx, "%s API key not set; provider disabled", p.Name())
		}
	}

	orch := summarize.New([]summarize.Provider{hf, gm}, cfg.Retry, log)
	tr := transcribe.New(cfg.Transcription)
	if !tr.Configured() {
		log.Warn(ctx, "Deepgram API key not set; audio and video inputs will fail")
	}

	pipe := pipeline.New(cfg, extract.New(), tr, orch, executor.New(), log)

	// Create watcher with the pipeline as handler; processing is sequential
	w, err := watcher.New(cfg.Paths.Input, pipeline.Extensions(), pipe.Process, log)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	// Create context with cancellation
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start watcher in goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Summarization pipeline is ready!")
	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Providers: Hugging Face -> Gemini (auto fallback)")
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	// Wait for shutdown signal or error
	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	// Graceful shutdown
	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	log.Info(ctx, "Summarization pipeline stopped")
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
		cfg.Paths.Temp,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
