package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/nguyentantai21042004/transcript-flow/internal/cleaner"
	"github.com/nguyentantai21042004/transcript-flow/internal/config"
	"github.com/nguyentantai21042004/transcript-flow/internal/docwriter"
	"github.com/nguyentantai21042004/transcript-flow/internal/llm"
	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
	"github.com/nguyentantai21042004/transcript-flow/internal/watcher"
)

func main() {
	input := flag.String("input", "", "Input transcript file")
	output := flag.String("output", "", "Output cleaned transcript file (.txt or .docx)")
	configPath := flag.String("config", "", "Path to YAML config file")
	provider := flag.String("provider", "", "LLM provider: openai or gemini")
	model := flag.String("model", "", "Model name override")
	temperature := flag.Float64("temperature", 0, "Sampling temperature override")
	apiKey := flag.String("api-key", "", "API key (defaults to OPENAI_API_KEY / GEMINI_API_KEY)")
	watch := flag.Bool("watch", false, "Watch the configured input directory for new transcripts")
	flag.Parse()

	ctx := context.Background()

	cfg, err := loadConfig(*configPath, *provider, *model, *temperature)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)

	if err := resolveCredentials(cfg, *apiKey); err != nil {
		log.Error(ctx, "%v", err)
		os.Exit(1)
	}

	processor, err := llm.New(&cfg.LLM, log)
	if err != nil {
		log.Error(ctx, "Failed to initialize %s processor: %v", cfg.LLM.Provider, err)
		os.Exit(1)
	}

	clean := cleaner.New(cfg, processor, log)

	if *watch {
		runWatch(ctx, cfg, clean, log)
		return
	}

	if *input == "" || *output == "" {
		fmt.Fprintln(os.Stderr, "Usage: cleaner --input <path> --output <path> [flags]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := runOnce(ctx, cfg, clean, log, *input, *output); err != nil {
		log.Error(ctx, "Error processing transcript: %v", err)
		os.Exit(1)
	}
}

// runOnce cleans a single transcript file and writes the result.
func runOnce(ctx context.Context, cfg *config.Config, clean cleaner.Cleaner, log logger.Logger, input, output string) error {
	log.Info(ctx, "Reading transcript from %s", input)
	raw, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	cleaned, report := clean.Clean(ctx, string(raw))

	log.Info(ctx, "Writing cleaned transcript to %s", output)
	if err := writeOutput(output, cleaned); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if cfg.Report.Enabled {
		if err := writeReport(output, report); err != nil {
			log.Warn(ctx, "Failed to write QA report: %v", err)
		}
	}

	log.Info(ctx, "Transcript cleaning completed successfully!")
	return nil
}

// runWatch monitors the configured input directory and cleans each new
// transcript that lands in it until interrupted.
func runWatch(ctx context.Context, cfg *config.Config, clean cleaner.Cleaner, log logger.Logger) {
	if cfg.Paths.Input == "" || cfg.Paths.Output == "" {
		log.Error(ctx, "Watch mode requires paths.input and paths.output in the config")
		os.Exit(1)
	}

	for _, dir := range []string{cfg.Paths.Input, cfg.Paths.Output, cfg.Paths.Archived} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Error(ctx, "Failed to create directory %s: %v", dir, err)
			os.Exit(1)
		}
	}

	handler := func(ctx context.Context, filePath string) error {
		name := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
		output := filepath.Join(cfg.Paths.Output, name+".txt")

		if err := runOnce(ctx, cfg, clean, log, filePath, output); err != nil {
			return err
		}

		archived := filepath.Join(cfg.Paths.Archived, filepath.Base(filePath))
		if err := os.Rename(filePath, archived); err != nil {
			log.Warn(ctx, "Failed to move %s to archived folder: %v", filePath, err)
		}
		return nil
	}

	w, err := watcher.New(cfg.Paths.Input, handler, log, cfg.Performance.MaxWorkers)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Transcript pipeline is ready!")
	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Press Ctrl+C to stop")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()
}

func loadConfig(path, provider, model string, temperature float64) (*config.Config, error) {
	var cfg *config.Config
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg = config.Default()
	}

	if provider != "" && provider != cfg.LLM.Provider {
		cfg.LLM.Provider = provider
		if model == "" {
			// Clear the previous provider's default so Validate picks
			// the right one.
			cfg.LLM.Model = ""
		}
	}
	if model != "" {
		cfg.LLM.Model = model
	}
	if temperature != 0 {
		cfg.LLM.Temperature = temperature
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveCredentials fills the API key list from the flag or environment.
func resolveCredentials(cfg *config.Config, apiKey string) error {
	if apiKey != "" {
		cfg.LLM.APIKeys = []string{apiKey}
	}
	if len(cfg.LLM.APIKeys) > 0 {
		return nil
	}

	envVar := "OPENAI_API_KEY"
	if cfg.LLM.Provider == "gemini" {
		envVar = "GEMINI_API_KEY"
	}
	if key := os.Getenv(envVar); key != "" {
		cfg.LLM.APIKeys = []string{key}
		return nil
	}

	return fmt.Errorf("API key not found. Set %s, use --api-key, or configure llm.api_keys", envVar)
}

func writeOutput(output, cleaned string) error {
	if strings.EqualFold(filepath.Ext(output), ".docx") {
		title := strings.TrimSuffix(filepath.Base(output), filepath.Ext(output))
		return docwriter.Write(title, cleaned, output)
	}
	return os.WriteFile(output, []byte(cleaned), 0644)
}

// writeReport persists the QA report as JSON next to the cleaned transcript.
func writeReport(output string, report llm.QAReport) error {
	data, err := json.MarshalIndent(struct {
		QualityScore int      `json:"quality_score"`
		Issues       []string `json:"issues"`
		ContentLoss  bool     `json:"content_loss_detected"`
		Error        string   `json:"error,omitempty"`
	}{
		QualityScore: report.QualityScore,
		Issues:       report.Issues,
		ContentLoss:  report.ContentLoss,
		Error:        report.Err,
	}, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(output+".qa.json", data, 0644)
}
