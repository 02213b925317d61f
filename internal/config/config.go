package config

import "fmt"

type Config struct {
	Chunking    ChunkingConfig    `yaml:"chunking"`
	Context     ContextConfig     `yaml:"context"`
	LLM         LLMConfig         `yaml:"llm"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Report      ReportConfig      `yaml:"report"`
}

type ChunkingConfig struct {
	MaxSize     int `yaml:"max_size"`
	OverlapSize int `yaml:"overlap_size"`
}

type ContextConfig struct {
	WindowSize int `yaml:"window_size"`
	Lookback   int `yaml:"lookback"`
	TailPoints int `yaml:"tail_points"`
}

type LLMConfig struct {
	Provider    string   `yaml:"provider"`
	Model       string   `yaml:"model"`
	Temperature float64  `yaml:"temperature"`
	APIKeys     []string `yaml:"api_keys"`
	BaseURL     string   `yaml:"base_url"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxWorkers int `yaml:"max_workers"`
}

type ReportConfig struct {
	Enabled bool `yaml:"enabled"`
}

func (c *Config) Validate() error {
	if c.Chunking.MaxSize == 0 {
		c.Chunking.MaxSize = 3000
	}
	if c.Chunking.OverlapSize == 0 {
		c.Chunking.OverlapSize = 500
	}
	if c.Chunking.MaxSize < 0 || c.Chunking.OverlapSize < 0 {
		return fmt.Errorf("chunking sizes must be positive")
	}
	if c.Chunking.OverlapSize >= c.Chunking.MaxSize {
		return fmt.Errorf("chunking.overlap_size must be smaller than chunking.max_size")
	}

	if c.Context.WindowSize == 0 {
		c.Context.WindowSize = 10
	}
	if c.Context.Lookback == 0 {
		c.Context.Lookback = 3
	}
	if c.Context.TailPoints == 0 {
		c.Context.TailPoints = 5
	}

	if c.Performance.MaxWorkers == 0 {
		c.Performance.MaxWorkers = 4
	}

	switch c.LLM.Provider {
	case "":
		c.LLM.Provider = "openai"
	case "openai", "gemini":
	default:
		return fmt.Errorf("llm.provider must be openai or gemini, got %q", c.LLM.Provider)
	}
	if c.LLM.Model == "" {
		if c.LLM.Provider == "gemini" {
			c.LLM.Model = "gemini-2.5-flash"
		} else {
			c.LLM.Model = "gpt-3.5-turbo"
		}
	}
	if c.LLM.Temperature == 0 {
		c.LLM.Temperature = 0.1
	}

	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}
