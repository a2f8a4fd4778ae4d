package config

import (
	"fmt"
	"os"
)

type Config struct {
	HuggingFace   HuggingFaceConfig   `yaml:"hugging_face"`
	Gemini        GeminiConfig        `yaml:"gemini"`
	Transcription TranscriptionConfig `yaml:"transcription"`
	Retry         RetryConfig         `yaml:"retry"`
	Paths         PathsConfig         `yaml:"paths"`
	FFmpeg        FFmpegConfig        `yaml:"ffmpeg"`
	History       HistoryConfig       `yaml:"history"`
	Logging       LoggingConfig       `yaml:"logging"`
}

type HuggingFaceConfig struct {
	Endpoint string `yaml:"endpoint"`
	Model    string `yaml:"model"`
	APIKey   string `yaml:"-"`
}

type GeminiConfig struct {
	Model  string `yaml:"model"`
	APIKey string `yaml:"-"`
}

type TranscriptionConfig struct {
	Endpoint    string `yaml:"endpoint"`
	Model       string `yaml:"model"`
	SmartFormat bool   `yaml:"smart_format"`
	APIKey      string `yaml:"-"`
}

type RetryConfig struct {
	Attempts     int `yaml:"attempts"`
	DelaySeconds int `yaml:"delay_seconds"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
	Temp     string `yaml:"temp"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
}

type HistoryConfig struct {
	Limit int `yaml:"limit"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Environment variable names for provider credentials. A missing key leaves
// that adapter unconfigured; it is not a startup error.
const (
	EnvHuggingFaceToken = "HUGGINGFACEHUB_API_TOKEN"
	EnvGeminiKey        = "GEMINI_API_KEY"
	EnvDeepgramKey      = "DEEPGRAM_API_KEY"
)

func (c *Config) Validate() error {
	if c.HuggingFace.Endpoint == "" {
		c.HuggingFace.Endpoint = "https://api-inference.huggingface.co"
	}
	if c.HuggingFace.Model == "" {
		c.HuggingFace.Model = "sshleifer/distilbart-cnn-12-6"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-1.5-flash"
	}
	if c.Transcription.Endpoint == "" {
		c.Transcription.Endpoint = "https://api.deepgram.com"
	}
	if c.Transcription.Model == "" {
		c.Transcription.Model = "nova-2"
	}
	if c.Retry.Attempts == 0 {
		c.Retry.Attempts = 3
	}
	if c.Retry.Attempts < 1 {
		return fmt.Errorf("retry.attempts must be at least 1")
	}
	if c.Retry.DelaySeconds == 0 {
		c.Retry.DelaySeconds = 2
	}
	if c.Retry.DelaySeconds < 0 {
		return fmt.Errorf("retry.delay_seconds must not be negative")
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.History.Limit == 0 {
		c.History.Limit = 50
	}
	if c.History.Limit < 0 {
		return fmt.Errorf("history.limit must not be negative")
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}

// loadCredentials pulls the provider API keys from the process environment.
// Keys never live in the config file.
func (c *Config) loadCredentials() {
	c.HuggingFace.APIKey = os.Getenv(EnvHuggingFaceToken)
	c.Gemini.APIKey = os.Getenv(EnvGeminiKey)
	c.Transcription.APIKey = os.Getenv(EnvDeepgramKey)
}
