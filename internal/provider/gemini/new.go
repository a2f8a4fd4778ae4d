package gemini

import (
	"github.com/nguyentantai21042004/summarize-flow/internal/config"
	"github.com/nguyentantai21042004/summarize-flow/internal/summarize"
)

type implProvider struct {
	apiKey string
	model  string
}

// New creates the Gemini generative-model provider. An empty API key leaves
// the provider unconfigured.
func New(cfg config.GeminiConfig) summarize.Provider {
	return &implProvider{
		apiKey: cfg.APIKey,
		model:  cfg.Model,
	}
}
