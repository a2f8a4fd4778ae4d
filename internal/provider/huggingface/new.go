package huggingface

import (
	"net/http"
	"time"

	"github.com/nguyentantai21042004/summarize-flow/internal/config"
	"github.com/nguyentantai21042004/summarize-flow/internal/summarize"
)

type implProvider struct {
	endpoint string
	model    string
	apiKey   string
	client   *http.Client
}

// New creates the Hugging Face hosted-inference provider. An empty API key
// leaves the provider unconfigured; it reports that instead of calling out.
func New(cfg config.HuggingFaceConfig) summarize.Provider {
	return &implProvider{
		endpoint: cfg.Endpoint,
		model:    cfg.Model,
		apiKey:   cfg.APIKey,
		client:   &http.Client{Timeout: 60 * time.Second},
	}
}
