package transcribe

import (
	"net/http"
	"time"

	"github.com/nguyentantai21042004/summarize-flow/internal/config"
)

type implTranscriber struct {
	endpoint    string
	model       string
	smartFormat bool
	apiKey      string
	client      *http.Client
}

// New creates a Transcriber backed by the Deepgram prerecorded endpoint.
func New(cfg config.TranscriptionConfig) Transcriber {
	return &implTranscriber{
		endpoint:    cfg.Endpoint,
		model:       cfg.Model,
		smartFormat: cfg.SmartFormat,
		apiKey:      cfg.APIKey,
		client:      &http.Client{Timeout: 5 * time.Minute},
	}
}
