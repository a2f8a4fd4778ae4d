package summarize

import (
	"context"
	"time"

	"github.com/nguyentantai21042004/summarize-flow/internal/config"
	"github.com/nguyentantai21042004/summarize-flow/internal/logger"
)

type implSummarizer struct {
	providers []Provider
	attempts  int
	delay     time.Duration
	logger    logger.Logger
	sleep     func(ctx context.Context, d time.Duration)
}

// New creates a Summarizer that tries the given providers in slice order.
func New(providers []Provider, retry config.RetryConfig, log logger.Logger) Summarizer {
	return &implSummarizer{
		providers: providers,
		attempts:  retry.Attempts,
		delay:     time.Duration(retry.DelaySeconds) * time.Second,
		logger:    log,
		sleep:     sleepContext,
	}
}

func sleepContext(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
