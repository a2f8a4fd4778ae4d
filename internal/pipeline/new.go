package pipeline

import (
	"github.com/nguyentantai21042004/summarize-flow/internal/config"
	"github.com/nguyentantai21042004/summarize-flow/internal/extract"
	"github.com/nguyentantai21042004/summarize-flow/internal/logger"
	"github.com/nguyentantai21042004/summarize-flow/internal/summarize"
	"github.com/nguyentantai21042004/summarize-flow/internal/transcribe"
	"github.com/nguyentantai21042004/summarize-flow/pkg/executor"
)

type implPipeline struct {
	cfg         *config.Config
	extractor   extract.Extractor
	transcriber transcribe.Transcriber
	summarizer  summarize.Summarizer
	executor    executor.Executor
	logger      logger.Logger
}

// New creates a new Pipeline instance
func New(
	cfg *config.Config,
	ext extract.Extractor,
	tr transcribe.Transcriber,
	sum summarize.Summarizer,
	exec executor.Executor,
	log logger.Logger,
) Pipeline {
	return &implPipeline{
		cfg:         cfg,
		extractor:   ext,
		transcriber: tr,
		summarizer:  sum,
		executor:    exec,
		logger:      log,
	}
}

// Extensions returns every file extension the pipeline knows how to handle.
func Extensions() []string {
	out := make([]string, 0, len(documentExts)+len(audioExts)+len(videoExts))
	out = append(out, documentExts...)
	out = append(out, audioExts...)
	out = append(out, videoExts...)
	return out
}
