package pipeline

import "context"

// Pipeline defines the interface for watch-mode file processing: one input
// file in, one written summary out.
type Pipeline interface {
	Process(ctx context.Context, filePath string) error
}
