package transcribe

import (
	"context"
	"io"
)

// Transcriber converts prerecorded audio into plain text. An empty transcript
// with a nil error means the service detected no speech; callers skip
// summarization in that case instead of treating it as a failure.
type Transcriber interface {
	Configured() bool
	Transcribe(ctx context.Context, audio io.Reader, mimeType string) (string, error)
}
