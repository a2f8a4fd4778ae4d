package extract

import (
	"context"
	"errors"
)

// ErrUnsupportedType marks a file whose extension is not one of the
// recognized document types. Distinct from a read error on a recognized
// type, which callers report as-is.
var ErrUnsupportedType = errors.New("unsupported document type")

// Extractor pulls plain text out of a document file. An empty string with a
// nil error means the document was readable but contained no text.
type Extractor interface {
	Extract(ctx context.Context, path string) (string, error)
	Supported(path string) bool
}
