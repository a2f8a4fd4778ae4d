package extract

type implExtractor struct{}

// New creates an Extractor for PDF, DOCX and TXT files.
func New() Extractor {
	return &implExtractor{}
}
