package summarize

import (
	"context"
	"fmt"
	"strings"
)

// Length is the coarse summary size requested by the user. Each provider
// translates it into its own parameters.
type Length string

const (
	LengthSmall  Length = "small"
	LengthMedium Length = "medium"
	LengthLarge  Length = "large"
)

// ParseLength parses a user-supplied length keyword, case-insensitively.
func ParseLength(s string) (Length, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "small":
		return LengthSmall, nil
	case "medium", "":
		return LengthMedium, nil
	case "large":
		return LengthLarge, nil
	default:
		return "", fmt.Errorf("unknown summary length %q (use small, medium or large)", s)
	}
}

// Preference selects which provider to use. Auto tries providers in priority
// order and stops at the first success.
type Preference string

const (
	PreferenceAuto        Preference = "auto"
	PreferenceHuggingFace Preference = "Hugging Face"
	PreferenceGemini      Preference = "Gemini"
)

// Result is the single normalized outcome of a summarization request.
// When Succeeded is true, Provider names the provider that produced Text and
// Text is non-empty. When Succeeded is false, Text carries a user-facing
// message and Provider is empty, except for a single-provider request where
// it names the provider that was asked for.
type Result struct {
	Text      string
	Provider  string
	Succeeded bool
}

// Provider is the capability interface each remote summarization backend
// implements. Summarize must absorb every fault into the error return and
// never panic past its boundary. MinWords is the smallest input, in words,
// the backend accepts; the orchestrator never calls a provider with less.
type Provider interface {
	Name() string
	Configured() bool
	MinWords() int
	Summarize(ctx context.Context, text string, length Length) (string, error)
}

// Summarizer is the provider-fallback orchestrator.
type Summarizer interface {
	Summarize(ctx context.Context, text string, pref Preference, length Length) Result
}
