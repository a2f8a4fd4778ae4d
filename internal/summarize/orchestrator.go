package summarize

import (
	"context"
	"fmt"
	"strings"
)

const msgTooShort = "Text is too short to summarize effectively."

// Summarize produces one summary for text, honoring the provider preference
// and the retry policy. It never returns an error: every outcome, including
// exhausted retries on all providers, is folded into the Result.
func (s *implSummarizer) Summarize(ctx context.Context, text string, pref Preference, length Length) Result {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Result{Text: msgTooShort}
	}
	words := len(strings.Fields(trimmed))

	candidates, single, res := s.selectCandidates(pref)
	if res != nil {
		return *res
	}

	var tried []Provider
	for _, p := range candidates {
		if words < p.MinWords() {
			s.logger.Debug(ctx, "%s needs at least %d words, got %d; skipping", p.Name(), p.MinWords(), words)
			continue
		}
		tried = append(tried, p)

		if summary, ok := s.attempt(ctx, p, trimmed, length); ok {
			return Result{Text: summary, Provider: p.Name(), Succeeded: true}
		}
	}

	if len(tried) == 0 {
		return Result{Text: msgTooShort}
	}
	if single != nil {
		return Result{
			Text:     fmt.Sprintf("%s summarization failed. Check API key or input.", single.Name()),
			Provider: single.Name(),
		}
	}
	return Result{Text: allFailedMessage(tried)}
}

// selectCandidates resolves the preference into an ordered provider list.
// For a single-provider preference it also returns that provider so failure
// messages can name it. A non-nil Result means selection itself failed.
func (s *implSummarizer) selectCandidates(pref Preference) ([]Provider, Provider, *Result) {
	if pref == PreferenceAuto {
		var configured []Provider
		for _, p := range s.providers {
			if p.Configured() {
				configured = append(configured, p)
			}
		}
		if len(configured) == 0 {
			return nil, nil, &Result{Text: "No summarization provider is configured. Set API keys in the environment."}
		}
		return configured, nil, nil
	}

	for _, p := range s.providers {
		if p.Name() != string(pref) {
			continue
		}
		if !p.Configured() {
			return nil, nil, &Result{
				Text:     fmt.Sprintf("%s is not configured. Cannot summarize.", p.Name()),
				Provider: p.Name(),
			}
		}
		return []Provider{p}, p, nil
	}
	return nil, nil, &Result{Text: fmt.Sprintf("Unknown summarization provider %q.", string(pref))}
}

// attempt runs the bounded retry loop for one provider. Every failure is
// retried uniformly up to the configured attempt count; the adapter contract
// does not distinguish permanent from transient errors.
func (s *implSummarizer) attempt(ctx context.Context, p Provider, text string, length Length) (string, bool) {
	for i := 1; i <= s.attempts; i++ {
		summary, err := p.Summarize(ctx, text, length)
		if err == nil && strings.TrimSpace(summary) != "" {
			s.logger.Debug(ctx, "%s succeeded on attempt %d/%d", p.Name(), i, s.attempts)
			return summary, true
		}
		if err != nil {
			s.logger.Warn(ctx, "%s attempt %d/%d failed: %v", p.Name(), i, s.attempts, err)
		} else {
			s.logger.Warn(ctx, "%s attempt %d/%d returned an empty summary", p.Name(), i, s.attempts)
		}
		if i < s.attempts {
			s.sleep(ctx, s.delay)
		}
	}
	return "", false
}

func allFailedMessage(tried []Provider) string {
	names := make([]string, 0, len(tried))
	for _, p := range tried {
		names = append(names, p.Name())
	}
	switch len(names) {
	case 1:
		return fmt.Sprintf("%s summarization failed. Check API key or input.", names[0])
	case 2:
		return fmt.Sprintf("Both %s and %s summarization failed.", names[0], names[1])
	default:
		return "All summarization providers failed."
	}
}
