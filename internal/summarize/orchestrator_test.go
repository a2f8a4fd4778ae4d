package summarize

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/nguyentantai21042004/summarize-flow/internal/config"
	"github.com/nguyentantai21042004/summarize-flow/internal/logger"
)

// stubProvider is a deterministic, call-counting Provider for orchestrator
// tests. It fails the first failBefore calls and succeeds afterwards.
type stubProvider struct {
	name         string
	unconfigured bool
	minWords     int
	failBefore   int
	summary      string
	calls        int
}

func (p *stubProvider) Name() string     { return p.name }
func (p *stubProvider) Configured() bool { return !p.unconfigured }
func (p *stubProvider) MinWords() int    { return p.minWords }

func (p *stubProvider) Summarize(ctx context.Context, text string, length Length) (string, error) {
	p.calls++
	if p.calls <= p.failBefore {
		return "", errors.New("stubbed failure")
	}
	return p.summary, nil
}

func alwaysFailing(name string, minWords int) *stubProvider {
	return &stubProvider{name: name, minWords: minWords, failBefore: 1 << 30}
}

func newTestSummarizer(t *testing.T, attempts int, providers ...Provider) *implSummarizer {
	t.Helper()
	s := New(providers, config.RetryConfig{Attempts: attempts, DelaySeconds: 2}, logger.New("error")).(*implSummarizer)
	s.sleep = func(ctx context.Context, d time.Duration) {} // no real delays in tests
	return s
}

const longInput = "the quick brown fox jumps over the lazy dog near the quiet river " +
	"while the patient heron watches from the opposite bank waiting for fish"

func TestShortInputMakesNoProviderCalls(t *testing.T) {
	a := &stubProvider{name: "Hugging Face", minWords: 5, summary: "sum"}
	b := &stubProvider{name: "Gemini", minWords: 20, summary: "sum"}
	s := newTestSummarizer(t, 3, a, b)

	res := s.Summarize(context.Background(), "a", PreferenceAuto, LengthMedium)

	if res.Succeeded {
		t.Fatal("Summarize() succeeded for one-word input")
	}
	if res.Provider != "" {
		t.Errorf("Provider = %q, want unset", res.Provider)
	}
	if !strings.Contains(res.Text, "too short") {
		t.Errorf("Text = %q, want too-short message", res.Text)
	}
	if a.calls != 0 || b.calls != 0 {
		t.Errorf("provider calls = %d, %d; want 0, 0", a.calls, b.calls)
	}
}

func TestEmptyInputMakesNoProviderCalls(t *testing.T) {
	a := &stubProvider{name: "Hugging Face", minWords: 5, summary: "sum"}
	s := newTestSummarizer(t, 3, a)

	for _, input := range []string{"", "   ", "\n\t"} {
		res := s.Summarize(context.Background(), input, PreferenceAuto, LengthMedium)
		if res.Succeeded {
			t.Errorf("Summarize(%q) succeeded", input)
		}
	}
	if a.calls != 0 {
		t.Errorf("provider calls = %d, want 0", a.calls)
	}
}

func TestAutoShortCircuitsOnFirstSuccess(t *testing.T) {
	a := &stubProvider{name: "Hugging Face", minWords: 5, summary: "summary from A"}
	b := &stubProvider{name: "Gemini", minWords: 20, summary: "summary from B"}
	s := newTestSummarizer(t, 3, a, b)

	res := s.Summarize(context.Background(), longInput, PreferenceAuto, LengthMedium)

	if !res.Succeeded {
		t.Fatalf("Summarize() failed: %v", res.Text)
	}
	if res.Provider != "Hugging Face" {
		t.Errorf("Provider = %q, want Hugging Face", res.Provider)
	}
	if res.Text != "summary from A" {
		t.Errorf("Text = %q", res.Text)
	}
	if b.calls != 0 {
		t.Errorf("second provider called %d times, want 0", b.calls)
	}
}

func TestAutoFallsBackToSecondProvider(t *testing.T) {
	a := alwaysFailing("Hugging Face", 5)
	b := &stubProvider{name: "Gemini", minWords: 20, summary: "summary from B"}
	s := newTestSummarizer(t, 3, a, b)

	res := s.Summarize(context.Background(), longInput, PreferenceAuto, LengthMedium)

	if !res.Succeeded {
		t.Fatalf("Summarize() failed: %v", res.Text)
	}
	if res.Provider != "Gemini" {
		t.Errorf("Provider = %q, want Gemini", res.Provider)
	}
	if a.calls != 3 {
		t.Errorf("first provider calls = %d, want 3 (retries exhausted)", a.calls)
	}
}

func TestRetryCount(t *testing.T) {
	tests := []struct {
		name     string
		attempts int
		wantOK   bool
	}{
		{"succeeds within budget", 3, true},
		{"budget too small", 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Fails twice, succeeds on the third call.
			p := &stubProvider{name: "Hugging Face", minWords: 5, failBefore: 2, summary: "third time lucky"}
			s := newTestSummarizer(t, tt.attempts, p)

			res := s.Summarize(context.Background(), longInput, PreferenceAuto, LengthMedium)

			if res.Succeeded != tt.wantOK {
				t.Errorf("Succeeded = %v, want %v (%s)", res.Succeeded, tt.wantOK, res.Text)
			}
			if p.calls != tt.attempts {
				t.Errorf("calls = %d, want %d", p.calls, tt.attempts)
			}
		})
	}
}

func TestIdempotence(t *testing.T) {
	a := &stubProvider{name: "Hugging Face", minWords: 5, summary: "stable summary"}
	s := newTestSummarizer(t, 3, a)

	first := s.Summarize(context.Background(), longInput, PreferenceAuto, LengthSmall)
	second := s.Summarize(context.Background(), longInput, PreferenceAuto, LengthSmall)

	if first != second {
		t.Errorf("results differ: %+v vs %+v", first, second)
	}
}

func TestSpecificPreferenceOnlyCallsThatProvider(t *testing.T) {
	a := &stubProvider{name: "Hugging Face", minWords: 5, summary: "from A"}
	b := &stubProvider{name: "Gemini", minWords: 20, summary: "from B"}
	s := newTestSummarizer(t, 3, a, b)

	res := s.Summarize(context.Background(), longInput, PreferenceGemini, LengthMedium)

	if !res.Succeeded || res.Provider != "Gemini" {
		t.Fatalf("result = %+v, want Gemini success", res)
	}
	if a.calls != 0 {
		t.Errorf("non-preferred provider called %d times", a.calls)
	}
}

func TestSpecificPreferenceFailureNamesProvider(t *testing.T) {
	a := alwaysFailing("Hugging Face", 5)
	s := newTestSummarizer(t, 3, a)

	res := s.Summarize(context.Background(), longInput, PreferenceHuggingFace, LengthMedium)

	if res.Succeeded {
		t.Fatal("Summarize() succeeded, want failure")
	}
	if res.Provider != "Hugging Face" {
		t.Errorf("Provider = %q, want Hugging Face", res.Provider)
	}
	if !strings.Contains(res.Text, "Hugging Face summarization failed") {
		t.Errorf("Text = %q", res.Text)
	}
}

func TestAutoBothProvidersFail(t *testing.T) {
	a := alwaysFailing("Hugging Face", 5)
	b := alwaysFailing("Gemini", 20)
	s := newTestSummarizer(t, 2, a, b)

	res := s.Summarize(context.Background(), longInput, PreferenceAuto, LengthMedium)

	if res.Succeeded {
		t.Fatal("Summarize() succeeded, want failure")
	}
	if res.Provider != "" {
		t.Errorf("Provider = %q, want unset", res.Provider)
	}
	if res.Text != "Both Hugging Face and Gemini summarization failed." {
		t.Errorf("Text = %q", res.Text)
	}
	if a.calls != 2 || b.calls != 2 {
		t.Errorf("calls = %d, %d; want 2, 2", a.calls, b.calls)
	}
}

func TestUnconfiguredProviderSkippedInAuto(t *testing.T) {
	a := &stubProvider{name: "Hugging Face", minWords: 5, unconfigured: true, summary: "from A"}
	b := &stubProvider{name: "Gemini", minWords: 20, summary: "from B"}
	s := newTestSummarizer(t, 3, a, b)

	res := s.Summarize(context.Background(), longInput, PreferenceAuto, LengthMedium)

	if !res.Succeeded || res.Provider != "Gemini" {
		t.Fatalf("result = %+v, want Gemini success", res)
	}
	if a.calls != 0 {
		t.Errorf("unconfigured provider called %d times", a.calls)
	}
}

func TestUnconfiguredProviderRejectedWhenPreferred(t *testing.T) {
	a := &stubProvider{name: "Hugging Face", minWords: 5, unconfigured: true}
	s := newTestSummarizer(t, 3, a)

	res := s.Summarize(context.Background(), longInput, PreferenceHuggingFace, LengthMedium)

	if res.Succeeded {
		t.Fatal("Summarize() succeeded with unconfigured provider")
	}
	if !strings.Contains(res.Text, "not configured") {
		t.Errorf("Text = %q", res.Text)
	}
	if a.calls != 0 {
		t.Errorf("unconfigured provider called %d times", a.calls)
	}
}

func TestNoConfiguredProviders(t *testing.T) {
	a := &stubProvider{name: "Hugging Face", minWords: 5, unconfigured: true}
	b := &stubProvider{name: "Gemini", minWords: 20, unconfigured: true}
	s := newTestSummarizer(t, 3, a, b)

	res := s.Summarize(context.Background(), longInput, PreferenceAuto, LengthMedium)

	if res.Succeeded {
		t.Fatal("Summarize() succeeded with no configured providers")
	}
	if !strings.Contains(res.Text, "No summarization provider is configured") {
		t.Errorf("Text = %q", res.Text)
	}
}

func TestStricterMinimumSkipsOnlySecondProvider(t *testing.T) {
	// Ten words: enough for the 5-word provider, not for the 20-word one.
	input := strings.Join(strings.Fields(longInput)[:10], " ")

	a := alwaysFailing("Hugging Face", 5)
	b := &stubProvider{name: "Gemini", minWords: 20, summary: "from B"}
	s := newTestSummarizer(t, 2, a, b)

	res := s.Summarize(context.Background(), input, PreferenceAuto, LengthMedium)

	if res.Succeeded {
		t.Fatal("Summarize() succeeded, want failure")
	}
	if b.calls != 0 {
		t.Errorf("below-minimum provider called %d times", b.calls)
	}
	if res.Text != "Hugging Face summarization failed. Check API key or input." {
		t.Errorf("Text = %q", res.Text)
	}
}

func TestParseLength(t *testing.T) {
	tests := []struct {
		in      string
		want    Length
		wantErr bool
	}{
		{"small", LengthSmall, false},
		{"Medium", LengthMedium, false},
		{"LARGE", LengthLarge, false},
		{" small ", LengthSmall, false},
		{"", LengthMedium, false},
		{"tiny", "", true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.in), func(t *testing.T) {
			got, err := ParseLength(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLength(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLength(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
