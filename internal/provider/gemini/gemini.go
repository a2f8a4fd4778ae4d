package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/summarize-flow/internal/summarize"
)

const ProviderName = "Gemini"

// Gemini gets only a natural-language length hint, so very short inputs
// produce summaries longer than the input. Rejected below this bound.
const minWords = 20

func (p *implProvider) Name() string     { return ProviderName }
func (p *implProvider) Configured() bool { return p.apiKey != "" }
func (p *implProvider) MinWords() int    { return minWords }

// Summarize embeds the length keyword into a prompt and sends it to the
// generative content endpoint. The client is created per call; genai clients
// are cheap and this keeps the provider free of shared mutable state.
func (p *implProvider) Summarize(ctx context.Context, text string, length summarize.Length) (string, error) {
	if !p.Configured() {
		return "", fmt.Errorf("gemini: API key is not configured")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  p.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("gemini: create client: %w", err)
	}

	prompt := buildPrompt(text, length)
	result, err := client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini: empty response")
	}

	var out string
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			out += part.Text
		}
	}
	if out == "" {
		return "", fmt.Errorf("gemini: response contains no text")
	}

	return out, nil
}

func buildPrompt(text string, length summarize.Length) string {
	return fmt.Sprintf("Summarize this text in a %s length:\n\n%s", length, text)
}
