package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/nguyentantai21042004/summarize-flow/internal/summarize"
)

const ProviderName = "Hugging Face"

// The hosted inference endpoint rejects very short inputs.
const minWords = 5

type summarizeRequest struct {
	Inputs     string              `json:"inputs"`
	Parameters summarizeParameters `json:"parameters"`
}

type summarizeParameters struct {
	MinLength int `json:"min_length"`
	MaxLength int `json:"max_length"`
}

type summarizeResponse struct {
	SummaryText string `json:"summary_text"`
}

func (p *implProvider) Name() string     { return ProviderName }
func (p *implProvider) Configured() bool { return p.apiKey != "" }
func (p *implProvider) MinWords() int    { return minWords }

// Summarize posts the text to the hosted inference model with explicit
// min/max length bounds and returns the first summary in the response array.
func (p *implProvider) Summarize(ctx context.Context, text string, length summarize.Length) (string, error) {
	if !p.Configured() {
		return "", fmt.Errorf("hugging face: API token is not configured")
	}

	minLen, maxLen := lengthBounds(length)
	body, err := json.Marshal(summarizeRequest{
		Inputs:     text,
		Parameters: summarizeParameters{MinLength: minLen, MaxLength: maxLen},
	})
	if err != nil {
		return "", fmt.Errorf("hugging face: encode request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s", strings.TrimSuffix(p.endpoint, "/"), p.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("hugging face: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("hugging face: call inference endpoint: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("hugging face: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("hugging face: inference endpoint returned status %d", resp.StatusCode)
	}

	var results []summarizeResponse
	if err := json.Unmarshal(data, &results); err != nil {
		return "", fmt.Errorf("hugging face: decode response: %w", err)
	}
	if len(results) == 0 || strings.TrimSpace(results[0].SummaryText) == "" {
		return "", fmt.Errorf("hugging face: response contains no summary")
	}

	return results[0].SummaryText, nil
}

// lengthBounds maps the coarse length keyword to the model's explicit
// min/max token bounds.
func lengthBounds(length summarize.Length) (int, int) {
	switch length {
	case summarize.LengthSmall:
		return 20, 80
	case summarize.LengthMedium:
		return 50, 150
	default:
		return 100, 250
	}
}
