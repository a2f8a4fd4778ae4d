package transcribe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
)

type listenResponse struct {
	Results struct {
		Channels []struct {
			Alternatives []struct {
				Transcript string `json:"transcript"`
			} `json:"alternatives"`
		} `json:"channels"`
	} `json:"results"`
}

func (t *implTranscriber) Configured() bool { return t.apiKey != "" }

// Transcribe streams the audio payload to the speech-to-text endpoint and
// returns the transcript of the first channel's best alternative.
func (t *implTranscriber) Transcribe(ctx context.Context, audio io.Reader, mimeType string) (string, error) {
	if !t.Configured() {
		return "", fmt.Errorf("deepgram: API key is not configured")
	}

	q := url.Values{}
	q.Set("model", t.model)
	q.Set("smart_format", strconv.FormatBool(t.smartFormat))
	endpoint := strings.TrimSuffix(t.endpoint, "/") + "/v1/listen?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, audio)
	if err != nil {
		return "", fmt.Errorf("deepgram: build request: %w", err)
	}
	req.Header.Set("Authorization", "Token "+t.apiKey)
	if mimeType == "" {
		mimeType = "audio/*"
	}
	req.Header.Set("Content-Type", mimeType)

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("deepgram: call listen endpoint: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("deepgram: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("deepgram: listen endpoint returned status %d", resp.StatusCode)
	}

	var parsed listenResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("deepgram: decode response: %w", err)
	}
	if len(parsed.Results.Channels) == 0 || len(parsed.Results.Channels[0].Alternatives) == 0 {
		return "", fmt.Errorf("deepgram: response contains no transcription result")
	}

	// May legitimately be empty: no speech in the audio.
	return parsed.Results.Channels[0].Alternatives[0].Transcript, nil
}

// MimeTypeForPath guesses the upload content type from the file extension.
// Deepgram sniffs the container anyway; audio/* is an accepted fallback.
func MimeTypeForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		return "audio/mpeg"
	case ".wav":
		return "audio/wav"
	case ".m4a":
		return "audio/mp4"
	case ".ogg":
		return "audio/ogg"
	case ".flac":
		return "audio/flac"
	default:
		return "audio/*"
	}
}
