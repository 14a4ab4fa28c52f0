// Package voice converts voice messages to text through an external
// transcription service.
package voice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrUnavailable means the transcription service is not configured or the
// service reported that recognition is not available.
var ErrUnavailable = errors.New("voice recognition is not available")

// IsUnavailable reports whether err represents an unavailable transcriber.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

// FileURLFunc resolves a platform file reference to a download URL.
type FileURLFunc func(fileRef string) (string, error)

// HTTPTranscriber posts audio to a transcription endpoint and reads back
// {"text": "..."}.
type HTTPTranscriber struct {
	endpoint string
	resolve  FileURLFunc
	client   *http.Client
}

// NewHTTPTranscriber creates a transcriber. An empty endpoint produces a
// transcriber that always reports ErrUnavailable, which keeps the wiring
// uniform when voice support is switched off.
func NewHTTPTranscriber(endpoint string, resolve FileURLFunc, timeout time.Duration) *HTTPTranscriber {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPTranscriber{
		endpoint: endpoint,
		resolve:  resolve,
		client:   &http.Client{Timeout: timeout},
	}
}

// Transcribe downloads the audio and sends it for recognition.
func (t *HTTPTranscriber) Transcribe(ctx context.Context, fileRef string) (string, error) {
	if t.endpoint == "" {
		return "", ErrUnavailable
	}

	url, err := t.resolve(fileRef)
	if err != nil {
		return "", fmt.Errorf("resolve audio url: %w", err)
	}

	audio, err := t.download(ctx, url)
	if err != nil {
		return "", fmt.Errorf("download audio: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, strings.NewReader(string(audio)))
	if err != nil {
		return "", fmt.Errorf("build transcription request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call transcription service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("transcription service returned %s", resp.Status)
	}

	var body struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode transcription response: %w", err)
	}

	text := strings.TrimSpace(body.Text)
	if text == "" || strings.Contains(strings.ToLower(text), "not available") {
		return "", ErrUnavailable
	}
	return text, nil
}

func (t *HTTPTranscriber) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}
