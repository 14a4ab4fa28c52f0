package voice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestTranscribeUnconfiguredIsUnavailable(t *testing.T) {
	tr := NewHTTPTranscriber("", nil, time.Second)

	_, err := tr.Transcribe(context.Background(), "file123")
	if !IsUnavailable(err) {
		t.Errorf("err = %v, want ErrUnavailable", err)
	}
}

func TestTranscribeRoundTrip(t *testing.T) {
	audio := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("fake-ogg-bytes"))
	}))
	defer audio.Close()

	svc := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"text": "coffee 5 dollars"}`))
	}))
	defer svc.Close()

	tr := NewHTTPTranscriber(svc.URL, func(string) (string, error) { return audio.URL, nil }, time.Second)

	got, err := tr.Transcribe(context.Background(), "file123")
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
	if got != "coffee 5 dollars" {
		t.Errorf("got %q", got)
	}
}

func TestTranscribeNotAvailableAnswer(t *testing.T) {
	audio := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("fake-ogg-bytes"))
	}))
	defer audio.Close()

	svc := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"text": "Speech recognition is NOT AVAILABLE"}`))
	}))
	defer svc.Close()

	tr := NewHTTPTranscriber(svc.URL, func(string) (string, error) { return audio.URL, nil }, time.Second)

	_, err := tr.Transcribe(context.Background(), "file123")
	if !IsUnavailable(err) {
		t.Errorf("err = %v, want ErrUnavailable", err)
	}
}
