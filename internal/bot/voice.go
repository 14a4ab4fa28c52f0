package bot

import (
	"context"
	"errors"
)

// errNoTranscriber is returned when voice support was never configured.
var errNoTranscriber = errors.New("no transcriber configured")

func (b *Bot) transcribe(ctx context.Context, fileRef string) (string, error) {
	if b.stt == nil {
		return "", errNoTranscriber
	}
	text, err := b.stt.Transcribe(ctx, fileRef)
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", errors.New("empty transcript")
	}
	return text, nil
}
