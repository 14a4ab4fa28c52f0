package ai

import (
	"context"
	"fmt"
)

// AnswerReport answers a free-form question about the user's own records.
// The digest is the pre-rendered summary of the data the answer may use.
// This is the one gateway call with no local fallback, so the error is
// surfaced to the caller.
func (g *Gateway) AnswerReport(ctx context.Context, question, lang, digest string) (string, error) {
	raw, err := g.generate(ctx, g.timeout, reportSystem, reportPrompt(lang, question, digest))
	if err != nil {
		return "", fmt.Errorf("answer report question: %w", err)
	}
	return raw, nil
}
