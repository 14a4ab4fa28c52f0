// Package ai is the extraction gateway: it turns free-form user text into
// structured expense/income/reminder data by prompting the model with a
// strict JSON contract, and degrades to deterministic local heuristics when
// the model is unreachable or returns something unusable.
package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/genai"
)

// Generator is the single remote call the gateway depends on. Tests stub it;
// production uses GeminiClient.
type Generator interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
}

// GeminiClient implements Generator on top of the GenAI SDK. The API key is
// picked up by the SDK from its environment.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates the model client.
func NewGeminiClient(ctx context.Context, model string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GeminiClient{client: client, model: model}, nil
}

// Generate issues one generation call and returns the raw text response.
func (c *GeminiClient) Generate(ctx context.Context, system, prompt string) (string, error) {
	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		},
	}

	var cfg *genai.GenerateContentConfig
	if system != "" {
		cfg = &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: system}}},
		}
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return text, nil
}

// Gateway bundles the generator with the per-task timeouts. Extraction
// methods never return an error for expense/income classification: a failed
// or malformed remote call always produces the local-heuristic result
// instead, so confirmation is never blocked on model availability.
type Gateway struct {
	gen            Generator
	timeout        time.Duration
	countryTimeout time.Duration
	log            zerolog.Logger
}

// NewGateway builds a gateway. timeout bounds extraction and time-parsing
// calls; countryTimeout bounds the lighter country-resolution call.
func NewGateway(gen Generator, timeout, countryTimeout time.Duration, log zerolog.Logger) *Gateway {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if countryTimeout <= 0 {
		countryTimeout = 15 * time.Second
	}
	return &Gateway{gen: gen, timeout: timeout, countryTimeout: countryTimeout, log: log}
}

func (g *Gateway) generate(ctx context.Context, timeout time.Duration, system, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return g.gen.Generate(ctx, system, prompt)
}
