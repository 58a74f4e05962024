// Package openai backs the live model-discovery tier with the official SDK
// instead of a hand-rolled listing call.
package openai

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Lister lists OpenAI model identifiers using the official SDK.
type Lister struct {
	client openai.Client
}

// NewLister creates a lister authenticated with the given API key.
func NewLister(cfg Config) (*Lister, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.MaxRetries > 0 {
		opts = append(opts, option.WithMaxRetries(cfg.MaxRetries))
	}

	return &Lister{
		client: openai.NewClient(opts...),
	}, nil
}

// ListModels returns the identifiers of the models the account can access.
func (l *Lister) ListModels(ctx context.Context) ([]string, error) {
	page, err := l.client.Models.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}

	models := make([]string, 0, len(page.Data))
	for _, m := range page.Data {
		if m.ID != "" {
			models = append(models, m.ID)
		}
	}

	if len(models) == 0 {
		return nil, errors.New("no models returned")
	}

	return models, nil
}
