package models

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/sashabaranov/go-openai"

	"codeberg.org/snonux/polytrans/internal/config"
)

// modelLister is the slice of the go-openai client the Lister needs.
type modelLister interface {
	ListModels(ctx context.Context) (openai.ModelsList, error)
}

// Lister queries the Ollama instance for installed models.
type Lister struct {
	api modelLister
}

// NewLister creates a lister against the configured Ollama endpoint.
func NewLister(cfg *config.Config) *Lister {
	oc := openai.DefaultConfig("ollama")
	oc.BaseURL = cfg.BaseURL() + "/v1"
	return &Lister{api: openai.NewClientWithConfig(oc)}
}

// List returns the installed model names in sorted order.
func (l *Lister) List(ctx context.Context) ([]string, error) {
	models, err := l.api.ListModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}

	names := make([]string, 0, len(models.Models))
	for _, model := range models.Models {
		names = append(names, model.ID)
	}
	sort.Strings(names)
	return names, nil
}

// Print writes the installed models to w, one per line.
func (l *Lister) Print(ctx context.Context, w io.Writer) error {
	names, err := l.List(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Available Ollama models:")
	if len(names) == 0 {
		fmt.Fprintln(w, "  No models installed. Pull one with: ollama pull <model>")
		return nil
	}
	for _, name := range names {
		fmt.Fprintf(w, "  %s\n", name)
	}
	return nil
}
