package engine

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"codeberg.org/snonux/polytrans/internal/chunker"
	"codeberg.org/snonux/polytrans/internal/config"
	"codeberg.org/snonux/polytrans/internal/detect"
	"codeberg.org/snonux/polytrans/internal/parser"
	"codeberg.org/snonux/polytrans/internal/prompt"
)

// SummarySampleSize is how many leading characters of the merged translation
// feed the standalone summary call for multi-chunk documents.
const SummarySampleSize = 1000

// Model is the single model exchange the engine depends on.
type Model interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Engine is the translation pipeline.
type Engine struct {
	cfg      *config.Config
	model    Model
	detector *detect.Detector
	splitter *chunker.Splitter
	log      *zap.Logger
}

// New wires the pipeline from the configuration. The chunking parameters
// are validated here so a bad configuration fails at startup.
func New(cfg *config.Config, model Model, log *zap.Logger) (*Engine, error) {
	ct := cfg.Translation.ChunkTranslation
	splitter, err := chunker.New(ct.MaxChunkSize, ct.ChunkOverlap, ct.Enabled)
	if err != nil {
		return nil, err
	}
	return &Engine{
		cfg:      cfg,
		model:    model,
		detector: detect.New(model, cfg.Translation.LanguageDetection.CacheEnabled, log),
		splitter: splitter,
		log:      log,
	}, nil
}

// Request is one translation job.
type Request struct {
	Text       string
	TargetLang string
	Domain     string
	Glossary   map[string]string
	// Summary overrides the configured default when set.
	Summary *bool
}

// Result is a completed translation.
type Result struct {
	DetectedLanguage string `json:"detected_language"`
	TargetLanguage   string `json:"target_language"`
	TranslatedText   string `json:"translated_text"`
	Summary          string `json:"summary,omitempty"`
	ChunkCount       int    `json:"chunk_count"`
}

// Translate runs the full pipeline for one document.
func (e *Engine) Translate(ctx context.Context, req Request) (*Result, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, fmt.Errorf("nothing to translate: text is empty")
	}

	targetLang := req.TargetLang
	if targetLang == "" {
		targetLang = e.cfg.Translation.DefaultTargetLang
	}
	wantSummary := e.cfg.Translation.SummaryGeneration.Enabled
	if req.Summary != nil {
		wantSummary = *req.Summary
	}

	sourceLang, err := e.detector.Detect(ctx, req.Text)
	if err != nil {
		return nil, err
	}

	chunks := e.splitter.Split(req.Text)
	e.log.Info("translating document",
		zap.String("source_lang", sourceLang),
		zap.String("target_lang", targetLang),
		zap.Int("chunks", len(chunks)),
		zap.Bool("summary", wantSummary))

	result := &Result{
		DetectedLanguage: sourceLang,
		TargetLanguage:   targetLang,
		ChunkCount:       len(chunks),
	}

	if len(chunks) == 1 {
		translated, summary, err := e.translateChunk(ctx, chunks[0].Text, sourceLang, targetLang, req, wantSummary)
		if err != nil {
			return nil, err
		}
		result.TranslatedText = translated
		result.Summary = summary
		return result, nil
	}

	// Multi-chunk documents suppress the per-chunk summary and run one
	// summary call over the merged result instead.
	parts := make([]string, len(chunks))
	for i, chunk := range chunks {
		translated, _, err := e.translateChunk(ctx, chunk.Text, sourceLang, targetLang, req, false)
		if err != nil {
			return nil, fmt.Errorf("chunk %d/%d: %w", i+1, len(chunks), err)
		}
		parts[i] = translated
		e.log.Debug("chunk translated",
			zap.Int("chunk", i+1),
			zap.Int("chunks", len(chunks)))
	}
	result.TranslatedText = mergeChunks(parts, e.cfg.Translation.ChunkTranslation.ChunkOverlap)

	if wantSummary {
		summary, err := e.generateSummary(ctx, result.TranslatedText, targetLang)
		if err != nil {
			return nil, err
		}
		result.Summary = summary
	}
	return result, nil
}

// translateChunk runs one translation exchange and parses the response.
func (e *Engine) translateChunk(ctx context.Context, text, sourceLang, targetLang string, req Request, wantSummary bool) (string, string, error) {
	system, user := prompt.Translation(text, sourceLang, targetLang, req.Domain, req.Glossary, wantSummary)
	resp, err := e.model.Complete(ctx, system, user)
	if err != nil {
		return "", "", err
	}

	translated, summary := parser.Parse(resp, wantSummary)
	if translated == "" {
		return "", "", fmt.Errorf("model response carries no translation")
	}
	if wantSummary {
		summary = e.truncateSummary(summary)
	}
	return translated, summary, nil
}

// generateSummary summarizes an already translated text with a dedicated
// model call.
func (e *Engine) generateSummary(ctx context.Context, translated, targetLang string) (string, error) {
	sample := translated
	if runes := []rune(sample); len(runes) > SummarySampleSize {
		sample = string(runes[:SummarySampleSize])
	}

	sg := e.cfg.Translation.SummaryGeneration
	system, user := prompt.Summary(sample, targetLang, sg.MaxLength, sg.PromptTemplate)
	resp, err := e.model.Complete(ctx, system, user)
	if err != nil {
		return "", fmt.Errorf("summary generation failed: %w", err)
	}
	return e.truncateSummary(strings.TrimSpace(resp)), nil
}

// truncateSummary enforces the configured summary length bound.
func (e *Engine) truncateSummary(summary string) string {
	max := e.cfg.Translation.SummaryGeneration.MaxLength
	runes := []rune(summary)
	if len(runes) <= max {
		return summary
	}
	return string(runes[:max]) + "..."
}

// ClearLanguageCache drops all cached language detections.
func (e *Engine) ClearLanguageCache() int { return e.detector.ClearCache() }

// CacheStats returns a snapshot of the language detection cache.
func (e *Engine) CacheStats() detect.Stats { return e.detector.CacheStats() }
