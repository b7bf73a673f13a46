package detect

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"

	"go.uber.org/zap"

	"codeberg.org/snonux/polytrans/internal/prompt"
)

// DetectionSampleSize is how many leading characters of a document are shown
// to the model. Detection does not need more than this.
const DetectionSampleSize = 500

// Model is the single model exchange the detector depends on.
type Model interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Detector runs cached language detection against a model.
type Detector struct {
	model Model
	cache *Cache
	log   *zap.Logger
}

// New builds a detector. cacheEnabled controls whether results are reused
// across calls for identical documents.
func New(model Model, cacheEnabled bool, log *zap.Logger) *Detector {
	return &Detector{
		model: model,
		cache: NewCache(cacheEnabled),
		log:   log,
	}
}

// HashKey returns the cache key for a document, an md5 digest of the full
// text. The full text is hashed, not just the sample, so documents sharing
// a prefix do not collide.
func HashKey(text string) string {
	sum := md5.Sum([]byte(text))
	return hex.EncodeToString(sum[:])
}

// Detect returns the language name for text, consulting the cache first.
// The model's answer is normalized through the synonym table; an answer
// outside the canonical set passes through as reported.
func (d *Detector) Detect(ctx context.Context, text string) (string, error) {
	key := HashKey(text)
	lang, cached, err := d.cache.GetOrCompute(key, func() (string, error) {
		return d.detect(ctx, text)
	})
	if err != nil {
		return "", err
	}
	if cached {
		d.log.Debug("language detection cache hit",
			zap.String("key", key),
			zap.String("language", lang))
	}
	return lang, nil
}

func (d *Detector) detect(ctx context.Context, text string) (string, error) {
	sample := text
	if runes := []rune(sample); len(runes) > DetectionSampleSize {
		sample = string(runes[:DetectionSampleSize])
	}

	system, user := prompt.Detection(sample, Canonical(), OtherLanguage)
	raw, err := d.model.Complete(ctx, system, user)
	if err != nil {
		return "", fmt.Errorf("language detection failed: %w", err)
	}

	lang := Normalize(raw)
	d.log.Debug("language detected",
		zap.String("raw", raw),
		zap.String("language", lang))
	return lang, nil
}

// ClearCache drops all cached detections and returns how many were dropped.
func (d *Detector) ClearCache() int { return d.cache.Clear() }

// CacheStats returns a snapshot of the detection cache.
func (d *Detector) CacheStats() Stats { return d.cache.Stats() }
