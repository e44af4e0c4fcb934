package translation

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"
)

// Cache stores finished translations. Get reports found=false on a miss.
type Cache interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// CachedTranslator consults the cache before the backend. Cache errors are
// logged and otherwise ignored.
type CachedTranslator struct {
	next  Translator
	cache Cache
	ttl   time.Duration
}

func NewCachedTranslator(next Translator, cache Cache, ttl time.Duration) *CachedTranslator {
	return &CachedTranslator{next: next, cache: cache, ttl: ttl}
}

func (c *CachedTranslator) Translate(ctx context.Context, text, source, target string) (string, error) {
	key := CacheKey(text, source, target)

	cached, found, err := c.cache.Get(ctx, key)
	if err != nil {
		slog.Warn("[TranslationCache] Lookup failed",
			slog.String("key", key),
			slog.String("error", err.Error()))
	} else if found {
		slog.Debug("[TranslationCache] Hit", slog.String("key", key))
		return cached, nil
	}

	translated, err := c.next.Translate(ctx, text, source, target)
	if err != nil {
		return "", err
	}

	if translated == "" {
		return translated, nil
	}
	if err := c.cache.Set(ctx, key, translated, c.ttl); err != nil {
		slog.Warn("[TranslationCache] Store failed",
			slog.String("key", key),
			slog.String("error", err.Error()))
	}
	return translated, nil
}

func CacheKey(text, source, target string) string {
	sum := sha256.Sum256([]byte(text))
	return "translation:" + source + ":" + target + ":" + hex.EncodeToString(sum[:])
}
