package main

import (
	"context"
	"log/slog"

	"github.com/spacesedan/sentilens/config"
	"github.com/spacesedan/sentilens/internal/clients"
	"github.com/spacesedan/sentilens/internal/translation"
)

// buildTranslator assembles the configured backend, chunking and optional
// cache. A backend that cannot be built degrades to translation.Unavailable,
// which makes every request fall back to the original text.
func buildTranslator(ctx context.Context, cfg config.Config) (translation.Translator, func()) {
	tc := cfg.Translation
	cleanup := func() {}

	var backend translation.Translator
	switch tc.Provider {
	case config.ProviderGoogle:
		backend = translation.NewChunkedTranslator(
			clients.NewGoogleTranslateClient(tc.GoogleEndpoint, tc.HTTPTimeout, tc.MaxRetries),
			tc.ChunkChars,
		)
	case config.ProviderOpenAI:
		backend = translation.NewChunkedTranslator(
			clients.NewOpenAITranslator(tc.OpenAIAPIKey, tc.OpenAIModel, tc.HTTPTimeout),
			tc.ChunkChars,
		)
	case config.ProviderLambda:
		lt, err := clients.NewLambdaTranslator(ctx, tc.LambdaFunction, tc.ChunkChars, tc.HTTPTimeout)
		if err != nil {
			slog.Warn("[Main] Lambda translator unavailable",
				slog.String("error", err.Error()))
			return translation.Unavailable{}, cleanup
		}
		backend = lt
	default:
		return translation.Unavailable{}, cleanup
	}

	if cfg.Cache.Address == "" {
		return backend, cleanup
	}

	cache, err := clients.NewValkeyCache(ctx, clients.ValkeyOptions{
		Address:  cfg.Cache.Address,
		Password: cfg.Cache.Password,
		TLS:      cfg.Cache.TLS,
	})
	if err != nil {
		slog.Warn("[Main] Translation cache disabled",
			slog.String("error", err.Error()))
		return backend, cleanup
	}
	return translation.NewCachedTranslator(backend, cache, cfg.Cache.TTL), cache.Close
}
