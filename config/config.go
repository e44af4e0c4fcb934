package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spacesedan/sentilens/internal/sentiment"
)

// ErrInvalidConfig is returned when an environment variable holds a value
// that cannot be used.
var ErrInvalidConfig = errors.New("invalid configuration")

const (
	ProviderGoogle = "google"
	ProviderOpenAI = "openai"
	ProviderLambda = "lambda"
	ProviderNone   = "none"
)

const (
	DefaultSourceLang     = "es"
	DefaultTargetLang     = "en"
	DefaultHTTPTimeout    = 15 * time.Second
	DefaultMaxRetries     = 1
	DefaultChunkChars     = 4500
	DefaultPreviewChars   = 1000
	DefaultCacheTTL       = 24 * time.Hour
	DefaultOpenAIModel    = "gpt-4o-mini"
	DefaultLambdaFunction = "translator-romance-en"
)

type Config struct {
	Env      string
	LogLevel string

	Translation TranslationConfig
	Cache       CacheConfig

	SentimentThreshold float64
	PreviewChars       int
}

type TranslationConfig struct {
	Provider       string
	SourceLang     string
	TargetLang     string
	MaxRetries     int
	ChunkChars     int
	HTTPTimeout    time.Duration
	GoogleEndpoint string
	OpenAIAPIKey   string
	OpenAIModel    string
	LambdaFunction string
}

// CacheConfig configures the optional Valkey translation cache. An empty
// Address disables it.
type CacheConfig struct {
	Address  string
	Password string
	TLS      bool
	TTL      time.Duration
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Config, error) {
	env := getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}

	cfg := Config{
		Env:      env,
		LogLevel: strings.ToLower(stringOr(getenv("LOG_LEVEL"), "info")),
		Translation: TranslationConfig{
			Provider:       strings.ToLower(stringOr(getenv("TRANSLATOR_PROVIDER"), ProviderGoogle)),
			SourceLang:     stringOr(getenv("TRANSLATE_SOURCE_LANG"), DefaultSourceLang),
			TargetLang:     stringOr(getenv("TRANSLATE_TARGET_LANG"), DefaultTargetLang),
			GoogleEndpoint: getenv("GOOGLE_TRANSLATE_ENDPOINT"),
			OpenAIAPIKey:   getenv("OPENAI_API_KEY"),
			OpenAIModel:    stringOr(getenv("OPENAI_MODEL"), DefaultOpenAIModel),
			LambdaFunction: stringOr(getenv("LAMBDA_TRANSLATOR_FUNCTION"), DefaultLambdaFunction),
		},
		Cache: CacheConfig{
			Address:  getenv("VALKEY_INIT_ADDRESS"),
			Password: getenv("VALKEY_PASSWORD"),
			TLS:      getenv("VALKEY_TLS") == "true",
		},
	}

	var err error
	if cfg.Translation.MaxRetries, err = intOr(getenv, "TRANSLATE_MAX_RETRIES", DefaultMaxRetries, 1); err != nil {
		return Config{}, err
	}
	if cfg.Translation.ChunkChars, err = intOr(getenv, "TRANSLATE_CHUNK_CHARS", DefaultChunkChars, 1); err != nil {
		return Config{}, err
	}
	if cfg.PreviewChars, err = intOr(getenv, "PREVIEW_CHARS", DefaultPreviewChars, 1); err != nil {
		return Config{}, err
	}
	if cfg.Translation.HTTPTimeout, err = durationOr(getenv, "HTTP_TIMEOUT", DefaultHTTPTimeout); err != nil {
		return Config{}, err
	}
	if cfg.Cache.TTL, err = durationOr(getenv, "TRANSLATION_CACHE_TTL", DefaultCacheTTL); err != nil {
		return Config{}, err
	}

	cfg.SentimentThreshold = sentiment.DefaultThreshold
	if raw := getenv("SENTIMENT_THRESHOLD"); raw != "" {
		t, err := strconv.ParseFloat(raw, 64)
		if err != nil || t < 0 || t >= 1 {
			return Config{}, fmt.Errorf("%w: SENTIMENT_THRESHOLD=%q must be in [0,1)", ErrInvalidConfig, raw)
		}
		cfg.SentimentThreshold = t
	}

	switch cfg.Translation.Provider {
	case ProviderGoogle, ProviderNone, ProviderLambda:
	case ProviderOpenAI:
		if cfg.Translation.OpenAIAPIKey == "" {
			return Config{}, fmt.Errorf("%w: OPENAI_API_KEY is required for the openai provider", ErrInvalidConfig)
		}
	default:
		return Config{}, fmt.Errorf("%w: unknown TRANSLATOR_PROVIDER %q", ErrInvalidConfig, cfg.Translation.Provider)
	}

	return cfg, nil
}

func stringOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func intOr(getenv func(string) string, key string, fallback, min int) (int, error) {
	raw := getenv(key)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < min {
		return 0, fmt.Errorf("%w: %s=%q must be an integer >= %d", ErrInvalidConfig, key, raw, min)
	}
	return n, nil
}

func durationOr(getenv func(string) string, key string, fallback time.Duration) (time.Duration, error) {
	raw := getenv(key)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: %s=%q must be a positive duration", ErrInvalidConfig, key, raw)
	}
	return d, nil
}
