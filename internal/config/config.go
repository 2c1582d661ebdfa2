// README: Config loader; .env first, then environment variables with defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// AI provider names accepted in TW_AI_PROVIDER.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

type HTTPConfig struct {
	Addr        string
	CORSOrigins []string
}

type AIConfig struct {
	Provider      string
	GeminiKey     string
	GeminiModel   string
	OpenAIKey     string
	OpenAIModel   string
	OpenAIBaseURL string
	// Timeout bounds one generation call. Zero disables it.
	Timeout time.Duration
}

type PlacesConfig struct {
	APIKey    string
	MaxHotels int
	// Enrich replaces generated hotels with places results when non-empty.
	Enrich bool
}

type PhotosConfig struct {
	UnsplashKey string
	FallbackURL string
	Concurrency int
}

type RateLimitConfig struct {
	PerMinute int
	Burst     int
}

type Config struct {
	Env      string
	LogLevel string
	HTTP     HTTPConfig
	AI       AIConfig
	Places   PlacesConfig
	Photos   PhotosConfig
	Rate     RateLimitConfig
}

// IsDevelopment reports whether the service runs with developer defaults.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads .env (when present) and the environment. It fails when the selected
// AI provider has no key or a numeric variable is malformed.
func Load() (Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	var (
		cfg  Config
		errs []error
	)
	cfg.Env = envOrDefault("TW_ENV", "development")
	cfg.LogLevel = envOrDefault("TW_LOG_LEVEL", "info")

	cfg.HTTP.Addr = envOrDefault("TW_HTTP_ADDR", ":8080")
	cfg.HTTP.CORSOrigins = envOrDefaultList("TW_CORS_ORIGINS", []string{"*"})

	cfg.AI.Provider = strings.ToLower(envOrDefault("TW_AI_PROVIDER", ProviderGemini))
	cfg.AI.GeminiKey = os.Getenv("GEMINI_API_KEY")
	cfg.AI.GeminiModel = envOrDefault("TW_GEMINI_MODEL", "gemini-2.0-flash")
	cfg.AI.OpenAIKey = os.Getenv("OPENAI_API_KEY")
	cfg.AI.OpenAIModel = envOrDefault("TW_OPENAI_MODEL", "gpt-4o-mini")
	cfg.AI.OpenAIBaseURL = os.Getenv("OPENAI_BASE_URL")
	cfg.AI.Timeout = envOrDefaultDuration("TW_GENERATION_TIMEOUT", 60*time.Second, &errs)

	cfg.Places.APIKey = os.Getenv("GOOGLE_PLACES_API_KEY")
	cfg.Places.MaxHotels = envOrDefaultInt("TW_MAX_HOTELS", 15, &errs)
	cfg.Places.Enrich = envOrDefaultBool("TW_ENRICH_HOTELS", false, &errs)

	cfg.Photos.UnsplashKey = os.Getenv("UNSPLASH_ACCESS_KEY")
	cfg.Photos.FallbackURL = envOrDefault("TW_PHOTO_FALLBACK_URL", "https://placehold.co/600x400?text=No+Image")
	cfg.Photos.Concurrency = envOrDefaultInt("TW_PHOTO_CONCURRENCY", 4, &errs)

	cfg.Rate.PerMinute = envOrDefaultInt("TW_RATE_PER_MINUTE", 10, &errs)
	cfg.Rate.Burst = envOrDefaultInt("TW_RATE_BURST", 3, &errs)

	switch cfg.AI.Provider {
	case ProviderGemini:
		if cfg.AI.GeminiKey == "" {
			errs = append(errs, errors.New("GEMINI_API_KEY is required when TW_AI_PROVIDER=gemini"))
		}
	case ProviderOpenAI:
		if cfg.AI.OpenAIKey == "" {
			errs = append(errs, errors.New("OPENAI_API_KEY is required when TW_AI_PROVIDER=openai"))
		}
	default:
		errs = append(errs, fmt.Errorf("TW_AI_PROVIDER must be %q or %q, got %q", ProviderGemini, ProviderOpenAI, cfg.AI.Provider))
	}
	if cfg.Places.MaxHotels < 1 {
		errs = append(errs, errors.New("TW_MAX_HOTELS must be at least 1"))
	}
	if cfg.Photos.Concurrency < 1 {
		errs = append(errs, errors.New("TW_PHOTO_CONCURRENCY must be at least 1"))
	}

	if len(errs) > 0 {
		return Config{}, fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envOrDefaultList(key string, def []string) []string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

func envOrDefaultInt(key string, def int, errs *[]error) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return n
}

func envOrDefaultBool(key string, def bool, errs *[]error) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return b
}

func envOrDefaultDuration(key string, def time.Duration, errs *[]error) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return d
}
