// Package settings loads configuration from an environment-scoped .env file
// and exposes typed accessors over process environment variables.
package settings

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// TokenLimit is a named max-token budget for a model response.
type TokenLimit int

const (
	TokenLimitMinExtended     TokenLimit = 8704
	TokenLimitSmall           TokenLimit = 9216
	TokenLimitSmallPlus       TokenLimit = 9728
	TokenLimitMediumSmall     TokenLimit = 10240
	TokenLimitMediumSmallPlus TokenLimit = 10752
	TokenLimitMediumLow       TokenLimit = 11264
	TokenLimitMediumLowPlus   TokenLimit = 11776
	TokenLimitMedium          TokenLimit = 12288
	TokenLimitMediumPlus      TokenLimit = 12800
	TokenLimitMediumHigh      TokenLimit = 13312
	TokenLimitMediumHighPlus  TokenLimit = 13824
	TokenLimitLarge           TokenLimit = 14336
	TokenLimitLargePlus       TokenLimit = 14848
	TokenLimitExtraLarge      TokenLimit = 15360
	TokenLimitMaxExtended     TokenLimit = 15872
)

// Generation parameter levels.
const (
	TemperatureConservative float32 = 0.1
	TemperatureBalanced     float32 = 0.5
	TemperatureCreative     float32 = 0.9

	TopPConservative float32 = 0.7
	TopPModerate     float32 = 0.9
	TopPCreative     float32 = 1.0
)

const DefaultModel = "eu.anthropic.claude-sonnet-4-20250514-v1:0"

func init() {
	env := String("ENVIRONMENT", "local")
	// Missing files are fine: plain process env still applies.
	for _, path := range []string{
		filepath.Join("settings", "env", env, ".env"),
		filepath.Join("env", env, ".env"),
		".env",
	} {
		if err := godotenv.Load(path); err == nil {
			return
		}
	}
}

func String(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func Int(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return i
}

func Bool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "True"
}

func Debug() bool {
	return Bool("DEBUG", false)
}

// MaxTokens is the response token budget, defaulting to the small limit.
func MaxTokens() int {
	return Int("MAX_TOKENS", int(TokenLimitSmall))
}

func Model() string {
	return String("OPENAI_MODEL", DefaultModel)
}

func APIKey() string {
	return os.Getenv("OPENAI_API_KEY")
}

func BaseURL() string {
	return os.Getenv("OPENAI_BASE_URL")
}
