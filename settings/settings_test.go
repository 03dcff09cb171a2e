package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	t.Setenv("SETTINGS_TEST_STR", "value")
	assert.Equal(t, "value", String("SETTINGS_TEST_STR", "fallback"))
	assert.Equal(t, "fallback", String("SETTINGS_TEST_UNSET", "fallback"))
}

func TestInt(t *testing.T) {
	t.Setenv("SETTINGS_TEST_INT", "42")
	assert.Equal(t, 42, Int("SETTINGS_TEST_INT", 7))
	assert.Equal(t, 7, Int("SETTINGS_TEST_UNSET", 7))

	t.Setenv("SETTINGS_TEST_INT", "not-a-number")
	assert.Equal(t, 7, Int("SETTINGS_TEST_INT", 7))
}

func TestBool(t *testing.T) {
	t.Setenv("SETTINGS_TEST_BOOL", "true")
	assert.True(t, Bool("SETTINGS_TEST_BOOL", false))

	t.Setenv("SETTINGS_TEST_BOOL", "True")
	assert.True(t, Bool("SETTINGS_TEST_BOOL", false))

	t.Setenv("SETTINGS_TEST_BOOL", "no")
	assert.False(t, Bool("SETTINGS_TEST_BOOL", true))

	assert.True(t, Bool("SETTINGS_TEST_UNSET", true))
}

func TestMaxTokensDefault(t *testing.T) {
	assert.Equal(t, int(TokenLimitSmall), MaxTokens())

	t.Setenv("MAX_TOKENS", "12288")
	assert.Equal(t, int(TokenLimitMedium), MaxTokens())
}

func TestModelDefault(t *testing.T) {
	assert.Equal(t, DefaultModel, Model())

	t.Setenv("OPENAI_MODEL", "gpt-4o-mini")
	assert.Equal(t, "gpt-4o-mini", Model())
}
