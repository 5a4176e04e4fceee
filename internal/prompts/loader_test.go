package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_KnownPrompts(t *testing.T) {
	for _, key := range []string{"user_profile", "experience", "education", "complete"} {
		prompt, err := Get("evaluation.json", key)
		require.NoError(t, err, "key %s", key)
		assert.Contains(t, prompt, "{{.Data}}")
		assert.Contains(t, prompt, "score")
	}
}

func TestGet_UnknownKey(t *testing.T) {
	_, err := Get("evaluation.json", "nonexistent")
	assert.Error(t, err)
}

func TestGet_UnknownFile(t *testing.T) {
	_, err := Get("missing.json", "user_profile")
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	result := Format("Evaluate: {{.Data}} for {{.Field}}", map[string]string{
		"Data":  "resume text",
		"Field": "Engineering",
	})
	assert.Equal(t, "Evaluate: resume text for Engineering", result)
	assert.False(t, strings.Contains(result, "{{"))
}
