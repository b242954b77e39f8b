package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderWelcome(t *testing.T) {
	subject, html, err := Render("welcome", map[string]any{"Name": "Jane"})
	require.NoError(t, err)
	assert.Equal(t, "Welcome to DevConnect", subject)
	assert.Contains(t, html, "Jane")
}

func TestRenderWelcomeWithoutName(t *testing.T) {
	_, html, err := Render("welcome", nil)
	require.NoError(t, err)
	assert.Contains(t, html, "Welcome to DevConnect")
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, _, err := Render("nope", nil)
	assert.Error(t, err)
}

func TestRenderEscapesData(t *testing.T) {
	_, html, err := Render("welcome", map[string]any{"Name": "<script>"})
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}
