package ui

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderMarkdown_KeepsText(t *testing.T) {
	out := RenderMarkdown("# /notes/daily\n\n## 2024-01-01\n\nwatered the plants\n", 60)
	assert.Contains(t, out, "watered the plants")
}

func TestWrapWidth_NonTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, IsTerminal(f), "regular file reported as terminal")
	assert.Equal(t, defaultWrapWidth, WrapWidth(f))
}
