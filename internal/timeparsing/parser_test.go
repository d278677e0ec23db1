package timeparsing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starford/writedown/internal/apperr"
)

func TestParseDate(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "absolute date", input: "2024-02-29", want: "2024-02-29"},
		{name: "surrounding space", input: "  2024-02-29 ", want: "2024-02-29"},
		{name: "yesterday", input: "yesterday", want: "2025-06-14"},
		{name: "tomorrow", input: "tomorrow", want: "2025-06-16"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input, now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Format(dateLayout))
		})
	}
}

func TestParseDate_Invalid(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	for _, input := range []string{"", "   ", "qwzx vbnm"} {
		_, err := ParseDate(input, now)
		assert.ErrorIs(t, err, apperr.ErrUsage, "input %q", input)
	}
}

func TestFixed(t *testing.T) {
	day := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	clock := Fixed(day)
	assert.Equal(t, day, clock())
	assert.Equal(t, day, clock())
}
