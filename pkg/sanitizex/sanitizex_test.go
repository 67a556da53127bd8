package sanitizex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanSingleLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "Jane Doe", "Jane Doe"},
		{"surrounding whitespace", "  Jane Doe  ", "Jane Doe"},
		{"internal run collapsed", "Jane   \t Doe", "Jane Doe"},
		{"newlines become spaces", "Jane\nDoe", "Jane Doe"},
		{"control chars stripped", "Jane\x00Doe", "Jane Doe"},
		{"nfc normalization", "Café", "Café"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, CleanSingleLine(tt.in))
		})
	}
}

func TestStripSpaces(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "9876543210", StripSpaces("98765 43210"))
	assert.Equal(t, "9876543210", StripSpaces(" 98765\t432 10 "))
	assert.Equal(t, "", StripSpaces(""))
	assert.Equal(t, "abc", StripSpaces("abc"))
}
