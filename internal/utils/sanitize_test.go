package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	require.Equal(t, "hello", Sanitize("  hello  "))
	require.Equal(t, "&lt;script&gt;alert(1)&lt;/script&gt;", Sanitize("<script>alert(1)</script>"))
	require.Equal(t, "a &amp; b", Sanitize("a & b"))

	// Idempotent on clean input.
	clean := Sanitize("  Flash flood near the river  ")
	require.Equal(t, clean, Sanitize(clean))
}

func TestValidEmail(t *testing.T) {
	valid := []string{"a@b.com", "first.last@sub.example.org", "user+tag@domain.co"}
	for _, e := range valid {
		require.True(t, ValidEmail(e), e)
	}

	invalid := []string{"", "plain", "a@b", "a@b.c", "@domain.com", "user@.com", "user @b.com"}
	for _, e := range invalid {
		require.False(t, ValidEmail(e), e)
	}
}
