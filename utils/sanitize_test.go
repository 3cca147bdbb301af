package utils

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeInputStripsScriptsAndTags(t *testing.T) {
	assert.Equal(t, "hello", SanitizeInput(`<script>alert("x")</script>hello`))
	assert.Equal(t, "bold text", SanitizeInput("<b>bold</b> text"))
	assert.Equal(t, "alert(1)", SanitizeInput("javascript:alert(1)"))
	assert.Equal(t, `"red"`, SanitizeInput(`onclick= "red"`))
}

func TestSanitizeCommentContentRemovesControlChars(t *testing.T) {
	assert.Equal(t, "ab", SanitizeCommentContent("a\x00\x08b"))
	// Whitespace control characters survive.
	assert.Equal(t, "a\nb", SanitizeCommentContent("a\nb"))
}

func TestSanitizeCommentContentCapsLength(t *testing.T) {
	long := strings.Repeat("x", 3000)
	assert.Len(t, SanitizeCommentContent(long), 2000)
}

func TestSanitizeCommentContentCapsOnRuneBoundary(t *testing.T) {
	long := strings.Repeat("世", 700) // 2100 bytes, 700 characters
	got := SanitizeCommentContent(long)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, long, got)

	over := strings.Repeat("世", 2500)
	got = SanitizeCommentContent(over)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, 2000, utf8.RuneCountInString(got))
}

func TestSanitizeCommentContentEmptyAfterStripping(t *testing.T) {
	assert.Empty(t, SanitizeCommentContent("<b></b>"))
}
