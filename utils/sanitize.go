package utils

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const maxCommentLength = 2000

var (
	scriptTagPattern    = regexp.MustCompile(`(?is)<script\b.*?</script>`)
	htmlTagPattern      = regexp.MustCompile(`<[^>]*>`)
	protocolPattern     = regexp.MustCompile(`(?i)(javascript|data|vbscript):`)
	eventHandlerPattern = regexp.MustCompile(`(?i)on\w+\s*=`)
)

// SanitizeInput strips script blocks, HTML tags, dangerous URL protocols
// and inline event handlers from user text.
func SanitizeInput(input string) string {
	sanitized := scriptTagPattern.ReplaceAllString(input, "")
	sanitized = htmlTagPattern.ReplaceAllString(sanitized, "")
	sanitized = protocolPattern.ReplaceAllString(sanitized, "")
	sanitized = eventHandlerPattern.ReplaceAllString(sanitized, "")
	return strings.TrimSpace(sanitized)
}

// SanitizeCommentContent cleans a comment body: tag stripping, control
// character removal, and a hard cap at 2000 characters.
func SanitizeCommentContent(content string) string {
	sanitized := SanitizeInput(content)

	sanitized = strings.Map(func(r rune) rune {
		if r == '\t' || r == '\n' || r == '\r' {
			return r
		}
		if r < 0x20 || r == 0x7F {
			return -1
		}
		return r
	}, sanitized)

	// The cap counts characters, not bytes, so multi-byte content is
	// never split mid-rune.
	if utf8.RuneCountInString(sanitized) > maxCommentLength {
		sanitized = string([]rune(sanitized)[:maxCommentLength])
	}

	return sanitized
}
