package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// maxFilenameLength leaves room for a suffix and the extension.
const maxFilenameLength = 200

var (
	// Characters invalid in filenames on most filesystems
	invalidFilenameChars = regexp.MustCompile(`[<>:"/\\|?*\x00]`)
	// Any run of whitespace, including newlines and tabs
	whitespaceRuns = regexp.MustCompile(`\s+`)
	// Characters that break wiki links in note taking apps
	linkBreakers = strings.NewReplacer("#", "", "^", "", "[", "(", "]", ")")
)

// SanitizeFilename turns a book title into a safe file name without extension.
func SanitizeFilename(name string) string {
	name = invalidFilenameChars.ReplaceAllString(name, "")
	name = whitespaceRuns.ReplaceAllString(name, " ")
	name = linkBreakers.Replace(name)
	name = strings.Trim(name, " .")

	if len(name) > maxFilenameLength {
		name = strings.TrimSpace(truncateUTF8(name, maxFilenameLength))
	}
	if name == "" {
		name = "Untitled"
	}
	return name
}

// MarkdownFilename returns a sanitized file name with the .md extension. When
// the name is already taken a numeric suffix is added and the result is
// recorded in taken.
func MarkdownFilename(title string, taken map[string]bool) string {
	base := SanitizeFilename(title)
	name := base + ".md"
	for i := 2; taken[strings.ToLower(name)]; i++ {
		name = fmt.Sprintf("%s (%d).md", base, i)
	}
	taken[strings.ToLower(name)] = true
	return name
}

// truncateUTF8 cuts s to at most n bytes without splitting a rune.
func truncateUTF8(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !isRuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}
