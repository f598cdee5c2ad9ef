package helper

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var (
	reNonFileSafe  = regexp.MustCompile(`[^A-Za-z0-9_-]+`)
	reUnderscores  = regexp.MustCompile(`_+`)
	defaultTitleFS = "untitled"
)

// stripMarks menghapus diakritik (é → e).
func stripMarks(s string) string {
	var buf []rune
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		buf = append(buf, r)
	}
	return string(buf)
}

// SanitizeFileTitle: judul bebas → potongan nama file [A-Za-z0-9_-],
// spasi jadi "_", maksimal maxLen rune (default 60).
func SanitizeFileTitle(title string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = 60
	}
	s := stripMarks(strings.TrimSpace(title))
	s = reNonFileSafe.ReplaceAllString(s, "_")
	s = reUnderscores.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_-")

	if utf8.RuneCountInString(s) > maxLen {
		s = strings.Trim(string([]rune(s)[:maxLen]), "_-")
	}
	if s == "" {
		return defaultTitleFS
	}
	return s
}
