// Package search implements the record search, suggestion, sort and paging rules
// shared by the public listings.
package search

import (
	"slices"
	"strings"
)

const (
	MinSuggestionLength = 2
	MaxSuggestionRows   = 10
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func Normalize(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

func IsBlank(q string) bool {
	return strings.TrimSpace(q) == ""
}

// Matches: substring case-insensitive di salah satu field. Query kosong = match semua.
func Matches(query string, fields ...string) bool {
	q := Normalize(query)
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// LikePattern: predikat yang sama dengan Matches untuk sisi SQL
// (dipakai dengan LOWER(col) LIKE ? ESCAPE '\').
func LikePattern(query string) string {
	return "%" + likeEscaper.Replace(Normalize(query)) + "%"
}

// SuggestionRow: satu row kandidat saran (kode, nama/judul, nama ministry).
type SuggestionRow struct {
	Code         string `gorm:"column:code"`
	Name         string `gorm:"column:name"`
	MinistryName string `gorm:"column:ministry_name"`
}

func ShouldSuggest(query string) bool {
	return len([]rune(strings.TrimSpace(query))) >= MinSuggestionLength
}

// Suggestions: gabungan kode, nama, dan ministry dari row kandidat,
// tanpa duplikat, urut leksikografis.
func Suggestions(rows []SuggestionRow) []string {
	seen := make(map[string]struct{}, len(rows)*3)
	out := make([]string, 0, len(rows)*3)
	for _, r := range rows {
		for _, v := range []string{r.Code, r.Name, r.MinistryName} {
			if v == "" {
				continue
			}
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	slices.Sort(out)
	return out
}

// Paginate memotong slice hasil sort; offset di luar range → slice kosong.
func Paginate[T any](items []T, offset, limit int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end]
}
