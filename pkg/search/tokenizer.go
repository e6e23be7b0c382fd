package search

import (
	"strings"

	"golang.org/x/text/cases"
)

// Matcher does case-insensitive substring matching of one search text
// against product text fields.
type Matcher struct {
	caser  cases.Caser
	needle string
}

func NewMatcher(query string) *Matcher {
	m := &Matcher{caser: cases.Fold()}
	m.needle = m.fold(strings.TrimSpace(query))
	return m
}

func (m *Matcher) fold(s string) string {
	return m.caser.String(s)
}

func (m *Matcher) IsEmpty() bool {
	return m.needle == ""
}

// Match reports whether any of the texts contains the search text. An empty
// search text matches everything.
func (m *Matcher) Match(texts ...string) bool {
	if m.needle == "" {
		return true
	}
	for _, text := range texts {
		if strings.Contains(m.fold(text), m.needle) {
			return true
		}
	}
	return false
}
