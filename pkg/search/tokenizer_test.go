package search

import "testing"

func TestMatcherIgnoresCase(t *testing.T) {
	m := NewMatcher("IPHONE")
	if !m.Match("Apple iPhone 15") {
		t.Errorf("Expected match on name")
	}
	if m.Match("Galaxy S24", "A phone from Samsung") {
		t.Errorf("Expected no match")
	}
}

func TestMatcherChecksAllTexts(t *testing.T) {
	m := NewMatcher("leather")
	if !m.Match("Boots", "Brown Leather upper") {
		t.Errorf("Expected match on description")
	}
}

func TestMatcherFoldsNonAscii(t *testing.T) {
	m := NewMatcher("CAFÉ")
	if !m.Match("Café au lait mug") {
		t.Errorf("Expected É to fold to é")
	}
}

func TestEmptyMatcher(t *testing.T) {
	m := NewMatcher("   ")
	if !m.IsEmpty() {
		t.Errorf("Expected whitespace query to be empty")
	}
	if !m.Match("anything") {
		t.Errorf("Expected empty query to match")
	}
}
