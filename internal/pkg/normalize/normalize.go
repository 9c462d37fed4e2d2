// Package normalize holds the string canonicalization rules shared by the
// matching pipeline: degree titles and skill names arrive from the catalog
// and from callers in mixed case, mixed scripts (Latin and Greek) and with
// stray punctuation, and must compare equal after normalization.
package normalize

import (
	"strings"
	"unicode"
)

// DegreeTitle reduces a degree title to a comparable canonical form:
// punctuation stripped, whitespace collapsed, uppercased. Letters (including
// Greek), digits and spaces survive.
func DegreeTitle(name string) string {
	if name == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// SkillName lowercases and trims a skill token. Digits, letters and the few
// symbols that occur in real skill names (C++, C#, .NET, scikit-learn) are
// preserved.
func SkillName(name string) string {
	if name == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r):
			b.WriteRune(r)
		case r == '+' || r == '-' || r == '.' || r == '#':
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Equal reports whether two strings compare equal case-insensitively after
// trimming. Used by the ranker's exact-match filters.
func Equal(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
