package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	MobileLength  = 10
	LicenseSuffix = 4
)

// TitleCase upper-cases the first letter of every word and lower-cases the
// rest. A Caser keeps state, so one is built per call.
func TitleCase(s string) string {
	return cases.Title(language.Und).String(s)
}

// SplitName splits a full name at its first space. A name without spaces is
// returned whole as the first name.
func SplitName(fullName string) (first, rest string) {
	s := strings.TrimSpace(fullName)
	if i := strings.Index(s, " "); i >= 0 {
		return s[:i], s[i+1:]
	}
	return s, ""
}

// FixMobile reduces a phone cell to exactly ten digits.
//
// Non-digits are stripped first. When more than ten digits remain and the
// surplus is made of trailing zeros, those zeros are removed; otherwise the
// last ten digits are kept. Short numbers are left-padded with zeros.
func FixMobile(raw string) string {
	var sb strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	d := sb.String()

	if len(d) > MobileLength {
		extra := len(d) - MobileLength
		if strings.HasSuffix(d, strings.Repeat("0", extra)) {
			d = d[:len(d)-extra]
		} else {
			d = d[len(d)-MobileLength:]
		}
	}
	if len(d) < MobileLength {
		d = strings.Repeat("0", MobileLength-len(d)) + d
	}
	return d
}

// CleanGender maps single-letter codes through aliases (keyed by lower-case
// value) and title-cases everything else. Unknown values are kept.
func CleanGender(raw string, aliases map[string]string) string {
	v := strings.ToLower(strings.TrimSpace(raw))
	if mapped, ok := aliases[v]; ok {
		return mapped
	}
	return TitleCase(v)
}

// NormalizeNationality lower-cases and trims the value, applies the alias
// table and title-cases the result.
func NormalizeNationality(raw string, aliases map[string]string) string {
	v := strings.ToLower(strings.TrimSpace(raw))
	if mapped, ok := aliases[v]; ok {
		v = mapped
	}
	return TitleCase(v)
}

// TruncateLicense removes all whitespace and keeps the last four characters.
// Shorter values are returned as they are, without padding.
func TruncateLicense(raw string) string {
	compact := []rune(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw))
	if len(compact) > LicenseSuffix {
		compact = compact[len(compact)-LicenseSuffix:]
	}
	return string(compact)
}

// IsBlank reports whether a cell is empty after trimming.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
