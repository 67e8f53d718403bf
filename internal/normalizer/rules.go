package normalizer

import (
	"strings"
)

// Rules holds the lookup tables used while cleaning. Keys are lower-case.
type Rules struct {
	Nationalities map[string]string
	Genders       map[string]string
	// BlankLabel replaces a blank nationality or gender.
	BlankLabel string
}

func DefaultRules() Rules {
	return Rules{
		Nationalities: map[string]string{
			"chinese":     "China",
			"singaporean": "Singapore",
			"malaysian":   "Malaysia",
			"indian":      "India",
			"usa":         "United States",
			"us":          "United States",
		},
		Genders: map[string]string{
			"m": "Male",
			"f": "Female",
		},
	}
}

// WithBlankLabel returns a copy of the rules using label for blank values.
func (r Rules) WithBlankLabel(label string) Rules {
	r.BlankLabel = strings.TrimSpace(label)
	return r
}
