package utils

import (
	"strings"
)

const PlateSeparator = ";"

var plateSeparators = strings.NewReplacer("/", PlateSeparator, ",", PlateSeparator)

// NormalizePlates rewrites a vehicle plate cell into a ";"-separated list.
// "/" and "," are treated as separators, whitespace around each plate is
// removed and empty segments are dropped.
func NormalizePlates(raw string) string {
	normalized := plateSeparators.Replace(strings.TrimSpace(raw))
	return strings.Join(SplitPlates(normalized), PlateSeparator)
}

// SplitPlates returns the non-empty trimmed segments of a ";"-separated cell.
func SplitPlates(cell string) []string {
	parts := strings.Split(cell, PlateSeparator)
	plates := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			plates = append(plates, p)
		}
	}
	return plates
}
