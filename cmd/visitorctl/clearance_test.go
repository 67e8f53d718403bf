package main

import (
	"testing"
	"time"
)

func TestParseSubmitted(t *testing.T) {
	loc := time.UTC

	got, err := parseSubmitted("2026-10-16", loc)
	if err != nil {
		t.Fatalf("parseSubmitted: %v", err)
	}
	if got.Weekday() != time.Friday {
		t.Errorf("expected Friday, got %s", got.Weekday())
	}

	got, err = parseSubmitted("2026-10-17T08:00:00-04:00", loc)
	if err != nil {
		t.Fatalf("parseSubmitted: %v", err)
	}
	if got.Day() != 17 {
		t.Errorf("expected day 17, got %d", got.Day())
	}

	if _, err := parseSubmitted("next tuesday", loc); err == nil {
		t.Error("expected error for free text")
	}
}
