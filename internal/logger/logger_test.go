package logger

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestNew_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := newWithWriter("production", &buf)
	log.Info().Str("file", "a.xlsx").Msg("converted")
	log.Debug().Msg("hidden")

	var entry map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("expected a single json line, got %q: %v", buf.String(), err)
	}
	if entry["file"] != "a.xlsx" || entry["service"] != "clarity-gate" {
		t.Errorf("unexpected entry %v", entry)
	}
}

func TestNew_DevelopmentIsConsole(t *testing.T) {
	var buf bytes.Buffer
	log := newWithWriter("development", &buf)
	log.Debug().Msg("visible")
	if !bytes.Contains(buf.Bytes(), []byte("visible")) {
		t.Errorf("debug line missing: %q", buf.String())
	}
	if json.Valid(bytes.TrimSpace(buf.Bytes())) {
		t.Errorf("expected console output, got json %q", buf.String())
	}
}
