package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewR2Client_NotConfigured(t *testing.T) {
	_, err := NewR2Client(R2Config{Endpoint: "https://r2.example.com", Bucket: "reports"})
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestNilClient(t *testing.T) {
	var r *R2Client
	if _, err := r.PutReport(context.Background(), uuid.New(), "a.xlsx", []byte("x")); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("PutReport on nil client: %v", err)
	}
	if err := r.Ping(context.Background()); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Ping on nil client: %v", err)
	}
}

func TestReportKeyAndURL(t *testing.T) {
	id := uuid.MustParse("6f1c1f9e-7c1e-4a53-9d3b-0d5c1f9e7c1e")
	at := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	key := ReportKey("visitor-reports", id, "Acme_20261018.xlsx", at)
	want := "visitor-reports/2026/10/18/6f1c1f9e-7c1e-4a53-9d3b-0d5c1f9e7c1e/Acme_20261018.xlsx"
	if key != want {
		t.Errorf("ReportKey() = %q, want %q", key, want)
	}

	client, err := NewR2Client(R2Config{
		Endpoint:  "https://acc.r2.cloudflarestorage.com/",
		AccessKey: "key",
		SecretKey: "secret",
		Bucket:    "reports",
	})
	if err != nil {
		t.Fatalf("NewR2Client: %v", err)
	}
	if got := client.objectURL(key); got != "https://acc.r2.cloudflarestorage.com/reports/"+want {
		t.Errorf("objectURL() = %q", got)
	}

	client.publicBaseURL = "https://cdn.example.com"
	if got := client.objectURL("/x.xlsx"); got != "https://cdn.example.com/reports/x.xlsx" {
		t.Errorf("objectURL() with public base = %q", got)
	}
}
