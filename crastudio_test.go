package crastudio_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/crastudio/crastudio"
	"github.com/crastudio/crastudio/domain/compliance"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNew_SeedsBaselineCatalog(t *testing.T) {
	client, err := crastudio.New(
		crastudio.WithDatabaseURL("sqlite:///:memory:"),
		crastudio.WithLogger(discardLogger()),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer client.Close()

	reqs, err := client.Catalog.Requirements(context.Background(), false)
	if err != nil {
		t.Fatalf("Requirements: %v", err)
	}
	if len(reqs) != len(compliance.BaselineRequirements) {
		t.Errorf("len(reqs) = %d, want %d", len(reqs), len(compliance.BaselineRequirements))
	}
}

func TestNew_WithoutBaselineSeed(t *testing.T) {
	client, err := crastudio.New(
		crastudio.WithDatabaseURL("sqlite:///:memory:"),
		crastudio.WithLogger(discardLogger()),
		crastudio.WithoutBaselineSeed(),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer client.Close()

	reqs, err := client.Catalog.Requirements(context.Background(), false)
	if err != nil {
		t.Fatalf("Requirements: %v", err)
	}
	if len(reqs) != 0 {
		t.Errorf("len(reqs) = %d, want 0", len(reqs))
	}
}

func TestNew_DefaultsToSQLiteInDataDir(t *testing.T) {
	client, err := crastudio.New(
		crastudio.WithDataDir(t.TempDir()),
		crastudio.WithLogger(discardLogger()),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer client.Close()

	if !client.DB().IsSQLite() {
		t.Error("expected a sqlite database by default")
	}
}

func TestClose_Idempotent(t *testing.T) {
	client, err := crastudio.New(
		crastudio.WithDatabaseURL("sqlite:///:memory:"),
		crastudio.WithLogger(discardLogger()),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := client.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := client.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}
