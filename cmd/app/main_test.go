package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/akyairhashvil/gantterm/internal/database"
)

func TestRenderStaticWritesDocuments(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	db, err := database.Open(ctx, filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})

	projectID, err := db.Seed(ctx)
	if err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	svgPath := filepath.Join(dir, "chart.svg")
	pdfPath := filepath.Join(dir, "chart.pdf")
	if err := renderStatic(ctx, db, projectID, svgPath, pdfPath); err != nil {
		t.Fatalf("renderStatic failed: %v", err)
	}

	for _, path := range []string{svgPath, pdfPath} {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("expected %s to exist: %v", path, err)
		}
		if info.Size() == 0 {
			t.Fatalf("expected %s to be non-empty", path)
		}
	}
}
