package parser

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/snappy"
)

func TestParseFile_Plain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c0.route")
	if err := os.WriteFile(path, []byte(linearNet), 0o644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	doc, err := New().ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	if len(doc.Nets) != 1 || doc.Nets[0].Name != "c0" {
		t.Errorf("Unexpected parse result: %+v", doc.Nets)
	}
}

func TestParseFile_Snappy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c0.route.sz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create fixture: %v", err)
	}
	w := snappy.NewBufferedWriter(f)
	if _, err := w.Write([]byte(linearNet)); err != nil {
		t.Fatalf("Failed to compress fixture: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to flush fixture: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Failed to close fixture: %v", err)
	}

	doc, err := New().ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile failed on snappy input: %v", err)
	}
	if len(doc.Nets) != 1 || doc.Nets[0].Name != "c0" {
		t.Errorf("Unexpected parse result: %+v", doc.Nets)
	}
}

func TestParseFile_Missing(t *testing.T) {
	_, err := New().ParseFile(filepath.Join(t.TempDir(), "nope.route"))
	if err == nil {
		t.Fatal("Expected an error for a missing file")
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Expected a ParseError, got %T", err)
	}
	if perr.Op != "open routing file" {
		t.Errorf("Unexpected op %q", perr.Op)
	}
}
