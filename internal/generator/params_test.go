package generator

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultParams(t *testing.T) {
	params := DefaultParams()

	if params.Users != 1000 {
		t.Errorf("expected 1000 users, got %d", params.Users)
	}
	if params.Products != 200 {
		t.Errorf("expected 200 products, got %d", params.Products)
	}
	if params.Logs != 10000 {
		t.Errorf("expected 10000 logs, got %d", params.Logs)
	}
	if params.Transactions != 5000 {
		t.Errorf("expected 5000 transactions, got %d", params.Transactions)
	}
	if params.Output != "data/raw" {
		t.Errorf("expected output data/raw, got %s", params.Output)
	}
}

func TestLoadParams(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.yaml")
	content := "users: 50\nproducts: 10\nseed: 7\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	params, err := LoadParams(path)
	if err != nil {
		t.Fatalf("LoadParams() failed: %v", err)
	}

	if params.Users != 50 {
		t.Errorf("expected 50 users, got %d", params.Users)
	}
	if params.Seed != 7 {
		t.Errorf("expected seed 7, got %d", params.Seed)
	}
	// Fields absent from the file keep their defaults.
	if params.Logs != 10000 {
		t.Errorf("expected default 10000 logs, got %d", params.Logs)
	}
	if params.Output != "data/raw" {
		t.Errorf("expected default output, got %s", params.Output)
	}
}

func TestLoadParams_MissingFile(t *testing.T) {
	if _, err := LoadParams(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing parameter file")
	}
}

func TestLoadParams_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.yaml")
	if err := os.WriteFile(path, []byte("users: [not an int\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadParams(path); err == nil {
		t.Error("expected error for malformed parameter file")
	}
}
