package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nlpjobsfinder/jobs-finder/models"
)

func TestWriteReadCompanies(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backend", "data", "companies.json")
	want := []models.Company{
		{Name: "Acme", Location: "Louisville, Kentucky", Description: "Take-home project"},
		{Name: "Globex", Location: "Remote", Description: ""},
	}

	if err := WriteCompanies(path, want); err != nil {
		t.Fatalf("WriteCompanies() error = %v", err)
	}
	got, err := ReadCompanies(path)
	if err != nil {
		t.Fatalf("ReadCompanies() error = %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("ReadCompanies() returned %d companies, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("company %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestWriteCompanies_NilIsEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "companies.json")
	if err := WriteCompanies(path, nil); err != nil {
		t.Fatalf("WriteCompanies() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "[]\n" {
		t.Errorf("file = %q, want %q", data, "[]\n")
	}
}

func TestReadCompanies_Errors(t *testing.T) {
	dir := t.TempDir()
	if _, err := ReadCompanies(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("ReadCompanies() expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadCompanies(bad); err == nil {
		t.Error("ReadCompanies() expected error for malformed JSON")
	}
}
