package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

func TestLoad_EmptyPath_ReturnsDefaults(t *testing.T) {
	// When
	cfg, err := Load("")

	// Then
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Input != DefaultInput {
		t.Errorf("expected Input=%s, got %s", DefaultInput, cfg.Input)
	}
	if cfg.Output != DefaultOutput {
		t.Errorf("expected Output=%s, got %s", DefaultOutput, cfg.Output)
	}
	if cfg.Format != DefaultFormat {
		t.Errorf("expected Format=%s, got %s", DefaultFormat, cfg.Format)
	}
	if cfg.Columns != domain.DefaultColumns() {
		t.Errorf("expected default columns, got %s", cfg.Columns)
	}
	if cfg.Database != "" {
		t.Errorf("expected no database, got %s", cfg.Database)
	}
}

func TestLoad_ValidYAML_OverridesDefaults(t *testing.T) {
	// Given
	dir := t.TempDir()
	path := filepath.Join(dir, "report.yaml")
	content := `input: "orders.tsv"
output: "out/analysis.xlsx"
format: "xlsx"
delimiter: "tab"
database: "runs.db"
columns:
  ship_mode: "Shipping"
  sales: "Amount"
formats:
  dat: "csv"`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// When
	cfg, err := Load(path)

	// Then
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Input != "orders.tsv" {
		t.Errorf("expected Input=orders.tsv, got %s", cfg.Input)
	}
	if cfg.Output != "out/analysis.xlsx" {
		t.Errorf("expected Output=out/analysis.xlsx, got %s", cfg.Output)
	}
	if cfg.Format != "xlsx" {
		t.Errorf("expected Format=xlsx, got %s", cfg.Format)
	}
	if cfg.Database != "runs.db" {
		t.Errorf("expected Database=runs.db, got %s", cfg.Database)
	}
	if cfg.Formats["dat"] != "csv" {
		t.Errorf("expected formats alias dat=csv, got %v", cfg.Formats)
	}
	if cfg.Columns.ShipMode != "Shipping" || cfg.Columns.Sales != "Amount" {
		t.Errorf("expected overridden columns, got %s", cfg.Columns)
	}
	if cfg.Columns.Category != domain.ColumnCategory {
		t.Errorf("expected default Category column, got %s", cfg.Columns.Category)
	}
	d, err := cfg.DelimiterRune()
	if err != nil || d != '\t' {
		t.Errorf("expected tab delimiter, got %q (%v)", d, err)
	}
}

func TestLoad_InvalidYAML_ReturnsError(t *testing.T) {
	// Given
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("input: orders.csv: bad"), 0o644); err != nil {
		t.Fatalf("failed to write bad config: %v", err)
	}

	// When
	_, err := Load(path)

	// Then
	if err == nil {
		t.Error("expected error for invalid YAML, got nil")
	}
}

func TestLoad_MissingFile_ReturnsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Error("expected error for missing config file, got nil")
	}
}

func TestLoad_InvalidDelimiter_ReturnsError(t *testing.T) {
	// Given
	path := filepath.Join(t.TempDir(), "report.json")
	if err := os.WriteFile(path, []byte(`{"delimiter": ";;"}`), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	// When
	_, err := Load(path)

	// Then
	if err == nil {
		t.Error("expected error for multi-character delimiter, got nil")
	}
}

func TestSettings_DelimiterRune(t *testing.T) {
	tests := []struct {
		delimiter string
		expected  rune
		wantErr   bool
	}{
		{"", 0, false},
		{",", ',', false},
		{";", ';', false},
		{"|", '|', false},
		{"tab", '\t', false},
		{`\t`, '\t', false},
		{`"`, 0, true},
		{"\n", 0, true},
		{"ab", 0, true},
	}

	for _, tc := range tests {
		s := Settings{Delimiter: tc.delimiter}
		got, err := s.DelimiterRune()
		if (err != nil) != tc.wantErr {
			t.Errorf("delimiter %q: expected error=%v, got %v", tc.delimiter, tc.wantErr, err)
			continue
		}
		if got != tc.expected {
			t.Errorf("delimiter %q: expected %q, got %q", tc.delimiter, tc.expected, got)
		}
	}
}

func TestSettings_Validate_EmptyColumn(t *testing.T) {
	s := Settings{Input: "a.csv", Output: "b.txt", Columns: domain.Columns{Category: "Category"}}
	if err := s.Validate(); err == nil {
		t.Error("expected error for empty column names, got nil")
	}
}
