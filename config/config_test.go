package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/deevus/texttable/config"
	"github.com/deevus/texttable/table"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, `
default_style = "report"

[styles.report]
fill = "n/a"
head_separator = "*"
row_separator = ""
column_separator = ":"
max_width = 60
numbers = "comma"
`)

	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DefaultStyle != "report" {
		t.Errorf("expected default style report, got %s", cfg.DefaultStyle)
	}
	report := cfg.Styles["report"]
	if report.Fill != "n/a" {
		t.Errorf("expected fill n/a, got %s", report.Fill)
	}
	if *report.HeadSeparator != "*" {
		t.Errorf("expected head separator *, got %q", *report.HeadSeparator)
	}
	if *report.RowSeparator != "" {
		t.Errorf("expected disabled row separator, got %q", *report.RowSeparator)
	}
	if report.MaxWidth != 60 {
		t.Errorf("expected max width 60, got %d", report.MaxWidth)
	}
	if report.Numbers != config.NumbersComma {
		t.Errorf("expected numbers comma, got %s", report.Numbers)
	}
}

func TestLoad_StyleDefaults(t *testing.T) {
	path := writeConfig(t, `
[styles.bare]
fill = "-"
`)

	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bare := cfg.Styles["bare"]
	if *bare.HeadSeparator != table.DefaultHeadSeparator {
		t.Errorf("expected default head separator, got %q", *bare.HeadSeparator)
	}
	if *bare.RowSeparator != table.DefaultRowSeparator {
		t.Errorf("expected default row separator, got %q", *bare.RowSeparator)
	}
	if bare.ColumnSeparator != table.DefaultColumnSeparator {
		t.Errorf("expected default column separator, got %q", bare.ColumnSeparator)
	}
	if bare.Numbers != config.NumbersPlain {
		t.Errorf("expected numbers plain, got %s", bare.Numbers)
	}
	if cfg.DefaultStyle != config.DefaultStyle {
		t.Errorf("expected default style %s, got %s", config.DefaultStyle, cfg.DefaultStyle)
	}
}

func TestLoad_MergesBuiltins(t *testing.T) {
	path := writeConfig(t, `
[styles.grid]
fill = "?"
`)

	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Styles["grid"].Fill != "?" {
		t.Errorf("expected user grid style to win, got fill %q", cfg.Styles["grid"].Fill)
	}
	for _, name := range []string{"compact", "plain"} {
		if _, ok := cfg.Styles[name]; !ok {
			t.Errorf("expected built-in style %s", name)
		}
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := config.LoadFrom(writeConfig(t, ``))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Styles) != 3 {
		t.Errorf("expected 3 built-in styles, got %d", len(cfg.Styles))
	}
}

func TestLoad_ExpandEnvVar(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TEST_CONFIG_DIR", dir)
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`default_style = "plain"`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.LoadFrom("$TEST_CONFIG_DIR/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DefaultStyle != "plain" {
		t.Errorf("expected default style plain, got %s", cfg.DefaultStyle)
	}
}

func TestLoad_InvalidStyles(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"numbers", "[styles.x]\nnumbers = \"roman\"", "numbers must be"},
		{"head separator", "[styles.x]\nhead_separator = \"+==\"", "head separator"},
		{"column separator", "[styles.x]\ncolumn_separator = \"||\"", "column separator"},
		{"max width", "[styles.x]\nmax_width = -4", "negative"},
		{"default style", "default_style = \"missing\"", "not defined"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.LoadFrom(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.LoadFrom("/nonexistent/config.toml")
	if err == nil {
		t.Fatal("expected error for missing file")
	}

	_, err = config.Load("/nonexistent/config.toml")
	if err == nil {
		t.Fatal("expected error for missing explicit file")
	}
}

func TestLoad_DefaultLocationMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DefaultStyle != config.DefaultStyle {
		t.Errorf("expected built-in default style, got %s", cfg.DefaultStyle)
	}
}

func TestConfig_StyleNames(t *testing.T) {
	names := config.Default().StyleNames()
	want := []string{"compact", "grid", "plain"}
	if len(names) != len(want) {
		t.Fatalf("expected %d names, got %d", len(want), len(names))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("expected %v, got %v", want, names)
			break
		}
	}
}

func TestConfig_Style(t *testing.T) {
	cfg := config.Default()

	style, err := cfg.Style("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *style.RowSeparator != table.DefaultRowSeparator {
		t.Errorf("expected grid row separator, got %q", *style.RowSeparator)
	}

	if _, err := cfg.Style("nope"); err == nil {
		t.Fatal("expected error for unknown style")
	}
}

func TestStyle_Options(t *testing.T) {
	style, err := config.Default().Style("plain")
	if err != nil {
		t.Fatal(err)
	}

	opts := append(style.Options(), table.WithData([][]any{{"a", "b"}, {"c", "d"}}))
	tbl, err := table.New(opts...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tbl.RowSeparator() != "" || tbl.HeadSeparator() != "" {
		t.Errorf("expected plain style to disable line separators")
	}
	want := "a  | b  \nc  | d  "
	if got := tbl.String(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestDefaultPath(t *testing.T) {
	path := config.DefaultPath()
	if path == "" {
		t.Fatal("expected non-empty default path")
	}
	if filepath.Base(filepath.Dir(path)) != "texttable" {
		t.Errorf("expected texttable config dir, got %s", path)
	}
}
