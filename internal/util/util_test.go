package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetEnvBool(t *testing.T) {
	const key = "CMDLINE_TEST_BOOL"
	tests := []struct {
		Value string
		Def   bool
		Want  bool
	}{
		{"", true, true},
		{"", false, false},
		{"1", false, true},
		{"true", false, true},
		{"false", true, false},
		{"nope", true, true},
	}
	for _, tt := range tests {
		t.Setenv(key, tt.Value)
		if got := GetEnvBool(key, tt.Def); got != tt.Want {
			t.Errorf("GetEnvBool(%q, %v) = %v, expected %v", tt.Value, tt.Def, got, tt.Want)
		}
	}
}

func TestGetEnvOrDefault(t *testing.T) {
	const key = "CMDLINE_TEST_FORMAT"
	t.Setenv(key, "")
	if got := GetEnvOrDefault(key, "text"); got != "text" {
		t.Errorf("got %q, expected default", got)
	}
	t.Setenv(key, "yaml")
	if got := GetEnvOrDefault(key, "text"); got != "yaml" {
		t.Errorf("got %q, expected yaml", got)
	}
}

func TestReadFileIfExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "lines.txt")
	if err := os.WriteFile(file, []byte("ls -l\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	b, exists, err := ReadFileIfExists(file)
	if err != nil || !exists || string(b) != "ls -l\n" {
		t.Errorf("ReadFileIfExists(file) = %q, %v, %v", b, exists, err)
	}

	_, exists, err = ReadFileIfExists(filepath.Join(dir, "missing"))
	if exists || err != nil {
		t.Errorf("ReadFileIfExists(missing) = %v, %v", exists, err)
	}

	_, exists, err = ReadFileIfExists(dir)
	if exists || err == nil {
		t.Errorf("ReadFileIfExists(dir) = %v, %v, expected an error", exists, err)
	}
}

func TestIsTerminalOnRegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "tty")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = f.Close() }()
	if IsTerminal(f) {
		t.Error("a regular file is not a terminal")
	}
}
