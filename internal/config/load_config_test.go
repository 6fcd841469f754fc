package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeManifest(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "assets.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}
	return path
}

func TestLoadManifest_Tokens(t *testing.T) {
	path := writeManifest(t, `
output: assets.h
defaults:
  prefix: asset_
  modifier: static const
  format: header
files:
  - path: logo.png
    name: logo
  - path: shaders/basic.frag
    encoding: ascii
  - path: -x
`)

	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest() error: %v", err)
	}
	if m.Output != "assets.h" {
		t.Errorf("Output = %q, want %q", m.Output, "assets.h")
	}

	want := []string{
		"-p", "asset_", "-f", "header", "-m", "static const",
		"-n", "logo", "logo.png",
		"-e", "ascii", "shaders/basic.frag",
		"./-x",
	}
	if got := m.Tokens(); !reflect.DeepEqual(got, want) {
		t.Errorf("Tokens() =\n%q\nwant\n%q", got, want)
	}
}

func TestLoadManifest_Errors(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantError string
	}{
		{name: "missing path", body: "files:\n  - name: x\n", wantError: "has no path"},
		{name: "bad yaml", body: "files: [\n", wantError: "failed to unmarshal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadManifest(writeManifest(t, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.wantError) {
				t.Errorf("LoadManifest() error = %v, want containing %q", err, tt.wantError)
			}
		})
	}

	if _, err := LoadManifest(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadManifest() on a missing file returned no error")
	}
}
