package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestSave(t *testing.T) {
	r := New("assets.h")
	r.Add(Entry{Identifier: "logo", Source: "img/logo.png", Bytes: 42, Encoding: "binary", Format: "source"})
	r.Add(Entry{Identifier: "a", Source: "pack.zip:a.txt", Encoding: "ascii", Format: "header"})

	path := filepath.Join(t.TempDir(), "report.json")
	if err := r.Save(path); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got Report
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("report is not valid JSON: %v\n%s", err, raw)
	}
	if got.Output != "assets.h" || len(got.Declarations) != 2 {
		t.Fatalf("report = %+v", got)
	}
	if got.Declarations[1].Source != "pack.zip:a.txt" || got.Declarations[0].Bytes != 42 {
		t.Errorf("declarations = %+v", got.Declarations)
	}
}

func TestSave_EmptyRunListsNoDeclarations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	if err := New("-").Save(path); err != nil {
		t.Fatal(err)
	}
	raw, _ := os.ReadFile(path)

	var got map[string]any
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatal(err)
	}
	if decls, ok := got["declarations"].([]any); !ok || len(decls) != 0 {
		t.Errorf("declarations = %#v, want an empty list", got["declarations"])
	}
}

func TestSave_UnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "report.json")
	if err := New("-").Save(path); err == nil {
		t.Error("Save() into a missing directory returned no error")
	}
}
