package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Options mirrors the per-input flags. Empty fields are left untouched.
type Options struct {
	Prefix   string `yaml:"prefix"`
	Modifier string `yaml:"modifier"`
	Encoding string `yaml:"encoding"`
	Format   string `yaml:"format"`
	Unpack   string `yaml:"unpack"`
}

// FileEntry is one input listed in a manifest.
type FileEntry struct {
	Options `yaml:",inline"`
	Path    string `yaml:"path"`
	Name    string `yaml:"name"`
}

// Manifest describes a whole run in YAML instead of on the command line.
type Manifest struct {
	Output   string      `yaml:"output"`
	Defaults Options     `yaml:"defaults"`
	Files    []FileEntry `yaml:"files"`
}

// LoadManifest reads and parses the manifest at path.
func LoadManifest(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal manifest %s: %w", path, err)
	}

	for i, f := range m.Files {
		if f.Path == "" {
			return nil, fmt.Errorf("manifest %s: file entry %d has no path", path, i+1)
		}
	}
	return &m, nil
}

// Tokens expands the manifest (without its output) into the equivalent
// command-line tokens, so it runs through the same interpreter.
func (m *Manifest) Tokens() []string {
	tokens := m.Defaults.tokens(nil)
	for _, f := range m.Files {
		tokens = f.Options.tokens(tokens)
		if f.Name != "" {
			tokens = append(tokens, "-n", f.Name)
		}
		tokens = append(tokens, inputToken(f.Path))
	}
	return tokens
}

// tokens appends the flags for every set option. Format goes before the
// modifier so an explicit modifier survives the reset done by -f.
func (o Options) tokens(dst []string) []string {
	if o.Prefix != "" {
		dst = append(dst, "-p", o.Prefix)
	}
	if o.Format != "" {
		dst = append(dst, "-f", o.Format)
	}
	if o.Modifier != "" {
		dst = append(dst, "-m", o.Modifier)
	}
	if o.Encoding != "" {
		dst = append(dst, "-e", o.Encoding)
	}
	if o.Unpack != "" {
		dst = append(dst, "-u", o.Unpack)
	}
	return dst
}

// inputToken keeps a path that looks like a flag from being read as one.
func inputToken(path string) string {
	if _, ok := FlagOf(path); ok {
		return "./" + path
	}
	return path
}
