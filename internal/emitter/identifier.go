package emitter

import (
	"errors"
	"fmt"
	"strings"

	"ember/internal/config"
)

// ErrNoIdentifier is returned when a filename has no characters usable in
// an identifier.
var ErrNoIdentifier = errors.New("cannot use any characters from filename as variable name")

// ErrDuplicateIdentifier is returned when two members of one archive derive
// the same identifier.
var ErrDuplicateIdentifier = errors.New("duplicate variable name")

// DeriveName turns a file path into an identifier stem:
//   - everything up to and including the last '/' is dropped
//   - the stem ends at the first '.'
//   - reserved characters are dropped
//   - whitespace is dropped and the next kept character is upper-cased
//
// The boolean is false if nothing was kept.
func DeriveName(path string) (string, bool) {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		path = path[i+1:]
	}

	var b strings.Builder
	upper := false
	for i := 0; i < len(path); i++ {
		c := path[i]
		if config.IsSpace(c) {
			upper = true
			continue
		}
		if c == '.' {
			break
		}
		if strings.IndexByte(config.Reserved, c) >= 0 {
			continue
		}
		if upper && c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		b.WriteByte(c)
		upper = false
	}
	return b.String(), b.Len() > 0
}

// Identifier builds the declared name for one input. A non-empty one-shot
// name wins over the name derived from path; the prefix is always applied.
func Identifier(prefix, name, path string) (string, error) {
	if name != "" {
		return prefix + name, nil
	}
	stem, ok := DeriveName(path)
	if !ok {
		return "", fmt.Errorf("%w '%s'", ErrNoIdentifier, path)
	}
	return prefix + stem, nil
}
