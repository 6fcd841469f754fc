package emitter

import (
	"fmt"
	"io"

	"ember/internal/config"
)

// ElementType is the C element type of every declared array.
const ElementType = "char"

// Declaration is everything needed to write one variable besides its payload.
type Declaration struct {
	Modifier   string
	Identifier string
	Encoding   config.Encoding
	Format     config.Format
}

// NewDeclaration snapshots the settings for one identifier.
func NewDeclaration(s config.Settings, identifier string) Declaration {
	return Declaration{
		Modifier:   s.Modifier,
		Identifier: identifier,
		Encoding:   s.Encoding,
		Format:     s.Format,
	}
}

// Write emits one complete declaration line to w. Header declarations have
// no payload and leave src unread; source declarations consume src to EOF.
// It returns the number of payload bytes read.
func Write(w io.Writer, d Declaration, src io.Reader) (int64, error) {
	if _, err := fmt.Fprintf(w, "%s %s %s[]", d.Modifier, ElementType, d.Identifier); err != nil {
		return 0, fmt.Errorf("write failed: %w", err)
	}

	if d.Format == config.Header {
		if _, err := io.WriteString(w, ";\n"); err != nil {
			return 0, fmt.Errorf("write failed: %w", err)
		}
		return 0, nil
	}

	if _, err := io.WriteString(w, " = "); err != nil {
		return 0, fmt.Errorf("write failed: %w", err)
	}

	var n int64
	var err error
	switch d.Encoding {
	case config.ASCII:
		n, err = EncodeASCII(w, src)
	default:
		n, err = EncodeBinary(w, src)
	}
	if err != nil {
		return n, err
	}

	if _, err := io.WriteString(w, "\n"); err != nil {
		return n, fmt.Errorf("write failed: %w", err)
	}
	return n, nil
}
