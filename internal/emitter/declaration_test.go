package emitter

import (
	"bytes"
	"strings"
	"testing"

	"ember/internal/config"
)

func TestWrite(t *testing.T) {
	header := config.Default()
	header.Format = config.Header
	header.Modifier = config.HeaderModifier

	ascii := config.Default()
	ascii.Encoding = config.ASCII

	headerASCII := header
	headerASCII.Encoding = config.ASCII

	tests := []struct {
		name     string
		settings config.Settings
		in       string
		want     string
		wantRead int64
	}{
		{
			name:     "binary source",
			settings: config.Default(),
			in:       "\x00A",
			want:     "const char t[] = { 0, 65 };\n",
			wantRead: 2,
		},
		{
			name:     "ascii source",
			settings: ascii,
			in:       "\x00A",
			want:     "const char t[] = \n\"\\x00A\";\n",
			wantRead: 2,
		},
		{
			name:     "empty binary",
			settings: config.Default(),
			in:       "",
			want:     "const char t[] = { };\n",
		},
		{
			name:     "header binary",
			settings: header,
			in:       "ignored",
			want:     "extern const char t[];\n",
		},
		{
			name:     "header ascii",
			settings: headerASCII,
			in:       "ignored\n",
			want:     "extern const char t[];\n",
		},
		{
			name:     "header empty",
			settings: header,
			in:       "",
			want:     "extern const char t[];\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			src := strings.NewReader(tt.in)
			n, err := Write(&out, NewDeclaration(tt.settings, "t"), src)
			if err != nil {
				t.Fatalf("Write() error: %v", err)
			}
			if out.String() != tt.want {
				t.Errorf("Write() = %q, want %q", out.String(), tt.want)
			}
			if n != tt.wantRead {
				t.Errorf("Write() read %d bytes, want %d", n, tt.wantRead)
			}
			if tt.settings.Format == config.Header && src.Len() != len(tt.in) {
				t.Errorf("header declaration consumed %d bytes of its source", len(tt.in)-src.Len())
			}
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, bytes.ErrTooLarge }

func TestWrite_PropagatesWriteErrors(t *testing.T) {
	_, err := Write(failingWriter{}, NewDeclaration(config.Default(), "t"), strings.NewReader("abc"))
	if err == nil {
		t.Fatal("Write() to a failing writer returned no error")
	}
}
