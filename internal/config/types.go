package config

// Encoding selects how the payload of a source declaration is written.
type Encoding int

const (
	// Binary writes a brace-enclosed list of decimal byte values.
	Binary Encoding = iota
	// ASCII writes string literal segments split at every line feed.
	ASCII
)

// Format selects whether declarations carry their payload.
type Format int

const (
	// Header declares the array only (extern linkage, no payload).
	Header Format = iota
	// Source defines the array together with its payload.
	Source
)

// Unpack selects how an input is turned into byte sources before encoding.
type Unpack int

const (
	None Unpack = iota
	Gzip
	Bzip2
	XZ
	Zip
	SevenZip
)

// Allowed keywords, indexed by the enum values above. SelectOne resolves
// user text against these lists.
var (
	EncodingNames = []string{"binary", "ascii"}
	FormatNames   = []string{"header", "source"}
	UnpackNames   = []string{"none", "gzip", "bzip2", "xz", "zip", "7z"}
)

func (e Encoding) String() string { return EncodingNames[e] }
func (f Format) String() string   { return FormatNames[f] }
func (u Unpack) String() string   { return UnpackNames[u] }

// Archive reports whether the mode yields one source per archive member
// rather than a single decompressed stream.
func (u Unpack) Archive() bool {
	return u == Zip || u == SevenZip
}

// Modifiers written by the format flag.
const (
	SourceModifier = "const"
	HeaderModifier = "extern const"
)

// Settings is the option state consulted for every input.
// - Prefix: prepended to every identifier.
// - Modifier: access modifier text written before the element type.
// - Name: one-shot identifier override for the next input only.
// - Encoding/Format/Unpack: persist until changed again.
type Settings struct {
	Prefix   string
	Modifier string
	Name     *string
	Encoding Encoding
	Format   Format
	Unpack   Unpack
}

// Default returns the settings in effect before any argument is applied.
func Default() Settings {
	return Settings{
		Modifier: SourceModifier,
		Encoding: Binary,
		Format:   Source,
		Unpack:   None,
	}
}

// TakeName returns the pending one-shot name, if any, and clears it so it
// cannot apply to a second input.
func (s *Settings) TakeName() (string, bool) {
	if s.Name == nil {
		return "", false
	}
	name := *s.Name
	s.Name = nil
	return name, true
}
