package config

import (
	"errors"
	"fmt"
	"strings"
)

// Reserved lists the characters that may never appear in an identifier.
const Reserved = "{}[]#()%:;.?*+-/^&|~!=,\\\"'"

// Flag letters recognised in the token stream. Matching is case-insensitive.
const (
	FlagOutput   = 'o'
	FlagPrefix   = 'p'
	FlagModifier = 'm'
	FlagEncoding = 'e'
	FlagFormat   = 'f'
	FlagName     = 'n'
	FlagUnpack   = 'u'
)

// StdinToken names standard input as the next input source.
const StdinToken = "-"

var (
	ErrNoMatch         = errors.New("no matching value")
	ErrAmbiguous       = errors.New("ambiguous value")
	ErrMissingValue    = errors.New("missing value for argument")
	ErrUnknownArgument = errors.New("unknown input argument")
	ErrInvalidPrefix   = errors.New("invalid prefix")
	ErrInvalidName     = errors.New("invalid name")
)

// SelectOne returns the index of the single entry in vals that text is a
// case-insensitive prefix of. Allows shorthands such as "h" for "header".
// Zero or several matches is an error, never a default; empty text therefore
// fails whenever vals holds more than one entry.
func SelectOne(text string, vals []string) (int, error) {
	found := -1
	for i, v := range vals {
		if len(text) > len(v) || !strings.EqualFold(v[:len(text)], text) {
			continue
		}
		if found != -1 {
			return -1, fmt.Errorf("%w: '%s'", ErrAmbiguous, text)
		}
		found = i
	}
	if found == -1 {
		return -1, fmt.Errorf("%w: '%s'", ErrNoMatch, text)
	}
	return found, nil
}

// ValidName reports whether s can be used verbatim inside an identifier:
// no whitespace, no control characters, no reserved characters.
func ValidName(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if IsSpace(c) || c < 0x20 || c == 0x7f || strings.IndexByte(Reserved, c) >= 0 {
			return false
		}
	}
	return true
}

// IsSpace matches the ASCII whitespace set: space, \t, \n, \v, \f, \r.
func IsSpace(c byte) bool {
	return c == ' ' || (c >= '\t' && c <= '\r')
}

// FlagOf returns the lower-cased flag letter when token is an option marker
// followed by exactly one character.
func FlagOf(token string) (byte, bool) {
	if len(token) != 2 || token[0] != '-' {
		return 0, false
	}
	c := token[1]
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	return c, true
}

// Apply updates s for one flag and its value. Later flags override earlier
// ones; in particular -f resets the modifier and a following -m wins again.
func (s *Settings) Apply(flag byte, value string) error {
	switch flag {
	case FlagPrefix:
		if !ValidName(value) {
			return fmt.Errorf("%w '%s'", ErrInvalidPrefix, value)
		}
		s.Prefix = value

	case FlagModifier:
		s.Modifier = value

	case FlagEncoding:
		i, err := SelectOne(value, EncodingNames)
		if err != nil {
			return fmt.Errorf("unknown encoding '%s': %w", value, err)
		}
		s.Encoding = Encoding(i)

	case FlagFormat:
		i, err := SelectOne(value, FormatNames)
		if err != nil {
			return fmt.Errorf("unknown format '%s': %w", value, err)
		}
		s.Format = Format(i)
		if s.Format == Header {
			s.Modifier = HeaderModifier
		} else {
			s.Modifier = SourceModifier
		}

	case FlagName:
		if value == "" || !ValidName(value) {
			return fmt.Errorf("%w '%s'", ErrInvalidName, value)
		}
		s.Name = &value

	case FlagUnpack:
		i, err := SelectOne(value, UnpackNames)
		if err != nil {
			return fmt.Errorf("unknown unpack mode '%s': %w", value, err)
		}
		s.Unpack = Unpack(i)

	default:
		return fmt.Errorf("%w '-%c'", ErrUnknownArgument, flag)
	}
	return nil
}
