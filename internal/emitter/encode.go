package emitter

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"ember/internal/config"
	"ember/internal/logger"
)

// Characters with a dedicated two-character escape, and the letter that
// follows the backslash for each of them.
const (
	strSpecial = "\a\b\f\n\r\v\\\""
	strEscape  = "abfnrv\\\""
)

const hexDigits = "0123456789abcdef"

// EncodeBinary writes src as "{ b0, b1, ..., bn };" using unsigned decimal
// values. An empty source gives "{ };". It returns the number of bytes read.
func EncodeBinary(w io.Writer, src io.Reader) (int64, error) {
	out := bufio.NewWriter(w)
	in := bufio.NewReader(src)

	var n int64
	var num [3]byte
	out.WriteByte('{')
	for {
		c, err := in.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return n, fmt.Errorf("read failed: %w", err)
		}
		if n > 0 {
			out.WriteByte(',')
		}
		out.WriteByte(' ')
		out.Write(strconv.AppendUint(num[:0], uint64(c), 10))
		n++
	}
	out.WriteString(" };")

	if err := out.Flush(); err != nil {
		return n, fmt.Errorf("write failed: %w", err)
	}
	return n, nil
}

// EncodeASCII writes src as C string literal segments. The first segment
// opens on a new line and a new segment is started after every line feed,
// so each physical line of the input is one line of output:
//
//	"first line\n"
//	"second line";
//
// Bytes outside printable ASCII are written as \xNN with exactly two hex
// digits. Zero bytes are escaped too, but each one logs a warning.
func EncodeASCII(w io.Writer, src io.Reader) (int64, error) {
	out := bufio.NewWriter(w)
	in := bufio.NewReader(src)

	var n int64
	split := false
	out.WriteString("\n\"")
	for {
		c, err := in.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return n, fmt.Errorf("read failed: %w", err)
		}

		if split {
			out.WriteString("\"\n\"")
			split = false
		}
		if c == 0 {
			logger.Warn("[WARN] Inserting 0-byte into string literal at offset %d\n", n)
		}
		writeEscaped(out, c)

		if c == '\n' {
			split = true
		}
		n++
	}
	out.WriteString("\";")

	if err := out.Flush(); err != nil {
		return n, fmt.Errorf("write failed: %w", err)
	}
	return n, nil
}

func writeEscaped(out *bufio.Writer, c byte) {
	if i := strings.IndexByte(strSpecial, c); i >= 0 {
		out.WriteByte('\\')
		out.WriteByte(strEscape[i])
		return
	}
	if c >= 0x80 || (!printable(c) && !config.IsSpace(c)) {
		out.WriteString(`\x`)
		out.WriteByte(hexDigits[c>>4])
		out.WriteByte(hexDigits[c&0x0f])
		return
	}
	out.WriteByte(c)
}

func printable(c byte) bool {
	return c >= 0x20 && c < 0x7f
}
