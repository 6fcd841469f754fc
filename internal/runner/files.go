package runner

import (
	"errors"
	"fmt"
	"io"
	"os"

	"ember/internal/config"
	"ember/internal/logger"
)

var (
	ErrOpenInput  = errors.New("cannot open input file")
	ErrOpenOutput = errors.New("cannot open output file")
)

// outputStdout is the report name of the default sink.
const outputStdout = "-"

// openOutput consumes a leading "-o path" pair and creates (or truncates)
// the named file. Without one the sink is stdout, which is never closed.
// It returns the remaining tokens.
func openOutput(tokens []string, stdout io.Writer) (io.WriteCloser, string, []string, error) {
	flag, ok := config.FlagOf(tokens[0])
	if !ok || flag != config.FlagOutput {
		return nopWriteCloser{stdout}, outputStdout, tokens, nil
	}
	if len(tokens) < 2 {
		return nil, "", nil, fmt.Errorf("%w '%s'", config.ErrMissingValue, tokens[0])
	}

	path := tokens[1]
	out, err := os.Create(path)
	if err != nil {
		return nil, "", nil, fmt.Errorf("%w '%s': %v", ErrOpenOutput, path, err)
	}
	logger.Debug("[DEBUG] Writing declarations to %s\n", path)
	return out, path, tokens[2:], nil
}

// openInput opens one input file for reading.
func openInput(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w '%s': %v", ErrOpenInput, path, err)
	}
	return f, nil
}

// closeInput releases an input; a failure here cannot lose data, so it is
// only logged.
func closeInput(path string, f *os.File) {
	if cerr := f.Close(); cerr != nil {
		logger.Error("[ERROR] Failed to close input file %s: %s\n", path, cerr)
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
