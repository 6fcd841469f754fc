package runner

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"ember/internal/config"
	"ember/internal/emitter"
	"ember/internal/extractor"
	"ember/internal/logger"
	"ember/internal/report"
)

var (
	ErrStdinReused    = errors.New("already read from stdin")
	ErrStdinNeedsName = errors.New("stdin needs a set name")
	ErrNameNeedsOne   = errors.New("a set name needs an archive holding exactly one file")
)

// Options supplies the process streams to Run.
type Options struct {
	Stdin  io.Reader
	Stdout io.Writer
}

// run is the state of one pass over the tokens.
type run struct {
	settings  config.Settings
	out       *bufio.Writer
	stdin     io.Reader
	usedStdin bool
	report    *report.Report

	// scratch holds the declaration being written until it is complete.
	scratch bytes.Buffer
}

// Run walks tokens once, left to right. Flags update the settings; every
// other token is an input that is embedded with the settings as they stand.
// A leading "-o path" redirects the output from opts.Stdout to a file.
//
// The first error stops the walk. Whatever was already written is flushed
// and the output is closed exactly once on every path.
func Run(tokens []string, opts Options) (rep *report.Report, err error) {
	if len(tokens) == 0 {
		return report.New(outputStdout), nil
	}
	if last := tokens[len(tokens)-1]; isFlag(last) {
		return nil, fmt.Errorf("%w '%s'", config.ErrMissingValue, last)
	}

	sink, outputName, tokens, err := openOutput(tokens, opts.Stdout)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := sink.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	r := &run{
		settings: config.Default(),
		out:      bufio.NewWriter(sink),
		stdin:    opts.Stdin,
		report:   report.New(outputName),
	}
	defer func() {
		if ferr := r.out.Flush(); err == nil && ferr != nil {
			err = fmt.Errorf("failed to flush output: %w", ferr)
		}
	}()

	if err := r.walk(tokens); err != nil {
		return nil, err
	}
	return r.report, nil
}

func (r *run) walk(tokens []string) error {
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		if tok == config.StdinToken {
			if err := r.embedStdin(); err != nil {
				return err
			}
			continue
		}

		if flag, ok := config.FlagOf(tok); ok {
			if i+1 >= len(tokens) {
				return fmt.Errorf("%w '%s'", config.ErrMissingValue, tok)
			}
			i++
			if err := r.settings.Apply(flag, tokens[i]); err != nil {
				return err
			}
			logger.Debug("[DEBUG] %s %q -> %s\n", tok, tokens[i], describe(r.settings))
			continue
		}

		if err := r.embedFile(tok); err != nil {
			return err
		}
	}
	return nil
}

func (r *run) embedStdin() error {
	if r.usedStdin {
		return ErrStdinReused
	}
	r.usedStdin = true
	if r.settings.Name == nil {
		return ErrStdinNeedsName
	}
	return r.embed(config.StdinToken, r.stdin)
}

// embedFile scopes the input file to exactly this argument.
func (r *run) embedFile(path string) error {
	f, err := openInput(path)
	if err != nil {
		return err
	}
	defer closeInput(path, f)

	return r.embed(path, f)
}

// embed writes one declaration per source found in the input. Members of one
// archive must not share an identifier.
func (r *run) embed(path string, in io.Reader) error {
	sources, err := extractor.Sources(path, in, r.settings.Unpack)
	if err != nil {
		return err
	}
	name, named := r.settings.TakeName()
	if named && len(sources) != 1 {
		return fmt.Errorf("%w: '%s' has %d", ErrNameNeedsOne, path, len(sources))
	}
	if len(sources) == 0 {
		logger.Warn("[WARN] No files found in archive %s\n", path)
		return nil
	}

	seen := make(map[string]string, len(sources))
	for _, src := range sources {
		ident, err := emitter.Identifier(r.settings.Prefix, name, src.Name)
		if err != nil {
			return err
		}
		if prev, ok := seen[ident]; ok {
			return fmt.Errorf("%w '%s' from %s and %s", emitter.ErrDuplicateIdentifier, ident, prev, src.Label)
		}
		seen[ident] = src.Label
		if err := r.declare(src, ident); err != nil {
			return err
		}
	}
	return nil
}

// declare writes one declaration into scratch and copies it to the output
// only once it is complete, so a failed read leaves no fragment behind.
func (r *run) declare(src extractor.Source, ident string) error {
	d := emitter.NewDeclaration(r.settings, ident)
	logger.Debug("[DEBUG] Declaring %s from %s (%s, %s)\n", ident, src.Label, d.Format, d.Encoding)

	r.scratch.Reset()
	var n int64
	if d.Format == config.Header {
		if _, err := emitter.Write(&r.scratch, d, nil); err != nil {
			return fmt.Errorf("%s: %w", src.Label, err)
		}
	} else {
		rc, err := src.Open()
		if err != nil {
			return err
		}
		defer rc.Close()

		if n, err = emitter.Write(&r.scratch, d, rc); err != nil {
			return fmt.Errorf("%s: %w", src.Label, err)
		}
	}
	if _, err := r.scratch.WriteTo(r.out); err != nil {
		return fmt.Errorf("failed to write %s: %w", ident, err)
	}

	r.report.Add(report.Entry{
		Identifier: ident,
		Source:     src.Label,
		Bytes:      n,
		Encoding:   d.Encoding.String(),
		Format:     d.Format.String(),
	})
	return nil
}

// describe lists the settings for debug output.
func describe(s config.Settings) string {
	name := "-"
	if s.Name != nil {
		name = *s.Name
	}
	return fmt.Sprintf("prefix=%q modifier=%q name=%s encoding=%s format=%s unpack=%s",
		s.Prefix, s.Modifier, name, s.Encoding, s.Format, s.Unpack)
}

// isFlag reports whether tok selects a flag and therefore needs a value.
func isFlag(tok string) bool {
	_, ok := config.FlagOf(tok)
	return ok
}
