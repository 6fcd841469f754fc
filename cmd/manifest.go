package cmd

import (
	"errors"

	"ember/internal/config"
	"ember/internal/logger"
)

var errOutputTwice = errors.New("output file given both in the manifest and with -o")

// withManifest places the manifest's tokens ahead of the command-line
// tokens. An output target, from either side, stays the very first pair.
func withManifest(path string, tokens []string) ([]string, error) {
	if path == "" {
		return tokens, nil
	}

	m, err := config.LoadManifest(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("[DEBUG] Loaded manifest %s with %d files\n", path, len(m.Files))

	var head, tail []string
	if flag, ok := config.FlagOf(firstOf(tokens)); ok && flag == config.FlagOutput && len(tokens) >= 2 {
		if m.Output != "" {
			return nil, errOutputTwice
		}
		head, tail = tokens[:2], tokens[2:]
	} else {
		tail = tokens
		if m.Output != "" {
			head = []string{"-o", m.Output}
		}
	}

	combined := make([]string, 0, len(head)+len(tail)+4*len(m.Files))
	combined = append(combined, head...)
	combined = append(combined, m.Tokens()...)
	return append(combined, tail...), nil
}

func firstOf(tokens []string) string {
	if len(tokens) == 0 {
		return ""
	}
	return tokens[0]
}
