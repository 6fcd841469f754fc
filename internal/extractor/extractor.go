package extractor

import (
	"archive/zip"    // For reading .zip archives
	"compress/bzip2" // For reading .bz2 compressed data
	"compress/gzip"  // For reading .gz compressed data
	"errors"
	"fmt"
	"io"
	"os"

	"ember/internal/config"
	"ember/internal/logger"

	"github.com/bodgit/sevenzip" // For reading .7z archives
	"github.com/xi2/xz"          // For reading .xz compressed data
)

// ErrArchiveNeedsFile is returned when an archive mode is used on a stream
// that cannot be read at random offsets, such as standard input.
var ErrArchiveNeedsFile = errors.New("archive unpacking needs a regular input file")

// Source is one byte stream to embed.
// - Name: path the identifier is derived from.
// - Label: where the bytes came from, for diagnostics and the report.
type Source struct {
	Name  string
	Label string
	open  func() (io.ReadCloser, error)
}

// Open returns the decoded bytes of the source. The caller closes it.
func (s Source) Open() (io.ReadCloser, error) {
	return s.open()
}

// Sources routes in to the reader for mode and lists what it contains.
// Stream modes give exactly one source; archive modes give one per regular
// member, in archive order. in is not closed.
func Sources(path string, in io.Reader, mode config.Unpack) ([]Source, error) {
	switch mode {
	case config.Gzip:
		logger.Debug("[DEBUG] compression type is gzip\n")
		return single(path, func() (io.ReadCloser, error) {
			gr, err := gzip.NewReader(in)
			if err != nil {
				return nil, fmt.Errorf("failed to open gzip stream %s: %w", path, err)
			}
			return gr, nil
		}), nil
	case config.Bzip2:
		logger.Debug("[DEBUG] compression type is bzip2\n")
		return single(path, func() (io.ReadCloser, error) {
			return io.NopCloser(bzip2.NewReader(in)), nil
		}), nil
	case config.XZ:
		logger.Debug("[DEBUG] compression type is xz\n")
		return single(path, func() (io.ReadCloser, error) {
			xzr, err := xz.NewReader(in, 0)
			if err != nil {
				return nil, fmt.Errorf("failed to open xz stream %s: %w", path, err)
			}
			return io.NopCloser(xzr), nil
		}), nil
	case config.Zip:
		logger.Debug("[DEBUG] compression type is zip\n")
		return zipSources(path, in)
	case config.SevenZip:
		logger.Debug("[DEBUG] compression type is 7z\n")
		return sevenZipSources(path, in)
	default:
		return single(path, func() (io.ReadCloser, error) {
			return io.NopCloser(in), nil
		}), nil
	}
}

func single(path string, open func() (io.ReadCloser, error)) []Source {
	return []Source{{Name: path, Label: path, open: open}}
}

// zipSources lists the regular members of a .zip archive
func zipSources(path string, in io.Reader) ([]Source, error) {
	ra, size, err := readerAt(in)
	if err != nil {
		return nil, err
	}
	r, err := zip.NewReader(ra, size)
	if err != nil {
		return nil, fmt.Errorf("failed to open zip archive %s: %w", path, err)
	}

	var sources []Source
	for _, f := range r.File {
		if !f.Mode().IsRegular() {
			continue
		}
		sources = append(sources, Source{
			Name:  f.Name,
			Label: path + ":" + f.Name,
			open:  f.Open,
		})
	}
	return sources, nil
}

// sevenZipSources lists the regular members of a .7z archive using the sevenzip library
func sevenZipSources(path string, in io.Reader) ([]Source, error) {
	ra, size, err := readerAt(in)
	if err != nil {
		return nil, err
	}
	r, err := sevenzip.NewReader(ra, size)
	if err != nil {
		return nil, fmt.Errorf("failed to open 7z archive %s: %w", path, err)
	}

	var sources []Source
	for _, f := range r.File {
		if !f.FileInfo().Mode().IsRegular() {
			continue
		}
		sources = append(sources, Source{
			Name:  f.Name,
			Label: path + ":" + f.Name,
			open:  f.Open,
		})
	}
	return sources, nil
}

// readerAt exposes random access to in when it supports it. Only regular
// files qualify, so piped standard input is rejected.
func readerAt(in io.Reader) (io.ReaderAt, int64, error) {
	switch r := in.(type) {
	case *os.File:
		info, err := r.Stat()
		if err != nil || !info.Mode().IsRegular() {
			return nil, 0, ErrArchiveNeedsFile
		}
		return r, info.Size(), nil
	case interface {
		io.ReaderAt
		Size() int64
	}:
		return r, r.Size(), nil
	}
	return nil, 0, ErrArchiveNeedsFile
}
