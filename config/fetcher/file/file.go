package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultMaxSize is the largest configuration file NewFetcher accepts.
const DefaultMaxSize = 4 << 20

// ErrPathIsDirectory is returned when the path provided to the Fetcher points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// ErrFileTooLarge is returned when the file exceeds the size limit.
var ErrFileTooLarge = errors.New("file exceeds size limit")

// Fetcher implements config.DataFetcher interface for file-based configuration.
// The file is read once when the Fetcher is constructed.
type Fetcher struct {
	path string
	data []byte
}

// NewFetcher returns a constructor for a Fetcher reading fpath, limited to
// DefaultMaxSize bytes. Returning a constructor lets an Fx graph decide when
// the file is read.
func NewFetcher(fpath string) func() (*Fetcher, error) {
	return NewLimitedFetcher(fpath, DefaultMaxSize)
}

// NewLimitedFetcher is NewFetcher with an explicit size limit in bytes.
func NewLimitedFetcher(fpath string, maxSize int64) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		cleanPath := filepath.Clean(fpath)

		stat, err := os.Stat(cleanPath)
		if err != nil {
			return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
		}

		if stat.IsDir() {
			return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
		}

		if stat.Size() > maxSize {
			return nil, fmt.Errorf("path %q (%d bytes, limit %d): %w", cleanPath, stat.Size(), maxSize, ErrFileTooLarge)
		}

		data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and validated
		if err != nil {
			return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
		}

		return &Fetcher{path: cleanPath, data: data}, nil
	}
}

// Path returns the cleaned path of the file.
func (f *Fetcher) Path() string {
	return f.path
}

// Fetch returns a copy of the data read at construction time.
func (f *Fetcher) Fetch() ([]byte, error) {
	return append([]byte(nil), f.data...), nil
}
