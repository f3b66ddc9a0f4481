package file

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// StdinPath is the path that makes NewFetcher read standard input instead of a file.
const StdinPath = "-"

// ErrPathIsDirectory is returned when the path provided to the Fetcher points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// Fetcher implements config.DataFetcher for documents stored in a file or read from a stream.
// The contents are read once at construction time and cached.
type Fetcher struct {
	path string
	data []byte
}

// NewFetcher returns a constructor function that creates a Fetcher for fpath.
// The file is read when the constructor runs, which lets an Fx container decide
// when that happens. StdinPath reads os.Stdin.
// The constructor fails if the file cannot be read or if the path points to a directory.
func NewFetcher(fpath string) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		if fpath == StdinPath {
			return NewReaderFetcher(StdinPath, os.Stdin)
		}

		cleanPath := filepath.Clean(fpath)

		stat, err := os.Stat(cleanPath)
		if err != nil {
			return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
		}

		if stat.IsDir() {
			return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
		}

		data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and validated
		if err != nil {
			return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
		}

		return &Fetcher{
			path: cleanPath,
			data: data,
		}, nil
	}
}

// NewReaderFetcher reads r to the end and returns a Fetcher serving its contents.
// name is reported by Path.
func NewReaderFetcher(name string, r io.Reader) (*Fetcher, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", name, err)
	}

	return &Fetcher{
		path: name,
		data: data,
	}, nil
}

// Path returns the cleaned file path, or the name given to NewReaderFetcher.
func (f *Fetcher) Path() string {
	return f.path
}

// Fetch returns a copy of the cached data so callers cannot mutate it.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}
