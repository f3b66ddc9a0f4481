// Package file provides a file-based DataFetcher implementation for the config package.
//
// The file is read at construction time and cached; every Fetch returns a
// fresh copy of the same bytes. The path "-" reads standard input, which lets
// command line tools accept documents through a pipe.
//
// Usage:
//
//	fetcher, err := file.NewFetcher("/path/to/document.yaml")()
//	if err != nil {
//	    // file not found, permission denied, path is a directory, ...
//	}
//	data, err := fetcher.Fetch()
//
// Use errors.Is(err, file.ErrPathIsDirectory) to detect directory paths.
package file
