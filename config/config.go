package config

import (
	"fmt"
	"log/slog"

	arrays "github.com/0xalexb/hjarta-arrays"
)

// PathSeparator separates keys in configuration paths ("api:permissions").
const PathSeparator = ":"

// Parser decodes configuration data into a target.
//
// The path parameter selects a section of the document, using PathSeparator
// between keys:
//   - "api:permissions" navigates to config["api"]["permissions"]
//   - "users:0" navigates to the first element of config["users"]
//   - "" (empty path) means the entire document
//
// Implementations must accept *arrays.Container targets in addition to
// plain structs. See config/parser/yaml.
type Parser interface {
	Parse(data []byte, target any, path string) error
}

// DataFetcher defines an interface for reading configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// KeyPath converts a configuration path into a key path.
func KeyPath(path string) arrays.Path {
	return arrays.SplitPath(path, PathSeparator)
}

// DocumentPath converts a configuration path into a key path for doc.
// Numeric segments address the field of the same name when doc holds no
// such index, as in JSON objects with "0" keys.
func DocumentPath(doc *arrays.Container, path string) arrays.Path {
	return arrays.ResolvePath(doc, KeyPath(path))
}

// Provider returns a function that reads, parses, sets defaults, and validates configuration data.
func Provider[T any](target *T, path string) func(Parser, DataFetcher) (*T, error) {
	return func(parser Parser, fetcher DataFetcher) (*T, error) {
		data, err := fetcher.Fetch()
		if err != nil {
			return nil, fmt.Errorf("reading data error: %w", err)
		}

		err = parser.Parse(data, target, path)
		if err != nil {
			return nil, fmt.Errorf("parsing error: %w", err)
		}

		if defaulter, ok := any(target).(Defaulter); ok && defaulter.SetDefaults() {
			slog.Info("defaults applied", slog.String("path", path))
		}

		if validator, ok := any(target).(Validator); ok {
			err := validator.Validate()
			if err != nil {
				return nil, fmt.Errorf("validating error: %w", err)
			}
		}

		return target, nil
	}
}

// DocumentProvider returns a function that reads a document, or the section
// of it selected by path, as a Container ready to be wrapped by arrays.New.
func DocumentProvider(path string) func(Parser, DataFetcher) (*arrays.Container, error) {
	return func(parser Parser, fetcher DataFetcher) (*arrays.Container, error) {
		data, err := fetcher.Fetch()
		if err != nil {
			return nil, fmt.Errorf("reading data error: %w", err)
		}

		doc := arrays.NewContainer()

		err = parser.Parse(data, doc, path)
		if err != nil {
			return nil, fmt.Errorf("parsing error: %w", err)
		}

		slog.Debug("document loaded", slog.String("path", path), slog.Int("keys", doc.Len()))

		return doc, nil
	}
}
