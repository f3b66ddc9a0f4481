package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	arrays "github.com/0xalexb/hjarta-arrays"
	"github.com/0xalexb/hjarta-arrays/config"
	filefetcher "github.com/0xalexb/hjarta-arrays/config/fetcher/file"
	yamlparser "github.com/0xalexb/hjarta-arrays/config/parser/yaml"

	"github.com/goccy/go-yaml"
)

var errWriteStdin = errors.New("cannot write back a document read from stdin")

// document is a loaded file together with where it came from.
type document struct {
	path string
	root *arrays.Container
}

func loadDocument(file, section string) (*document, error) {
	fetcher, err := filefetcher.NewFetcher(file)()
	if err != nil {
		return nil, err //nolint:wrapcheck // already names the file
	}

	root, err := config.DocumentProvider(section)(yamlparser.NewParser(), fetcher)
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", fetcher.Path(), err)
	}

	return &document{path: fetcher.Path(), root: root}, nil
}

func (d *document) isJSON() bool {
	return strings.EqualFold(filepath.Ext(d.path), ".json")
}

func (d *document) encode() ([]byte, error) {
	if d.isJSON() {
		data, err := json.MarshalIndent(d.root, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding %q: %w", d.path, err)
		}

		return append(data, '\n'), nil
	}

	data, err := yaml.Marshal(d.root)
	if err != nil {
		return nil, fmt.Errorf("encoding %q: %w", d.path, err)
	}

	return data, nil
}

// save writes the document back to its file, or prints it when write is false.
func (d *document) save(out io.Writer, write bool) error {
	data, err := d.encode()
	if err != nil {
		return err
	}

	if !write {
		_, err = out.Write(data)

		return err //nolint:wrapcheck
	}

	if d.path == filefetcher.StdinPath {
		return errWriteStdin
	}

	mode := os.FileMode(0o644)
	if stat, statErr := os.Stat(d.path); statErr == nil {
		mode = stat.Mode().Perm()
	}

	err = os.WriteFile(d.path, data, mode)
	if err != nil {
		return fmt.Errorf("writing %q: %w", d.path, err)
	}

	return nil
}

// parseValue reads a command line value as YAML, so "42" is a number,
// "[a, b]" a list and "{k: v}" a container.
func parseValue(s string) (any, error) {
	if s == "" {
		return "", nil
	}

	var value any

	err := yaml.UnmarshalWithOptions([]byte(s), &value, yaml.UseOrderedMap())
	if err != nil {
		return nil, fmt.Errorf("parsing value %q: %w", s, err)
	}

	return arrays.Normalize(value), nil
}

func printValue(out io.Writer, value any) error {
	data, err := yaml.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding value: %w", err)
	}

	_, err = out.Write(data)

	return err //nolint:wrapcheck
}
