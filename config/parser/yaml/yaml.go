package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	arrays "github.com/0xalexb/hjarta-arrays"
	"github.com/0xalexb/hjarta-arrays/config"

	"github.com/goccy/go-yaml"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrPathNotFound is returned when the specified path is not found in the YAML document.
var ErrPathNotFound = errors.New("path not found")

// Parser implements config.Parser for YAML and JSON data.
// Struct targets are navigated with goccy/go-yaml PathString; *arrays.Container
// targets are decoded with key order preserved and navigated with arrays.Builder.
type Parser struct{}

// NewParser creates a new YAML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes data into target. The path selects a section using colon (:)
// as separator; an empty path decodes the entire document.
func (p *Parser) Parse(data []byte, target any, path string) error {
	if len(data) == 0 {
		return ErrEmptyData
	}

	if doc, ok := target.(*arrays.Container); ok {
		return p.parseDocument(data, doc, path)
	}

	if path == "" {
		err := yaml.Unmarshal(data, target)
		if err != nil {
			return fmt.Errorf("unmarshal error: %w", err)
		}

		return nil
	}

	pathObj, err := yaml.PathString(convertToYAMLPath(path))
	if err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}

	err = pathObj.Read(bytes.NewReader(data), target)
	if err != nil {
		if yaml.IsNotFoundNodeError(err) {
			return fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}

		return fmt.Errorf("reading path %q: %w", path, err)
	}

	return nil
}

type absent struct{}

// parseDocument decodes data with mapping order preserved, selects the
// section at path and copies its entries into doc.
func (p *Parser) parseDocument(data []byte, doc *arrays.Container, path string) error {
	var raw any

	err := yaml.UnmarshalWithOptions(data, &raw, yaml.UseOrderedMap())
	if err != nil {
		return fmt.Errorf("unmarshal error: %w", err)
	}

	section := arrays.Normalize(raw)

	if path != "" {
		root, ok := section.(*arrays.Container)
		if !ok {
			return fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}

		section, err = arrays.New(root).Get(config.DocumentPath(root, path), absent{})
		if err != nil {
			return fmt.Errorf("invalid path %q: %w", path, err)
		}

		if _, missing := section.(absent); missing {
			return fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}
	}

	found, err := arrays.FromValue(section)
	if err != nil {
		return fmt.Errorf("section %q: %w", path, err)
	}

	for key, value := range found.All() {
		doc.Put(key, value)
	}

	return nil
}

// convertToYAMLPath converts a colon-separated path to goccy/go-yaml PathString format.
// Examples:
//   - "key" -> "$.key"
//   - "api:permissions" -> "$.api.permissions"
//   - "users:0:name" -> "$.users[0].name"
func convertToYAMLPath(path string) string {
	var b strings.Builder

	b.WriteString("$")

	for _, key := range config.KeyPath(path) {
		if key.IsIndex() {
			b.WriteString("[" + strconv.Itoa(key.Int()) + "]")

			continue
		}

		b.WriteString("." + key.Name())
	}

	return b.String()
}
