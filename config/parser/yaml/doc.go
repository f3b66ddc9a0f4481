// Package yaml provides a YAML parser implementation for the config package.
//
// It uses github.com/goccy/go-yaml. JSON input is accepted as well, since
// JSON documents are valid YAML.
//
// Two kinds of targets are supported:
//   - structs and other Go values: the colon path is converted to a
//     PathString ("api:users:0" -> "$.api.users[0]") and read directly.
//   - *arrays.Container: the document is decoded with yaml.UseOrderedMap so
//     key order survives, the section is located with arrays.Builder and its
//     entries are copied into the target.
//
// Usage:
//
//	parser := yaml.NewParser()
//	var cfg Config
//	err := parser.Parse(data, &cfg, "service")
//
//	doc := arrays.NewContainer()
//	err = parser.Parse(data, doc, "data")
package yaml
