// Package config loads configuration and documents through pluggable parsers and fetchers.
//
// The package uses an interface-based design with four extension points:
//   - Parser: decodes raw data into a config struct or an *arrays.Container
//   - DataFetcher: retrieves raw data (file, env, etc.)
//   - Validator: validates config after parsing
//   - Defaulter: applies default values before validation
//
// # Path Navigation
//
// Provider and DocumentProvider take a path selecting a section of the
// document. Keys are separated by a colon; all-digit keys address sequence
// elements:
//
//	"api:permissions"           -> config["api"]["permissions"]
//	"documents:0"               -> config["documents"][0]
//	""                          -> entire document
//
// # Example
//
//	type ServiceConfig struct {
//	    Address string `yaml:"address"`
//	}
//
//	fetcher, err := filefetcher.NewFetcher("config.yaml")()
//	cfg, err := config.Provider(&ServiceConfig{}, "service")(yamlparser.NewParser(), fetcher)
//	doc, err := config.DocumentProvider("data")(yamlparser.NewParser(), fetcher)
//	b := arrays.New(doc)
package config
