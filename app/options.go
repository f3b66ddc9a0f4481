package app

import (
	arrays "github.com/0xalexb/hjarta-arrays"
	"github.com/0xalexb/hjarta-arrays/service"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules   []fx.Option
	LogLevel  string
	LogFormat string
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithDocumentService serves a named document over HTTP.
// The document must be in the graph under the same name, either through
// WithDocument or a module providing a named *arrays.Container.
// When options are provided (e.g., service.WithAddress), the service Config
// is supplied automatically.
func WithDocumentService(name string, opts ...service.Option) Option {
	return func(o *Options) {
		o.Modules = append(o.Modules, service.NewModule(name, opts...))
	}
}

// WithDocument supplies doc under name for WithDocumentService.
func WithDocument(name string, doc *arrays.Container) Option {
	return func(o *Options) {
		o.Modules = append(o.Modules, service.SupplyDocument(name, doc))
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFormat selects "json" (default) or "text" log output.
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}
