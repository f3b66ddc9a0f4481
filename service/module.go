package service

import (
	"fmt"
	"log/slog"

	arrays "github.com/0xalexb/hjarta-arrays"
	"go.uber.org/fx"
)

// NewModule creates an Fx module serving a named document over HTTP.
// The name is used as the module name and as the DI named tag for the
// *arrays.Container document and the Config.
// If any options are passed, the module supplies Config from those options.
// Otherwise, Config must be provided externally (e.g., via config.Provider).
// The module also provides the document's *Store under the same name.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name string, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	var cfg Config

	for _, apply := range opts {
		apply(&cfg)
	}

	tag := fmt.Sprintf(`name:"%s"`, name)

	var moduleOpts []fx.Option

	if len(opts) > 0 {
		moduleOpts = append(moduleOpts, fx.Supply(
			fx.Annotate(cfg, fx.ResultTags(tag)),
		))
	}

	moduleOpts = append(moduleOpts,
		fx.Provide(
			fx.Annotate(NewStore, fx.ParamTags(tag), fx.ResultTags(tag)),
		),
		fx.Invoke(
			fx.Annotate(
				func(lifecycle fx.Lifecycle, shutdowner fx.Shutdowner, store *Store, serviceCfg Config) error {
					serviceCfg.SetDefaults()

					srv, err := NewServer(name, NewHandler(store, serviceCfg.MaxBodyBytes), serviceCfg, func() {
						shutdownErr := shutdowner.Shutdown()
						if shutdownErr != nil {
							slog.Error("failed to trigger shutdown", "document", name, "error", shutdownErr)
						}
					})
					if err != nil {
						return err
					}

					lifecycle.Append(fx.Hook{
						OnStart: srv.Start,
						OnStop:  srv.Stop,
					})

					return nil
				},
				fx.ParamTags("", "", tag, tag),
			),
		),
	)

	return fx.Module(name, moduleOpts...)
}

// SupplyDocument places doc into the graph under name for NewModule.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func SupplyDocument(name string, doc *arrays.Container) fx.Option {
	return fx.Supply(fx.Annotate(doc, fx.ResultTags(fmt.Sprintf(`name:"%s"`, name))))
}
