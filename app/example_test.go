package app_test

import (
	"fmt"

	arrays "github.com/0xalexb/hjarta-arrays"
	"github.com/0xalexb/hjarta-arrays/app"
	"github.com/0xalexb/hjarta-arrays/config"
	filefetcher "github.com/0xalexb/hjarta-arrays/config/fetcher/file"
	yamlparser "github.com/0xalexb/hjarta-arrays/config/parser/yaml"
	"github.com/0xalexb/hjarta-arrays/service"

	"go.uber.org/fx"
)

// Example_documentServiceFromConfig loads the service settings and the
// served document from one YAML file and wires them into a named service.
func Example_documentServiceFromConfig() {
	const name = `name:"documents"`

	configModule := fx.Module("config",
		fx.Provide(
			fx.Annotate(
				yamlparser.NewParser,
				fx.As(new(config.Parser)),
			),
		),
		fx.Provide(
			fx.Annotate(
				filefetcher.NewFetcher("testdata/app.yaml"),
				fx.As(new(config.DataFetcher)),
			),
		),
		fx.Provide(config.Provider(new(service.Config), "service")),
		fx.Provide(
			fx.Annotate(
				func(cfg *service.Config) service.Config { return *cfg },
				fx.ResultTags(name),
			),
			fx.Annotate(
				config.DocumentProvider("data"),
				fx.ResultTags(name),
			),
		),
	)

	var store *service.Store

	invokeModule := fx.Module("invoke",
		fx.Invoke(fx.Annotate(func(s *service.Store) {
			store = s
		}, fx.ParamTags(name))),
	)

	a := app.NewApp(
		app.WithLogLevel("error"),
		app.WithModules(configModule, invokeModule),
		app.WithDocumentService("documents"),
	)

	err := a.Start()
	if err != nil {
		fmt.Printf("Error starting app: %v\n", err)

		return
	}

	defer func() { _ = a.Stop() }()

	_ = store.Set(arrays.Path{arrays.Field("user"), arrays.Field("id")}, 123)
	_ = store.Remove("message")

	doc, _ := store.Snapshot()
	fmt.Println(string(doc))
	// Output:
	// {"user":{"name":"John Doe","age":42,"id":123}}
}
