package main

import (
	"github.com/0xalexb/hjarta-arrays/app"
	"github.com/0xalexb/hjarta-arrays/service"

	"github.com/alecthomas/kingpin/v2"
)

const documentName = "documents"

var _ = registerCommand(func(cli *kingpin.Application, env *environment) {
	var (
		file, section string
		cfg           service.Config
	)

	cmd := cli.Command("serve", "Serve a document over HTTP until interrupted.").
		Action(func(*kingpin.ParseContext) error {
			return doServe(env, file, section, cfg)
		})
	cmd.Arg("file", "YAML or JSON document, - for stdin.").
		Required().
		StringVar(&file)
	cmd.Flag("section", "Serve only the section at this colon separated key path.").
		PlaceHolder("a:b").
		StringVar(&section)
	cmd.Flag("listen", "Address to listen on.").
		Default(service.DefaultAddress).
		StringVar(&cfg.Address)
	cmd.Flag("max-body", "Largest accepted PUT body in bytes.").
		Default("1048576").
		Int64Var(&cfg.MaxBodyBytes)
})

func newServeApp(env *environment, doc *document, cfg service.Config) *app.App {
	return app.NewApp(
		app.WithLogLevel(env.logCfg.Level),
		app.WithLogFormat(env.logCfg.Format),
		app.WithDocument(documentName, doc.root),
		app.WithDocumentService(documentName,
			service.WithAddress(cfg.Address),
			service.WithMaxBodyBytes(cfg.MaxBodyBytes),
		),
	)
}

func doServe(env *environment, file, section string, cfg service.Config) error {
	err := cfg.Validate()
	if err != nil {
		return err //nolint:wrapcheck
	}

	doc, err := loadDocument(file, section)
	if err != nil {
		return err
	}

	a := newServeApp(env, doc, cfg)

	err = a.Err()
	if err != nil {
		return err //nolint:wrapcheck
	}

	a.Run()

	return nil
}
