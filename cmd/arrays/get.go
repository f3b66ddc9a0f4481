package main

import (
	"errors"
	"fmt"

	arrays "github.com/0xalexb/hjarta-arrays"
	"github.com/0xalexb/hjarta-arrays/config"

	"github.com/alecthomas/kingpin/v2"
)

var errNoValue = errors.New("no value at path")

type missing struct{}

var _ = registerCommand(func(cli *kingpin.Application, env *environment) {
	var (
		file, path, def string
		hasDefault      bool
	)

	cmd := cli.Command("get", "Print the value at a key path as YAML.").
		Action(func(*kingpin.ParseContext) error {
			return doGet(env, file, path, def, hasDefault)
		})
	cmd.Arg("file", "YAML or JSON document, - for stdin.").
		Required().
		StringVar(&file)
	cmd.Arg("path", "Colon separated key path, e.g. users:0:name.").
		Required().
		StringVar(&path)
	cmd.Flag("default", "Value printed when nothing is stored at the path.").
		PlaceHolder("VALUE").
		IsSetByUser(&hasDefault).
		StringVar(&def)
})

func doGet(env *environment, file, path, def string, hasDefault bool) error {
	doc, err := loadDocument(file, "")
	if err != nil {
		return err
	}

	var fallback any = missing{}

	if hasDefault {
		fallback, err = parseValue(def)
		if err != nil {
			return err
		}
	}

	value, err := arrays.New(doc.root).Get(config.DocumentPath(doc.root, path), fallback)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if _, ok := value.(missing); ok {
		return fmt.Errorf("%w %q", errNoValue, path)
	}

	return printValue(env.out, value)
}
