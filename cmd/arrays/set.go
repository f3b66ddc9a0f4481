package main

import (
	arrays "github.com/0xalexb/hjarta-arrays"
	"github.com/0xalexb/hjarta-arrays/config"

	"github.com/alecthomas/kingpin/v2"
)

var _ = registerCommand(func(cli *kingpin.Application, env *environment) {
	var (
		file, path, value string
		write             bool
	)

	cmd := cli.Command("set", "Store a value at a key path, creating containers on the way.").
		Action(func(*kingpin.ParseContext) error {
			return doSet(env, file, path, value, write)
		})
	cmd.Arg("file", "YAML or JSON document, - for stdin.").
		Required().
		StringVar(&file)
	cmd.Arg("path", "Colon separated key path, e.g. users:0:name.").
		Required().
		StringVar(&path)
	cmd.Arg("value", "Value in YAML syntax.").
		Required().
		StringVar(&value)
	cmd.Flag("write", "Write the result back to the file instead of printing it.").
		Short('w').
		BoolVar(&write)
})

func doSet(env *environment, file, path, raw string, write bool) error {
	doc, err := loadDocument(file, "")
	if err != nil {
		return err
	}

	value, err := parseValue(raw)
	if err != nil {
		return err
	}

	err = arrays.New(doc.root).Set(config.DocumentPath(doc.root, path), value).Err()
	if err != nil {
		return err //nolint:wrapcheck
	}

	return doc.save(env.out, write)
}
