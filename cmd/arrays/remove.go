package main

import (
	arrays "github.com/0xalexb/hjarta-arrays"
	"github.com/0xalexb/hjarta-arrays/config"

	"github.com/alecthomas/kingpin/v2"
)

var _ = registerCommand(func(cli *kingpin.Application, env *environment) {
	var (
		file, path string
		write      bool
	)

	cmd := cli.Command("remove", "Delete the value at a key path. Missing paths are left alone.").
		Alias("rm").
		Action(func(*kingpin.ParseContext) error {
			return doRemove(env, file, path, write)
		})
	cmd.Arg("file", "YAML or JSON document, - for stdin.").
		Required().
		StringVar(&file)
	cmd.Arg("path", "Colon separated key path, e.g. users:0:name.").
		Required().
		StringVar(&path)
	cmd.Flag("write", "Write the result back to the file instead of printing it.").
		Short('w').
		BoolVar(&write)
})

func doRemove(env *environment, file, path string, write bool) error {
	doc, err := loadDocument(file, "")
	if err != nil {
		return err
	}

	err = arrays.New(doc.root).Remove(config.DocumentPath(doc.root, path)).Err()
	if err != nil {
		return err //nolint:wrapcheck
	}

	return doc.save(env.out, write)
}
