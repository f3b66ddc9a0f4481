package main

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/0xalexb/hjarta-arrays/app"
	"github.com/0xalexb/hjarta-arrays/logging"

	"github.com/alecthomas/kingpin/v2"
	"github.com/mattn/go-isatty"
)

type command func(cli *kingpin.Application, env *environment)

// environment carries what every command shares: global flags and the output stream.
type environment struct {
	out    io.Writer
	logCfg logging.LoggerConfig
}

var commands []command

// defaultLogFormat is text on a terminal and JSON when stderr is redirected.
func defaultLogFormat(fd uintptr) string {
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return logging.FormatText
	}

	return logging.FormatJSON
}

func registerCommand(c command) bool {
	commands = append(commands, c)

	return true
}

func newApplication(out io.Writer) *kingpin.Application {
	env := &environment{out: out}

	cli := kingpin.New("arrays", "Read and modify YAML or JSON documents by key path.").
		UsageWriter(os.Stderr).
		ErrorWriter(os.Stderr).
		Version(app.Version)

	cli.Flag("log.level", "Log level: debug, info, warn or error.").
		Default("info").
		StringVar(&env.logCfg.Level)
	cli.Flag("log.format", "Log format: json or text.").
		Default(defaultLogFormat(os.Stderr.Fd())).
		EnumVar(&env.logCfg.Format, logging.FormatJSON, logging.FormatText)

	cli.PreAction(func(*kingpin.ParseContext) error {
		slog.SetDefault(logging.NewLogger(env.logCfg, os.Stderr))

		if level := logging.ParseLevel(env.logCfg.Level); level == slog.LevelInfo &&
			!strings.EqualFold(env.logCfg.Level, level.String()) {
			slog.Warn("unknown log level, using info", "level", env.logCfg.Level)
		}

		return nil
	})

	for _, register := range commands {
		register(cli, env)
	}

	return cli
}

func run(args []string, out io.Writer) error {
	_, err := newApplication(out).Parse(args)

	return err //nolint:wrapcheck // kingpin errors are shown as they are
}

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err != nil {
		slog.Error("execution failed", "error", err)
		os.Exit(1)
	}
}
