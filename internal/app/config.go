package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/playpen/playpen/internal/logging"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/peterbourgon/ff/v4/ffyaml"
)

type Config struct {
	// Workdir is the directory holding the project's files.
	Workdir string
	// Template is a directory copied into Workdir before the project is
	// opened.
	Template string
	// Watch enables picking up changes made to Workdir by other programs.
	Watch   bool
	Debug   bool
	Logging logging.Options

	Version bool
}

// set config in order of precedence:
// 1. flags > 2. env vars > 3. config file
func Parse(stderr io.Writer, args []string) (Config, error) {
	var cfg Config

	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("retrieving user's home directory: %w", err)
	}
	defaultConfigFile := filepath.Join(home, ".playpen.yaml")

	fs := ff.NewFlagSet("playpen")
	fs.StringVar(&cfg.Workdir, 'w', "workdir", ".", "The working directory containing the project's files.")
	fs.StringVar(&cfg.Template, 't', "template", "", "Directory to copy into the working directory before starting.")
	fs.BoolVar(&cfg.Watch, 0, "watch", "Pick up files changed by other programs.")
	fs.BoolVar(&cfg.Debug, 'd', "debug", "Log bubbletea messages to messages.log")
	fs.BoolVar(&cfg.Version, 'v', "version", "Print version.")
	_ = fs.String('c', "config", defaultConfigFile, "Path to config file.")

	{
		usage := fmt.Sprintf("Logging level (valid: %s).", strings.Join(logging.ValidLevels(), ","))
		fs.StringEnumVar(&cfg.Logging.Level, 'l', "log-level", usage, logging.ValidLevels()...)
	}

	err = ff.Parse(fs, args,
		ff.WithEnvVarPrefix("PLAYPEN"),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ffyaml.Parse),
		ff.WithConfigAllowMissingFile(),
	)
	if err != nil {
		// ff.Parse returns an error if there is an error or if -h/--help is
		// passed; in either case print flag usage in addition to error message.
		fmt.Fprintln(stderr, ffhelp.Flags(fs))
		return Config{}, err
	}

	cfg.Workdir, err = filepath.Abs(cfg.Workdir)
	if err != nil {
		return Config{}, fmt.Errorf("resolving working directory: %w", err)
	}
	return cfg, nil
}
