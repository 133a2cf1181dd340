// package app is the main entrypoint into the application, responsible for
// configuring and starting the application, the project, logging, and the
// TUI.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/playpen/playpen/internal/logging"
	"github.com/playpen/playpen/internal/project"
	"github.com/playpen/playpen/internal/tui/top"
	"github.com/playpen/playpen/internal/version"
)

// Start playpen. Blocks until the user quits.
func Start(stdout, stderr io.Writer, args []string) error {
	cfg, err := Parse(stderr, args)
	if err != nil {
		return err
	}

	// Print out version and exit
	if cfg.Version {
		fmt.Fprintln(stdout, version.Version)
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger, proj, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	return top.Start(top.Options{
		Project: proj,
		Logger:  logger,
		Workdir: cfg.Workdir,
		Debug:   cfg.Debug,
	})
}

// newApp sets up logging and opens the project.
func newApp(ctx context.Context, cfg Config) (*logging.Logger, *project.Project, error) {
	logger := logging.NewLogger(cfg.Logging)
	slog.SetDefault(logger.Slog())

	if err := os.MkdirAll(cfg.Workdir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating working directory: %w", err)
	}
	proj, err := project.Open(project.Options{
		Dir:      cfg.Workdir,
		Template: cfg.Template,
		Logger:   logger,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("opening project: %w", err)
	}
	// Log messages referring to a file by its ID show the file instead.
	logger.AddArgsUpdater(&logging.ReferenceUpdater[project.FileEntry]{
		Getter: proj,
	})

	if cfg.Watch {
		if err := proj.Watch(ctx); err != nil {
			return nil, nil, err
		}
	}
	logger.Debug("loaded project", "dir", cfg.Workdir, "files", len(proj.Files()))
	return logger, proj, nil
}
