// Package cli implements the studio command-line interface.
//
// The CLI plays the part of the application shell: it builds a document,
// asks the compositor for a frame and exports the framebuffer. It is built
// using cobra and logs through charmbracelet/log, which is also installed as
// the handler behind studio.Logger.
//
// # Commands
//
//   - demo: composite the demo poster (red background, blue rectangle)
//   - render: stack image files and rectangles into one composited image
//   - version: print build information
//
// # Configuration
//
// --config points at a TOML file (see package config). Flags override it.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gogpu/studio"
	"github.com/gogpu/studio/config"
)

var (
	version = studio.Version // semantic version
	commit  string           // git commit SHA
	date    string           // build timestamp
)

// SetVersion sets the version information displayed by --version.
// It is called by main with values injected via ldflags.
func SetVersion(v, c, d string) {
	if v != "" {
		version = v
	}
	commit = c
	date = d
}

// app is the state shared by all commands of one invocation.
type app struct {
	stderr     io.Writer
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *slog.Logger
}

// setup loads the configuration and installs the logger. It runs before
// every command.
func (a *app) setup() error {
	a.cfg = config.Default()
	if a.configPath != "" {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}

	level, err := a.cfg.Log.SlogLevel()
	if err != nil {
		return err
	}
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = installLogger(newLogger(a.stderr, level))

	if a.configPath != "" {
		a.logger.Debug("configuration loaded", "path", a.configPath)
	}
	return nil
}

// NewRootCommand builds the studio command tree. Log output goes to stderr.
func NewRootCommand(stderr io.Writer) *cobra.Command {
	a := &app{stderr: stderr}

	root := &cobra.Command{
		Use:           "studio",
		Short:         "Composite layered documents into images",
		Long:          `studio builds documents from raster and vector layers and composites them into a single image using alpha blending.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("studio %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to a TOML configuration file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newDemoCmd(a))
	root.AddCommand(newRenderCmd(a))
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the studio CLI with the given arguments.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	root := NewRootCommand(stderr)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.ExecuteContext(ctx)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "studio %s\n", version)
			if commit != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", commit)
			}
			if date != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "built: %s\n", date)
			}
		},
	}
}
