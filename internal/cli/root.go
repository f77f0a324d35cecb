// Package cli implements the cheek command-line interface. Every catalog
// command becomes a subcommand whose flags mirror the command's parameters.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abingham/cheek/audacity"
	"github.com/abingham/cheek/internal/config"
)

// App carries the state shared by all subcommands: resolved configuration,
// the logger, and the transport override used by tests.
type App struct {
	cfg config.Config
	log zerolog.Logger
	st  styles

	configPath string
	pipeTo     string
	pipeFrom   string
	timeout    time.Duration
	verbose    bool
	noColor    bool
	dryRun     bool

	// transport, when non-nil, is used instead of dialing the pipes.
	transport audacity.Transport
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	app := &App{}
	root := app.Root()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, app.st.fail.Render("error:"), err)
		return 1
	}
	return 0
}

// Root builds the root command with all subcommands attached.
func (a *App) Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "cheek",
		Short: "Control a running Audacity instance",
		Long: `cheek sends scripting commands to a running Audacity instance over its
mod-script-pipe interface. Audacity must be running with mod-script-pipe
enabled (Preferences > Modules).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default ~/.config/cheek/config.toml)")
	pf.StringVar(&a.pipeTo, "pipe-to", "", "path of the pipe Audacity reads commands from")
	pf.StringVar(&a.pipeFrom, "pipe-from", "", "path of the pipe Audacity writes replies to")
	pf.DurationVar(&a.timeout, "timeout", 0, "per-command timeout (default from config)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.BoolVar(&a.noColor, "no-color", false, "disable colored output")
	pf.BoolVar(&a.dryRun, "dry-run", false, "print the request line instead of sending it")

	root.AddCommand(a.commandsCmd())
	root.AddCommand(a.doCmd())
	root.AddCommand(a.shellCmd())
	for _, e := range audacity.All() {
		root.AddCommand(a.execCmd(e))
	}
	return root
}

// setup resolves config, flags and logging. Runs before every subcommand.
func (a *App) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	if a.pipeTo != "" {
		cfg.PipeTo = a.pipeTo
	}
	if a.pipeFrom != "" {
		cfg.PipeFrom = a.pipeFrom
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout = config.Duration(a.timeout)
	}
	if a.noColor {
		cfg.Color = "never"
	}
	if a.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	a.st = newStyles(colorEnabled(cfg.Color))
	a.log = newLogger(cfg.LogLevel)
	return nil
}

// newLogger builds the CLI logger: human-readable console output on stderr.
func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	w := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// dial opens the client, honoring the transport override.
func (a *App) dial() (*audacity.Client, error) {
	opts := []audacity.Option{
		audacity.WithLogger(a.log),
		audacity.WithTimeout(a.cfg.Timeout.Std()),
		audacity.WithCommandDelay(a.cfg.CommandDelay.Std()),
	}
	if a.transport != nil {
		return audacity.NewClient(a.transport, opts...), nil
	}
	return audacity.DialPipes(a.cfg.PipeTo, a.cfg.PipeFrom, opts...)
}
