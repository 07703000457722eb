// Package cli wires the rematch commands: match, file, interactive and themes.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/bethropolis/rematch/internal/clipboard"
	"github.com/bethropolis/rematch/internal/config"
	"github.com/bethropolis/rematch/internal/highlight"
	"github.com/bethropolis/rematch/internal/logger"
	"github.com/bethropolis/rematch/internal/pattern"
	"github.com/bethropolis/rematch/internal/render"
	"github.com/bethropolis/rematch/internal/theme"
)

// Exit codes.
const (
	ExitOK             = 0
	ExitError          = 1
	ExitInvalidPattern = 2
)

var version = "dev"

// SetVersion sets the version string (called from main with ldflags).
func SetVersion(v string) {
	version = v
}

// runtime is the state shared by the commands of one execution.
type runtime struct {
	flags    config.Flags
	cfg      *config.Config
	themes   *theme.Manager
	clip     clipboard.Clipboard
	screen   tcell.Screen // nil opens the terminal in interactive mode
	closeLog func() error
}

func newRootCommand(rt *runtime) *cobra.Command {
	root := &cobra.Command{
		Use:   config.AppName,
		Short: "Highlight regular expression matches in text",
		Long: `rematch splits text into the parts a regular expression matches and the
parts it does not, and shows the matches in alternating colors.

Processing stops at the first empty match, and at most --max-matches matches
(default 100) are highlighted.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: rt.setup,
	}
	rt.flags.DefineFlags(root.PersistentFlags())

	root.AddCommand(
		newMatchCommand(rt),
		newFileCommand(rt),
		newInteractiveCommand(rt),
		newThemesCommand(rt),
	)
	return root
}

// setup loads the configuration, starts the logger and loads themes.
func (rt *runtime) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(rt.flags.ConfigFilePath, &rt.flags)
	if err != nil {
		return err
	}

	out, closeLog, err := logger.OpenOutput(cfg.Logger.LogFilePath)
	if err != nil {
		return err
	}
	rt.closeLog = closeLog
	logger.SetFilterDebug(rt.flags.DebugLog)
	logger.Init(cfg.Logger, out)
	stderr := cmd.ErrOrStderr()
	for _, w := range cfg.Warnings {
		logger.Warnf("Config: %s", w)
		fmt.Fprintf(stderr, "warning: %s\n", w)
	}
	logger.Debugf("Running '%s' with engine %s, format %s", cmd.Name(), cfg.Match.Engine, cfg.Render.Format)

	rt.cfg = cfg
	rt.themes = theme.NewManager(cfg.Render.ThemesDirectory())
	if err := rt.themes.SetTheme(cfg.Render.Theme); err != nil {
		logger.Warnf("Theme: %v, using '%s'", err, rt.themes.Current().Name)
		fmt.Fprintf(stderr, "warning: %v, using '%s'\n", err, rt.themes.Current().Name)
	}
	if rt.clip == nil {
		rt.clip = clipboard.System{}
	}
	return nil
}

func (rt *runtime) close() {
	if rt.closeLog != nil {
		_ = rt.closeLog()
		rt.closeLog = nil
	}
}

// request builds a highlight request from the configuration.
func (rt *runtime) request(patternStr, text string) highlight.Request {
	return highlight.Request{
		Pattern:          patternStr,
		Text:             text,
		Options:          rt.cfg.Match.Options(),
		Engine:           rt.cfg.Match.EngineValue(),
		MaxMatches:       rt.cfg.Match.MaxMatches,
		BacktrackTimeout: rt.cfg.Match.BacktrackTimeout(),
	}
}

// highlightAndRender highlights text and writes it in the configured format.
// An invalid pattern is rendered as an error and then returned.
func (rt *runtime) highlightAndRender(cmd *cobra.Command, patternStr, text string, copyPlain bool) error {
	renderer, err := render.ForFormat(rt.cfg.Render.Format, rt.themes.Current(), rt.cfg.Render.Palette())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	res, err := highlight.Highlight(rt.request(patternStr, text))
	if err != nil {
		if perr, ok := pattern.AsPatternError(err); ok {
			if rerr := renderer.RenderError(out, perr); rerr != nil {
				return fmt.Errorf("rendering error: %w", rerr)
			}
			return perr
		}
		return err
	}

	if err := renderer.Render(out, res); err != nil {
		return fmt.Errorf("rendering result: %w", err)
	}

	if copyPlain {
		if err := rt.clip.Copy(render.Plain(res.Segments)); err != nil {
			return fmt.Errorf("copying to clipboard: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Copied plain rendering (%d matches) to the clipboard\n", res.Matches)
	}
	return nil
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	return ExecuteArgs(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

// ExecuteArgs runs rematch with the given arguments and streams.
func ExecuteArgs(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return execute(&runtime{}, args, stdin, stdout, stderr)
}

func execute(rt *runtime, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newRootCommand(rt)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	defer rt.close()
	return exitCode(err, stderr)
}

// exitCode maps a command error to an exit code. Invalid patterns were already
// rendered by the command.
func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, pattern.ErrInvalidPattern) {
		logger.Debugf("Exiting on invalid pattern: %v", err)
		return ExitInvalidPattern
	}
	logger.Errorf("%v", err)
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return ExitError
}
