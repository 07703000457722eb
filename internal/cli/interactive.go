package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bethropolis/rematch/internal/app"
	"github.com/bethropolis/rematch/internal/logger"
	"github.com/bethropolis/rematch/internal/source"
)

func newInteractiveCommand(rt *runtime) *cobra.Command {
	var (
		watch      bool
		patternStr string
	)

	cmd := &cobra.Command{
		Use:     "interactive [FILE]",
		Aliases: []string{"i"},
		Short:   "Edit a pattern and see its matches live",
		Long: `Open a terminal view with an editable pattern line above the text. Matches
are re-highlighted as you type.

The text comes from FILE, or from standard input when it is not a terminal.
With --watch, FILE is reloaded whenever it is written.

Keys:
  F2/Ctrl+G ignore case   F3/Ctrl+L multiline   F4/Ctrl+D dot all
  F5 engine   F6 theme   Ctrl+Y copy matches   Esc/Ctrl+C/Ctrl+Q quit`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				text, path string
				err        error
			)
			switch {
			case len(args) == 1 && args[0] != source.StdinName:
				path = args[0]
				text, err = source.ReadFile(path)
			case !isTerminal(cmd.InOrStdin()):
				text, err = source.ReadInput(cmd.InOrStdin())
			}
			if err != nil {
				return err
			}
			if watch && path == "" {
				logger.Warnf("Interactive: --watch needs a FILE, ignoring")
			}

			opts := app.Options{
				Text:             text,
				SourcePath:       path,
				Watch:            watch,
				Pattern:          patternStr,
				Match:            rt.cfg.Match.Options(),
				Engine:           rt.cfg.Match.EngineValue(),
				MaxMatches:       rt.cfg.Match.MaxMatches,
				BacktrackTimeout: rt.cfg.Match.BacktrackTimeout(),
				Themes:           rt.themes,
				Clipboard:        rt.clip,
				MessageTimeout:   rt.cfg.UI.MessageTimeout(),
				Debounce:         rt.cfg.UI.Debounce(),
			}
			var a *app.App
			if rt.screen != nil {
				a, err = app.NewWithScreen(rt.screen, opts)
			} else {
				a, err = app.New(opts)
			}
			if err != nil {
				return err
			}
			return a.Run()
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Reload FILE when it changes")
	cmd.Flags().StringVarP(&patternStr, "pattern", "p", "", "Initial pattern")
	return cmd
}

// isTerminal reports whether r is a terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
