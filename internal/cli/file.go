package cli

import (
	"github.com/spf13/cobra"

	"github.com/bethropolis/rematch/internal/source"
)

func newFileCommand(rt *runtime) *cobra.Command {
	var copyPlain bool

	cmd := &cobra.Command{
		Use:   "file FILE PATTERN",
		Short: "Highlight matches of PATTERN in FILE",
		Long: `Highlight matches of PATTERN in the contents of FILE ("-" reads standard input).

Examples:
  rematch file /etc/hosts '^\d+\.\d+\.\d+\.\d+'
  rematch file -i notes.txt 'todo'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, patternStr := args[0], args[1]

			var (
				text string
				err  error
			)
			if path == source.StdinName {
				text, err = source.ReadInput(cmd.InOrStdin())
			} else {
				text, err = source.ReadFile(path)
			}
			if err != nil {
				return err
			}
			return rt.highlightAndRender(cmd, patternStr, text, copyPlain)
		},
	}
	cmd.Flags().BoolVar(&copyPlain, "copy", false, "Copy the plain rendering to the clipboard")
	return cmd
}
