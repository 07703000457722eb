package cli

import (
	"github.com/spf13/cobra"

	"github.com/bethropolis/rematch/internal/source"
)

func newMatchCommand(rt *runtime) *cobra.Command {
	var copyPlain bool

	cmd := &cobra.Command{
		Use:   "match PATTERN [TEXT...]",
		Short: "Highlight matches of PATTERN in text",
		Long: `Highlight matches of PATTERN in TEXT. The TEXT arguments are joined with
spaces. Without TEXT, or with TEXT "-", the text is read from standard input.

Examples:
  rematch match 'a+b' 'this line has one match: aaab'
  printf 'a\nb\nc\n' | rematch match -m '^b'
  rematch match --format html '\d+' < report.txt > report.html`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := source.TextFromArgs(args[1:], cmd.InOrStdin())
			if err != nil {
				return err
			}
			return rt.highlightAndRender(cmd, args[0], text, copyPlain)
		},
	}
	cmd.Flags().BoolVar(&copyPlain, "copy", false, "Copy the plain rendering to the clipboard")
	return cmd
}
