package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newThemesCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List available themes",
		Long: `List the built-in themes and the themes found in the themes directory.
The active theme is marked with '*'. Select one with --theme or the
[render] theme setting.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			current := rt.themes.Current().Name
			for _, name := range rt.themes.ListThemes() {
				marker := " "
				if strings.EqualFold(name, current) {
					marker = "*"
				}
				if _, err := fmt.Fprintf(out, "%s %s\n", marker, name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
