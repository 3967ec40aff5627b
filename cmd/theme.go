package cmd

import (
	"github.com/spf13/cobra"

	"github.com/noamashri/workhours/internal/output"
)

// themeCmd represents the theme command.
var themeCmd = &cobra.Command{
	Use:       "theme [light|dark]",
	Short:     "Show or set the display theme preference",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"light", "dark"},
	RunE:      runTheme,
}

func init() {
	rootCmd.AddCommand(themeCmd)
}

func runTheme(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		if err := ctx.Theme.Set(args[0]); err != nil {
			return err
		}
	}

	theme, err := ctx.Theme.Get()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(&output.ThemeResponse{Theme: theme.Mode})
	}

	ctx.CLIFormatter().Println("Theme: " + theme.Mode)
	return nil
}
