package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abingham/cheek/audacity"
)

// commandsCmd lists the catalog, optionally filtered by substring.
func (a *App) commandsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "commands [filter]",
		Short: "List available Audacity commands",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			entries := audacity.All()
			if len(args) == 1 {
				entries = audacity.Search(args[0])
			}
			if len(entries) == 0 {
				return fmt.Errorf("no commands match %q", args[0])
			}

			width := 0
			for _, e := range entries {
				if len(e.Name) > width {
					width = len(e.Name)
				}
			}
			out := c.OutOrStdout()
			for _, e := range entries {
				fmt.Fprintf(out, "%s  %s\n",
					a.st.name.Render(fmt.Sprintf("%-*s", width, e.Name)),
					a.st.dim.Render(e.Short))
			}
			return nil
		},
	}
}
