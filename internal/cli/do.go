package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// doCmd sends a raw scripting line, bypassing the catalog. Useful for
// commands Audacity knows but the catalog does not.
func (a *App) doCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "do <line>",
		Short: "Send a raw scripting line to Audacity",
		Example: `  cheek do 'Chirp: StartFreq="440" EndFreq="880"'
  cheek do 'GetInfo: Type="Tracks"'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			line := strings.Join(args, " ")
			if a.dryRun {
				fmt.Fprintln(c.OutOrStdout(), line)
				return nil
			}
			return a.send(c, line)
		},
	}
}
