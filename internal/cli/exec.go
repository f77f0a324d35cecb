package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/abingham/cheek/audacity"
)

// execCmd builds the subcommand for one catalog entry. Flags are generated
// from the command's parameter descriptors; the registered prototype
// supplies the flag defaults.
func (a *App) execCmd(e audacity.Entry) *cobra.Command {
	cmd := e.New()
	fields := audacity.FieldsOf(cmd)

	cc := &cobra.Command{
		Use:   e.Name,
		Short: e.Short,
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			for _, f := range fields {
				fl := c.Flags().Lookup(f.Flag)
				if fl == nil || !fl.Changed {
					continue
				}
				if err := f.Set(fl.Value.String()); err != nil {
					return err
				}
			}
			return a.dispatch(c, cmd)
		},
	}

	for _, f := range fields {
		addFlag(cc.Flags(), f)
	}
	return cc
}

// addFlag registers one parameter as a typed flag. Optional parameters get
// zero-value defaults and stay unset unless the flag is given.
func addFlag(fs *pflag.FlagSet, f audacity.Field) {
	usage := flagUsage(f)
	switch f.Kind {
	case audacity.KindBool:
		fs.Bool(f.Flag, f.IsSet() && f.Value() == "1", usage)
	case audacity.KindInt:
		var def int
		if f.IsSet() {
			def, _ = strconv.Atoi(f.Value())
		}
		fs.Int(f.Flag, def, usage)
	case audacity.KindFloat:
		var def float64
		if f.IsSet() {
			def, _ = strconv.ParseFloat(f.Value(), 64)
		}
		fs.Float64(f.Flag, def, usage)
	default:
		var def string
		if f.IsSet() {
			def = f.Value()
		}
		fs.String(f.Flag, def, usage)
	}
}

func flagUsage(f audacity.Field) string {
	var b strings.Builder
	b.WriteString(f.Name)
	if len(f.Enum) > 0 {
		b.WriteString(" (one of: ")
		b.WriteString(strings.Join(f.Enum, ", "))
		b.WriteString(")")
	}
	if f.Optional {
		b.WriteString(" (unchanged unless given)")
	}
	return b.String()
}

// dispatch serializes the command and either prints it (--dry-run) or sends
// it to Audacity, printing the reply payload.
func (a *App) dispatch(c *cobra.Command, cmd audacity.Command) error {
	line, err := audacity.Format(cmd)
	if err != nil {
		return err
	}
	if a.dryRun {
		fmt.Fprintln(c.OutOrStdout(), line)
		return nil
	}
	return a.send(c, line)
}

// send performs one raw exchange and renders the outcome.
func (a *App) send(c *cobra.Command, line string) error {
	client, err := a.dial()
	if err != nil {
		return err
	}
	defer client.Close()

	resp, err := client.DoRaw(c.Context(), line)
	if err != nil {
		return err
	}
	if resp.Text != "" {
		fmt.Fprintln(c.OutOrStdout(), resp.Text)
	}
	if !resp.IsOK() {
		return fmt.Errorf("audacity reported: %s", resp.Status)
	}
	return nil
}
