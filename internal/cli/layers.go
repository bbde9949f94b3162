package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/fcviz/pkg/layers"
	"github.com/matzehuels/fcviz/pkg/netgraph"
	"github.com/matzehuels/fcviz/pkg/pipeline"
)

// layersCommand creates the layers command, which prints the canonical
// layer sequence without rendering.
func (c *CLI) layersCommand() *cobra.Command {
	var flags optionFlags

	cmd := &cobra.Command{
		Use:   "layers MODEL",
		Short: "List the layers fcviz extracts from a model file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.resolveOptions(cmd, &flags)
			if err != nil {
				return err
			}
			m, err := c.openModel(args[0])
			if err != nil {
				return err
			}
			recs, err := pipeline.Extract(m, opts)
			if err != nil {
				return err
			}
			printLayers(cmd.OutOrStdout(), recs)
			if _, err := netgraph.Build(recs, netgraph.Options{}); err != nil {
				return fmt.Errorf("layers do not form a network: %w", err)
			}
			return nil
		},
	}

	flags.register(cmd, false)
	return cmd
}

// printLayers writes recs as a table.
func printLayers(w io.Writer, recs []layers.Record) {
	rows := make([][]string, len(recs))
	for i, r := range recs {
		rows[i] = []string{
			r.ID,
			displayPath(r.Path),
			strconv.Itoa(r.InputSize),
			strconv.Itoa(r.OutputSize),
			yesNo(r.HasBias()),
			activationText(r),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("ID", "Path", "In", "Out", "Bias", "Activation").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			if col == 1 {
				return styleMuted
			}
			return styleCell
		})

	fmt.Fprintln(w, t)
}

func displayPath(p string) string {
	if p == "" {
		return "(root)"
	}
	return p
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// activationText shows the activation with its parameter when it is a scalar.
func activationText(r layers.Record) string {
	if !r.HasActivation() {
		return "-"
	}
	if len(r.ActivationParam) == 1 {
		return fmt.Sprintf("%s (%s)", r.Activation, netgraph.FormatValue(r.ActivationParam[0]))
	}
	if n := len(r.ActivationParam); n > 1 {
		return fmt.Sprintf("%s (%d params)", r.Activation, n)
	}
	return r.Activation
}
