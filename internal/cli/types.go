package cli

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/asciiviz/pkg/viz"
	"github.com/matzehuels/asciiviz/pkg/viz/dot"
)

// typesCommand creates the types command that lists every visualization type.
func (c *CLI) typesCommand() *cobra.Command {
	var markdown bool

	cmd := &cobra.Command{
		Use:   "types",
		Short: "List the supported visualization types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := typesTable()
			out := tw.Render()
			if markdown {
				out = tw.RenderMarkdown()
			}
			_, err := cmd.OutOrStdout().Write([]byte(out + "\n"))
			return err
		},
	}

	cmd.Flags().BoolVar(&markdown, "markdown", false, "print a markdown table")

	return cmd
}

// typesTable builds the type listing in canonical order.
func typesTable() table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Type", "Shape", "Description", "DOT"})
	for _, t := range viz.Types() {
		export := ""
		if dot.Supports(t) {
			export = "yes"
		}
		tw.AppendRow(table.Row{string(t), t.Shape(), t.Description(), export})
	}
	return tw
}
