package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/asciiviz/pkg/config"
	"github.com/matzehuels/asciiviz/pkg/dataset"
	"github.com/matzehuels/asciiviz/pkg/errors"
	"github.com/matzehuels/asciiviz/pkg/viz"
	"github.com/matzehuels/asciiviz/pkg/viz/dot"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	vizOpts
	typ    string // visualization type tag
	format string // output format: text, dot or svg
	output string // output file; stdout when empty
}

// renderCommand creates the render command for visualizing a data file.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a YAML or JSON data file",
		Long: `Render a YAML or JSON data file as ASCII art.

The --type flag selects the renderer. Mapping keys are rendered in the order
they appear in the file. Use --format dot or --format svg to export node-link
types (linkedList, binaryTree, graph, heap, trie, ternaryTree, disjointSet)
as Graphviz diagrams.

An unknown --type is reported and nothing is rendered.`,
		Example: `  asciiviz render heap.json -t heap
  asciiviz render sorted.yaml -t array --label "After pass 1"
  asciiviz render tree.yaml -t binaryTree -f svg -o tree.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				opts.format = c.Config.Format
			}
			if !config.ValidFormats[opts.format] {
				return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'text', 'dot', or 'svg')", opts.format)
			}
			vopts, err := c.options(opts.vizOpts, cmd.Flags().Changed("label"), cmd.Flags().Changed("max-depth"))
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), cmd.OutOrStdout(), args[0], opts, vopts)
		},
	}

	cmd.Flags().StringVarP(&opts.typ, "type", "t", "", "visualization type: "+typeList())
	cmd.Flags().StringVarP(&opts.format, "format", "f", config.FormatText, "output format: text (default), dot, svg")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.label, "label", "l", "", "label printed before arrays")
	cmd.Flags().IntVar(&opts.maxDepth, "max-depth", 0, "stop tree recursion at this depth (0 = unlimited)")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.RegisterFlagCompletionFunc("type", completeTypes)

	return cmd
}

// runRender loads input, renders it in the requested format and writes the result.
func (c *CLI) runRender(ctx context.Context, stdout io.Writer, input string, opts renderOpts, vopts viz.Options) error {
	t, ok := c.parseType(opts.typ)
	if !ok {
		return nil
	}

	shape, err := dataset.Load(t, input)
	if err != nil {
		return fmt.Errorf("load %s: %w", input, err)
	}
	c.Logger.Debug("Loaded data", "file", input, "type", t)

	if opts.format == config.FormatText && opts.output == "" {
		viz.NewPrinter(stdout, c.Logger).Visualize(t, shape, vopts)
		return nil
	}

	data, err := renderFormat(ctx, t, shape, opts.format, vopts)
	if err != nil {
		return err
	}

	if opts.output == "" {
		_, err := stdout.Write(data)
		return err
	}
	if err := errors.ValidatePath(opts.output); err != nil {
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	printSuccess(stdout, "Rendered %s as %s", t, opts.format)
	printFile(stdout, opts.output)
	return nil
}

// renderFormat produces the bytes for one output format.
func renderFormat(ctx context.Context, t viz.Type, shape any, format string, opts viz.Options) ([]byte, error) {
	switch format {
	case config.FormatText:
		text, err := viz.Render(t, shape, opts)
		return []byte(text), err
	case config.FormatDOT:
		src, err := dot.ToDOT(t, shape, opts)
		return []byte(src), err
	case config.FormatSVG:
		src, err := dot.ToDOT(t, shape, opts)
		if err != nil {
			return nil, err
		}
		prog := newProgress(loggerFromContext(ctx))
		svg, err := dot.RenderSVG(ctx, src)
		if err != nil {
			return nil, fmt.Errorf("svg: %w", err)
		}
		prog.done("Rendered svg")
		return svg, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s", format)
}

// typeList joins every type tag for help text.
func typeList() string {
	names := make([]string, 0, len(viz.Types()))
	for _, t := range viz.Types() {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}

// completeTypes offers type tags for shell completion.
func completeTypes(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	names := make([]string, 0, len(viz.Types()))
	for _, t := range viz.Types() {
		names = append(names, string(t)+"\t"+t.Description())
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
