package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/asciiviz/pkg/dataset"
	"github.com/matzehuels/asciiviz/pkg/viz"
)

// demoCommand creates the demo command that prints the built-in samples.
func (c *CLI) demoCommand() *cobra.Command {
	var opts vizOpts

	cmd := &cobra.Command{
		Use:   "demo [type...]",
		Short: "Print a sample of every visualization type",
		Long: `Print the built-in sample for each visualization type.

With no arguments every type is shown in canonical order. Unknown type tags
are reported and skipped. --label and --max-depth, or label and max_depth
from the config file, override each sample's own options. Flags win over
the file.`,
		Example: `  asciiviz demo
  asciiviz demo heap trie --max-depth 2`,
		ValidArgsFunction: completeTypes,
		RunE: func(cmd *cobra.Command, args []string) error {
			labelSet := cmd.Flags().Changed("label")
			depthSet := cmd.Flags().Changed("max-depth")
			merged, err := c.options(opts, labelSet, depthSet)
			if err != nil {
				return err
			}
			overrideLabel := labelSet || c.Config.Label != ""
			overrideDepth := depthSet || c.Config.MaxDepth > 0

			samples := c.selectSamples(args)
			for i, s := range samples {
				if overrideLabel {
					s.Options.Label = merged.Label
				}
				if overrideDepth {
					s.Options.MaxDepth = merged.MaxDepth
				}
				if i > 0 {
					io.WriteString(cmd.OutOrStdout(), "\n")
				}
				c.printSample(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.label, "label", "l", "", "override the array label")
	cmd.Flags().IntVar(&opts.maxDepth, "max-depth", 0, "stop tree recursion at this depth (0 = unlimited)")

	return cmd
}

// selectSamples resolves type tags to samples. No tags selects all.
func (c *CLI) selectSamples(tags []string) []dataset.Sample {
	if len(tags) == 0 {
		return dataset.Samples()
	}
	var out []dataset.Sample
	for _, tag := range tags {
		t, ok := c.parseType(tag)
		if !ok {
			continue
		}
		s, _ := dataset.SampleFor(t)
		out = append(out, s)
	}
	return out
}

// printSample writes the sample heading and its rendering.
func (c *CLI) printSample(w io.Writer, s dataset.Sample) {
	printTitle(w, s.Title, string(s.Type))
	viz.NewPrinter(w, c.Logger).Visualize(s.Type, s.Data, s.Options)
}
