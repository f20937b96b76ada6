package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/asciiviz/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
// Persistent flags load the config file before any subcommand runs.
func (c *CLI) RootCommand() *cobra.Command {
	var (
		configPath string
		noColor    bool
	)

	root := &cobra.Command{
		Use:          appName,
		Short:        "asciiviz renders data structures as ASCII art",
		Long:         `asciiviz renders linked lists, arrays, trees, graphs, stacks, queues, heaps, hash tables, tries, DP matrices and disjoint sets as plain text for debugging and teaching.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return c.loadConfig(configPath, noColor)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/asciiviz/config.toml)")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable styled output")

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.demoCommand())
	root.AddCommand(c.typesCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.completionCommand())

	return root
}
