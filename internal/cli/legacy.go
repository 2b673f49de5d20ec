package cli

import (
	"github.com/spf13/cobra"

	"github.com/agentmart-dev/agentmart/internal/cli/cmdutil"
)

// Legacy aliases from the v1 CLI. Each forwards to its modern equivalent
// and prints a one-line migration tip on stderr so scripts keep working
// while humans learn the new names.

// NewLegacyCmds returns the hidden legacy top-level commands.
func NewLegacyCmds(opts *cmdutil.Options, root *cobra.Command) []*cobra.Command {
	return []*cobra.Command{
		legacyAlias(opts, root, "search [query]", "search the marketplace", []string{"skills", "list"}, "amctl skills list --query <q>", func(args []string) []string {
			if len(args) > 0 {
				return []string{"--query", args[0]}
			}
			return nil
		}),
		legacyAlias(opts, root, "buy <id>", "purchase a skill", []string{"skills", "buy"}, "amctl skills buy <id>", func(args []string) []string {
			return args
		}),
		legacyAlias(opts, root, "list", "list marketplace skills", []string{"skills", "list"}, "amctl skills list", func(args []string) []string {
			return nil
		}),
	}
}

func legacyAlias(opts *cmdutil.Options, root *cobra.Command, use, short string, target []string, modern string, mapArgs func([]string) []string) *cobra.Command {
	return &cobra.Command{
		Use:    use,
		Short:  short + " (legacy alias)",
		Hidden: true,
		Args:   cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Printer().Tipf("Tip: use '%s' instead.", modern)
			forwarded := append(append([]string{}, target...), mapArgs(args)...)
			root.SetArgs(forwarded)
			return root.Execute()
		},
	}
}
