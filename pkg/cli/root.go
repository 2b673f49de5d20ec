// Package cli assembles the amctl command tree and owns the process
// boundary: flag and credential resolution, error rendering, exit codes.
package cli

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	intcli "github.com/agentmart-dev/agentmart/internal/cli"
	"github.com/agentmart-dev/agentmart/internal/cli/agent"
	"github.com/agentmart-dev/agentmart/internal/cli/cmdutil"
	"github.com/agentmart-dev/agentmart/internal/cli/config"
	"github.com/agentmart-dev/agentmart/internal/cli/reviews"
	"github.com/agentmart-dev/agentmart/internal/cli/skills"
	"github.com/agentmart-dev/agentmart/internal/cli/souls"
	"github.com/agentmart-dev/agentmart/internal/cli/wallet"
)

// New builds the root command with all state threaded through opts; no
// package-level mutable command state is shared between groups.
func New(opts *cmdutil.Options) *cobra.Command {
	var apiKeyFlag string

	root := &cobra.Command{
		Use:   "amctl",
		Short: "Agent Mart CLI",
		Long:  `amctl is a CLI for the Agent Mart marketplace: browse and buy skills and souls, manage your wallet, and publish your own listings.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return resolve(opts, apiKeyFlag)
		},
		SilenceErrors:              true,
		SilenceUsage:               true,
		SuggestionsMinimumDistance: 2,
	}

	flags := root.PersistentFlags()
	flags.BoolVar(&opts.JSON, "json", false, "Print machine-readable JSON on stdout")
	flags.StringVar(&apiKeyFlag, "api-key", "", "API key (overrides AGENTMART_API_KEY and the config file)")
	flags.StringVar(&opts.BaseURL, "base-url", "", "Marketplace API base URL")
	flags.StringVar(&opts.AgentID, "agent-id", "", "Agent id sent as X-Agent-ID")

	root.AddCommand(
		intcli.NewAuthCmd(opts),
		intcli.NewRegisterCmd(opts),
		agent.NewCmd(opts),
		wallet.NewCmd(opts),
		skills.NewCmd(opts),
		souls.NewCmd(opts),
		intcli.NewPurchasesCmd(opts),
		intcli.NewCategoriesCmd(opts),
		reviews.NewCmd(opts),
		intcli.NewLicenseValidateCmd(opts),
		intcli.NewVersionCmd(opts),
	)
	for _, legacy := range intcli.NewLegacyCmds(opts, root) {
		root.AddCommand(legacy)
	}

	return root
}

// resolve fills opts from environment and config file under the documented
// precedence: flag > env > config file.
func resolve(opts *cmdutil.Options, apiKeyFlag string) error {
	env := config.FromEnv()

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	opts.Config = cfg

	switch {
	case strings.TrimSpace(apiKeyFlag) != "":
		opts.APIKey = apiKeyFlag
	case env.APIKey != "":
		opts.APIKey = env.APIKey
	case opts.APIKey == "":
		opts.APIKey = cfg.APIKey
	}
	if opts.BaseURL == "" {
		opts.BaseURL = env.BaseURL
	}
	if opts.AgentID == "" {
		opts.AgentID = env.AgentID
	}

	opts.Color = !opts.JSON && !config.NoColor() && stdoutIsTerminal(opts)
	return nil
}

func stdoutIsTerminal(opts *cmdutil.Options) bool {
	f, ok := opts.Out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	opts := &cmdutil.Options{
		In:     os.Stdin,
		Out:    os.Stdout,
		ErrOut: os.Stderr,
	}
	root := New(opts)
	return Run(root, opts)
}

// Run executes a built command tree and maps any failure onto the stable
// exit-code contract. Errors are rendered exactly once, here.
func Run(root *cobra.Command, opts *cmdutil.Options) int {
	err := root.Execute()
	if err == nil {
		return cmdutil.ExitOK
	}

	code := cmdutil.Code(err)
	p := opts.Printer()
	if p.Machine() {
		p.ErrorResult(code, err.Error())
		return code
	}
	p.Errorf("%v", err)
	if tip := cmdutil.Suggestion(err); tip != "" {
		p.Tipf(tip)
	}
	if strings.HasPrefix(err.Error(), "unknown command") {
		p.Tipf("Available commands: %s", strings.Join(commandNames(root), ", "))
	}
	return code
}

func commandNames(root *cobra.Command) []string {
	var names []string
	for _, cmd := range root.Commands() {
		if cmd.Hidden || cmd.Name() == "help" || cmd.Name() == "completion" {
			continue
		}
		names = append(names, cmd.Name())
	}
	return names
}
