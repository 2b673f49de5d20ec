package cli

import (
	"github.com/spf13/cobra"

	"github.com/agentmart-dev/agentmart/internal/cli/cmdutil"
	"github.com/agentmart-dev/agentmart/internal/cli/config"
	"github.com/agentmart-dev/agentmart/internal/client"
)

// NewRegisterCmd builds the register command. Registration is the one
// operation that needs no API key; the issued key is shown exactly once and
// saved unless --no-save is given.
func NewRegisterCmd(opts *cmdutil.Options) *cobra.Command {
	var (
		name     string
		platform string
		noSave   bool
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new agent and obtain an API key",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := client.Register(cmd.Context(), client.RegisterOptions{
				Name:       name,
				Platform:   platform,
				HTTPClient: opts.HTTPClient,
				URL:        registrationURL(opts.BaseURL),
			})
			if err != nil {
				return err
			}

			if !noSave && result.APIKey != "" {
				cfg := opts.Config
				if cfg == nil {
					cfg = &config.Config{}
				}
				cfg.APIKey = result.APIKey
				if err := config.Save(opts.ConfigPath, cfg); err != nil {
					return err
				}
			}

			p := opts.Printer()
			if p.Machine() {
				return p.Result(result)
			}
			p.Successf("Registered agent %s", result.AgentID)
			p.Field("API key", result.APIKey)
			p.Field("Deposit address", result.DepositAddress)
			p.Field("Chain", result.Chain)
			p.Field("Currency", result.Currency)
			p.Tipf("The API key is shown only once. It has been saved to your config file.")
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name for the new agent")
	cmd.Flags().StringVar(&platform, "platform", "", "Platform identifier")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "Do not write the issued key to the config file")

	return cmd
}

// registrationURL keeps registration against the same host the rest of the
// CLI targets when a base URL override is active.
func registrationURL(baseURL string) string {
	if baseURL == "" {
		return ""
	}
	return baseURL + "/v1/agents/register"
}
