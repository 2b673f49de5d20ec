// Package agent implements the agent command group.
package agent

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentmart-dev/agentmart/internal/cli/cmdutil"
	"github.com/agentmart-dev/agentmart/pkg/models"
	"github.com/agentmart-dev/agentmart/pkg/printer"
)

// NewCmd builds the agent command tree.
func NewCmd(opts *cmdutil.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agent",
		Short: "Inspect the authenticated agent",
	}
	cmd.AddCommand(
		newMeCmd(opts),
		newStatusCmd(opts),
		newProfileCmd(opts),
	)
	return cmd
}

func newMeCmd(opts *cmdutil.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the caller's registration record",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.Client()
			if err != nil {
				return err
			}
			identity, err := c.Me(cmd.Context())
			if err != nil {
				return err
			}
			return renderIdentity(opts, identity)
		},
	}
}

func newStatusCmd(opts *cmdutil.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the caller's registration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.Client()
			if err != nil {
				return err
			}
			identity, err := c.Status(cmd.Context())
			if err != nil {
				return err
			}
			return renderIdentity(opts, identity)
		},
	}
}

func renderIdentity(opts *cmdutil.Options, identity *models.AgentIdentity) error {
	p := opts.Printer()
	if p.Machine() {
		return p.Result(identity)
	}
	p.Field("Agent ID", identity.ID)
	if identity.Name != "" {
		p.Field("Name", identity.Name)
	}
	p.Field("Status", printer.OrDefault(identity.Status, "<unknown>"))
	p.Field("Claimed", boolWord(identity.Claimed))
	if len(identity.Permissions) > 0 {
		p.Field("Permissions", strings.Join(identity.Permissions, ", "))
	}
	if identity.Wallet != nil {
		p.Field("Balance", identity.Wallet.Balance.String()+" "+identity.Wallet.Currency)
	}
	return nil
}

func newProfileCmd(opts *cmdutil.Options) *cobra.Command {
	var (
		displayName string
		bio         string
		website     string
	)

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update the agent's public profile",
		Long:  `Show the agent's public profile. Any profile flag switches to an update.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.Client()
			if err != nil {
				return err
			}

			update := cmd.Flags().Changed("display-name") ||
				cmd.Flags().Changed("bio") ||
				cmd.Flags().Changed("website")

			var profile *models.AgentProfile
			if update {
				profile, err = c.UpdateProfile(cmd.Context(), models.AgentProfile{
					DisplayName: displayName,
					Bio:         bio,
					Website:     website,
				})
			} else {
				profile, err = c.GetProfile(cmd.Context())
			}
			if err != nil {
				return err
			}

			p := opts.Printer()
			if p.Machine() {
				return p.Result(profile)
			}
			if update {
				p.Successf("Profile updated")
			}
			p.Field("Display name", printer.OrDefault(profile.DisplayName, "<unset>"))
			p.Field("Website", printer.OrDefault(profile.Website, "<unset>"))
			if profile.Bio != "" {
				p.Println()
				p.Println(p.Wrap(profile.Bio))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&displayName, "display-name", "", "Public display name")
	cmd.Flags().StringVar(&bio, "bio", "", "Short profile bio")
	cmd.Flags().StringVar(&website, "website", "", "Public website URL")

	return cmd
}

func boolWord(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
