package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentmart-dev/agentmart/internal/cli/cmdutil"
	"github.com/agentmart-dev/agentmart/pkg/printer"
)

// NewLicenseValidateCmd builds the license-validate command. An invalid key
// is a normal verdict, not a command failure.
func NewLicenseValidateCmd(opts *cmdutil.Options) *cobra.Command {
	var (
		activate bool
		deviceID string
	)

	cmd := &cobra.Command{
		Use:   "license-validate <key>",
		Short: "Check a license key, optionally activating it for a device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.Client()
			if err != nil {
				return err
			}
			p := opts.Printer()

			if activate {
				activation, err := c.ActivateLicense(cmd.Context(), args[0], deviceID, "amctl")
				if err != nil {
					return err
				}
				if p.Machine() {
					return p.Result(activation)
				}
				if activation.Activated {
					p.Successf("License activated for device %s", activation.DeviceID)
				} else {
					p.Println("Activation refused")
				}
				p.Field("Activations", printer.OrDefault(
					formatActivations(activation.ActivationsUsed, activation.ActivationsMax), "<unknown>"))
				return nil
			}

			validation, err := c.ValidateLicense(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if p.Machine() {
				return p.Result(validation)
			}
			if validation.Valid {
				p.Successf("License is valid")
				if validation.License != nil {
					p.Field("Type", validation.License.Type)
					p.Field("Status", validation.License.Status)
					if validation.License.Skill != nil {
						p.Field("Skill", validation.License.Skill.Title)
					}
				}
			} else {
				p.Println("License is NOT valid")
				if validation.Error != "" {
					p.Field("Reason", validation.Error)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&activate, "activate", false, "Activate the license for this device")
	cmd.Flags().StringVar(&deviceID, "device", "", "Device id to activate for (default: generated)")

	return cmd
}

func formatActivations(used, max int) string {
	if max == 0 {
		return ""
	}
	return fmt.Sprintf("%d of %d used", used, max)
}
