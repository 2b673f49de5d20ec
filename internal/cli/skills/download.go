package skills

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/agentmart-dev/agentmart/internal/cli/cmdutil"
)

func newDownloadCmd(opts *cmdutil.Options) *cobra.Command {
	var dest string

	cmd := &cobra.Command{
		Use:   "download <id>",
		Short: "Fetch the package URL and license for a purchased skill",
		Long: `Fetch the package URL and license for a purchased skill. With --dest the
license material is written into a new directory; an existing directory is a
conflict, not overwritten.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.Client()
			if err != nil {
				return err
			}
			if dest == "" {
				dest = opts.Config.InstallDir()
			}

			info, err := c.DownloadSkill(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			p := opts.Printer()
			if dest != "" {
				target := filepath.Join(dest, args[0])
				if _, err := os.Stat(target); err == nil {
					return &cmdutil.PathConflictError{Path: target}
				}
				if err := os.MkdirAll(target, 0o755); err != nil {
					return err
				}
				b, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return err
				}
				if err := os.WriteFile(filepath.Join(target, "license.json"), b, 0o600); err != nil {
					return err
				}
				p.Progressf("Wrote license material to %s", target)
			}

			if p.Machine() {
				return p.Result(info)
			}
			p.Field("Package URL", info.PackageURL)
			if info.LicenseKey != "" {
				p.Field("License key", info.LicenseKey)
			}
			if info.ActivationsMax > 0 {
				p.Field("Activations", formatActivations(info.ActivationsUsed, info.ActivationsMax))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dest, "dest", "", "Directory to write license material into")

	return cmd
}

func formatActivations(used, max int) string {
	return fmt.Sprintf("%d of %d used", used, max)
}
