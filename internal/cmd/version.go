package cmd

import (
	"encoding/json"

	"github.com/dendrascience/dendra-helpers/version"
	"github.com/spf13/cobra"
)

// NewVersionCmd creates and returns the version subcommand for the dhelpers CLI.
func NewVersionCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version and build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(version.GetInfo())
			}
			version.Fprint(cmd.OutOrStdout(), cmd.Root().Name())
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print version information as JSON")

	return cmd
}
