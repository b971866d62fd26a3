package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/dendrascience/dendra-helpers/util"
	"github.com/spf13/cobra"
)

// NewMkpathCmd creates and returns the mkpath subcommand for the dhelpers CLI.
func NewMkpathCmd() *cobra.Command {
	var (
		modeFlag string
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:   "mkpath DIR...",
		Short: "Create directories and any missing parents",
		Long: `Create each DIR together with every missing parent directory.

Directories that already exist are left alone. It is an error for DIR or
one of its parents to exist as something other than a directory. The mode
is given in octal and defaults to 0777, reduced by the process umask.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := parseMode(modeFlag)
			if err != nil {
				return err
			}
			for _, dir := range args {
				created, err := util.MakePath(dir, mode)
				if err != nil {
					return err
				}
				if !verbose {
					continue
				}
				if len(created) == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "%s already exists\n", dir)
				}
				for _, c := range created {
					fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", c)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&modeFlag, "mode", "m", "", "Permission bits in octal (default 0777 minus umask)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print every directory that was created")

	return cmd
}

func parseMode(s string) (os.FileMode, error) {
	if s == "" {
		return util.DefaultDirMode, nil
	}
	v, err := strconv.ParseUint(s, 8, 32)
	if err != nil || v > 0o777 {
		return 0, fmt.Errorf("invalid mode %q: want octal permission bits such as 0755", s)
	}
	return os.FileMode(v), nil
}
