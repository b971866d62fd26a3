package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/dendrascience/dendra-helpers/util"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// NewMD5Cmd creates and returns the md5 subcommand for the dhelpers CLI.
// It substitutes the ${md5} token in strings or file content.
func NewMD5Cmd() *cobra.Command {
	var (
		inputPath  string
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "md5 [TEXT...]",
		Short: "Replace the ${md5} token with a digest of the input",
		Long: `Replace the first ${md5} token of each input with the MD5 digest of
that whole input, taken before the substitution.

Inputs are the arguments, the content of --file, or the lines of stdin.
With --output the processed text is written to a file instead, creating
missing directories. A ${md5} token in the output path is replaced with the
digest of the processed content, which is handy for cache-busting names.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var inputs []string
			switch {
			case inputPath != "":
				if len(args) > 0 {
					return fmt.Errorf("--file cannot be combined with arguments")
				}
				data, err := os.ReadFile(inputPath)
				if err != nil {
					return err
				}
				inputs = []string{string(data)}
			default:
				lines, err := inputLines(cmd, args)
				if err != nil {
					return err
				}
				inputs = lines
			}

			results := make([]string, len(inputs))
			for i, in := range inputs {
				results[i] = util.ProcessMD5(in)
			}

			if outputPath == "" {
				if inputPath != "" {
					fmt.Fprint(cmd.OutOrStdout(), results[0])
					return nil
				}
				printLines(cmd, results)
				return nil
			}

			content := strings.Join(results, "\n")
			if inputPath == "" {
				content += "\n"
			}
			target := util.ProcessMD5With(outputPath, func(string) string {
				return util.MD5Hex(content)
			})
			if err := util.WriteFile(target, []byte(content)); err != nil {
				return fmt.Errorf("failed to write %s: %w", target, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s to %s\n", humanize.Bytes(uint64(len(content))), target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "file", "f", "", "Process the whole content of this file")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the result to this path instead of stdout")

	return cmd
}
