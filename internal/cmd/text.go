package cmd

import (
	"github.com/dendrascience/dendra-helpers/util"
	"github.com/spf13/cobra"
)

// NewTrimCmd creates and returns the trim subcommand for the dhelpers CLI.
// It strips every space from each argument or stdin line.
func NewTrimCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trim [TEXT...]",
		Short: "Remove every space character",
		Long: `Remove every space character from each argument.

Spaces are removed anywhere in the text, not only at the ends. Tabs and
other whitespace are kept. Without arguments each line of stdin is trimmed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := inputLines(cmd, args)
			if err != nil {
				return err
			}
			for i, line := range lines {
				lines[i] = util.Trim(line)
			}
			printLines(cmd, lines)
			return nil
		},
	}
}

// NewCapitaliseCmd creates and returns the capitalise subcommand for the dhelpers CLI.
func NewCapitaliseCmd() *cobra.Command {
	var skipFirst bool

	cmd := &cobra.Command{
		Use:     "capitalise [TEXT...]",
		Aliases: []string{"capitalize"},
		Short:   "Uppercase the first letter of every word",
		Long: `Uppercase every lowercase letter that starts a word.

With --skip-first the first such letter of each input is left alone, which
turns "hello world" into "hello World". Without arguments each line of stdin
is processed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := inputLines(cmd, args)
			if err != nil {
				return err
			}
			for i, line := range lines {
				lines[i] = util.Capitalise(line, skipFirst)
			}
			printLines(cmd, lines)
			return nil
		},
	}

	cmd.Flags().BoolVar(&skipFirst, "skip-first", false, "Leave the first word as it is")

	return cmd
}

// NewDedupeCmd creates and returns the dedupe subcommand for the dhelpers CLI.
// It prints the first occurrence of each line, in input order.
func NewDedupeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dedupe [FILE]",
		Short: "Print each distinct line once",
		Long: `Print each distinct line of FILE once, keeping the order in which
lines first appear. Reads stdin when FILE is omitted or "-".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) > 0 {
				path = args[0]
			}
			lines, err := fileLines(cmd, path)
			if err != nil {
				return err
			}
			printLines(cmd, util.RemoveDuplicates(lines))
			return nil
		},
	}
}
