package cmd

import (
	"github.com/dendrascience/dendra-helpers/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root cobra command for the dhelpers CLI.
// It sets up all subcommands, command groups, and basic configuration.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dhelpers",
		Short: "dhelpers - small text, record and file helpers",
		Long: `dhelpers exposes the dendra helper library on the command line.

Use subcommands to perform different operations:
  - trim, capitalise: tidy up strings
  - md5: substitute the ${md5} token with a content digest
  - dedupe: drop repeated lines
  - merge: deep-merge JSON and YAML documents
  - mkpath: create directories with all missing parents
  - seed: generate a tree of test files`,
		Version: version.GetFullVersion(),
	}

	groupText := "text"
	groupFiles := "files"

	// Add command groups for better organization
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupText,
		Title: "Text Helpers",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupFiles,
		Title: "File Helpers",
	})

	trimCmd := NewTrimCmd()
	capitaliseCmd := NewCapitaliseCmd()
	md5Cmd := NewMD5Cmd()
	dedupeCmd := NewDedupeCmd()
	mergeCmd := NewMergeCmd()
	mkpathCmd := NewMkpathCmd()
	seedCmd := NewSeedCmd()

	trimCmd.GroupID = groupText
	capitaliseCmd.GroupID = groupText
	md5Cmd.GroupID = groupText
	dedupeCmd.GroupID = groupText
	mergeCmd.GroupID = groupFiles
	mkpathCmd.GroupID = groupFiles
	seedCmd.GroupID = groupFiles

	// Add subcommands
	rootCmd.AddCommand(trimCmd)
	rootCmd.AddCommand(capitaliseCmd)
	rootCmd.AddCommand(md5Cmd)
	rootCmd.AddCommand(dedupeCmd)
	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(mkpathCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}
