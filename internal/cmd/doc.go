// Package cmd provides the command-line interface implementation for dhelpers.
//
// This package contains all the subcommand implementations for the dhelpers CLI tool.
// It uses the Cobra library for command structure and Fang for styling.
//
// The package is organized into the following commands:
//   - root: Main command coordinator and entry point
//   - trim, capitalise: string helpers
//   - md5: ${md5} token substitution for strings and files
//   - dedupe: duplicate line removal
//   - merge: deep merge of JSON and YAML documents
//   - mkpath: recursive directory creation
//   - seed: test tree generation
//
// Each command is implemented as a separate file with its own constructor function
// that returns a *cobra.Command. Commands return errors instead of exiting so they
// can be executed from tests.
//
// The package leverages the util package for all helper operations.
package cmd
