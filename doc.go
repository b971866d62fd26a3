// Package main provides the dhelpers command-line interface.
//
// dhelpers puts the dendra helper library behind a handful of subcommands:
//   - trim, capitalise: string clean-up
//   - md5: ${md5} token substitution for cache-busting names
//   - dedupe: print each distinct line once
//   - merge: deep-merge JSON and YAML documents
//   - mkpath: create directories with all of their missing parents
//   - seed: generate a tree of test files
package main
