// Package util provides small, independent helpers used across dendra tooling.
//
// Key Components:
//
// Strings:
//   - Trim removes every space character from a string
//   - Capitalise uppercases lowercase letters that start a word
//
// Records:
//   - Extend merges Record values left to right, optionally deep
//   - Records and Sequences are the only mergeable kinds; everything else is opaque
//   - Deep merges clone nested structures instead of aliasing them
//
// Hashing:
//   - ProcessMD5 substitutes the ${md5} token with the digest of the whole input
//   - ShardPath spreads digests across 1000 bucket directories
//
// Sequencing:
//   - Queue and SequentialCall run callback-style actions strictly one at a time
//   - RunSteps runs context-aware steps in order and stops at the first failure
//
// Files:
//   - MakePath creates a directory and all of its missing ancestors
//   - WriteFile ensures the parent directory exists before writing
//
// Nothing in this package keeps global state. MakePath and WriteFile do not
// coordinate concurrent callers targeting the same path.
package util
