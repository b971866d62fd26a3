package cmd

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"path/filepath"
	"sync/atomic"

	"github.com/dendrascience/dendra-helpers/util"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// NewSeedCmd creates and returns the seed subcommand for the dhelpers CLI.
// It generates test files spread over a randomized directory structure.
func NewSeedCmd() *cobra.Command {
	var (
		outputPath string
		fileCount  int
		maxDepth   int
		shard      bool
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate test files with randomized directory structure",
		Long: `Generate a number of small test files below --output.

Each file holds a single UUID line and lands between zero and --depth
directories deep. Missing directories are created on the way. With --shard
files are named after the MD5 of their content and spread across numbered
bucket directories instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if fileCount < 0 || maxDepth < 0 {
				return fmt.Errorf("--count and --depth must not be negative")
			}
			return runSeed(cmd, outputPath, fileCount, maxDepth, shard, verbose)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to output directory (required)")
	cmd.Flags().IntVarP(&fileCount, "count", "c", 100, "Number of files to generate")
	cmd.Flags().IntVarP(&maxDepth, "depth", "d", 3, "Maximum directory depth below the output directory")
	cmd.Flags().BoolVar(&shard, "shard", false, "Name files by content digest inside bucket directories")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	cmd.MarkFlagRequired("output")

	return cmd
}

func runSeed(cmd *cobra.Command, outputPath string, fileCount, maxDepth int, shard, verbose bool) error {
	out := cmd.OutOrStdout()
	if verbose {
		fmt.Fprintf(out, "Generating %d test files in %s\n", fileCount, outputPath)
	}

	if err := util.MakePathSync(outputPath, 0); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var (
		totalBytes   atomic.Uint64
		filesCreated atomic.Int64
	)
	steps := make([]util.Step, fileCount)
	for i := range steps {
		steps[i] = func(ctx context.Context) error {
			content := uuid.New().String() + "\n"

			var filePath string
			if shard {
				filePath = filepath.Join(outputPath, util.ShardPath(util.MD5Hex(content))+".txt")
			} else {
				dir, err := randomDir(outputPath, maxDepth)
				if err != nil {
					return err
				}
				filePath = filepath.Join(dir, fmt.Sprintf("%08x.txt", i))
			}

			if err := util.WriteFile(filePath, []byte(content)); err != nil {
				return fmt.Errorf("failed to write file %s: %w", filePath, err)
			}
			totalBytes.Add(uint64(len(content)))

			if n := filesCreated.Add(1); verbose && n%1000 == 0 {
				fmt.Fprintf(out, "Created %d/%d files...\n", n, fileCount)
			}
			return nil
		}
	}

	if err := util.RunSteps(cmd.Context(), steps...); err != nil {
		return err
	}

	fmt.Fprintf(out, "Created %d files (%s)\n", filesCreated.Load(), humanize.Bytes(totalBytes.Load()))
	return nil
}

// randomDir picks a directory between zero and maxDepth levels below root,
// each level named by a two digit number.
func randomDir(root string, maxDepth int) (string, error) {
	depth, err := rand.Int(rand.Reader, big.NewInt(int64(maxDepth)+1))
	if err != nil {
		return "", err
	}
	parts := []string{root}
	for range depth.Int64() {
		n, err := rand.Int(rand.Reader, big.NewInt(100))
		if err != nil {
			return "", err
		}
		parts = append(parts, fmt.Sprintf("%02d", n.Int64()))
	}
	return filepath.Join(parts...), nil
}
