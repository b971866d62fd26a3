package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/davecgh/go-spew/spew"
	"github.com/dendrascience/dendra-helpers/util"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// NewMergeCmd creates and returns the merge subcommand for the dhelpers CLI.
// It deep-merges JSON and YAML documents left to right.
func NewMergeCmd() *cobra.Command {
	var (
		shallow    bool
		outputPath string
		format     string
		query      string
		debug      bool
	)

	cmd := &cobra.Command{
		Use:   "merge FILE...",
		Short: "Merge JSON and YAML documents",
		Long: `Merge the top-level objects of each FILE, left to right, so later files
win. Objects and arrays are merged recursively unless --shallow is given, in
which case each top-level key is replaced wholesale.

Files ending in .yaml or .yml are read as YAML, everything else as JSON.
--query evaluates a JSONPath expression such as "$.db.host" against the
merged document and prints only the match.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(format)
			if format != formatJSON && format != formatYAML {
				return fmt.Errorf("%w: %q", util.ErrUnsupportedFormat, format)
			}

			docs := make([]util.Record, 0, len(args))
			for _, path := range args {
				doc, err := loadDocument(path)
				if err != nil {
					return err
				}
				docs = append(docs, doc)
			}

			var result any = util.Extend(!shallow, nil, docs...)
			if debug {
				logger := log.New(cmd.ErrOrStderr(), "", log.LstdFlags)
				logger.Printf("merged %d documents:\n%s", len(docs), spew.Sdump(result))
			}

			if query != "" {
				val, err := jsonpath.Get(query, result)
				if err != nil {
					return fmt.Errorf("query %q: %w", query, err)
				}
				result = val
			}

			data, err := encodeDocument(result, format)
			if err != nil {
				return err
			}
			if outputPath == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := util.WriteFile(outputPath, data); err != nil {
				return fmt.Errorf("failed to write %s: %w", outputPath, err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&shallow, "shallow", false, "Replace top-level keys instead of merging them")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the merged document to this path")
	cmd.Flags().StringVar(&format, "format", formatJSON, "Output format: json or yaml")
	cmd.Flags().StringVarP(&query, "query", "q", "", "JSONPath expression to select from the result")
	cmd.Flags().BoolVar(&debug, "debug", false, "Dump the merged value to stderr")

	return cmd
}

// loadDocument reads a JSON or YAML file whose top level is an object.
func loadDocument(path string) (util.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc util.Record
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	default:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return normalize(doc).(util.Record), nil
}

// normalize converts maps with non-string keys, which YAML allows, into
// Records so they take part in merging.
func normalize(v any) any {
	switch typed := v.(type) {
	case util.Record:
		if typed == nil {
			return util.Record{}
		}
		for k, item := range typed {
			typed[k] = normalize(item)
		}
		return typed
	case map[any]any:
		out := make(util.Record, len(typed))
		for k, item := range typed {
			out[fmt.Sprint(k)] = normalize(item)
		}
		return out
	case util.Sequence:
		for i, item := range typed {
			typed[i] = normalize(item)
		}
		return typed
	default:
		return v
	}
}

func encodeDocument(v any, format string) ([]byte, error) {
	if format == formatYAML {
		return yaml.Marshal(v)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
