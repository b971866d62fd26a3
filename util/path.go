package util

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultDirMode is used by MakePath when no mode is given. The process
// umask is applied by the OS, so directories end up as 0777 minus the umask.
const DefaultDirMode os.FileMode = 0o777

// DefaultFileMode is the permission WriteFile creates new files with, before
// the umask.
const DefaultFileMode os.FileMode = 0o666

// MakePath makes sure dirPath exists as a directory, creating it and every
// missing ancestor with mode (0 selects DefaultDirMode). dirPath is resolved
// against the working directory first.
//
// The ancestor chain is walked upwards until an existing directory is found,
// then the missing directories are created from the root-most one down to
// dirPath. The created directories are returned in that order; an existing
// directory yields none. If dirPath exists but is not a directory the error
// wraps ErrNotDirectory. Other file-system errors are returned as they are.
func MakePath(dirPath string, mode os.FileMode) ([]string, error) {
	abs, err := filepath.Abs(dirPath)
	if err != nil {
		return nil, err
	}
	if mode == 0 {
		mode = DefaultDirMode
	}

	var missing []string
	current := abs
	for {
		info, err := os.Stat(current)
		if err == nil {
			if !info.IsDir() {
				return nil, fmt.Errorf("%s %w", current, ErrNotDirectory)
			}
			break
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		missing = append(missing, current)
		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}

	created := make([]string, 0, len(missing))
	for i := len(missing) - 1; i >= 0; i-- {
		if err := os.Mkdir(missing[i], mode); err != nil {
			return created, err
		}
		created = append(created, missing[i])
	}
	return created, nil
}

// MakePathSync is MakePath for callers that do not need the created list.
func MakePathSync(dirPath string, mode os.FileMode) error {
	_, err := MakePath(dirPath, mode)
	return err
}

// WriteFile creates the parent directory of filePath if needed and writes
// data to it, replacing any existing content.
func WriteFile(filePath string, data []byte) error {
	if filePath == "" {
		return ErrEmptyPath
	}
	if err := MakePathSync(filepath.Dir(filePath), 0); err != nil {
		return err
	}
	return os.WriteFile(filePath, data, DefaultFileMode)
}

// WriteJSONFile writes any value as indented JSON to the specified file path,
// creating missing parent directories.
func WriteJSONFile(path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return err
	}
	return WriteFile(path, buf.Bytes())
}
