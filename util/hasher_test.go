package util

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func TestMD5Hex(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "", want: "d41d8cd98f00b204e9800998ecf8427e"},
		{input: "hello world", want: "5eb63bbbe01eeed093cb22bb8f5acdc3"},
	}
	for _, tt := range tests {
		if got := MD5Hex(tt.input); got != tt.want {
			t.Errorf("MD5Hex(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestProcessMD5(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "token replaced with digest of original",
			input: "id:${md5}",
			want:  "id:f9484cc0f598860bab4245f700852f08",
		},
		{
			name:  "only first token replaced",
			input: "a${md5}b${md5}",
			want:  "aa2cd328414b5adf4ab1984be9199e739b${md5}",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
		{
			name:  "no token",
			input: "plain",
			want:  "plain",
		},
		{
			name:  "similar but not the token",
			input: "$md5 {md5} ${MD5}",
			want:  "$md5 {md5} ${MD5}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ProcessMD5(tt.input); got != tt.want {
				t.Errorf("ProcessMD5(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestProcessMD5With(t *testing.T) {
	var seen []string
	hash := func(s string) string {
		seen = append(seen, s)
		return "H"
	}

	if got := ProcessMD5With("x-${md5}-y", hash); got != "x-H-y" {
		t.Errorf("ProcessMD5With() = %q, want %q", got, "x-H-y")
	}
	if len(seen) != 1 || seen[0] != "x-${md5}-y" {
		t.Errorf("hash called with %q, want the original string once", seen)
	}

	seen = nil
	ProcessMD5With("", hash)
	ProcessMD5With("no token", hash)
	if len(seen) != 0 {
		t.Errorf("hash called %d times for inputs without a token", len(seen))
	}
}

func TestFileMD5(t *testing.T) {
	tmpDir := t.TempDir()

	emptyFile := filepath.Join(tmpDir, "empty.txt")
	os.WriteFile(emptyFile, []byte{}, 0644)

	helloFile := filepath.Join(tmpDir, "hello.txt")
	os.WriteFile(helloFile, []byte("hello world"), 0644)

	subDir := filepath.Join(tmpDir, "subdir")
	os.Mkdir(subDir, 0755)

	tests := []struct {
		name     string
		path     string
		wantHash string
		wantErr  error
	}{
		{
			name:     "empty file",
			path:     emptyFile,
			wantHash: "d41d8cd98f00b204e9800998ecf8427e",
		},
		{
			name:     "hello world file",
			path:     helloFile,
			wantHash: "5eb63bbbe01eeed093cb22bb8f5acdc3",
		},
		{
			name:    "directory returns error",
			path:    subDir,
			wantErr: ErrExpectedFile,
		},
		{
			name:    "non-existent file",
			path:    filepath.Join(tmpDir, "nonexistent.txt"),
			wantErr: os.ErrNotExist,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotHash, err := FileMD5(tt.path)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("FileMD5() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("FileMD5() unexpected error = %v", err)
			}
			if gotHash != tt.wantHash {
				t.Errorf("FileMD5() = %v, want %v", gotHash, tt.wantHash)
			}
		})
	}
}

func TestHashReader(t *testing.T) {
	got, err := HashReader(strings.NewReader("hello world"))
	if err != nil {
		t.Fatalf("HashReader() error = %v", err)
	}
	if got != MD5Hex("hello world") {
		t.Errorf("HashReader() = %s, want %s", got, MD5Hex("hello world"))
	}
}

func TestShardPath(t *testing.T) {
	digest := MD5Hex("hello world")
	p := ShardPath(digest)

	if filepath.Base(p) != digest {
		t.Errorf("ShardPath() base = %s, want %s", filepath.Base(p), digest)
	}
	bucket := filepath.Dir(p)
	if len(bucket) != 3 {
		t.Errorf("ShardPath() bucket = %q, want three digits", bucket)
	}
	n, err := strconv.Atoi(bucket)
	if err != nil || n < 0 || n >= ShardCount {
		t.Errorf("ShardPath() bucket = %q, want 000-%03d", bucket, ShardCount-1)
	}
	if ShardPath(digest) != p {
		t.Error("ShardPath() is not deterministic")
	}
}
