package util

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/taigrr/colorhash"
)

// MD5Token is replaced by ProcessMD5 with the digest of the input.
const MD5Token = "${md5}"

// ShardCount is the number of bucket directories used by ShardPath.
const ShardCount = 1000

// MD5Hex returns the hex encoded MD5 digest of s.
func MD5Hex(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

// ProcessMD5 replaces the first ${md5} in s with the MD5 digest of s itself,
// computed before the substitution. Strings without the token come back
// unchanged.
//
//	util.ProcessMD5("bundle.${md5}.js") // "bundle.<md5 of "bundle.${md5}.js">.js"
func ProcessMD5(s string) string {
	return ProcessMD5With(s, MD5Hex)
}

// ProcessMD5With is ProcessMD5 with a caller supplied digest function.
func ProcessMD5With(s string, hash func(string) string) string {
	if s == "" || !strings.Contains(s, MD5Token) {
		return s
	}
	return strings.Replace(s, MD5Token, hash(s), 1)
}

// HashReader calculates the MD5 hash of data from an io.Reader.
// It returns the hash as a hexadecimal string.
func HashReader(r io.Reader) (string, error) {
	h := md5.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// FileMD5 returns the hex MD5 of the file at path. Directories are rejected
// with ErrExpectedFile.
func FileMD5(path string) (hash string, err error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", ErrExpectedFile
	}
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()
	return HashReader(file)
}

// ShardPath places a digest inside one of ShardCount bucket directories,
// returning "<bucket>/<digest>". The bucket is derived from a color hash of
// the digest so names spread evenly regardless of their prefix.
func ShardPath(digest string) string {
	bucket := colorhash.HashString(digest) % ShardCount
	if bucket < 0 {
		bucket = -bucket
	}
	return filepath.Join(fmt.Sprintf("%03d", bucket), digest)
}
