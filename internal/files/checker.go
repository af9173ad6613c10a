package files

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bianoble/craftboot/internal/minepath"
	"github.com/bianoble/craftboot/internal/version"
)

// Checker decides which files of a version must be fetched.
type Checker interface {
	Check(layout *minepath.Layout, v *version.Descriptor) ([]DownloadFile, error)
	CheckAsync(ctx context.Context, layout *minepath.Layout, v *version.Descriptor) <-chan CheckResult
}

// CheckResult is the outcome of an asynchronous check.
type CheckResult struct {
	Files []DownloadFile
	Err   error
}

// ClientChecker verifies the version's client jar.
type ClientChecker struct {
	// CheckHash compares content digests. When false an existing file is
	// always considered valid.
	CheckHash bool

	OnFileChanged FileChangedFunc
}

// NewClientChecker returns a ClientChecker with hash checking enabled.
func NewClientChecker(onFileChanged FileChangedFunc) *ClientChecker {
	return &ClientChecker{CheckHash: true, OnFileChanged: onFileChanged}
}

// Check returns at most one request, for the client jar, when it is missing
// or its SHA-1 does not match the descriptor.
func (c *ClientChecker) Check(layout *minepath.Layout, v *version.Descriptor) ([]DownloadFile, error) {
	c.fire(v, 0)
	result, err := c.checkClient(layout, v)
	c.fire(v, 1)
	return result, err
}

// CheckAsync runs Check on a separate goroutine. The channel receives exactly
// one result and is then closed. The check is read-only against a single file,
// so no extra synchronization is performed.
func (c *ClientChecker) CheckAsync(ctx context.Context, layout *minepath.Layout, v *version.Descriptor) <-chan CheckResult {
	return checkAsync(ctx, c, layout, v)
}

func checkAsync(ctx context.Context, c Checker, layout *minepath.Layout, v *version.Descriptor) <-chan CheckResult {
	out := make(chan CheckResult, 1)
	go func() {
		defer close(out)
		if err := ctx.Err(); err != nil {
			out <- CheckResult{Err: err}
			return
		}
		files, err := c.Check(layout, v)
		out <- CheckResult{Files: files, Err: err}
	}()
	return out
}

func (c *ClientChecker) checkClient(layout *minepath.Layout, v *version.Descriptor) ([]DownloadFile, error) {
	if v.ClientDownloadURL == "" {
		return nil, nil
	}

	clientPath := layout.VersionJarPath(v.Jar)
	valid, err := ValidateFile(clientPath, v.ClientHash, c.CheckHash)
	if err != nil {
		return nil, err
	}
	if valid {
		return nil, nil
	}

	return []DownloadFile{{
		Kind: KindClient,
		Name: v.Jar,
		Path: clientPath,
		URL:  v.ClientDownloadURL,
	}}, nil
}

func (c *ClientChecker) fire(v *version.Descriptor, index int) {
	if c.OnFileChanged != nil {
		c.OnFileChanged(FileChanged{Kind: KindClient, Name: v.Jar, Total: 1, Index: index})
	}
}

// ValidateFile reports whether the file at path exists and matches hash.
// An empty hash cannot be compared, so an existing file is accepted.
// Hash comparison is case-insensitive.
func ValidateFile(path, hash string, checkHash bool) (bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking %s: %w", path, err)
	}
	if info.IsDir() {
		return false, nil
	}

	if !checkHash || hash == "" {
		return true, nil
	}

	actual, err := SHA1File(path)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(actual, hash), nil
}

// SHA1File returns the hex SHA-1 digest of the file at path.
func SHA1File(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	h := sha1.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hashing %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
