package files

import (
	"context"
	"path/filepath"

	"github.com/bianoble/craftboot/internal/minepath"
	"github.com/bianoble/craftboot/internal/version"
)

// LibraryChecker verifies the required libraries of a version, classpath and
// native archives alike.
type LibraryChecker struct {
	CheckHash bool

	OnFileChanged FileChangedFunc
}

// Check returns a request for every required library that is missing or
// whose SHA-1 does not match. Libraries without a download URL cannot be
// fetched and are never requested.
//
// One event fires per checked library, followed by a terminal event whose
// Index equals Total. A version with no required libraries fires nothing.
func (c *LibraryChecker) Check(layout *minepath.Layout, v *version.Descriptor) ([]DownloadFile, error) {
	libs := requiredLibraries(v)

	var result []DownloadFile
	for i, lib := range libs {
		c.fire(lib.Name, len(libs), i)

		if lib.URL == "" {
			continue
		}
		path := filepath.Join(layout.Library, lib.Path)
		valid, err := ValidateFile(path, lib.Hash, c.CheckHash)
		if err != nil {
			return nil, err
		}
		if valid {
			continue
		}
		result = append(result, DownloadFile{
			Kind: KindLibrary,
			Name: lib.Name,
			Path: path,
			URL:  lib.URL,
		})
	}

	if len(libs) > 0 {
		last := libs[len(libs)-1]
		c.fire(last.Name, len(libs), len(libs))
	}
	return result, nil
}

// CheckAsync runs Check on a separate goroutine. The channel receives exactly
// one result and is then closed.
func (c *LibraryChecker) CheckAsync(ctx context.Context, layout *minepath.Layout, v *version.Descriptor) <-chan CheckResult {
	return checkAsync(ctx, c, layout, v)
}

func (c *LibraryChecker) fire(name string, total, index int) {
	if c.OnFileChanged != nil {
		c.OnFileChanged(FileChanged{Kind: KindLibrary, Name: name, Total: total, Index: index})
	}
}

func requiredLibraries(v *version.Descriptor) []version.Library {
	var libs []version.Library
	for _, lib := range v.Libraries {
		if lib.Required && lib.Path != "" {
			libs = append(libs, lib)
		}
	}
	return libs
}
