package native

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/bianoble/craftboot/internal/minepath"
	"github.com/bianoble/craftboot/internal/version"
)

// Stager extracts a version's native libraries into its natives directory.
type Stager struct {
	Layout *minepath.Layout

	// Log receives a warning for every native archive that is not installed.
	// Default: logrus.StandardLogger().
	Log logrus.FieldLogger
}

// NewStager creates a Stager for the given layout.
func NewStager(layout *minepath.Layout) *Stager {
	return &Stager{Layout: layout, Log: logrus.StandardLogger()}
}

// Clean removes previously extracted natives for v. Missing directories are
// not an error.
func (s *Stager) Clean(v *version.Descriptor) error {
	dir := s.Layout.NativesPath(v.ID)
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("removing natives %s: %w", dir, err)
	}
	return nil
}

// Extract unpacks every required native archive of v and returns the
// directory they were extracted to. Archives that are not on disk are
// skipped with a warning.
func (s *Stager) Extract(v *version.Descriptor) (string, error) {
	dir := s.Layout.NativesPath(v.ID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating natives directory %s: %w", dir, err)
	}

	for _, lib := range v.NativeLibraries() {
		archive := filepath.Join(s.Layout.Library, lib.Path)
		if _, err := os.Stat(archive); errors.Is(err, os.ErrNotExist) {
			s.logger().WithFields(logrus.Fields{
				"library": lib.Name,
				"path":    archive,
			}).Warn("native library not installed, skipping")
			continue
		}
		if err := unzip(archive, dir); err != nil {
			return "", fmt.Errorf("extracting native library %s: %w", lib.Name, err)
		}
	}
	return dir, nil
}

func (s *Stager) logger() logrus.FieldLogger {
	if s.Log == nil {
		return logrus.StandardLogger()
	}
	return s.Log
}

func unzip(archive, dest string) error {
	r, err := zip.OpenReader(archive)
	// Insecure names are rejected per entry below.
	if err != nil && !errors.Is(err, zip.ErrInsecurePath) {
		return fmt.Errorf("opening %s: %w", archive, err)
	}
	defer r.Close()

	for _, f := range r.File {
		// Signature files are meaningless outside the jar.
		if strings.HasPrefix(f.Name, "META-INF/") || f.FileInfo().IsDir() {
			continue
		}

		target, err := containedPath(dest, f.Name)
		if err != nil {
			return err
		}
		if err := extractFile(f, target); err != nil {
			return err
		}
	}
	return nil
}

func extractFile(f *zip.File, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", f.Name, err)
	}

	src, err := f.Open()
	if err != nil {
		return fmt.Errorf("opening entry %s: %w", f.Name, err)
	}
	defer src.Close()

	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0755)
	if err != nil {
		return fmt.Errorf("creating %s: %w", target, err)
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return fmt.Errorf("writing %s: %w", target, err)
	}
	return out.Close()
}

// containedPath joins name onto root and rejects results that escape root.
// Symlinks in the existing part of root are resolved first so that prefix
// comparison happens on real paths.
func containedPath(root, name string) (string, error) {
	realRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", root, err)
	}

	candidate := filepath.Join(realRoot, filepath.FromSlash(name))
	rootPrefix := realRoot + string(filepath.Separator)
	if candidate != realRoot && !strings.HasPrefix(candidate, rootPrefix) {
		return "", fmt.Errorf("archive entry '%s' escapes natives directory '%s'", name, realRoot)
	}
	return candidate, nil
}
