package minepath

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Layout resolves a game root directory into the locations the launcher reads
// and writes: shared libraries, assets, and per-version directories.
type Layout struct {
	BasePath string
	Library  string
	Assets   string
	Versions string
}

// New creates a Layout rooted at basePath. The path is made absolute.
func New(basePath string) (*Layout, error) {
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("resolving game root %s: %w", basePath, err)
	}
	return &Layout{
		BasePath: abs,
		Library:  filepath.Join(abs, "libraries"),
		Assets:   filepath.Join(abs, "assets"),
		Versions: filepath.Join(abs, "versions"),
	}, nil
}

// DefaultRoot returns the platform-standard game directory.
// Uses APPDATA on Windows, Application Support on macOS, ~/.minecraft elsewhere.
func DefaultRoot() string {
	switch runtime.GOOS {
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, ".minecraft")
		}
	case "darwin":
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, "Library", "Application Support", "minecraft")
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".minecraft")
	}
	return filepath.Join(home, ".minecraft")
}

// VersionDir returns the directory holding files for version id.
func (l *Layout) VersionDir(id string) string {
	return filepath.Join(l.Versions, id)
}

// VersionJarPath returns the client jar path for jar id.
func (l *Layout) VersionJarPath(id string) string {
	return filepath.Join(l.VersionDir(id), id+".jar")
}

// VersionDescriptorPath returns the conventional descriptor location for id.
func (l *Layout) VersionDescriptorPath(id string) string {
	return filepath.Join(l.VersionDir(id), id+".yaml")
}

// NativesPath returns the version-scoped directory natives are extracted to.
func (l *Layout) NativesPath(id string) string {
	return filepath.Join(l.VersionDir(id), "natives")
}

// AssetLegacyPath returns the virtual asset directory used by versions that
// predate the hashed object store.
func (l *Layout) AssetLegacyPath(assetID string) string {
	return filepath.Join(l.Assets, "virtual", assetID)
}

// LockPath returns the file used to serialize installs into this root.
func (l *Layout) LockPath() string {
	return filepath.Join(l.BasePath, ".craftboot.lock")
}
