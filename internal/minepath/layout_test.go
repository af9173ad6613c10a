package minepath

import (
	"path/filepath"
	"testing"
)

func TestNewLayout(t *testing.T) {
	root := t.TempDir()

	l, err := New(root)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"base", l.BasePath, root},
		{"library", l.Library, filepath.Join(root, "libraries")},
		{"assets", l.Assets, filepath.Join(root, "assets")},
		{"versions", l.Versions, filepath.Join(root, "versions")},
		{"version dir", l.VersionDir("1.16.5"), filepath.Join(root, "versions", "1.16.5")},
		{"jar", l.VersionJarPath("1.16.5"), filepath.Join(root, "versions", "1.16.5", "1.16.5.jar")},
		{"descriptor", l.VersionDescriptorPath("1.16.5"), filepath.Join(root, "versions", "1.16.5", "1.16.5.yaml")},
		{"natives", l.NativesPath("1.16.5"), filepath.Join(root, "versions", "1.16.5", "natives")},
		{"legacy assets", l.AssetLegacyPath("legacy"), filepath.Join(root, "assets", "virtual", "legacy")},
		{"lock", l.LockPath(), filepath.Join(root, ".craftboot.lock")},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestNewLayoutRelative(t *testing.T) {
	l, err := New("game")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !filepath.IsAbs(l.BasePath) {
		t.Errorf("base path %q is not absolute", l.BasePath)
	}
}

func TestDefaultRootNotEmpty(t *testing.T) {
	if DefaultRoot() == "" {
		t.Fatal("DefaultRoot returned empty path")
	}
}
