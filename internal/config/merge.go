package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Merge combines two configs where overlay takes precedence over base.
//   - version: must agree if both declare it (non-zero); error on mismatch
//   - scalars: a non-zero overlay value replaces the base value
//   - optional flags and jvm_arguments: a set overlay value replaces base
func Merge(base, overlay *Config) (*Config, error) {
	if base == nil {
		return overlay, nil
	}
	if overlay == nil {
		return base, nil
	}

	result := &Config{}

	if err := mergeVersion(base.Version, overlay.Version, &result.Version); err != nil {
		return nil, err
	}

	result.Root = pick(base.Root, overlay.Root)
	result.Descriptor = pick(base.Descriptor, overlay.Descriptor)
	result.TolerateErrors = pickPtr(base.TolerateErrors, overlay.TolerateErrors)
	result.CheckHash = pickPtr(base.CheckHash, overlay.CheckHash)

	result.Session = SessionConfig{
		Username:    pick(base.Session.Username, overlay.Session.Username),
		UUID:        pick(base.Session.UUID, overlay.Session.UUID),
		AccessToken: pick(base.Session.AccessToken, overlay.Session.AccessToken),
	}

	b, o := base.Launch, overlay.Launch
	result.Launch = LaunchConfig{
		MaxRAMMB:        pick(b.MaxRAMMB, o.MaxRAMMB),
		MinRAMMB:        pick(b.MinRAMMB, o.MinRAMMB),
		ScreenWidth:     pick(b.ScreenWidth, o.ScreenWidth),
		ScreenHeight:    pick(b.ScreenHeight, o.ScreenHeight),
		FullScreen:      pickPtr(b.FullScreen, o.FullScreen),
		ServerIP:        pick(b.ServerIP, o.ServerIP),
		ServerPort:      pick(b.ServerPort, o.ServerPort),
		JVMArguments:    pickPtr(b.JVMArguments, o.JVMArguments),
		DockName:        pick(b.DockName, o.DockName),
		DockIcon:        pick(b.DockIcon, o.DockIcon),
		JavaPath:        pick(b.JavaPath, o.JavaPath),
		LauncherName:    pick(b.LauncherName, o.LauncherName),
		LauncherVersion: pick(b.LauncherVersion, o.LauncherVersion),
		VersionType:     pick(b.VersionType, o.VersionType),
	}

	return result, nil
}

// MergeAll merges multiple configs in order (lowest precedence first).
// Returns an error if any version mismatch is found.
func MergeAll(configs []*Config) (*Config, error) {
	if len(configs) == 0 {
		return nil, fmt.Errorf("no configs to merge")
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		var err error
		result, err = Merge(result, configs[i])
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// HierarchicalOptions controls LoadHierarchical.
type HierarchicalOptions struct {
	ProjectPath    string
	UserConfigPath string
	NoInherit      bool
}

// HierarchicalResult is the merged config and what each layer contributed.
type HierarchicalResult struct {
	Config *Config
	Layers []ConfigLayerInfo
}

// LoadHierarchical loads the user and project layers, merges them, applies
// environment overrides and validates the result. A missing user layer is
// skipped; the project layer must exist.
func LoadHierarchical(opts HierarchicalOptions) (*HierarchicalResult, error) {
	layers := DiscoverPaths(DiscoverOptions{
		ProjectPath:    opts.ProjectPath,
		UserConfigPath: opts.UserConfigPath,
		NoInherit:      opts.NoInherit,
	})

	var configs []*Config
	for i := range layers {
		layer := &layers[i]
		if layer.Level != LevelProject {
			if _, err := os.Stat(layer.Path); errors.Is(err, fs.ErrNotExist) {
				continue
			}
		}

		cfg, err := parseFile(layer.Path)
		if err != nil {
			layer.Err = err
			return nil, fmt.Errorf("%s config: %w", layer.Level, err)
		}
		layer.Loaded = true
		configs = append(configs, cfg)
	}

	merged, err := MergeAll(configs)
	if err != nil {
		return nil, err
	}

	if err := ApplyEnv(merged); err != nil {
		return nil, err
	}

	if errs := Validate(merged); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	return &HierarchicalResult{Config: merged, Layers: layers}, nil
}

func mergeVersion(base, overlay int, out *int) error {
	switch {
	case base == 0 && overlay == 0:
		*out = 0 // neither declares; validation will catch this
	case base == 0:
		*out = overlay
	case overlay == 0:
		*out = base
	case base == overlay:
		*out = base
	default:
		return fmt.Errorf("config version mismatch: one layer declares version %d, another declares version %d; all config layers must agree on version", base, overlay)
	}
	return nil
}

func pick[T comparable](base, overlay T) T {
	var zero T
	if overlay != zero {
		return overlay
	}
	return base
}

func pickPtr[T any](base, overlay *T) *T {
	if overlay != nil {
		return overlay
	}
	return base
}
