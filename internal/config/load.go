package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/mattn/go-shellwords"
	"gopkg.in/yaml.v3"

	"github.com/bianoble/craftboot/internal/launch"
	"github.com/bianoble/craftboot/internal/minepath"
)

// Load reads and validates a craftboot.yaml configuration file.
func Load(path string) (*Config, error) {
	cfg, err := parseFile(path)
	if err != nil {
		return nil, err
	}

	if errs := Validate(cfg); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	return cfg, nil
}

func parseFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}

// ApplyEnv overlays CRAFTBOOT_* environment variables onto cfg. Variables
// that are not set leave the field untouched.
func ApplyEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ValidationError holds multiple validation failures.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// Validate checks a Config for semantic correctness.
// Returns a list of validation error messages (empty if valid).
func Validate(cfg *Config) []string {
	var errs []string

	if cfg.Version != 1 {
		errs = append(errs, fmt.Sprintf("unsupported version %d: only version 1 is supported", cfg.Version))
	}

	if cfg.Descriptor == "" {
		errs = append(errs, "'descriptor' is required: point it at the version descriptor to launch")
	}

	if cfg.Session.Username == "" {
		errs = append(errs, "session: 'username' is required")
	}

	l := cfg.Launch
	if l.MaxRAMMB < 0 {
		errs = append(errs, fmt.Sprintf("launch: max_ram_mb must not be negative, got %d", l.MaxRAMMB))
	}
	if l.MinRAMMB < 0 {
		errs = append(errs, fmt.Sprintf("launch: min_ram_mb must not be negative, got %d", l.MinRAMMB))
	}
	if l.MaxRAMMB > 0 && l.MinRAMMB > l.MaxRAMMB {
		errs = append(errs, fmt.Sprintf("launch: min_ram_mb (%d) exceeds max_ram_mb (%d)", l.MinRAMMB, l.MaxRAMMB))
	}

	if l.ScreenWidth < 0 {
		errs = append(errs, fmt.Sprintf("launch: screen_width must not be negative, got %d", l.ScreenWidth))
	}
	if l.ScreenHeight < 0 {
		errs = append(errs, fmt.Sprintf("launch: screen_height must not be negative, got %d", l.ScreenHeight))
	}

	if l.ServerPort < 0 || l.ServerPort > 65535 {
		errs = append(errs, fmt.Sprintf("launch: server_port %d is out of range 1-65535", l.ServerPort))
	}

	if l.JVMArguments != nil {
		if _, err := shellwords.Parse(*l.JVMArguments); err != nil {
			errs = append(errs, fmt.Sprintf("launch: jvm_arguments: %v", err))
		}
	}

	return errs
}

// RootPath returns the game root with a leading "~" expanded. An empty root
// selects the platform default.
func (c *Config) RootPath() string {
	root := c.Root
	if root == "" {
		return minepath.DefaultRoot()
	}
	if root == "~" || strings.HasPrefix(root, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			root = filepath.Join(home, strings.TrimPrefix(root, "~"))
		}
	}
	return root
}

// DescriptorPath resolves the descriptor path; relative paths are taken from
// root. An empty root means RootPath.
func (c *Config) DescriptorPath(root string) string {
	if filepath.IsAbs(c.Descriptor) {
		return c.Descriptor
	}
	if root == "" {
		root = c.RootPath()
	}
	return filepath.Join(root, c.Descriptor)
}

// LaunchOptions converts the launch section into launch.Options.
func (c *Config) LaunchOptions() (launch.Options, error) {
	l := c.Launch
	opts := launch.DefaultOptions()

	opts.MaximumRAMMB = l.MaxRAMMB
	opts.MinimumRAMMB = l.MinRAMMB
	opts.ScreenWidth = l.ScreenWidth
	opts.ScreenHeight = l.ScreenHeight
	opts.FullScreen = boolValue(l.FullScreen, false)
	opts.ServerIP = l.ServerIP
	if l.ServerPort != 0 {
		opts.ServerPort = l.ServerPort
	}
	opts.DockName = l.DockName
	opts.DockIcon = l.DockIcon
	opts.JavaPath = l.JavaPath
	opts.LauncherName = l.LauncherName
	opts.LauncherVersion = l.LauncherVersion
	opts.VersionType = l.VersionType

	if l.JVMArguments != nil {
		args, err := shellwords.Parse(*l.JVMArguments)
		if err != nil {
			return launch.Options{}, fmt.Errorf("parsing jvm_arguments: %w", err)
		}
		if args == nil {
			args = []string{}
		}
		opts.JVMArguments = args
	}

	return opts, nil
}

// PlayerSession returns the player session. Missing identity fields fall
// back to offline values derived from the username.
func (c *Config) PlayerSession() launch.Session {
	s := c.Session
	return launch.Session{
		Username:    s.Username,
		UUID:        launch.Fallback(s.UUID, launch.OfflineUUID(s.Username)),
		AccessToken: launch.Fallback(s.AccessToken, "access_token"),
	}
}
