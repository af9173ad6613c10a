package config

// Config represents the craftboot.yaml launcher configuration file.
type Config struct {
	Version    int    `yaml:"version"`
	Root       string `yaml:"root,omitempty" env:"CRAFTBOOT_ROOT"`
	Descriptor string `yaml:"descriptor,omitempty"`

	// TolerateErrors keeps a download run going past failed files.
	// Unset means true.
	TolerateErrors *bool `yaml:"tolerate_errors,omitempty"`

	// CheckHash compares the client jar against its expected SHA-1.
	// Unset means true.
	CheckHash *bool `yaml:"check_hash,omitempty"`

	Session SessionConfig `yaml:"session,omitempty"`
	Launch  LaunchConfig  `yaml:"launch,omitempty"`
}

// SessionConfig identifies the player. Empty UUID and token select an
// offline session.
type SessionConfig struct {
	Username    string `yaml:"username,omitempty" env:"CRAFTBOOT_USERNAME"`
	UUID        string `yaml:"uuid,omitempty"`
	AccessToken string `yaml:"access_token,omitempty" env:"CRAFTBOOT_ACCESS_TOKEN"`
}

// LaunchConfig holds the tunables that become launch.Options.
type LaunchConfig struct {
	MaxRAMMB int `yaml:"max_ram_mb,omitempty"`
	MinRAMMB int `yaml:"min_ram_mb,omitempty"`

	ScreenWidth  int   `yaml:"screen_width,omitempty"`
	ScreenHeight int   `yaml:"screen_height,omitempty"`
	FullScreen   *bool `yaml:"fullscreen,omitempty"`

	ServerIP   string `yaml:"server_ip,omitempty"`
	ServerPort int    `yaml:"server_port,omitempty"`

	// JVMArguments is a shell-style argument string. When set, even to "",
	// it replaces the JVM tuning preset and memory flags.
	JVMArguments *string `yaml:"jvm_arguments,omitempty"`

	DockName string `yaml:"dock_name,omitempty"`
	DockIcon string `yaml:"dock_icon,omitempty"`

	JavaPath        string `yaml:"java_path,omitempty" env:"CRAFTBOOT_JAVA"`
	LauncherName    string `yaml:"launcher_name,omitempty"`
	LauncherVersion string `yaml:"launcher_version,omitempty"`
	VersionType     string `yaml:"version_type,omitempty"`
}

func boolValue(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

// ShouldTolerateErrors reports whether failed downloads are skipped.
func (c *Config) ShouldTolerateErrors() bool {
	return boolValue(c.TolerateErrors, true)
}

// ShouldCheckHash reports whether the client jar hash is verified.
func (c *Config) ShouldCheckHash() bool {
	return boolValue(c.CheckHash, true)
}
