package version

// Descriptor is the fully merged view of one launchable game version.
// Inheritance has already been resolved by whoever produced the file.
type Descriptor struct {
	ID           string `yaml:"id" json:"id"`
	InheritsFrom string `yaml:"inherits_from,omitempty" json:"inheritsFrom,omitempty"`
	Jar          string `yaml:"jar,omitempty" json:"jar,omitempty"`
	Type         string `yaml:"type,omitempty" json:"type,omitempty"`
	MainClass    string `yaml:"main_class,omitempty" json:"mainClass,omitempty"`
	AssetID      string `yaml:"asset_id,omitempty" json:"assetId,omitempty"`

	ClientDownloadURL string `yaml:"client_url,omitempty" json:"clientUrl,omitempty"`
	ClientHash        string `yaml:"client_sha1,omitempty" json:"clientSha1,omitempty"`

	Libraries []Library `yaml:"libraries,omitempty" json:"libraries,omitempty"`

	// A nil template means the version does not declare one; an empty,
	// non-nil slice is a declared template with no tokens.
	JVMArguments  []string `yaml:"jvm_arguments,omitempty" json:"jvmArguments,omitempty"`
	GameArguments []string `yaml:"game_arguments,omitempty" json:"gameArguments,omitempty"`

	// Legacy single-string argument template used before GameArguments existed.
	MinecraftArguments string `yaml:"minecraft_arguments,omitempty" json:"minecraftArguments,omitempty"`

	JavaBinaryPath string `yaml:"java_binary_path,omitempty" json:"javaBinaryPath,omitempty"`
}

// Library is one code or native archive a version depends on.
// Path is relative to the shared library root and may be empty.
type Library struct {
	Name     string `yaml:"name" json:"name"`
	Path     string `yaml:"path,omitempty" json:"path,omitempty"`
	URL      string `yaml:"url,omitempty" json:"url,omitempty"`
	Hash     string `yaml:"sha1,omitempty" json:"sha1,omitempty"`
	Required bool   `yaml:"required" json:"required"`
	Native   bool   `yaml:"native,omitempty" json:"native,omitempty"`
}

// ClasspathLibraries returns, in declaration order, the libraries that belong
// on the classpath: required, not native, with a path.
func (d *Descriptor) ClasspathLibraries() []Library {
	var libs []Library
	for _, lib := range d.Libraries {
		if lib.Required && !lib.Native && lib.Path != "" {
			libs = append(libs, lib)
		}
	}
	return libs
}

// NativeLibraries returns the required native archives with a path.
func (d *Descriptor) NativeLibraries() []Library {
	var libs []Library
	for _, lib := range d.Libraries {
		if lib.Required && lib.Native && lib.Path != "" {
			libs = append(libs, lib)
		}
	}
	return libs
}
