package launch

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bianoble/craftboot/internal/minepath"
	"github.com/bianoble/craftboot/internal/native"
	"github.com/bianoble/craftboot/internal/version"
)

// Fixed values for game-argument keys that have no launcher-side source.
const (
	legacyAssetIndex = "legacy"
	userProperties   = "{}"
	userType         = "Mojang"
)

// NativeStager prepares a version's native libraries before launch.
type NativeStager interface {
	Clean(v *version.Descriptor) error
	Extract(v *version.Descriptor) (string, error)
}

// Builder produces the argument vector that starts a version. It does not
// start or own the process.
type Builder struct {
	Layout  *minepath.Layout
	Options Options
	Session Session
	Natives NativeStager
}

// NewBuilder creates a Builder that stages natives under layout.
func NewBuilder(layout *minepath.Layout, opts Options, session Session) *Builder {
	return &Builder{
		Layout:  layout,
		Options: opts,
		Session: session,
		Natives: native.NewStager(layout),
	}
}

// Command describes how to start a version. The process is started with
// JavaPath and String() as its single argument string in WorkDir.
type Command struct {
	JavaPath string

	// Args holds the ordered launch tokens. A token is not an argv entry:
	// some carry a flag and its value ("-cp X", "--server host") and
	// substituted values may contain literal quotes. Pass String() to the
	// process, never Args element by element.
	Args []string

	WorkDir string
}

// String returns the tokens joined into the single argument string the
// process is started with.
func (c *Command) String() string {
	return strings.Join(c.Args, " ")
}

// Command builds the full launch command for v. Files referenced by the
// classpath and natives must already be installed.
func (b *Builder) Command(v *version.Descriptor) (*Command, error) {
	args, err := b.Args(v)
	if err != nil {
		return nil, err
	}
	return &Command{
		JavaPath: Fallback(Fallback(b.Options.JavaPath, v.JavaBinaryPath), "java"),
		Args:     args,
		WorkDir:  b.Layout.BasePath,
	}, nil
}

// Args builds the ordered token vector for v. Tokens are joined with spaces
// at launch, see Command.Args. The game runtime is sensitive to both order
// and position, so the steps below must not be reordered.
func (b *Builder) Args(v *version.Descriptor) ([]string, error) {
	opts := b.Options
	var args []string

	if opts.JVMArguments != nil {
		args = append(args, opts.JVMArguments...)
	} else {
		args = append(args, DefaultJavaParameter...)
		if opts.MaximumRAMMB > 0 {
			args = append(args, "-Xmx"+strconv.Itoa(opts.MaximumRAMMB)+"m")
		}
		if opts.MinimumRAMMB > 0 {
			args = append(args, "-Xms"+strconv.Itoa(opts.MinimumRAMMB)+"m")
		}
	}

	if opts.DockName != "" {
		args = append(args, "-Xdock:name="+QuoteIfSpaced(opts.DockName))
	}
	if opts.DockIcon != "" {
		args = append(args, "-Xdock:icon="+QuoteIfSpaced(opts.DockIcon))
	}

	classpath, err := b.Classpath(v)
	if err != nil {
		return nil, err
	}

	nativePath, err := b.stageNatives(v)
	if err != nil {
		return nil, err
	}

	if v.JVMArguments != nil {
		args = append(args, Interpolate(v.JVMArguments, Values{
			KeyNativesDirectory: nativePath,
			KeyLauncherName:     Fallback(opts.LauncherName, DefaultLauncherName),
			KeyLauncherVersion:  Fallback(opts.LauncherVersion, DefaultLauncherVersion),
			KeyClasspath:        classpath,
		})...)
	} else {
		args = append(args,
			"-Djava.library.path="+QuoteIfSpaced(nativePath),
			"-cp "+QuoteIfSpaced(classpath),
		)
	}

	if v.MainClass != "" {
		args = append(args, v.MainClass)
	}

	gameValues := b.gameValues(v)
	if v.GameArguments != nil {
		args = append(args, Interpolate(v.GameArguments, gameValues)...)
	} else if v.MinecraftArguments != "" {
		args = append(args, Interpolate(strings.Fields(v.MinecraftArguments), gameValues)...)
	}

	if opts.ServerIP != "" {
		args = append(args, "--server "+QuoteIfSpaced(opts.ServerIP))
		if opts.ServerPort != DefaultServerPort {
			args = append(args, "--port "+strconv.Itoa(opts.ServerPort))
		}
	}

	if opts.ScreenWidth > 0 && opts.ScreenHeight > 0 {
		args = append(args,
			"--width "+strconv.Itoa(opts.ScreenWidth),
			"--height "+strconv.Itoa(opts.ScreenHeight),
		)
	}

	if opts.FullScreen {
		args = append(args, "--fullscreen")
	}

	return args, nil
}

// Classpath joins, in declaration order, the absolute paths of v's classpath
// libraries followed by the version jar.
func (b *Builder) Classpath(v *version.Descriptor) (string, error) {
	libs := v.ClasspathLibraries()
	entries := make([]string, 0, len(libs)+1)
	for _, lib := range libs {
		p, err := filepath.Abs(filepath.Join(b.Layout.Library, lib.Path))
		if err != nil {
			return "", fmt.Errorf("resolving library %s: %w", lib.Name, err)
		}
		entries = append(entries, p)
	}
	if v.Jar != "" {
		entries = append(entries, b.Layout.VersionJarPath(v.Jar))
	}
	return strings.Join(entries, string(os.PathListSeparator)), nil
}

func (b *Builder) stageNatives(v *version.Descriptor) (string, error) {
	natives := b.Natives
	if natives == nil {
		natives = native.NewStager(b.Layout)
	}
	if err := natives.Clean(v); err != nil {
		return "", err
	}
	return natives.Extract(v)
}

func (b *Builder) gameValues(v *version.Descriptor) Values {
	assetID := Fallback(v.AssetID, legacyAssetIndex)
	return Values{
		KeyAuthPlayerName:  b.Session.Username,
		KeyVersionName:     v.ID,
		KeyGameDirectory:   b.Layout.BasePath,
		KeyAssetsRoot:      b.Layout.Assets,
		KeyAssetsIndexName: assetID,
		KeyAuthUUID:        b.Session.UUID,
		KeyAuthAccessToken: b.Session.AccessToken,
		KeyUserProperties:  userProperties,
		KeyUserType:        userType,
		KeyGameAssets:      b.Layout.AssetLegacyPath(assetID),
		KeyAuthSession:     b.Session.AccessToken,
		KeyVersionType:     Fallback(b.Options.VersionType, v.Type),
	}
}
