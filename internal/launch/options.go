package launch

import (
	"crypto/md5"
	"strings"

	"github.com/google/uuid"
)

// DefaultServerPort is the port the game connects to when none is given.
// --port is only emitted for other values.
const DefaultServerPort = 25565

// Defaults substituted when the launcher does not identify itself.
const (
	DefaultLauncherName    = "minecraft-launcher"
	DefaultLauncherVersion = "2"
)

// DefaultJavaParameter is the JVM tuning preset used when Options carries no
// explicit JVM argument list.
var DefaultJavaParameter = []string{
	"-XX:+UnlockExperimentalVMOptions",
	"-XX:+UseG1GC",
	"-XX:G1NewSizePercent=20",
	"-XX:G1ReservePercent=20",
	"-XX:MaxGCPauseMillis=50",
	"-XX:G1HeapRegionSize=16M",
}

// Options is the validated launch configuration. It is passed by value and
// never modified by the builder; validation is the caller's job.
type Options struct {
	MaximumRAMMB int
	MinimumRAMMB int

	ScreenWidth  int
	ScreenHeight int
	FullScreen   bool

	ServerIP   string
	ServerPort int

	// JVMArguments replaces the tuning preset and memory flags when non-nil.
	JVMArguments []string

	DockName string
	DockIcon string

	JavaPath        string
	LauncherName    string
	LauncherVersion string
	VersionType     string
}

// DefaultOptions returns Options with the standard server port and no
// overrides.
func DefaultOptions() Options {
	return Options{ServerPort: DefaultServerPort}
}

// Session identifies the player the game is started for.
type Session struct {
	Username    string
	UUID        string
	AccessToken string
}

// OfflineSession builds a session for play without an account. The UUID is
// the name-based (version 3) UUID of "OfflinePlayer:<username>", which is
// what servers in offline mode assign, so the player keeps the same identity.
func OfflineSession(username string) Session {
	return Session{
		Username:    username,
		UUID:        OfflineUUID(username),
		AccessToken: "access_token",
	}
}

// OfflineUUID returns the undashed offline-mode UUID for username.
func OfflineUUID(username string) string {
	sum := md5.Sum([]byte("OfflinePlayer:" + username))
	sum[6] = sum[6]&0x0f | 0x30
	sum[8] = sum[8]&0x3f | 0x80

	id := uuid.Must(uuid.FromBytes(sum[:]))
	return strings.ReplaceAll(id.String(), "-", "")
}
