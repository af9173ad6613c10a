package launch

import "regexp"

// Key is one of the placeholders a version's argument templates may use.
type Key int

const (
	KeyNativesDirectory Key = iota + 1
	KeyLauncherName
	KeyLauncherVersion
	KeyClasspath

	KeyAuthPlayerName
	KeyVersionName
	KeyGameDirectory
	KeyAssetsRoot
	KeyAssetsIndexName
	KeyAuthUUID
	KeyAuthAccessToken
	KeyUserProperties
	KeyUserType
	KeyGameAssets
	KeyAuthSession
	KeyVersionType
)

var keyNames = map[Key]string{
	KeyNativesDirectory: "natives_directory",
	KeyLauncherName:     "launcher_name",
	KeyLauncherVersion:  "launcher_version",
	KeyClasspath:        "classpath",
	KeyAuthPlayerName:   "auth_player_name",
	KeyVersionName:      "version_name",
	KeyGameDirectory:    "game_directory",
	KeyAssetsRoot:       "assets_root",
	KeyAssetsIndexName:  "assets_index_name",
	KeyAuthUUID:         "auth_uuid",
	KeyAuthAccessToken:  "auth_access_token",
	KeyUserProperties:   "user_properties",
	KeyUserType:         "user_type",
	KeyGameAssets:       "game_assets",
	KeyAuthSession:      "auth_session",
	KeyVersionType:      "version_type",
}

var keysByName = func() map[string]Key {
	m := make(map[string]Key, len(keyNames))
	for k, name := range keyNames {
		m[name] = k
	}
	return m
}()

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKey maps a placeholder name to its Key.
func ParseKey(name string) (Key, bool) {
	k, ok := keysByName[name]
	return k, ok
}

// Values binds keys to substitution values.
type Values map[Key]string

var placeholder = regexp.MustCompile(`\$\{([^}]*)\}`)

// Interpolate replaces every ${name} placeholder in each token. Unknown names
// and keys without a value become the empty string. Values containing
// whitespace are quoted so they survive as one token of the joined command
// line. Tokens without placeholders pass through unchanged.
func Interpolate(tokens []string, values Values) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, placeholder.ReplaceAllStringFunc(tok, func(m string) string {
			name := placeholder.FindStringSubmatch(m)[1]
			key, ok := ParseKey(name)
			if !ok {
				return ""
			}
			return QuoteIfSpaced(values[key])
		}))
	}
	return out
}
