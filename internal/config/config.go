// Package config resolves the API key, service URL, and language hint from
// command-line flags, the environment, and an optional TOML file.
//
// The config file is looked up at $XDG_CONFIG_HOME/deptree/config.toml,
// falling back to ~/.config/deptree/config.toml:
//
//	key      = "..."
//	api_url  = "https://api.rosette.com/rest/v1/"
//	language = "eng"
//
// Every field is optional and a missing file is not an error.
package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/deptree/pkg/errors"
	"github.com/matzehuels/deptree/pkg/integrations/rosette"
)

const appName = "deptree"

// EnvKey is the environment variable holding the API key.
const EnvKey = "ROSETTE_USER_KEY"

// File is the on-disk configuration.
type File struct {
	Key      string `toml:"key"`
	APIURL   string `toml:"api_url"`
	Language string `toml:"language"`
}

// Flags holds the values given on the command line. Empty means unset.
type Flags struct {
	Key      string
	APIURL   string
	Language string
}

// Settings is the resolved configuration for one run.
type Settings struct {
	Key      string
	APIURL   string
	Language string
}

// Path returns the default config file location.
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeConfiguration, err, "locate home directory")
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the config file at path. A missing file yields a zero File.
// Malformed TOML and unknown keys are CONFIGURATION_ERRORs.
func Load(path string) (File, error) {
	var f File
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return File{}, nil
		}
		return File{}, errors.Wrap(errors.ErrCodeConfiguration, err, "read config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return File{}, errors.New(errors.ErrCodeConfiguration, "config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return f, nil
}

// Resolve merges flags, environment, and file into the settings for a run.
//
// The key is taken from the flag, then the [EnvKey] environment variable,
// then the file. If none is set, Resolve returns a CONFIGURATION_ERROR.
// APIURL and Language come from the flag, then the file, then the default.
// getenv is usually os.Getenv.
func Resolve(flags Flags, file File, getenv func(string) string) (Settings, error) {
	key, _ := ResolveKey(flags.Key, file, getenv)
	s := Settings{
		Key:      key,
		APIURL:   firstNonEmpty(flags.APIURL, file.APIURL, rosette.DefaultBaseURL),
		Language: firstNonEmpty(flags.Language, file.Language),
	}
	if s.Key == "" {
		return Settings{}, errors.New(errors.ErrCodeConfiguration,
			"no API key provided (use --key, set %s, or add key to the config file)", EnvKey)
	}
	if err := errors.ValidateLanguage(s.Language); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Key sources reported by [ResolveKey].
const (
	SourceFlag = "--key"
	SourceEnv  = "$" + EnvKey
	SourceFile = "config file"
)

// ResolveKey returns the API key a run would use together with where it came
// from. Values are trimmed, so a blank flag or variable falls through to the
// next source. Both are empty when no source sets a key.
func ResolveKey(flag string, file File, getenv func(string) string) (key, source string) {
	candidates := []struct{ value, source string }{
		{flag, SourceFlag},
		{getenv(EnvKey), SourceEnv},
		{file.Key, SourceFile},
	}
	for _, c := range candidates {
		if v := strings.TrimSpace(c.value); v != "" {
			return v, c.source
		}
	}
	return "", ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
