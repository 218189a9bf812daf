package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/deptree/pkg/errors"
	"github.com/matzehuels/deptree/pkg/integrations/rosette"
)

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestResolveKeyPrecedence(t *testing.T) {
	tests := []struct {
		name string
		flag string
		env  string
		file string
		want string
	}{
		{"flag wins", "from-flag", "from-env", "from-file", "from-flag"},
		{"env over file", "", "from-env", "from-file", "from-env"},
		{"file last", "", "", "from-file", "from-file"},
		{"whitespace flag ignored", "  ", "from-env", "", "from-env"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Resolve(Flags{Key: tt.flag}, File{Key: tt.file}, env(map[string]string{EnvKey: tt.env}))
			if err != nil {
				t.Fatalf("Resolve() error: %v", err)
			}
			if s.Key != tt.want {
				t.Errorf("Key = %q, want %q", s.Key, tt.want)
			}
		})
	}
}

func TestResolveKeySource(t *testing.T) {
	tests := []struct {
		name       string
		flag       string
		env        string
		file       string
		wantKey    string
		wantSource string
	}{
		{"flag", "f", "e", "x", "f", SourceFlag},
		{"env", "", " e ", "x", "e", SourceEnv},
		{"blank env falls through", "", "   ", "x", "x", SourceFile},
		{"none", "", "  ", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, source := ResolveKey(tt.flag, File{Key: tt.file}, env(map[string]string{EnvKey: tt.env}))
			if key != tt.wantKey || source != tt.wantSource {
				t.Errorf("ResolveKey() = (%q, %q), want (%q, %q)", key, source, tt.wantKey, tt.wantSource)
			}
		})
	}
}

func TestResolveMissingKey(t *testing.T) {
	_, err := Resolve(Flags{}, File{}, env(nil))
	if !errors.Is(err, errors.ErrCodeConfiguration) {
		t.Fatalf("error = %v, want %s", err, errors.ErrCodeConfiguration)
	}
	if !strings.Contains(err.Error(), EnvKey) {
		t.Errorf("error should mention %s: %v", EnvKey, err)
	}
}

func TestResolveDefaults(t *testing.T) {
	s, err := Resolve(Flags{Key: "k"}, File{}, env(nil))
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if s.APIURL != rosette.DefaultBaseURL {
		t.Errorf("APIURL = %q, want %q", s.APIURL, rosette.DefaultBaseURL)
	}
	if s.Language != "" {
		t.Errorf("Language = %q, want empty", s.Language)
	}
}

func TestResolveFileOverridesDefaults(t *testing.T) {
	file := File{APIURL: "http://localhost:8181/rest/v1/", Language: "deu"}

	s, err := Resolve(Flags{Key: "k"}, file, env(nil))
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if s.APIURL != file.APIURL || s.Language != "deu" {
		t.Errorf("Resolve() = %+v, want file values", s)
	}

	s, err = Resolve(Flags{Key: "k", APIURL: "http://other/", Language: "fra"}, file, env(nil))
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if s.APIURL != "http://other/" || s.Language != "fra" {
		t.Errorf("Resolve() = %+v, want flag values", s)
	}
}

func TestResolveInvalidLanguage(t *testing.T) {
	_, err := Resolve(Flags{Key: "k"}, File{Language: "English"}, env(nil))
	if !errors.Is(err, errors.ErrCodeConfiguration) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeConfiguration)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "key = \"secret\"\napi_url = \"http://localhost/\"\nlanguage = \"eng\"\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	want := File{Key: "secret", APIURL: "http://localhost/", Language: "eng"}
	if f != want {
		t.Errorf("Load() = %+v, want %+v", f, want)
	}
}

func TestLoadMissingFile(t *testing.T) {
	f, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if f != (File{}) {
		t.Errorf("Load() = %+v, want zero File", f)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed", "key = \n"},
		{"unknown key", "kee = \"typo\"\n"},
		{"wrong type", "language = 3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if !errors.Is(err, errors.ErrCodeConfiguration) {
				t.Errorf("Load() error = %v, want %s", err, errors.ErrCodeConfiguration)
			}
		})
	}
}

func TestPathXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	got, err := Path()
	if err != nil {
		t.Fatalf("Path() error: %v", err)
	}
	if want := filepath.Join(dir, appName, "config.toml"); got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}

func TestPathDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")

	got, err := Path()
	if err != nil {
		t.Fatalf("Path() error: %v", err)
	}
	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, ".config", appName, "config.toml"); got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}
