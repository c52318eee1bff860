package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDirs_Linux(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("linux-only test")
	}

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name    string
		xdgVar  string
		xdgVal  string
		resolve func() (string, error)
		want    string
	}{
		{
			name:    "config honors XDG_CONFIG_HOME",
			xdgVar:  "XDG_CONFIG_HOME",
			xdgVal:  "/tmp/xdg-config",
			resolve: DefaultConfigDir,
			want:    "/tmp/xdg-config/shelf",
		},
		{
			name:    "config falls back to ~/.config",
			xdgVar:  "XDG_CONFIG_HOME",
			xdgVal:  "",
			resolve: DefaultConfigDir,
			want:    filepath.Join(home, ".config", "shelf"),
		},
		{
			name:    "data honors XDG_DATA_HOME",
			xdgVar:  "XDG_DATA_HOME",
			xdgVal:  "/tmp/xdg-data",
			resolve: DefaultDataDir,
			want:    "/tmp/xdg-data/shelf",
		},
		{
			name:    "data falls back to ~/.local/share",
			xdgVar:  "XDG_DATA_HOME",
			xdgVal:  "",
			resolve: DefaultDataDir,
			want:    filepath.Join(home, ".local", "share", "shelf"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.xdgVar, tt.xdgVal)
			got, err := tt.resolve()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultDirs_Darwin(t *testing.T) {
	if runtime.GOOS != "darwin" {
		t.Skip("darwin-only test")
	}

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	want := filepath.Join(home, "Library", "Application Support", "shelf")

	got, err := DefaultConfigDir()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = DefaultDataDir()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestResolveConfigDir(t *testing.T) {
	tests := []struct {
		name    string
		flag    string
		envVal  string
		wantSub string // substring the result must contain
	}{
		{
			name:    "flag wins over env",
			flag:    "/explicit/config",
			envVal:  "/env/config",
			wantSub: "/explicit/config",
		},
		{
			name:    "env wins when flag empty",
			flag:    "",
			envVal:  "/env/config",
			wantSub: "/env/config",
		},
		{
			name:    "relative flag becomes absolute",
			flag:    "relative/path",
			envVal:  "",
			wantSub: "relative/path",
		},
		{
			name:    "platform default when both empty",
			flag:    "",
			envVal:  "",
			wantSub: "shelf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvConfigDir, tt.envVal)
			got, err := ResolveConfigDir(tt.flag)
			require.NoError(t, err)
			assert.Contains(t, got, tt.wantSub)
			assert.True(t, filepath.IsAbs(got), "expected absolute path, got %s", got)
		})
	}
}

func TestResolveDataDir(t *testing.T) {
	tests := []struct {
		name          string
		flag          string
		configYAMLVal string
		envVal        string
		wantSub       string // substring the result must contain
	}{
		{
			name:          "flag wins over all",
			flag:          "/flag/data",
			configYAMLVal: "/config/data",
			envVal:        "/env/data",
			wantSub:       "/flag/data",
		},
		{
			name:          "config.yaml wins over env",
			flag:          "",
			configYAMLVal: "/config/data",
			envVal:        "/env/data",
			wantSub:       "/config/data",
		},
		{
			name:          "env wins when flag and config empty",
			flag:          "",
			configYAMLVal: "",
			envVal:        "/env/data",
			wantSub:       "/env/data",
		},
		{
			name:          "relative config value becomes absolute",
			flag:          "",
			configYAMLVal: "relative/config",
			envVal:        "",
			wantSub:       "relative/config",
		},
		{
			name:          "platform default when all empty",
			flag:          "",
			configYAMLVal: "",
			envVal:        "",
			wantSub:       "shelf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvDataDir, tt.envVal)
			got, err := ResolveDataDir(tt.flag, tt.configYAMLVal)
			require.NoError(t, err)
			assert.Contains(t, got, tt.wantSub)
			assert.True(t, filepath.IsAbs(got), "expected absolute path, got %s", got)
		})
	}
}
