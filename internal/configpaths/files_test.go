package configpaths

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserConfig(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  string
		want string
	}{
		{name: "equals form", args: []string{"replay", "--config=/tmp/a.yaml"}, want: "/tmp/a.yaml"},
		{name: "separate arg", args: []string{"--config", "b.toml", "watch"}, want: "b.toml"},
		{name: "dangling flag falls back to env", args: []string{"--config"}, env: "c.json", want: "c.json"},
		{name: "env", args: []string{"watch"}, env: "d.yml", want: "d.yml"},
		{name: "none", args: nil, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvConfig, tt.env)
			assert.Equal(t, tt.want, UserConfig(tt.args))
		})
	}
}

func TestConfigCandidatePaths(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Setenv("AppData", xdg)

	c := ConfigCandidatePaths("custom.yml")
	require.NotEmpty(t, c.YAML)
	assert.Equal(t, "custom.yml", c.YAML[0])
	assert.Contains(t, c.JSON, filepath.Join(xdg, "inputframe", "replay.json"))
	assert.Contains(t, c.TOML, filepath.Join(xdg, "inputframe", "watch.toml"))
	if runtime.GOOS != "windows" {
		assert.Equal(t, filepath.Join(SystemConfigDir, "record.toml"), c.TOML[len(c.TOML)-1])
	}

	c = ConfigCandidatePaths("noext")
	assert.Equal(t, "noext", c.JSON[0])
}

func TestDefaultNamedConfigPath(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Setenv("AppData", xdg)

	p, err := DefaultNamedConfigPath("replay", "yml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(xdg, "inputframe", "replay.yaml"), p)

	assert.Equal(t, "json", Ext("xml"))
}
