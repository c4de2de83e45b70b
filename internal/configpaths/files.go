// Package configpaths locates configuration files for the inputframe CLI.
package configpaths

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// EnvConfig names the environment variable holding an explicit config path.
const EnvConfig = "INPUTFRAME_CONFIG"

// SystemConfigDir is searched last on unix systems.
const SystemConfigDir = "/etc/inputframe"

// Base names tried in every directory, most general first.
var baseNames = []string{"config", "replay", "watch", "record"}

// DefaultConfigDir returns the platform-specific configuration directory.
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		if appdata := os.Getenv("AppData"); appdata != "" {
			return filepath.Join(appdata, "inputframe"), nil
		}
		return "", errors.New("AppData not set")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "inputframe"), nil
		}
		if home := os.Getenv("HOME"); home != "" {
			return filepath.Join(home, ".config", "inputframe"), nil
		}
		return "", errors.New("HOME not set")
	}
}

// DefaultNamedConfigPath returns the config file path in DefaultConfigDir for
// a base name ("replay") and format.
func DefaultNamedConfigPath(baseName, format string) (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, baseName+"."+Ext(format)), nil
}

// Ext maps a format name to its canonical file extension; unknown formats
// are json.
func Ext(format string) string {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		return "yaml"
	case "toml":
		return "toml"
	default:
		return "json"
	}
}

// EnsureDir ensures the directory for a given file path exists.
func EnsureDir(filePath string) error {
	return os.MkdirAll(filepath.Dir(filePath), 0o755)
}

// UserConfig returns the path given by --config, or the EnvConfig variable.
// It scans raw arguments because the path is needed before kong parses.
func UserConfig(args []string) string {
	for i, a := range args {
		if v, ok := strings.CutPrefix(a, "--config="); ok {
			return v
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return os.Getenv(EnvConfig)
}

// Candidates holds config paths per loader, highest priority first.
type Candidates struct {
	JSON, YAML, TOML []string
}

func (c *Candidates) addFile(p string) {
	switch filepath.Ext(p) {
	case ".yaml", ".yml":
		c.YAML = append(c.YAML, p)
	case ".toml":
		c.TOML = append(c.TOML, p)
	default:
		c.JSON = append(c.JSON, p)
	}
}

func (c *Candidates) addDir(dir string, bases []string) {
	for _, base := range bases {
		p := filepath.Join(dir, base)
		c.JSON = append(c.JSON, p+".json")
		c.YAML = append(c.YAML, p+".yaml", p+".yml")
		c.TOML = append(c.TOML, p+".toml")
	}
}

// ConfigCandidatePaths lists candidate config files: userPath first (routed
// by extension), then the working directory, the user config directory and
// SystemConfigDir.
func ConfigCandidatePaths(userPath string) Candidates {
	var c Candidates
	if userPath != "" {
		c.addFile(userPath)
	}
	if wd, err := os.Getwd(); err == nil {
		c.addDir(wd, append([]string{"inputframe"}, baseNames...))
	}
	if dir, err := DefaultConfigDir(); err == nil {
		c.addDir(dir, baseNames)
	}
	if runtime.GOOS != "windows" {
		c.addDir(SystemConfigDir, baseNames)
	}
	return c
}
