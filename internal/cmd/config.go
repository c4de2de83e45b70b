package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"github.com/Alia5/inputframe/internal/configpaths"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"
)

// ConfigCommand groups config-related subcommands.
type ConfigCommand struct {
	Init ConfigInit `cmd:"" help:"Generate a configuration template"`
}

// ConfigInit scaffolds a configuration file for one command.
type ConfigInit struct {
	Command string `arg:"" name:"command" help:"Command to generate config for" enum:"replay,watch,record"`
	Format  string `help:"Output format" enum:"json,yaml,yml,toml" default:"yaml"`
	Output  string `help:"Destination file path (defaults to <command>.<ext> in the current directory)"`
	Force   bool   `help:"Overwrite if the file already exists"`
}

// templates maps command names to the structs their flags live on.
var templates = map[string]reflect.Type{
	"replay": reflect.TypeOf(Replay{}),
	"watch":  reflect.TypeOf(Watch{}),
	"record": reflect.TypeOf(Record{}),
}

// Run writes a template built by reflection over the command's kong tags.
func (c *ConfigInit) Run() error {
	t, ok := templates[c.Command]
	if !ok {
		return fmt.Errorf("unknown command %q; expected replay, watch or record", c.Command)
	}
	data, err := renderTemplate(t, c.Format)
	if err != nil {
		return err
	}

	dest := c.Output
	if dest == "" {
		dest = c.Command + "." + configpaths.Ext(c.Format)
	}
	if !c.Force {
		if _, err := os.Stat(dest); err == nil {
			return errors.New("destination exists; use --force to overwrite")
		}
	}
	if err := configpaths.EnsureDir(dest); err != nil {
		return err
	}
	return os.WriteFile(dest, data, 0o644)
}

func renderTemplate(t reflect.Type, format string) ([]byte, error) {
	root := templateFor(t)
	switch configpaths.Ext(format) {
	case "yaml":
		return yaml.Marshal(root)
	case "toml":
		return toml.Marshal(root)
	default:
		if !strings.EqualFold(format, "json") {
			return nil, fmt.Errorf("unsupported format: %s", format)
		}
		return json.MarshalIndent(root, "", "  ")
	}
}

// templateFor collects the configurable fields of a kong command struct with
// their defaults. Positional arguments and subcommands are left out.
func templateFor(t reflect.Type) map[string]any {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	out := map[string]any{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || f.Tag.Get("kong") == "-" {
			continue
		}
		if _, isArg := f.Tag.Lookup("arg"); isArg {
			continue
		}
		if _, isCmd := f.Tag.Lookup("cmd"); isCmd {
			continue
		}
		if _, ok := f.Tag.Lookup("embed"); ok {
			sub := templateFor(f.Type)
			if name := strings.TrimSuffix(f.Tag.Get("prefix"), "."); name != "" {
				out[name] = sub
				continue
			}
			for k, v := range sub {
				out[k] = v
			}
			continue
		}
		if v := defaultValue(f.Type, f.Tag.Get("default")); v != nil {
			out[configKey(f)] = v
		}
	}
	return out
}

// configKey is the key the configuration loaders look up for f: the kong
// flag name with dashes as underscores (HideCursor -> hide_cursor).
func configKey(f reflect.StructField) string {
	if name := f.Tag.Get("name"); name != "" {
		return strings.ReplaceAll(name, "-", "_")
	}
	var b strings.Builder
	r := []rune(f.Name)
	for i, c := range r {
		if unicode.IsUpper(c) {
			if i > 0 && (unicode.IsLower(r[i-1]) || (i+1 < len(r) && unicode.IsLower(r[i+1]))) {
				b.WriteByte('_')
			}
			c = unicode.ToLower(c)
		}
		b.WriteRune(c)
	}
	return b.String()
}

func defaultValue(t reflect.Type, def string) any {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.PkgPath() == "time" && t.Name() == "Duration" {
		if def == "" {
			return "0s"
		}
		return def
	}
	switch t.Kind() {
	case reflect.String:
		return def
	case reflect.Bool:
		b, _ := strconv.ParseBool(def)
		return b
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, _ := strconv.ParseInt(def, 10, 64)
		return n
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, _ := strconv.ParseUint(def, 10, 64)
		return n
	case reflect.Float32, reflect.Float64:
		f, _ := strconv.ParseFloat(def, 64)
		return f
	case reflect.Struct:
		return templateFor(t)
	default:
		return nil
	}
}
