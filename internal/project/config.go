package project

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config mirrors monkey.toml. Zero values are replaced by Defaults.
type Config struct {
	Parse  ParseConfig  `toml:"parse"`
	REPL   REPLConfig   `toml:"repl"`
	Output OutputConfig `toml:"output"`
}

type ParseConfig struct {
	MaxDiagnostics int      `toml:"max_diagnostics"`
	Extensions     []string `toml:"extensions"`
}

type REPLConfig struct {
	Prompt string `toml:"prompt"`
	Mode   string `toml:"mode"` // tokens | ast
}

type OutputConfig struct {
	Color string `toml:"color"` // auto | on | off
}

// Manifest: найденный и разобранный monkey.toml.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Defaults returns the configuration used when no monkey.toml is present.
func Defaults() Config {
	return Config{
		Parse: ParseConfig{
			MaxDiagnostics: 100,
			Extensions:     []string{".mk", ".monkey"},
		},
		REPL: REPLConfig{
			Prompt: ">>",
			Mode:   "tokens",
		},
		Output: OutputConfig{
			Color: "auto",
		},
	}
}

// Load finds monkey.toml starting at startDir. Absent file yields (nil, false, nil).
func Load(startDir string) (*Manifest, bool, error) {
	path, ok, err := FindConfig(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := LoadFile(path)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
	}, true, nil
}

// LoadFile decodes a config file and fills unset keys from Defaults.
func LoadFile(path string) (Config, error) {
	cfg := Defaults()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks enumerated values and normalises extensions to ".ext".
func (c *Config) Validate() error {
	if c.Parse.MaxDiagnostics < 0 {
		return fmt.Errorf("[parse].max_diagnostics must be >= 0, got %d", c.Parse.MaxDiagnostics)
	}
	for i, ext := range c.Parse.Extensions {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			return fmt.Errorf("[parse].extensions[%d] is empty", i)
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.Parse.Extensions[i] = ext
	}
	switch c.REPL.Mode {
	case "tokens", "ast":
	default:
		return fmt.Errorf("[repl].mode must be tokens or ast, got %q", c.REPL.Mode)
	}
	switch c.Output.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("[output].color must be auto, on or off, got %q", c.Output.Color)
	}
	return nil
}
