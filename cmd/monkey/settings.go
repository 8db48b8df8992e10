package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"monkey/internal/project"
)

// cliSettings: итоговые настройки: monkey.toml, поверх него флаги.
type cliSettings struct {
	cfg            project.Config
	configPath     string
	colorMode      string
	diagFormat     string
	quiet          bool
	timings        bool
	maxDiagnostics int
}

var settings = &cliSettings{cfg: project.Defaults(), colorMode: "auto", diagFormat: "pretty"}

func loadSettings(cmd *cobra.Command) (*cliSettings, error) {
	flags := cmd.Root().PersistentFlags()

	s := &cliSettings{cfg: project.Defaults()}
	configPath, err := flags.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	if configPath != "" {
		cfg, loadErr := project.LoadFile(configPath)
		if loadErr != nil {
			return nil, loadErr
		}
		s.cfg, s.configPath = cfg, configPath
	} else {
		manifest, ok, loadErr := project.Load(".")
		if loadErr != nil {
			return nil, loadErr
		}
		if ok {
			s.cfg, s.configPath = manifest.Config, manifest.Path
		}
	}

	s.colorMode = s.cfg.Output.Color
	if flags.Changed("color") {
		if s.colorMode, err = flags.GetString("color"); err != nil {
			return nil, fmt.Errorf("failed to get color flag: %w", err)
		}
	}
	switch s.colorMode {
	case "auto", "on", "off":
	default:
		return nil, fmt.Errorf("invalid --color value %q (expected auto|on|off)", s.colorMode)
	}

	s.maxDiagnostics = s.cfg.Parse.MaxDiagnostics
	if flags.Changed("max-diagnostics") {
		if s.maxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
			return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
		}
	}
	if s.maxDiagnostics < 0 {
		return nil, fmt.Errorf("--max-diagnostics must be >= 0")
	}

	if s.quiet, err = flags.GetBool("quiet"); err != nil {
		return nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if s.timings, err = flags.GetBool("timings"); err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if s.diagFormat, err = flags.GetString("diag-format"); err != nil {
		return nil, fmt.Errorf("failed to get diag-format flag: %w", err)
	}
	s.diagFormat = strings.ToLower(s.diagFormat)
	switch s.diagFormat {
	case "pretty", "short", "json":
	default:
		return nil, fmt.Errorf("invalid --diag-format value %q (expected pretty|short|json)", s.diagFormat)
	}

	// fatih/color глобален: версия и промпт REPL берут решение отсюда
	color.NoColor = !s.useColor(os.Stdout)
	return s, nil
}

// useColor решает, красить ли вывод в f.
func (s *cliSettings) useColor(f *os.File) bool {
	switch s.colorMode {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(f)
	}
}
