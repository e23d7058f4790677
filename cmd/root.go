package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"osprofile/internal/config"
	"osprofile/internal/platform"
)

var verboseFlag bool

// Package-level function variables for testability.
// Tests override these to avoid touching the real config file or stdout.
var (
	ioOut      io.Writer = os.Stdout
	loadConfig           = config.Load
)

var rootCmd = &cobra.Command{
	Use:   "osprofile",
	Short: "Inspect OS naming conventions and locate executables",
	Long: `osprofile classifies the host operating system and derives its
platform-specific conventions: executable and script names, shared and
static library names, native binary prefixes, and the executable search
path.

Examples:
  osprofile info
  osprofile name --kind shared sqlite3
  osprofile which gcc`,
	DisableAutoGenTag: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verboseFlag {
			log.SetLevel(log.DebugLevel)
		}
	}
}

func Execute() error {
	return rootCmd.Execute()
}

// currentProfile builds the active platform profile, applying config
// overrides when a config file exists. Missing config is not an error:
// everything is autodetected.
func currentProfile() (platform.Profile, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		if !errors.Is(err, config.ErrNotFound) {
			return platform.Profile{}, nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = config.Default()
	}

	detected := platform.Current()
	osName := cfg.OS
	if osName == "" {
		osName = detected.OSName()
	}
	arch := cfg.Arch
	if arch == "" {
		arch = detected.Arch()
	}

	p := platform.New(osName, arch)
	log.Debug("profile selected", "os", osName, "arch", arch, "family", p.FamilyName())
	return p, cfg, nil
}
