package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"osprofile/internal/config"
	"osprofile/internal/platform"
)

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Update a configuration value",
	Long: `Update a configuration value. Supported keys:
  os          force the OS name used for classification (empty: autodetect)
  arch        force the architecture string (empty: autodetect)
  extra_paths directories searched before the path variable, joined with
              the platform path-list separator (':' or ';')`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configSetCmd)
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	cfg, err := loadConfig()
	if err != nil {
		if !errors.Is(err, config.ErrNotFound) {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = config.Default()
	}

	switch key {
	case "os":
		cfg.OS = strings.TrimSpace(value)
	case "arch":
		cfg.Arch = strings.TrimSpace(value)
	case "extra_paths":
		cfg.ExtraPaths = splitPathList(value)
	default:
		return fmt.Errorf("unknown key %q (use os, arch, or extra_paths)", key)
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintf(ioOut, "Set %s = %s\n", key, value)
	return nil
}

// splitPathList splits a path list on the current platform's list
// separator, dropping empty entries. An empty value clears the list.
func splitPathList(value string) []string {
	sep := string(platform.Current().PathListSeparator())
	var dirs []string
	for _, dir := range strings.Split(value, sep) {
		if dir = strings.TrimSpace(dir); dir != "" {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}
