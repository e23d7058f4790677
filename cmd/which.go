package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"osprofile/internal/platform"
)

var whichAllFlag bool

var whichCmd = &cobra.Command{
	Use:   "which <name>",
	Short: "Locate an executable on the search path",
	Long: `Locate an executable by searching the configured extra paths followed
by the platform path variable. A name containing a path separator is
checked directly without consulting the search path.`,
	Args: cobra.ExactArgs(1),
	RunE: runWhich,
}

func init() {
	whichCmd.Flags().BoolVar(&whichAllFlag, "all", false, "print every match, not just the first")
	rootCmd.AddCommand(whichCmd)
}

func runWhich(cmd *cobra.Command, args []string) error {
	name := args[0]

	p, cfg, err := currentProfile()
	if err != nil {
		return err
	}

	dirs := append(cfg.ExtraPaths, p.SearchPath()...)
	log.Debug("searching", "name", name, "dirs", len(dirs))

	var matches []string
	if whichAllFlag {
		matches = p.FindAllInDirs(name, dirs)
	} else if found, ok := p.FindInDirs(name, dirs); ok {
		matches = []string{found}
	}

	if len(matches) == 0 {
		return fmt.Errorf("%s: not found", name)
	}

	for _, match := range matches {
		if !platform.IsExecutable(match) {
			log.Warn("found but not executable", "path", match)
		}
		fmt.Fprintln(ioOut, match)
	}
	return nil
}
