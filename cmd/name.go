package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"osprofile/internal/platform"
)

var nameKindFlag string

var nameCmd = &cobra.Command{
	Use:   "name <base>...",
	Short: "Derive platform-specific file names",
	Long: `Derive the platform-specific file name for one or more base names.

The --kind flag selects the naming rule:
  exe     executable name (default), e.g. foo -> foo.exe on Windows
  script  script name, e.g. build -> build.bat on Windows
  shared  shared library name, e.g. foo -> libfoo.so on Linux
  static  static library name, e.g. foo -> libfoo.a on Linux`,
	Args: cobra.MinimumNArgs(1),
	RunE: runName,
}

func init() {
	nameCmd.Flags().StringVar(&nameKindFlag, "kind", "exe", "naming rule: exe, script, shared, or static")
	rootCmd.AddCommand(nameCmd)
}

func runName(cmd *cobra.Command, args []string) error {
	p, _, err := currentProfile()
	if err != nil {
		return err
	}

	transform, err := nameTransform(p, nameKindFlag)
	if err != nil {
		return err
	}

	for _, base := range args {
		fmt.Fprintln(ioOut, transform(base))
	}
	return nil
}

func nameTransform(p platform.Profile, kind string) (func(string) string, error) {
	switch kind {
	case "exe":
		return p.ExecutableName, nil
	case "script":
		return p.ScriptName, nil
	case "shared":
		return p.SharedLibraryName, nil
	case "static":
		return p.StaticLibraryName, nil
	}
	return nil, fmt.Errorf("unknown kind %q (use exe, script, shared, or static)", kind)
}
