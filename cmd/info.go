package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"osprofile/internal/envinfo"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the detected platform profile",
	Args:  cobra.NoArgs,
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	p, _, err := currentProfile()
	if err != nil {
		return err
	}

	fmt.Fprint(ioOut, envinfo.Gather(p).Format())
	return nil
}
