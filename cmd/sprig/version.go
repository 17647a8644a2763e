package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/sprig"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of sprig",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "sprig version %s\n", strings.TrimSpace(sprig.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
