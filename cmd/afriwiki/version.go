// Copyright AfriWiki contributors, 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of afriwiki",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "afriwiki %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
