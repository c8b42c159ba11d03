// Copyright AfriWiki contributors, 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/afriwiki/afriwiki/internal/sanitize"
)

var sanitizeCmd = &cobra.Command{
	Use:   "sanitize [files...]",
	Short: "Strip scripts, event handlers and unsafe URLs from HTML",
	Long: `Sanitize applies the user-content policy to HTML: formatting survives,
anything executable is removed. With --strict every tag is removed and
escaped plain text is printed. Reads stdin when no files are given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		strict, _ := cmd.Flags().GetBool("strict")
		inPlace, _ := cmd.Flags().GetBool("in-place")
		if inPlace && len(args) == 0 {
			return fmt.Errorf("--in-place requires file arguments")
		}
		if len(args) == 0 {
			args = []string{"-"}
		}
		fn := sanitize.HTML
		if strict {
			fn = sanitize.Text
		}
		return transformFiles(args, inPlace, cmd.OutOrStdout(), func(s string) (string, error) {
			return fn(s), nil
		})
	},
}

func init() {
	sanitizeCmd.Flags().Bool("strict", false, "remove all tags and print plain text")
	sanitizeCmd.Flags().Bool("in-place", false, "rewrite files in place instead of printing")

	rootCmd.AddCommand(sanitizeCmd)
}
