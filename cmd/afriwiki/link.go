// Copyright AfriWiki contributors, 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/afriwiki/afriwiki/internal/autolink"
)

var linkCmd = &cobra.Command{
	Use:   "link [files...]",
	Short: "Link the first mention of each known entity in HTML or text",
	Long: `Link builds the entity catalog (published profiles plus countries,
sectors and glossary terms) and wraps the first mention of each entity in
an anchor to its page. Existing links, tags and attributes are left alone.
Reads stdin when no files are given.`,
	RunE: runLink,
}

func init() {
	linkCmd.Flags().Bool("in-place", false, "rewrite files in place instead of printing")
	linkCmd.Flags().Bool("static", false, "use static entities only, without the profile store")

	rootCmd.AddCommand(linkCmd)
}

func runLink(cmd *cobra.Command, args []string) error {
	inPlace, _ := cmd.Flags().GetBool("in-place")
	staticOnly, _ := cmd.Flags().GetBool("static")
	if inPlace && len(args) == 0 {
		return fmt.Errorf("--in-place requires file arguments")
	}
	if len(args) == 0 {
		args = []string{"-"}
	}

	builder, release, err := newBuilder(staticOnly)
	if err != nil {
		return err
	}
	defer release()

	linker := autolink.NewLinker(builder.Build(context.Background()))
	return transformFiles(args, inPlace, cmd.OutOrStdout(), linker.Rewrite)
}
