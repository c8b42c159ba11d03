// Copyright AfriWiki contributors, 2026. All rights reserved.

package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/afriwiki/afriwiki/internal/autolink"
	"github.com/afriwiki/afriwiki/internal/catalog"
	"github.com/afriwiki/afriwiki/internal/render"
)

var renderCmd = &cobra.Command{
	Use:   "render [files...]",
	Short: "Render markdown bodies to sanitized, auto-linked HTML",
	Long: `Render converts markdown to HTML, sanitizes it, links the first
mention of each --author, then links catalog entities. With --html the
input is treated as an HTML fragment instead of markdown.`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringArray("author", nil, "referenced person as slug=Display Name (repeatable)")
	renderCmd.Flags().Bool("html", false, "input is HTML, not markdown")
	renderCmd.Flags().Bool("static", false, "use static entities only, without the profile store")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	rawRefs, _ := cmd.Flags().GetStringArray("author")
	asHTML, _ := cmd.Flags().GetBool("html")
	staticOnly, _ := cmd.Flags().GetBool("static")
	if len(args) == 0 {
		args = []string{"-"}
	}

	refs := make([]autolink.NameRef, 0, len(rawRefs))
	for _, s := range rawRefs {
		ref, err := autolink.ParseNameRef(s)
		if err != nil {
			return err
		}
		refs = append(refs, ref)
	}

	builder, release, err := newBuilder(staticOnly)
	if err != nil {
		return err
	}
	defer release()

	cache := catalog.NewCache(builder, cfg.Catalog.CacheTTL)
	r := render.New(cache, cfg.Catalog, cfg.Render, logger)

	ctx := context.Background()
	return transformFiles(args, false, cmd.OutOrStdout(), func(in string) (string, error) {
		if asHTML {
			return r.HTML(ctx, in)
		}
		return r.Markdown(ctx, in, refs)
	})
}
