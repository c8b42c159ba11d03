// Copyright AfriWiki contributors, 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/afriwiki/afriwiki/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the linkable entity catalog",
	Long: `Catalog builds the ordered entity list used by link and render: published
profile names (full and last name) followed by countries, demonyms, sectors
and glossary terms, longest name first.`,
}

// --- list subcommand ---

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the catalog as a table",
	RunE: func(cmd *cobra.Command, args []string) error {
		entities, err := buildCatalog(cmd)
		if err != nil {
			return err
		}
		category, _ := cmd.Flags().GetString("category")
		return formatCatalog(cmd.OutOrStdout(), filterCategory(entities, category))
	},
}

func formatCatalog(w io.Writer, entities []catalog.LinkableEntity) error {
	if len(entities) == 0 {
		fmt.Fprintln(w, "No entities.")
		return nil
	}
	fmt.Fprintf(w, "%-40s  %-14s  %s\n", "Name", "Category", "Target")
	fmt.Fprintln(w, strings.Repeat("-", 80))
	for _, e := range entities {
		fmt.Fprintf(w, "%-40s  %-14s  %s\n", e.Name, e.Category, e.TargetPath)
	}
	fmt.Fprintf(w, "\n%d entities\n", len(entities))
	return nil
}

// --- export subcommand ---

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the catalog as YAML or JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")
		category, _ := cmd.Flags().GetString("category")

		entities, err := buildCatalog(cmd)
		if err != nil {
			return err
		}
		entities = filterCategory(entities, category)

		if output != "" {
			return writeCatalogFile(output, format, entities)
		}
		return exportCatalog(cmd.OutOrStdout(), format, entities)
	},
}

func exportCatalog(w io.Writer, format string, entities []catalog.LinkableEntity) error {
	switch format {
	case "yaml", "":
		return catalog.WriteYAML(w, entities)
	case "json":
		return catalog.WriteJSON(w, entities)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
}

// writeCatalogFile exports to path. A failed close is reported.
func writeCatalogFile(path, format string, entities []catalog.LinkableEntity) error {
	if format != "yaml" && format != "json" && format != "" {
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := exportCatalog(f, format, entities); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

// --- shared helpers ---

func buildCatalog(cmd *cobra.Command) ([]catalog.LinkableEntity, error) {
	staticOnly, _ := cmd.Flags().GetBool("static")
	builder, release, err := newBuilder(staticOnly)
	if err != nil {
		return nil, err
	}
	defer release()
	return builder.Build(context.Background()), nil
}

func filterCategory(entities []catalog.LinkableEntity, category string) []catalog.LinkableEntity {
	if category == "" {
		return entities
	}
	var out []catalog.LinkableEntity
	for _, e := range entities {
		if string(e.Category) == category {
			out = append(out, e)
		}
	}
	return out
}

func init() {
	catalogCmd.PersistentFlags().Bool("static", false, "static entities only, without the profile store")
	catalogCmd.PersistentFlags().String("category", "", "filter by category: person, place, sector, glossary-term")

	catalogExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	catalogExportCmd.Flags().StringP("output", "o", "", "write to file instead of stdout")

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogExportCmd)

	rootCmd.AddCommand(catalogCmd)
}
