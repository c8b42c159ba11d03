// Copyright AfriWiki contributors, 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/afriwiki/afriwiki/internal/access"
	"github.com/afriwiki/afriwiki/internal/store"
	"github.com/afriwiki/afriwiki/pkg/types"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Manage the entrepreneur profile database",
	Long: `Profiles manages the SQLite database of entrepreneur profiles. Published
profiles feed the entity catalog: their full and last names are linked to
their pages.`,
}

// --- import subcommand ---

var profilesImportCmd = &cobra.Command{
	Use:   "import <file.yaml>",
	Short: "Import or update profiles from a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.Open(cfg.Store)
		if err != nil {
			return err
		}
		defer s.Close()

		summary, err := s.ImportFile(context.Background(), args[0], cmd.OutOrStdout())
		if err != nil {
			return err
		}
		if summary.Failed > 0 {
			return fmt.Errorf("%d profile(s) failed import", summary.Failed)
		}
		return nil
	},
}

// --- publish / unpublish subcommands ---

var profilesPublishCmd = &cobra.Command{
	Use:   "publish <slug>",
	Short: "Publish a profile (admin only)",
	Args:  cobra.ExactArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return setPublished(cmd, args[0], true) },
}

var profilesUnpublishCmd = &cobra.Command{
	Use:   "unpublish <slug>",
	Short: "Unpublish a profile (admin only)",
	Args:  cobra.ExactArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return setPublished(cmd, args[0], false) },
}

func setPublished(cmd *cobra.Command, slug string, published bool) error {
	actor, _ := cmd.Flags().GetString("actor")
	if actor == "" {
		actor = viper.GetString("actor")
	}
	if err := access.NewPolicy(cfg.Access).Require(actor); err != nil {
		return err
	}

	s, err := store.Open(cfg.Store)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.SetPublished(context.Background(), slug, published); err != nil {
		return err
	}
	state := "unpublished"
	if published {
		state = "published"
	}
	logger.Info("profile visibility changed",
		zap.String("slug", slug), zap.String("state", state), zap.String("actor", actor))
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", state, slug)
	return nil
}

// --- search subcommand ---

var profilesSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Full-text search over names, headlines and bios",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		jsonOutput, _ := cmd.Flags().GetBool("json")

		s, err := store.Open(cfg.Store)
		if err != nil {
			return err
		}
		defer s.Close()

		results, err := s.Search(context.Background(), strings.Join(args, " "), limit)
		if err != nil {
			return err
		}
		return formatProfiles(cmd.OutOrStdout(), results, jsonOutput)
	},
}

func formatProfiles(w io.Writer, profiles []types.Profile, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(profiles)
	}
	if len(profiles) == 0 {
		fmt.Fprintln(w, "No results found.")
		return nil
	}

	fmt.Fprintf(w, "%-24s  %-30s  %-9s  %s\n", "Slug", "Name", "Published", "Headline")
	fmt.Fprintln(w, strings.Repeat("-", 90))
	for _, p := range profiles {
		headline := p.Headline
		if len([]rune(headline)) > 40 {
			headline = string([]rune(headline)[:37]) + "..."
		}
		fmt.Fprintf(w, "%-24s  %-30s  %-9t  %s\n", p.Slug, p.FullName(), p.Published, headline)
	}
	fmt.Fprintf(w, "\n%d results\n", len(profiles))
	return nil
}

// --- export subcommand ---

var profilesExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all profiles as YAML (re-importable) or JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")

		s, err := store.Open(cfg.Store)
		if err != nil {
			return err
		}
		defer s.Close()

		switch format {
		case "yaml", "":
			return s.ExportYAML(context.Background(), cmd.OutOrStdout())
		case "json":
			return s.ExportJSON(context.Background(), cmd.OutOrStdout())
		default:
			return fmt.Errorf("unsupported format %q: use yaml or json", format)
		}
	},
}

func init() {
	for _, c := range []*cobra.Command{profilesPublishCmd, profilesUnpublishCmd} {
		c.Flags().String("actor", "", "email of the administrator performing the change (or AFRIWIKI_ACTOR)")
	}

	profilesSearchCmd.Flags().Int("limit", 20, "maximum number of results")
	profilesSearchCmd.Flags().Bool("json", false, "output results as JSON")

	profilesExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	profilesCmd.AddCommand(profilesImportCmd)
	profilesCmd.AddCommand(profilesPublishCmd)
	profilesCmd.AddCommand(profilesUnpublishCmd)
	profilesCmd.AddCommand(profilesSearchCmd)
	profilesCmd.AddCommand(profilesExportCmd)

	rootCmd.AddCommand(profilesCmd)
}
