// Copyright AfriWiki contributors, 2026. All rights reserved.

// Package main is the entry point for the afriwiki CLI: entity auto-linking,
// sanitizing and rendering of encyclopedia content, and profile management.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/afriwiki/afriwiki/internal/logging"
	"github.com/afriwiki/afriwiki/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	// logger is built in PersistentPreRunE.
	logger = zap.NewNop()

	// cfg is loaded once in PersistentPreRunE and read by every subcommand.
	cfg = types.DefaultConfig()
)

// rootCmd is the base command for the afriwiki CLI.
var rootCmd = &cobra.Command{
	Use:   "afriwiki",
	Short: "Content tooling for the AfriWiki encyclopedia of African entrepreneurs",
	Long: `afriwiki links mentions of entrepreneurs, countries, sectors and glossary
terms in encyclopedia content, sanitizes user-submitted HTML, renders
markdown profile bodies, and manages the profile database the entity
catalog is built from.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		l, err := logging.New(verbose)
		if err != nil {
			return err
		}
		logger = l

		loaded, err := loadConfig()
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./afriwiki.yaml or ~/.config/afriwiki/afriwiki.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().String("data-dir", "", "directory holding afriwiki.db (default: data)")
	_ = viper.BindPFlag("store.data_dir", rootCmd.PersistentFlags().Lookup("data-dir"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("afriwiki")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "afriwiki"))
		}
	}

	def := types.DefaultConfig()
	viper.SetDefault("catalog.profile_prefix", def.Catalog.ProfilePrefix)
	viper.SetDefault("catalog.cache_ttl", def.Catalog.CacheTTL)
	viper.SetDefault("catalog.fetch_timeout", def.Catalog.FetchTimeout)
	viper.SetDefault("catalog.reference_file", "")
	viper.SetDefault("store.data_dir", def.Store.DataDir)
	viper.SetDefault("access.admin_emails", []string{})
	viper.SetDefault("render.link_catalog", def.Render.LinkCatalog)

	viper.SetEnvPrefix("AFRIWIKI")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig decodes the merged file, environment and flag settings.
func loadConfig() (types.Config, error) {
	c := types.DefaultConfig()
	if err := viper.Unmarshal(&c); err != nil {
		return types.Config{}, fmt.Errorf("decoding configuration: %w", err)
	}
	c.Catalog = c.Catalog.WithDefaults()
	c.Store = c.Store.WithDefaults()
	return c, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
