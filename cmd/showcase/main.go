package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/everstacklabs/showcase/internal/cache"
	"github.com/everstacklabs/showcase/internal/catalog"
	"github.com/everstacklabs/showcase/internal/config"
	"github.com/everstacklabs/showcase/internal/display"
	"github.com/everstacklabs/showcase/internal/export"
	"github.com/everstacklabs/showcase/internal/httpclient"
	"github.com/everstacklabs/showcase/internal/publish"
	"github.com/everstacklabs/showcase/internal/validate"
	"github.com/everstacklabs/showcase/internal/verify"
)

var cfgFile string

func main() {
	rootCmd := &cobra.Command{
		Use:   "showcase",
		Short: "Model catalog presentation toolkit",
		Long:  "Derives provider labels, option lists, and default models from the model catalog and publishes UI-ready exports.",
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config.yaml)")

	rootCmd.AddCommand(
		optionsCmd(),
		defaultsCmd(),
		validateCmd(),
		exportCmd(),
		verifyCmd(),
		publishCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func optionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "Print provider options (id and display label)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog()
			if err != nil {
				return err
			}

			options := display.ProviderOptions(cat.Entries())
			for _, opt := range options {
				fmt.Printf("%-24s %s\n", opt.ID, opt.Label)
			}
			fmt.Printf("\nTotal: %d providers\n", len(options))
			return nil
		},
	}
}

func defaultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Print the default model for each provider",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog()
			if err != nil {
				return err
			}

			entries := cat.Entries()
			for _, e := range entries {
				def := display.FirstModelForProvider(entries, e.Provider)
				if def == "" {
					def = "(none)"
				}
				fmt.Printf("%-24s %s\n", e.Provider, def)
			}
			return nil
		},
	}
}

func validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate catalog presentation metadata (CI check)",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalogPath, _ := cmd.Flags().GetString("catalog-path")
			if catalogPath == "" {
				cfg, err := loadConfig()
				if err != nil {
					return err
				}
				catalogPath = cfg.CatalogPath
			}

			cat, err := catalog.Load(catalogPath)
			if err != nil {
				return fmt.Errorf("loading catalog: %w", err)
			}

			result := validate.ValidateCatalog(cat)
			fmt.Println(validate.FormatResult(result))

			if result.HasErrors() {
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().String("catalog-path", "", "Path to model catalog (default: from config)")

	return cmd
}

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write providers.json and index.yaml to the output directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			outputDir, _ := cmd.Flags().GetString("output")
			if outputDir == "" {
				outputDir = cfg.OutputDir
			}

			cat, err := catalog.Load(cfg.CatalogPath)
			if err != nil {
				return fmt.Errorf("loading catalog: %w", err)
			}

			doc := export.Build(cat.Version, cat.Entries())
			files, err := doc.Write(outputDir)
			if err != nil {
				return err
			}

			for _, f := range files {
				slog.Info("wrote export", "file", f)
			}
			return nil
		},
	}

	cmd.Flags().String("output", "", "Output directory (default: from config)")

	return cmd
}

func verifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Compare the published catalog page against the local catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			pageURL, _ := cmd.Flags().GetString("page")
			if pageURL == "" {
				pageURL = cfg.PageURL
			}
			if pageURL == "" {
				return fmt.Errorf("--page is required (or set page_url in config)")
			}
			selector, _ := cmd.Flags().GetString("selector")
			if selector == "" {
				selector = cfg.PageSelector
			}

			cat, err := loadCatalog()
			if err != nil {
				return err
			}

			client := newHTTPClient(cfg)
			pageOptions, err := verify.FetchPageOptions(cmd.Context(), client, pageURL, selector)
			if err != nil {
				return err
			}

			drift := verify.Compare(pageURL, display.ProviderOptions(cat.Entries()), pageOptions)
			fmt.Println(verify.RenderSummary(drift))

			if drift.HasDrift() {
				os.Exit(verify.ExitDrift)
			}
			return nil
		},
	}

	cmd.Flags().String("page", "", "URL of the published catalog page")
	cmd.Flags().String("selector", "", "CSS selector for provider options (default: from config)")

	return cmd
}

func publishCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Export and open a PR against the UI assets repo",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
				cfg.DryRun = true
			}

			cat, err := catalog.Load(cfg.CatalogPath)
			if err != nil {
				return fmt.Errorf("loading catalog: %w", err)
			}

			doc := export.Build(cat.Version, cat.Entries())

			p := publish.New(cfg)
			result, err := p.Publish(cmd.Context(), doc)
			if err != nil {
				return err
			}

			if result.PRNumber > 0 {
				slog.Info("publish complete", "branch", result.Branch, "pr", result.PRNumber)
			} else {
				slog.Info("publish complete", "branch", result.Branch, "files", len(result.Files))
			}
			return nil
		},
	}

	cmd.Flags().Bool("dry-run", false, "Write exports without committing or opening a PR")

	return cmd
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func loadCatalog() (*catalog.Catalog, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	slog.Info("catalog loaded", "version", cat.Version, "providers", len(cat.Providers))
	return cat, nil
}

func newHTTPClient(cfg *config.Config) *httpclient.Client {
	opts := []httpclient.Option{
		httpclient.WithRateLimit(10), // 10 RPS default
	}
	if !cfg.NoCache {
		ttl, err := time.ParseDuration(cfg.CacheTTL)
		if err != nil {
			ttl = time.Hour
		}
		if fc, err := cache.New(cfg.CacheDir, ttl); err != nil {
			slog.Warn("failed to create cache, continuing without", "error", err)
		} else {
			opts = append(opts, httpclient.WithCache(fc))
		}
	} else {
		opts = append(opts, httpclient.WithNoCache())
	}
	return httpclient.New(opts...)
}
