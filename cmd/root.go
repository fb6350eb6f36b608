// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/naka-gawa/portfolio/internal/config"
	"github.com/naka-gawa/portfolio/internal/content"
	"github.com/naka-gawa/portfolio/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Serves a single-page personal portfolio.",
	Long: `portfolio renders a personal portfolio page (hero, about, projects, contact)
with an optional widget showing public GitHub profile, repository and activity data.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Add a persistent flag for verbose output, available to all commands.
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().String("content", "", "YAML file overriding the page content (env CONTENT_FILE)")
	rootCmd.PersistentFlags().StringP("user", "u", "", "GitHub handle shown by the widget (env GITHUB_USERNAME)")
	rootCmd.PersistentFlags().String("github-api-url", "", "GitHub REST API base URL (env GITHUB_API_URL)")
	rootCmd.PersistentFlags().String("timezone", "", "Time zone used for dates (env TIMEZONE)")
}

func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	return logger.New(verbose)
}

// loadSettings reads the environment, applies flags set on the command line and
// resolves the page content. The handle from config wins over the content file.
func loadSettings(cmd *cobra.Command) (*config.Config, *content.Content, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("content") {
		cfg.ContentFile, _ = flags.GetString("content")
	}
	if flags.Changed("user") {
		cfg.GitHubHandle, _ = flags.GetString("user")
	}
	if flags.Changed("github-api-url") {
		cfg.GitHubAPIURL, _ = flags.GetString("github-api-url")
	}
	if flags.Changed("timezone") {
		cfg.Timezone, _ = flags.GetString("timezone")
	}
	if flags.Lookup("port") != nil && flags.Changed("port") {
		cfg.Port, _ = flags.GetString("port")
	}
	if flags.Lookup("github-widget") != nil && flags.Changed("github-widget") {
		cfg.WidgetEnabled, _ = flags.GetBool("github-widget")
	}
	if flags.Lookup("trust-proxy") != nil && flags.Changed("trust-proxy") {
		cfg.TrustProxy, _ = flags.GetBool("trust-proxy")
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	c, err := content.Load(cfg.ContentFile)
	if err != nil {
		return nil, nil, err
	}
	if cfg.GitHubHandle != "" {
		c.GitHub.Handle = cfg.GitHubHandle
	}
	return cfg, c, nil
}
