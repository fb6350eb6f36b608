package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/naka-gawa/portfolio/internal/domain"
	"github.com/naka-gawa/portfolio/internal/gateway"
	"github.com/naka-gawa/portfolio/internal/usecase"
	"github.com/naka-gawa/portfolio/internal/widget"
)

var githubCmd = &cobra.Command{
	Use:   "github",
	Short: "Loads the GitHub widget once and prints its settled state as JSON",
	Long:  `Fetches profile, recently updated repositories and public events for the configured handle, exactly as the page widget does, and prints the resulting state in JSON format.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(cmd)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logger.Sync() //nolint:errcheck

		cfg, c, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		timeout, _ := cmd.Flags().GetDuration("timeout")

		// Inject dependencies and run the widget once.
		githubGateway, err := gateway.NewGitHubGateway(nil, cfg.GitHubAPIURL, logger)
		if err != nil {
			return fmt.Errorf("failed to create GitHub gateway: %w", err)
		}
		loader := usecase.NewLoader(githubGateway, nil, logger)

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		w := widget.New(loader, c.GitHub.Handle, logger)
		w.Mount(ctx)
		state := w.Wait(ctx)
		w.Unmount()

		jsonData, err := domain.MarshalState(state)
		if err != nil {
			return fmt.Errorf("failed to marshal state to JSON: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))

		switch st := state.(type) {
		case domain.Failed:
			return fmt.Errorf("GitHub widget failed: %s", st.Message)
		case domain.Loading:
			return fmt.Errorf("GitHub widget did not settle within %s", timeout)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(githubCmd)
	githubCmd.Flags().Duration("timeout", 30*time.Second, "Upper bound for the three requests")
}
