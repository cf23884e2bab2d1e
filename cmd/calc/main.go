package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/AlostXD/police-lumos-rp/internal/client"
	"github.com/AlostXD/police-lumos-rp/internal/config"
	"github.com/AlostXD/police-lumos-rp/internal/database"
	"github.com/AlostXD/police-lumos-rp/internal/models"
	"github.com/AlostXD/police-lumos-rp/internal/services"
	"github.com/AlostXD/police-lumos-rp/internal/tui"
)

var (
	apiURL  string
	localDB bool
)

var rootCmd = &cobra.Command{
	Use:   "calc",
	Short: "Interactive sentence calculator",
	Long: `Calc opens the sentence calculator in the terminal. Crimes are fetched
from the API (--api) or read straight from the configured database (--db).

Nothing typed into the calculator is saved.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := config.Parse(config.Read())

		load, closeFn, err := newLoader(cmd, cfg)
		if err != nil {
			return err
		}
		defer func() { _ = closeFn() }()

		// quitting cancels a fetch still in flight
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		model := tui.New(load).WithContext(ctx)
		p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
		_, err = p.Run()
		return err
	},
}

func init() {
	rootCmd.Flags().StringVar(&apiURL, "api", "", "API base URL (default: API_URL)")
	rootCmd.Flags().BoolVar(&localDB, "db", false, "read crimes from the database instead of the API")
}

// newLoader picks the crime source. The returned func releases it.
func newLoader(cmd *cobra.Command, cfg *config.Config) (tui.Loader, func() error, error) {
	if localDB {
		if err := cfg.Validate(); err != nil {
			return nil, nil, err
		}
		db, err := database.Connect(cfg)
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, err
		}
		return services.NewCrimeService(db).ListCrimes, sqlDB.Close, nil
	}

	base := cfg.APIURL
	if cmd.Flags().Changed("api") {
		base = apiURL
	}
	c := client.New(base)
	return func(ctx context.Context) ([]models.Crime, error) {
		return c.ListCrimes(ctx)
	}, func() error { return nil }, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
