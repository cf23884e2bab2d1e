package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/AlostXD/police-lumos-rp/internal/config"
	"github.com/AlostXD/police-lumos-rp/internal/database"
	"github.com/AlostXD/police-lumos-rp/internal/logging"
	"github.com/AlostXD/police-lumos-rp/internal/services"
)

var (
	crimesPath string
	finesPath  string
	reportPath string
	watch      bool
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Reconcile the penal code datasets and upsert them into the crimes table",
	Long: `Seed reads the crimes dataset and the fines dataset, merges records that
share an article, and upserts one row per article.

Running it twice against the same files leaves the table unchanged.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runSeedCmd,
}

func init() {
	rootCmd.Flags().StringVar(&crimesPath, "crimes", "utils/crimes.json", "crimes dataset (json or yaml)")
	rootCmd.Flags().StringVar(&finesPath, "fines", "utils/multas.json", "fines dataset (json or yaml)")
	rootCmd.Flags().StringVar(&reportPath, "report", "", "write a markdown run report to this path")
	rootCmd.Flags().BoolVar(&watch, "watch", false, "re-run whenever a dataset file changes")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Seed failed:", err)
		os.Exit(1)
	}
}

func runSeedCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	db, err := database.Connect(cfg)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer func() { _ = sqlDB.Close() }()
	}
	if err := database.Migrate(db); err != nil {
		return err
	}

	s := &seeder{
		svc:        services.NewReconcileService(db, logger),
		logger:     logger,
		out:        cmd.OutOrStdout(),
		crimesPath: crimesPath,
		finesPath:  finesPath,
		reportPath: reportPath,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !watch {
		return s.run(ctx)
	}
	return s.watch(ctx)
}
