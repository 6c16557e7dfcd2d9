package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"clinic_availability_go/config"
	"clinic_availability_go/db"
	"clinic_availability_go/logger"
	"clinic_availability_go/models"
	"clinic_availability_go/services"
	"clinic_availability_go/services/availability"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "availability",
		Short:        "Practitioner availability tools",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(resolveCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// open loads the configuration and connects to the database with the
// schema migrated
func open() (*config.Config, zerolog.Logger, error) {
	cfg := config.Load()
	log := logger.New(cfg.Environment, cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		return nil, log, err
	}

	err := db.Initialize(db.Options{
		DBPath:         cfg.DBPath,
		TursoURL:       cfg.TursoDatabaseURL,
		TursoAuthToken: cfg.TursoAuthToken,
		Environment:    cfg.Environment,
	})
	if err != nil {
		return nil, log, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := db.AutoMigrate(models.All()...); err != nil {
		db.Close()
		return nil, log, fmt.Errorf("failed to run migrations: %w", err)
	}
	return cfg, log, nil
}

func newResolver(cfg *config.Config, log zerolog.Logger) (*availability.Resolver, error) {
	opts := services.OptionsFromConfig(cfg)
	// One-shot commands gain nothing from the snapshot cache
	opts.CacheEnabled = false
	resolver, _, err := services.NewAvailabilityResolver(db.DB, opts, log)
	return resolver, err
}

func resolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <practitioner-id> <YYYY-MM-DD>",
		Short: "Print the available slots of a practitioner on a date",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := open()
			if err != nil {
				return err
			}
			defer db.Close()

			resolver, err := newResolver(cfg, log)
			if err != nil {
				return err
			}

			result, err := resolver.Resolve(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}
}

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <practitioner-id>",
		Short: "Write an xlsx workbook of a practitioner's availability",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fromStr, _ := cmd.Flags().GetString("from")
			days, _ := cmd.Flags().GetInt("days")
			out, _ := cmd.Flags().GetString("out")

			from := time.Now().UTC()
			if fromStr != "" {
				parsed, err := availability.ParseDate(fromStr)
				if err != nil {
					return err
				}
				from = parsed
			}

			cfg, log, err := open()
			if err != nil {
				return err
			}
			defer db.Close()

			resolver, err := newResolver(cfg, log)
			if err != nil {
				return err
			}

			buf, err := services.ExportAvailabilityWorkbook(cmd.Context(), resolver, args[0], from, days)
			if err != nil {
				return err
			}

			if out == "" {
				out = fmt.Sprintf("availability_%s_%s.xlsx", args[0], from.Format(availability.DateLayout))
			}
			if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d day(s) to %s\n", days, out)
			return nil
		},
	}
	cmd.Flags().String("from", "", "First date (YYYY-MM-DD, defaults to today)")
	cmd.Flags().Int("days", 7, "Number of dates to export")
	cmd.Flags().String("out", "", "Output file (defaults to availability_<id>_<from>.xlsx)")
	return cmd
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the sample practitioners and leave types",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, err := open()
			if err != nil {
				return err
			}
			defer db.Close()

			return services.SeedSampleData(db.DB, log)
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, err := open()
			if err != nil {
				return err
			}
			defer db.Close()

			fmt.Fprintf(cmd.OutOrStdout(), "Migrated %d table(s).\n", len(models.All()))
			return nil
		},
	}
}
