package main

import (
	"fmt"
	"os"

	"github.com/dom/superhero-pets/internal/config"
	"github.com/dom/superhero-pets/internal/repository/postgres"
	"github.com/dom/superhero-pets/internal/service"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	var clean bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert the starter heroes, pets and items",
		Long: `Runs every seed against DATABASE_URL. With --clean the heroes, pets,
items and id counters are truncated first. Users are always kept.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("read .env: %w", err)
			}
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			db, err := postgres.NewConnection(cfg.DatabaseURL, cfg.DBLogLevel)
			if err != nil {
				return fmt.Errorf("connect: %w", err)
			}

			if clean {
				fmt.Println("Cleaning heroes, pets, items and counters...")
				if err := postgres.ResetCatalog(db); err != nil {
					return err
				}
			}

			services := service.NewServices(postgres.NewRepositories(db), cfg, nil)
			ctx := cmd.Context()

			seeds := []struct {
				name string
				run  func() (*service.SeedResult, error)
			}{
				{"heroes", func() (*service.SeedResult, error) { return services.Hero.Seed(ctx) }},
				{"pets", func() (*service.SeedResult, error) { return services.Pet.Seed(ctx) }},
				{"items", func() (*service.SeedResult, error) { return services.Item.Seed(ctx) }},
			}
			for _, s := range seeds {
				result, err := s.run()
				if err != nil {
					return fmt.Errorf("seed %s: %w", s.name, err)
				}
				fmt.Printf("  %-7s inserted %2d, total %d\n", s.name, result.Inserted, result.Total)
			}

			fmt.Println("Done.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&clean, "clean", false, "truncate the catalog tables before seeding")
	return cmd
}
