package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "petadmin",
		Short: "Development tool for the superhero pets API",
		Long: `petadmin seeds the database and drives a demo session against a
running server.

ENVIRONMENT:
  DATABASE_URL  used by seed (read from .env when present)
  API_URL       default for demo --api-url`,
		SilenceUsage: true,
	}

	root.AddCommand(newSeedCmd(), newDemoCmd())
	return root
}
