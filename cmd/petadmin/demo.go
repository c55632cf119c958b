package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

func newDemoCmd() *cobra.Command {
	apiURL := "http://localhost:3001"
	if envURL := os.Getenv("API_URL"); envURL != "" {
		apiURL = envURL
	}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Register a demo user and look after one pet",
		Long: `Registers a throwaway user, logs in, adopts the first available pet,
then feeds and walks it. The pet stays adopted so it shows up in the
ranking.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := NewAPIClient(apiURL)

			email := fmt.Sprintf("demo_%d@example.com", time.Now().UnixNano()%100000)
			fmt.Printf("Registering %s...\n", email)
			if err := client.Register("Demo Trainer", email, "demopassword123"); err != nil {
				return err
			}

			token, err := client.Login(email, "demopassword123")
			if err != nil {
				return err
			}

			pets, err := client.AvailablePets(token)
			if err != nil {
				return err
			}
			if len(pets) == 0 {
				return fmt.Errorf("no pets available, run `petadmin seed` first")
			}

			pet, err := client.Adopt(token, pets[0].ID)
			if err != nil {
				return err
			}
			fmt.Printf("Adopted #%d %s (happiness %d, life %d)\n", pet.ID, pet.Name, pet.Happiness, pet.Life)

			for _, action := range []string{"alimentar", "pasear"} {
				result, err := client.Act(token, pet.ID, action)
				if err != nil {
					return err
				}
				fmt.Printf("  %-9s applied=%-5t %s\n", action, result.Applied, result.Message)
			}

			fmt.Println("Done.")
			return nil
		},
	}

	cmd.Flags().StringVar(&apiURL, "api-url", apiURL, "base URL of the running server")
	return cmd
}
