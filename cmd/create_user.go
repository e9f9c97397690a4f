package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Ember-Development/bomber-app-sub001/config"
	"github.com/Ember-Development/bomber-app-sub001/internal/models"
	"github.com/Ember-Development/bomber-app-sub001/internal/seedgen"
	"github.com/Ember-Development/bomber-app-sub001/internal/store"
)

var createUserRole string

var createUserCmd = &cobra.Command{
	Use:   "create-user",
	Short: "Seed a single admin or fan account outside the bulk graph",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}
		if err := config.DB.AutoMigrate(models.All()...); err != nil {
			return fmt.Errorf("auto-migrate failed: %w", err)
		}

		driver := seedgen.NewDriver(store.NewGormStore(config.DB))

		var user *models.User
		var err error
		switch createUserRole {
		case "admin":
			user, err = driver.CreateAdmin(cmd.Context())
		case "fan":
			user, err = driver.CreateFan(cmd.Context())
		default:
			return fmt.Errorf("unknown role %q: expected admin or fan", createUserRole)
		}
		if err != nil {
			return err
		}

		color.Green("✅ Created %s account %s (%s %s)", createUserRole, user.Email, user.FirstName, user.LastName)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createUserCmd)
	createUserCmd.Flags().StringVar(&createUserRole, "role", "admin", "Account role: admin or fan")
}
