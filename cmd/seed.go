package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Ember-Development/bomber-app-sub001/config"
	"github.com/Ember-Development/bomber-app-sub001/internal/models"
	"github.com/Ember-Development/bomber-app-sub001/internal/seedgen"
	"github.com/Ember-Development/bomber-app-sub001/internal/store"
)

var (
	seedSeed      int64
	seedTeams     int
	seedPlayers   int
	seedAgeGroups []string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the database with a synthetic dataset",
	Long: `Generate a full synthetic population in one transaction. Every count is
drawn uniformly from a [min,max] range; ranges come from the config file and
can be pinned with flags. Pass --seed for a reproducible structure.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := seedgen.DefaultConfig()
		if err := viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("failed to read population config: %w", err)
		}

		if cmd.Flags().Changed("seed") {
			cfg.Seed = &seedSeed
		}
		if cmd.Flags().Changed("teams") {
			cfg.Teams = seedgen.B(seedTeams, seedTeams)
		}
		if cmd.Flags().Changed("players") {
			cfg.PlayersPerTeam = seedgen.B(seedPlayers, seedPlayers)
		}
		if cmd.Flags().Changed("age-groups") {
			cfg.AgeGroups = make([]models.AgeGroup, 0, len(seedAgeGroups))
			for _, a := range seedAgeGroups {
				cfg.AgeGroups = append(cfg.AgeGroups, models.AgeGroup(a))
			}
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		if err := config.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}
		if err := config.DB.AutoMigrate(models.All()...); err != nil {
			return fmt.Errorf("auto-migrate failed: %w", err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		color.Cyan("🌱 Populating database...")

		driver := seedgen.NewDriver(store.NewGormStore(config.DB))
		sum, err := driver.Run(ctx, cfg)
		if err != nil {
			color.Red("❌ Population failed, transaction rolled back: %v", err)
			return err
		}

		color.Green("✅ Population committed")
		printSummary(sum)
		return nil
	},
}

func printSummary(s *seedgen.Summary) {
	rows := []struct {
		label string
		n     int
	}{
		{"teams", s.Teams},
		{"users", s.Users},
		{"addresses", s.Addresses},
		{"players", s.Players},
		{"  trusted", s.TrustedPlayers},
		{"parents", s.Parents},
		{"coaches", s.Coaches},
		{"regional coaches", s.RegionalCoaches},
		{"trophies", s.Trophies},
		{"tournaments", s.Tournaments},
		{"events", s.Events},
		{"attendance rows", s.Attendance},
		{"chats", s.Chats},
		{"chat members", s.ChatMembers},
		{"messages", s.Messages},
		{"notifications", s.Notifications},
		{"notification targets", s.UserNotifications},
	}
	for _, r := range rows {
		color.White("  %-22s %d", r.label, r.n)
	}
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().Int64Var(&seedSeed, "seed", 0, "Fix the random seed for reproducible structure")
	seedCmd.Flags().IntVar(&seedTeams, "teams", 0, "Pin the exact number of teams")
	seedCmd.Flags().IntVar(&seedPlayers, "players", 0, "Pin the exact number of players per team")
	seedCmd.Flags().StringSliceVar(&seedAgeGroups, "age-groups", nil, "Restrict divisions (e.g. U10,U14)")
}
