package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "1.4.2"
)

var rootCmd = &cobra.Command{
	Use:   "bomberseed",
	Short: "Synthetic data population for the Bomber organization database",
	Long: `
bomberseed generates an internally-consistent random dataset for the Bomber
organization schema: teams, rosters, coaches, parent-linked players,
tournaments with attendance, chats, and notifications.

Age-group rules are honored throughout: U8-U12 players are parent-managed,
U16+ players hold their own accounts, and U14 branches both ways. The whole
run executes inside one transaction, so a failure leaves nothing behind.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./bomberseed.config.json)")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("bomberseed.config")
	}

	viper.AutomaticEnv()

	viper.ReadInConfig()
}
