package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "boomictl",
	Short: "boomictl is a command line tool for launching Boomi AtomSphere processes",
	Long: `boomictl is the command-line interface for the Boomi AtomSphere
integration platform API.

It validates that a named atom, environment, and process exist and are
correctly related before launching, so a run can never be fired against the
wrong target, and can optionally wait for the run to finish.

Common workflows:

  Launch a process and return as soon as it is queued:
    boomictl run "My Atom" "Production" "Nightly Sync"

  Launch and wait for completion, passing dynamic process properties:
    boomictl run "My Atom" "Production" "Nightly Sync" -w -d "EmailTo:ops@example.com;Retries:3"

  Check the status of a previously launched run:
    boomictl status <request-id>

  Validate a launch target without running anything:
    boomictl verify "My Atom" "Production" "Nightly Sync"

Configuration:
  Set the API endpoint and credentials via flags, environment variables, or
  a config file:
    BOOMI_URL         API base URL (default: https://api.boomi.com)
    BOOMI_PATH        API path prefix, e.g. /api/rest/v1/<account-id>
    BOOMI_USERNAME    API username
    BOOMI_PASSWORD    API password or token`,
}

func Execute() error {
	return rootCmd.Execute()
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".boomictl"
		viper.AddConfigPath(home)
		viper.SetConfigName(".boomictl")
		viper.SetConfigType("yaml")
	}

	// Read environment variables that match "BOOMI_VARNAME"
	viper.SetEnvPrefix("BOOMI")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.boomictl.yaml)")

	rootCmd.PersistentFlags().String("url", "https://api.boomi.com", "Boomi API base URL")
	viper.BindPFlag("url", rootCmd.PersistentFlags().Lookup("url"))

	rootCmd.PersistentFlags().String("path", "", "Boomi API path prefix, e.g. /api/rest/v1/<account-id>")
	viper.BindPFlag("path", rootCmd.PersistentFlags().Lookup("path"))

	rootCmd.PersistentFlags().StringP("username", "u", "", "Boomi API username")
	viper.BindPFlag("username", rootCmd.PersistentFlags().Lookup("username"))

	rootCmd.PersistentFlags().StringP("password", "p", "", "Boomi API password or token")
	viper.BindPFlag("password", rootCmd.PersistentFlags().Lookup("password"))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging of API calls")
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}
