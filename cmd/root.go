package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	seed    int64
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "donorkit",
	Short: "donorkit - fundraising analytics toolkit for CRM donation data",
	Long: `donorkit is a toolkit for nonprofit fundraising analytics:
- Segments donors with RFM (recency/frequency/monetary) scoring and maps
  segments to commitment scores, per donor group
- Generates realistic synthetic charity datasets for testing and demos
- Profiles donor bases with hierarchical clustering over mixed attributes
- Reads CSV exports or a MariaDB/MySQL CRM mirror, and can write
  commitment scores back`,
	Version: "1.0.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.donorkit.yaml)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 42, "Random seed for reproducible runs")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress progress indicators and non-essential output")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".donorkit")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
