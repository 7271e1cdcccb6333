package cmd

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const app = "roommate-matching"

// Config is the application configuration, read from the config file with
// flag and environment overrides.
type Config struct {
	Address          string  `mapstructure:"address"`
	ApartmentsPath   string  `mapstructure:"apartments-path"`
	RestaurantsPath  string  `mapstructure:"restaurants-path"`
	AmenitiesPath    string  `mapstructure:"amenities-path"`
	WeightsPath      string  `mapstructure:"weights-path"`
	WeightsPreset    string  `mapstructure:"weights-preset"`
	DatabasePath     string  `mapstructure:"database-path"`
	MinCompatibility float64 `mapstructure:"min-compatibility"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "roommate-matching scores roommate compatibility and ranks apartment listings",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is "+app+".yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))

	viper.SetDefault("address", ":8080")
	viper.SetDefault("apartments-path", "data/apartments_data.json")
	viper.SetDefault("restaurants-path", "data/restaurants_data.json")
	viper.SetDefault("amenities-path", "data/amenities_data.json")
	viper.SetDefault("weights-preset", "default")
	viper.SetDefault("min-compatibility", 0.6)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
		viper.SetConfigType("yaml")
	}

	// The config file is optional; defaults and flags cover every setting.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && cfgFile != "" {
			cobra.CheckErr(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	if err := viper.Unmarshal(&config); err != nil {
		return config, err
	}
	return config, nil
}
