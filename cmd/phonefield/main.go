package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"phonefield/internal/config"
	"phonefield/internal/log"
)

var (
	version = "dev"

	cfgFile string
	debug   bool
	cfg     *config.Config
)

// Entry point for the application
func main() {
	rootCmd := &cobra.Command{
		Use:     "phonefield",
		Short:   "An international phone number input field for the terminal",
		Long: `Phonefield combines a country picker with a formatting text field.
Numbers are parsed, validated, and rendered through libphonenumber; the
field itself never errors on partial input.`,
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			var err error
			if cfgFile != "" {
				cfg, err = config.LoadConfigFile(cfgFile)
			} else {
				cfg, err = config.LoadConfig()
			}
			if err != nil {
				log.Warnf("cannot load config: %v, using defaults", err)
				cfg = config.New()
			}
			if debug {
				cfg.Settings.Debug = true
			}
			log.SetDebug(cfg.Settings.Debug)
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/phonefield/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(tuiCmd())
	rootCmd.AddCommand(guiCmd())
	rootCmd.AddCommand(fmtCmd())
	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(countriesCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
