// Package cmd holds the command line interface of whocolor.
package cmd

import (
	"os"

	"github.com/Drolfothesgnir/whocolor/util"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	configPath string
	config     util.Config
)

var rootCmd = &cobra.Command{
	Use:   "whocolor",
	Short: "Authorship annotation of wiki articles",
	Long: `WhoColor colors every word of a wiki article by the editor who wrote it.

It combines the revision markup from the wiki with the token attribution
computed by WikiWho, and serves the annotated article over HTTP.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", ".", "directory containing app.env")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(annotateCmd)
}

// reading .env config file and setting up the logger
func initConfig() {
	var err error

	config, err = util.LoadConfig(configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot read config file")
	}

	if config.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
