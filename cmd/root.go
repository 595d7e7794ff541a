package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"bikeshare/config"
	"bikeshare/dataset"
	"bikeshare/domain/entities/station"
	"bikeshare/prompt"
	"bikeshare/reports"
	"bikeshare/session"
	"bikeshare/utils"
)

const (
	configFlag   = "config"
	dataDirFlag  = "data-dir"
	logLevelFlag = "log-level"
)

var rootCMD = newRootCMD()

func newRootCMD() *cobra.Command {
	command := &cobra.Command{
		Use:   "bikeshare",
		Short: "Interactive explorer of US bikeshare trip data",
		Long: `An interactive console application that computes descriptive statistics
over the bikeshare trips of Chicago, New York City and Washington.
The trips can be narrowed by month and day of the week, and the raw
rows can be displayed a page at a time.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runExplorer,
	}

	command.Flags().String(configFlag, "", fmt.Sprintf("path to the yaml config file (default %s if it exists)", config.DefaultConfigFilepath))
	command.Flags().String(dataDirFlag, "", "directory holding the city datasets")
	command.Flags().String(logLevelFlag, "", "log level: trace, debug, info, warning, error")
	return command
}

func Execute() {
	err := rootCMD.ExecuteContext(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func runExplorer(cmd *cobra.Command, _ []string) error {
	// a missing .env file is not an error
	_ = godotenv.Load()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if err := utils.InitLogger(cfg.LogLevel); err != nil {
		return err
	}
	log.Debugf("[cmd] config loaded, data dir: %s", cfg.DataDir)

	stations, err := loadStations(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	explorer := session.NewSession(
		cfg,
		dataset.NewLoader(cfg),
		prompt.NewPrompter(cmd.InOrStdin(), out),
		reports.NewReporter(out, stations),
		out,
	)

	err = explorer.Run(cmd.Context())
	if err != nil {
		return err
	}

	log.Debug("[cmd] Finish explorer")
	return nil
}

// loadConfig reads the config file and applies the flags on top of it.
// Flags take precedence over the environment, the environment over the file
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configFilepath, err := cmd.Flags().GetString(configFlag)
	if err != nil {
		return nil, err
	}

	if configFilepath == "" {
		if _, statErr := os.Stat(config.DefaultConfigFilepath); statErr == nil {
			configFilepath = config.DefaultConfigFilepath
		} else if !errors.Is(statErr, os.ErrNotExist) {
			return nil, fmt.Errorf("error checking %s: %w", config.DefaultConfigFilepath, statErr)
		}
	}

	cfg, err := config.LoadConfig(configFilepath)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed(dataDirFlag) {
		cfg.DataDir, _ = cmd.Flags().GetString(dataDirFlag)
	}
	if cmd.Flags().Changed(logLevelFlag) {
		cfg.LogLevel, _ = cmd.Flags().GetString(logLevelFlag)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadStations returns nil when no stations file is configured
func loadStations(cfg *config.Config) (map[string]station.StationData, error) {
	path, ok := cfg.StationsPath()
	if !ok {
		return nil, nil
	}

	stations, err := dataset.LoadStations(path)
	if err != nil {
		return nil, fmt.Errorf("error loading stations: %w", err)
	}
	log.Debugf("[cmd] %v stations loaded from %s", len(stations), path)
	return stations, nil
}
