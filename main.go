package main

import (
	"errors"
	"fmt"
	"os"

	"bikeshare/internal/config"
	explorerErrors "bikeshare/internal/errors"
	"bikeshare/internal/session"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	logLevelEnvVar  = "LOG_LEVEL"
	defaultLogLevel = "WARN"
)

// InitLogger Receives the log level to be set in logrus as a string. This method
// parses the string and set the level to the logger. If the level string is not
// valid an error is returned
func InitLogger(logLevel string) error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return err
	}

	customFormatter := &logrus.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   false,
	}
	logrus.SetFormatter(customFormatter)
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(level)
	return nil
}

func newRootCommand() *cobra.Command {
	var configPath string
	var dataDir string

	cmd := &cobra.Command{
		Use:          "bikeshare",
		Short:        "Explore US bikeshare data",
		Long:         `Interactively pick a city, month and weekday, then print travel time, station, duration and user statistics of the matching bikeshare trips.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			explorerConfig, err := config.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("error loading config: %w", err)
			}
			if dataDir != "" {
				explorerConfig.DataDir = dataDir
			}
			log.Debugf("explorer config: %+v", explorerConfig)

			err = session.NewSession(explorerConfig, cmd.InOrStdin(), cmd.OutOrStdout()).Run()
			if errors.Is(err, explorerErrors.ErrInputClosed) {
				log.Info("input closed, exiting")
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVar(&configPath, "config", config.DefaultConfigFilepath, "path to the yaml config file")
	cmd.Flags().StringVar(&dataDir, "data-dir", "", "directory holding the city csv files (overrides config)")
	return cmd
}

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Printf("error loading .env file: %v", err)
	}

	logLevel := os.Getenv(logLevelEnvVar)
	if logLevel == "" {
		logLevel = defaultLogLevel
	}

	if err := InitLogger(logLevel); err != nil {
		fmt.Printf("error initializating logger: %v", err)
		os.Exit(1)
	}

	if err := newRootCommand().Execute(); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}
