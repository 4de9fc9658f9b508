package cmd

import (
	"fmt"
	"os"

	"worksheet-docs/config"
	"worksheet-docs/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	envFile            string
	credentialsPath    string
	tokenPath          string
	serviceAccountPath string
	logLevel           string

	cfg    *config.Config
	logger *zap.SugaredLogger
)

var rootCmd = &cobra.Command{
	Use:   "worksheet-docs",
	Short: "Script math worksheets in Google Docs",
	Long: `A CLI tool to build math worksheets, answer sheets and inquiry
activities in Google Docs and keep them organised in Google Drive.

Credentials come from an OAuth client file (credentials.json) or a
service account key (--service-account).`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "Path to dotenv file")
	rootCmd.PersistentFlags().StringVar(&credentialsPath, "credentials", config.DEFAULT_CREDENTIALS_PATH, "Path to Google OAuth credentials")
	rootCmd.PersistentFlags().StringVar(&tokenPath, "token", config.DEFAULT_TOKEN_PATH, "Path to OAuth token cache")
	rootCmd.PersistentFlags().StringVar(&serviceAccountPath, "service-account", "", "Path to service account key (overrides OAuth)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DEFAULT_LOG_LEVEL, "Log level: debug, info, warn, error")

	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(worksheetCmd)
	rootCmd.AddCommand(activityCmd)
	rootCmd.AddCommand(textCmd)
	rootCmd.AddCommand(headerCmd)
	rootCmd.AddCommand(replaceCmd)
	rootCmd.AddCommand(equationCmd)
	rootCmd.AddCommand(markdownCmd)
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(imageCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(folderCmd)
	rootCmd.AddCommand(filesCmd)
}

// setup loads configuration; flags given on the command line win over the
// environment.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(envFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("credentials") {
		loaded.CredentialsPath = credentialsPath
	}
	if flags.Changed("token") {
		loaded.TokenPath = tokenPath
	}
	if flags.Changed("service-account") {
		loaded.ServiceAccountPath = serviceAccountPath
	}
	if flags.Changed("log-level") {
		loaded.LogLevel = logLevel
	}
	cfg = loaded

	logger, err = logging.New(logging.Config{Level: cfg.LogLevel})
	if err != nil {
		return fmt.Errorf("Failed to initialize logger: %w", err)
	}
	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
