package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const (
	DEFAULT_CREDENTIALS_PATH = "credentials.json"
	DEFAULT_TOKEN_PATH       = "token.json"
	DEFAULT_FOLDER_NAME      = "MCP_Shared"
	DEFAULT_ACTIVITY_FOLDER  = "Inquiry Activities"
	DEFAULT_TEMPLATE_NAME    = "Inquiry Activity Template"
	DEFAULT_LOG_LEVEL        = "info"
)

var ErrInvalid = errors.New("invalid definition")

type Config struct {
	CredentialsPath    string
	TokenPath          string
	ServiceAccountPath string
	FolderName         string
	ActivityFolder     string
	TemplateName       string
	LogLevel           string
}

// Load reads envFile into the process environment when it exists and
// builds a Config from DOCS_* variables.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	return &Config{
		CredentialsPath:    getenv("DOCS_CREDENTIALS", DEFAULT_CREDENTIALS_PATH),
		TokenPath:          getenv("DOCS_TOKEN", DEFAULT_TOKEN_PATH),
		ServiceAccountPath: getenv("DOCS_SERVICE_ACCOUNT", ""),
		FolderName:         getenv("DOCS_FOLDER", DEFAULT_FOLDER_NAME),
		ActivityFolder:     getenv("DOCS_ACTIVITY_FOLDER", DEFAULT_ACTIVITY_FOLDER),
		TemplateName:       getenv("DOCS_TEMPLATE", DEFAULT_TEMPLATE_NAME),
		LogLevel:           getenv("DOCS_LOG_LEVEL", DEFAULT_LOG_LEVEL),
	}, nil
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
