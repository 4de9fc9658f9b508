package auth

import (
	"context"
	"net/http"

	"go.uber.org/zap"
	"google.golang.org/api/docs/v1"
	"google.golang.org/api/drive/v3"
)

var DefaultScopes = []string{
	drive.DriveScope,
	docs.DocumentsScope,
}

type Authenticator interface {
	GetHTTPClient(ctx context.Context) (*http.Client, error)
}

type Config struct {
	CredentialsPath    string
	TokenPath          string
	ServiceAccountPath string
	Scopes             []string
}

func (c Config) scopes() []string {
	if len(c.Scopes) == 0 {
		return DefaultScopes
	}
	return c.Scopes
}

// New picks the service account flow when a key file is configured and the
// installed-app OAuth flow otherwise.
func New(cfg Config, log *zap.SugaredLogger) (Authenticator, error) {
	if cfg.ServiceAccountPath != "" {
		return NewServiceAccountAuthenticator(cfg)
	}
	return NewGoogleAuthenticator(cfg, log)
}
