package auth

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
)

// ServiceAccountAuthenticator signs requests with a service account key.
// Documents it creates belong to the service account.
type ServiceAccountAuthenticator struct {
	config *jwt.Config
}

func NewServiceAccountAuthenticator(cfg Config) (*ServiceAccountAuthenticator, error) {
	b, err := os.ReadFile(cfg.ServiceAccountPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read service account key: %w", err)
	}

	config, err := google.JWTConfigFromJSON(b, cfg.scopes()...)
	if err != nil {
		return nil, fmt.Errorf("unable to parse service account key: %w", err)
	}

	return &ServiceAccountAuthenticator{config: config}, nil
}

func (s *ServiceAccountAuthenticator) GetHTTPClient(ctx context.Context) (*http.Client, error) {
	return s.config.Client(ctx), nil
}

func (s *ServiceAccountAuthenticator) Email() string {
	return s.config.Email
}
