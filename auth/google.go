package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

type GoogleAuthenticator struct {
	config    *oauth2.Config
	tokenPath string
	log       *zap.SugaredLogger
	input     io.Reader
	output    io.Writer
}

func NewGoogleAuthenticator(cfg Config, log *zap.SugaredLogger) (*GoogleAuthenticator, error) {
	b, err := os.ReadFile(cfg.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read credentials: %w", err)
	}

	config, err := google.ConfigFromJSON(b, cfg.scopes()...)
	if err != nil {
		return nil, fmt.Errorf("unable to parse credentials: %w", err)
	}

	return &GoogleAuthenticator{
		config:    config,
		tokenPath: cfg.TokenPath,
		log:       log,
		input:     os.Stdin,
		output:    os.Stdout,
	}, nil
}

func (g *GoogleAuthenticator) GetHTTPClient(ctx context.Context) (*http.Client, error) {
	tok, err := g.getTokenFromFile()
	if err != nil {
		tok, err = g.getTokenFromWeb(ctx)
		if err != nil {
			return nil, err
		}
		if err := g.saveToken(tok); err != nil {
			return nil, err
		}
	}
	return g.config.Client(ctx, tok), nil
}

func (g *GoogleAuthenticator) getTokenFromWeb(ctx context.Context) (*oauth2.Token, error) {
	authURL := g.config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Fprintf(g.output, "Open the following link in your browser, then paste the authorization code:\n%s\n", authURL)

	var authCode string
	if _, err := fmt.Fscan(g.input, &authCode); err != nil {
		return nil, fmt.Errorf("unable to read authorization code: %w", err)
	}

	tok, err := g.config.Exchange(ctx, authCode)
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve token from web: %w", err)
	}

	return tok, nil
}

func (g *GoogleAuthenticator) getTokenFromFile() (*oauth2.Token, error) {
	f, err := os.Open(g.tokenPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tok := &oauth2.Token{}
	err = json.NewDecoder(f).Decode(tok)
	return tok, err
}

func (g *GoogleAuthenticator) saveToken(token *oauth2.Token) error {
	g.log.Infof("saving credential file to: %s", g.tokenPath)
	f, err := os.OpenFile(g.tokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("unable to cache oauth token: %w", err)
	}
	defer f.Close()
	if err := json.NewEncoder(f).Encode(token); err != nil {
		return fmt.Errorf("unable to encode oauth token: %w", err)
	}
	return nil
}
