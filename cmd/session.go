package cmd

import (
	"context"
	"fmt"

	"worksheet-docs/auth"
	"worksheet-docs/document"
	"worksheet-docs/models"
	"worksheet-docs/storage"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"google.golang.org/api/docs/v1"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

var success = color.New(color.FgGreen, color.Bold).SprintFunc()

type session struct {
	docs  *docs.Service
	drive *drive.Service
	store *storage.DriveStore
}

// connect is replaced in tests to point the services at a fake server.
var connect = authenticate

func authenticate(ctx context.Context) (*session, error) {
	authenticator, err := auth.New(auth.Config{
		CredentialsPath:    cfg.CredentialsPath,
		TokenPath:          cfg.TokenPath,
		ServiceAccountPath: cfg.ServiceAccountPath,
		Scopes:             auth.DefaultScopes,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("Failed to instantiate authenticator: %w", err)
	}

	client, err := authenticator.GetHTTPClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("Failed to authenticate: %w", err)
	}
	return newSession(ctx, option.WithHTTPClient(client))
}

func newSession(ctx context.Context, opts ...option.ClientOption) (*session, error) {
	docsService, err := docs.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("Unable to retrieve Docs client: %w", err)
	}

	driveService, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("Unable to retrieve Drive client: %w", err)
	}

	return &session{
		docs:  docsService,
		drive: driveService,
		store: storage.NewDriveStore(driveService, logger),
	}, nil
}

func (s *session) document(id string) *document.Document {
	return document.New(s.docs, id, logger)
}

// newDocument creates an empty document in folderName, or in the Drive
// root when folderName is empty.
func (s *session) newDocument(ctx context.Context, title, folderName string) (*document.Document, error) {
	if folderName == "" {
		return document.Create(ctx, s.docs, title, logger)
	}

	folder, err := s.store.FindOrCreateFolder(ctx, folderName, "")
	if err != nil {
		return nil, err
	}
	ref, err := s.store.CreateDocument(ctx, title, folder.ID)
	if err != nil {
		return nil, err
	}
	return s.document(ref.ID), nil
}

func addDocumentFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "doc", "d", "", "Google Docs document ID")
	_ = cmd.MarkFlagRequired("doc")
}

type formatOptions struct {
	bold   bool
	italic bool
	size   float64
	color  string
}

func addFormatFlags(cmd *cobra.Command, opts *formatOptions) {
	cmd.Flags().BoolVar(&opts.bold, "bold", false, "Format the text as bold")
	cmd.Flags().BoolVar(&opts.italic, "italic", false, "Format the text as italic")
	cmd.Flags().Float64Var(&opts.size, "size", 0, "Font size in points")
	cmd.Flags().StringVar(&opts.color, "color", "", "Text color as #RRGGBB")
}

func (o formatOptions) format() (models.TextFormat, error) {
	f := models.TextFormat{Bold: o.bold, Italic: o.italic, Size: o.size}
	if o.color != "" {
		c, err := models.ParseHexColor(o.color)
		if err != nil {
			return f, err
		}
		f.Color = c
	}
	return f, nil
}
