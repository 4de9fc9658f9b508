package storage

import (
	"context"
	"errors"

	"worksheet-docs/models"
)

const (
	FolderMimeType   = "application/vnd.google-apps.folder"
	DocumentMimeType = "application/vnd.google-apps.document"
)

var ErrNotFound = errors.New("not found in drive")

// Store is the Drive surface the worksheet tools need. An empty parentID
// means "anywhere" for lookups and "My Drive root" for creation.
type Store interface {
	FindFolder(ctx context.Context, name, parentID string) (*models.FileRef, error)
	CreateFolder(ctx context.Context, name, parentID string) (*models.FileRef, error)
	FindOrCreateFolder(ctx context.Context, name, parentID string) (*models.FileRef, error)
	FindFile(ctx context.Context, name, parentID string) (*models.FileRef, error)
	ListFolder(ctx context.Context, parentID string) ([]*models.FileRef, error)
	CreateDocument(ctx context.Context, name, parentID string) (*models.FileRef, error)
	CopyDocument(ctx context.Context, fileID, name, parentID string) (*models.FileRef, error)
	RenameFile(ctx context.Context, fileID, name string) (*models.FileRef, error)
	MoveFile(ctx context.Context, fileID, parentID string) (*models.FileRef, error)
	DeleteFile(ctx context.Context, fileID string) error
	ReadText(ctx context.Context, fileID string) (string, error)
}
