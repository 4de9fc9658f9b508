package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"worksheet-docs/models"

	"go.uber.org/zap"
	"google.golang.org/api/drive/v3"
)

const fileFields = "id, name, mimeType, parents, webViewLink"

type DriveStore struct {
	service *drive.Service
	log     *zap.SugaredLogger
}

func NewDriveStore(service *drive.Service, log *zap.SugaredLogger) *DriveStore {
	return &DriveStore{service: service, log: log}
}

var _ Store = (*DriveStore)(nil)

func (d *DriveStore) FindFolder(ctx context.Context, name, parentID string) (*models.FileRef, error) {
	return d.findOne(ctx, buildQuery(name, parentID, FolderMimeType))
}

func (d *DriveStore) FindFile(ctx context.Context, name, parentID string) (*models.FileRef, error) {
	return d.findOne(ctx, buildQuery(name, parentID, ""))
}

func (d *DriveStore) CreateFolder(ctx context.Context, name, parentID string) (*models.FileRef, error) {
	return d.create(ctx, name, parentID, FolderMimeType)
}

func (d *DriveStore) FindOrCreateFolder(ctx context.Context, name, parentID string) (*models.FileRef, error) {
	folder, err := d.FindFolder(ctx, name, parentID)
	if err == nil {
		return folder, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	d.log.Infof("folder %q not found, creating it", name)
	return d.CreateFolder(ctx, name, parentID)
}

func (d *DriveStore) CreateDocument(ctx context.Context, name, parentID string) (*models.FileRef, error) {
	return d.create(ctx, name, parentID, DocumentMimeType)
}

func (d *DriveStore) ListFolder(ctx context.Context, parentID string) ([]*models.FileRef, error) {
	d.log.Debugf("listing folder - %s", parentID)
	return d.list(ctx, buildQuery("", parentID, ""), 0)
}

func (d *DriveStore) CopyDocument(ctx context.Context, fileID, name, parentID string) (*models.FileRef, error) {
	meta := &drive.File{Name: name}
	if parentID != "" {
		meta.Parents = []string{parentID}
	}
	file, err := d.service.Files.Copy(fileID, meta).Fields(fileFields).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to copy %s: %w", fileID, err)
	}
	d.log.Infof("copied %s to %q (%s)", fileID, name, file.Id)
	return toRef(file), nil
}

func (d *DriveStore) RenameFile(ctx context.Context, fileID, name string) (*models.FileRef, error) {
	file, err := d.service.Files.Update(fileID, &drive.File{Name: name}).Fields(fileFields).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to rename %s: %w", fileID, err)
	}
	return toRef(file), nil
}

// MoveFile places the file in parentID and removes it from every other parent.
func (d *DriveStore) MoveFile(ctx context.Context, fileID, parentID string) (*models.FileRef, error) {
	current, err := d.service.Files.Get(fileID).Fields("parents").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read parents of %s: %w", fileID, err)
	}

	file, err := d.service.Files.Update(fileID, &drive.File{}).
		AddParents(parentID).
		RemoveParents(strings.Join(current.Parents, ",")).
		Fields(fileFields).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to move %s: %w", fileID, err)
	}
	return toRef(file), nil
}

func (d *DriveStore) DeleteFile(ctx context.Context, fileID string) error {
	if err := d.service.Files.Delete(fileID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete %s: %w", fileID, err)
	}
	d.log.Infof("deleted %s", fileID)
	return nil
}

func (d *DriveStore) create(ctx context.Context, name, parentID, mimeType string) (*models.FileRef, error) {
	meta := &drive.File{Name: name, MimeType: mimeType}
	if parentID != "" {
		meta.Parents = []string{parentID}
	}
	file, err := d.service.Files.Create(meta).Fields(fileFields).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create %q: %w", name, err)
	}
	d.log.Infof("created %q (%s)", name, file.Id)
	return toRef(file), nil
}

func (d *DriveStore) findOne(ctx context.Context, query string) (*models.FileRef, error) {
	files, err := d.list(ctx, query, 1)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNotFound
	}
	return files[0], nil
}

// list pages through the query results. A positive limit stops early.
func (d *DriveStore) list(ctx context.Context, query string, limit int) ([]*models.FileRef, error) {
	var refs []*models.FileRef
	pageToken := ""

	for {
		call := d.service.Files.List().
			Q(query).
			Fields("nextPageToken, files(id, name, mimeType, parents, webViewLink)").
			PageSize(100).
			Context(ctx)

		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		response, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list files: %w", err)
		}

		for _, file := range response.Files {
			refs = append(refs, toRef(file))
			if limit > 0 && len(refs) >= limit {
				return refs, nil
			}
		}

		pageToken = response.NextPageToken
		if pageToken == "" {
			break
		}
	}

	return refs, nil
}

func buildQuery(name, parentID, mimeType string) string {
	clauses := []string{"trashed=false"}
	if name != "" {
		clauses = append(clauses, fmt.Sprintf("name='%s'", escapeQuery(name)))
	}
	if mimeType != "" {
		clauses = append(clauses, fmt.Sprintf("mimeType='%s'", mimeType))
	}
	if parentID != "" {
		clauses = append(clauses, fmt.Sprintf("'%s' in parents", escapeQuery(parentID)))
	}
	return strings.Join(clauses, " and ")
}

func escapeQuery(s string) string {
	return strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(s)
}

func toRef(file *drive.File) *models.FileRef {
	return &models.FileRef{
		ID:          file.Id,
		Name:        file.Name,
		MimeType:    file.MimeType,
		Parents:     file.Parents,
		WebViewLink: file.WebViewLink,
	}
}
