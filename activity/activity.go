package activity

import (
	"context"
	"errors"
	"fmt"

	"worksheet-docs/models"
	"worksheet-docs/storage"

	"go.uber.org/zap"
	"google.golang.org/api/docs/v1"
)

const (
	TemplateHeading = "Inquiry Activity"

	PlaceholderLesson   = "{Lesson_num_name}"
	PlaceholderGrade    = "{Grade}"
	PlaceholderUnit     = "{Unit}"
	PlaceholderDirs     = "{Directions}"
	PlaceholderContents = "{Worksheet_contents}"
)

// TemplateBody is written under the heading of a freshly created template.
var TemplateBody = fmt.Sprintf(`
%s

%s
%s

Directions:
%s

%s
`, PlaceholderLesson, PlaceholderGrade, PlaceholderUnit, PlaceholderDirs, PlaceholderContents)

// Editor is the part of document.Document the generator drives.
type Editor interface {
	CreateHeader(ctx context.Context, text string, level int) (*docs.BatchUpdateDocumentResponse, error)
	AppendText(ctx context.Context, tabID, text string, format models.TextFormat) (*docs.BatchUpdateDocumentResponse, error)
	ReplaceText(ctx context.Context, placeholder, replacement string, format models.TextFormat) (*docs.BatchUpdateDocumentResponse, error)
}

type Opener func(documentID string) Editor

type Settings struct {
	FolderName     string
	ActivityFolder string
	TemplateName   string
}

type Generator struct {
	store    storage.Store
	open     Opener
	settings Settings
	log      *zap.SugaredLogger
}

func NewGenerator(store storage.Store, open Opener, settings Settings, log *zap.SugaredLogger) *Generator {
	return &Generator{store: store, open: open, settings: settings, log: log}
}

// Generate copies the template into the activity folder under act.Name and
// fills in every field.
func (g *Generator) Generate(ctx context.Context, act *models.Activity) (*models.FileRef, error) {
	main, err := g.store.FindOrCreateFolder(ctx, g.settings.FolderName, "")
	if err != nil {
		return nil, fmt.Errorf("failed to locate folder %q: %w", g.settings.FolderName, err)
	}

	sub, err := g.store.FindOrCreateFolder(ctx, g.settings.ActivityFolder, main.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to locate folder %q: %w", g.settings.ActivityFolder, err)
	}
	g.log.Infof("using %s folder with ID: %s", g.settings.ActivityFolder, sub.ID)

	templateID, err := g.ensureTemplate(ctx, main.ID)
	if err != nil {
		return nil, err
	}

	doc, err := g.store.CopyDocument(ctx, templateID, act.Name, sub.ID)
	if err != nil {
		return nil, err
	}
	g.log.Infof("created new document with ID: %s", doc.ID)

	editor := g.open(doc.ID)
	for _, field := range act.Fields {
		if _, err := editor.ReplaceText(ctx, field.Placeholder, field.Value, field.Format); err != nil {
			return nil, fmt.Errorf("failed to fill %s: %w", field.Placeholder, err)
		}
	}

	return doc, nil
}

func (g *Generator) ensureTemplate(ctx context.Context, folderID string) (string, error) {
	tmpl, err := g.store.FindFile(ctx, g.settings.TemplateName, folderID)
	if err == nil {
		return tmpl.ID, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return "", fmt.Errorf("failed to look up template %q: %w", g.settings.TemplateName, err)
	}

	g.log.Infof("template %q not found, creating a new template", g.settings.TemplateName)
	created, err := g.store.CreateDocument(ctx, g.settings.TemplateName, folderID)
	if err != nil {
		return "", err
	}

	editor := g.open(created.ID)
	if _, err := editor.CreateHeader(ctx, TemplateHeading, 1); err != nil {
		return "", fmt.Errorf("failed to write template heading: %w", err)
	}
	if _, err := editor.AppendText(ctx, "", TemplateBody, models.TextFormat{}); err != nil {
		return "", fmt.Errorf("failed to write template placeholders: %w", err)
	}

	return created.ID, nil
}
