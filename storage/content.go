package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
)

const (
	MarkdownMime = "text/markdown"
	TextMime     = "text/plain"
)

var ErrUnsupportedContent = errors.New("file is not text, markdown or a Google Doc")

// IsText reports whether ReadText can return the content of a file with
// this mime type.
func IsText(mimeType string) bool {
	return mimeType == MarkdownMime || mimeType == TextMime || mimeType == DocumentMimeType
}

// ReadText returns the content of a markdown or plain text file. Google Docs
// are exported as plain text.
func (d *DriveStore) ReadText(ctx context.Context, fileID string) (string, error) {
	file, err := d.service.Files.Get(fileID).Fields("id, name, mimeType").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to get %s: %w", fileID, err)
	}
	if !IsText(file.MimeType) {
		return "", fmt.Errorf("%s (%s): %w", file.Name, file.MimeType, ErrUnsupportedContent)
	}

	d.log.Infof("extracting file - %s", file.Name)
	var response *http.Response
	if file.MimeType == DocumentMimeType {
		response, err = d.service.Files.Export(fileID, TextMime).Context(ctx).Download()
	} else {
		response, err = d.service.Files.Get(fileID).Context(ctx).Download()
	}
	if err != nil {
		return "", fmt.Errorf("failed to download file: %w", err)
	}
	defer response.Body.Close()

	contentBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return string(contentBytes), nil
}
