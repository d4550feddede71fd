package drive

import (
	"context"
	"fmt"
	"io"
	"net/http"

	gdrive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// StoredObject identifies a file after a successful upload.
type StoredObject struct {
	ID       string
	Name     string
	ViewLink string
}

// Uploader submits a generated document to remote storage. The live
// implementation talks to Google Drive; tests substitute fakes.
type Uploader interface {
	CreateObject(
		ctx context.Context,
		client *http.Client,
		name string,
		folderID string,
		content io.Reader,
	) (*StoredObject, error)
}

// DriveUploader creates files through the Drive v3 files API.
type DriveUploader struct{}

func NewDriveUploader() *DriveUploader {
	return &DriveUploader{}
}

func (u *DriveUploader) CreateObject(
	ctx context.Context,
	client *http.Client,
	name string,
	folderID string,
	content io.Reader,
) (*StoredObject, error) {

	svc, err := gdrive.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to init drive service: %w", err)
	}

	meta := &gdrive.File{Name: name}

	// Without a configured folder the file lands in the Drive root.
	if folderID != "" {
		meta.Parents = []string{folderID}
	}

	file, err := svc.Files.Create(meta).
		Media(content).
		Fields("id", "name", "webViewLink").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("drive file create failed: %w", err)
	}

	return &StoredObject{
		ID:       file.Id,
		Name:     file.Name,
		ViewLink: file.WebViewLink,
	}, nil
}
