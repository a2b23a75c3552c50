package dbmongo

import (
	"bytes"
	"context"
	"fmt"

	"feedcompose/internal/ingest"
)

// GridFSConverter implements ingest.Converter by uploading the raw bytes to
// GridFS and returning a served URL instead of an inline data URI. Drafts
// composed with it keep their payloads small; the media HTTP server serves
// the reference back.
type GridFSConverter struct {
	storage *MediaStorage
	baseURL string
}

func NewGridFSConverter(storage *MediaStorage, baseURL string) *GridFSConverter {
	return &GridFSConverter{
		storage: storage,
		baseURL: baseURL,
	}
}

func (c *GridFSConverter) Convert(ctx context.Context, file ingest.File) (string, error) {
	if len(file.Data) == 0 {
		return "", fmt.Errorf("empty file %q", file.Name)
	}
	uploaded, err := c.storage.UploadFile(ctx, file.Name, file.MIME, bytes.NewReader(file.Data))
	if err != nil {
		return "", fmt.Errorf("store media: %w", err)
	}
	return c.baseURL + uploaded.ID, nil
}
