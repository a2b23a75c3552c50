package ingest

import (
	"context"
	"encoding/base64"
	"fmt"
)

// Converter turns raw file bytes into a self-contained displayable
// reference. InlineConverter is the default; dbmongo provides a GridFS-backed
// alternative that yields a served URL instead.
type Converter interface {
	Convert(ctx context.Context, file File) (string, error)
}

// InlineConverter encodes the bytes into a data URI, so the reference needs
// no external storage at all.
type InlineConverter struct{}

func NewInlineConverter() *InlineConverter {
	return &InlineConverter{}
}

func (c *InlineConverter) Convert(ctx context.Context, file File) (string, error) {
	if len(file.Data) == 0 {
		return "", fmt.Errorf("empty file %q", file.Name)
	}
	encoded := base64.StdEncoding.EncodeToString(file.Data)
	return fmt.Sprintf("data:%s;base64,%s", file.MIME, encoded), nil
}
