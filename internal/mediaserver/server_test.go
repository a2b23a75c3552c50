package mediaserver

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedcompose/internal/common"
	"feedcompose/internal/dbmongo"
)

type fakeStorage struct {
	files map[string]struct {
		data string
		meta dbmongo.MediaFile
	}
}

func (f *fakeStorage) DownloadFile(ctx context.Context, fileID string) (io.Reader, *dbmongo.MediaFile, error) {
	entry, ok := f.files[fileID]
	if !ok {
		return nil, nil, errors.New("not found")
	}
	meta := entry.meta
	return strings.NewReader(entry.data), &meta, nil
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		files: map[string]struct {
			data string
			meta dbmongo.MediaFile
		}{
			"abc123": {
				data: "png-bytes",
				meta: dbmongo.MediaFile{
					ID:       "abc123",
					Filename: "photo.png",
					Size:     9,
					Kind:     common.MediaKindImage,
					MIMEType: "image/png",
				},
			},
			"noext": {
				data: "raw",
				meta: dbmongo.MediaFile{ID: "noext", Filename: "blob.bin", Size: 3},
			},
		},
	}
}

func TestServeFile(t *testing.T) {
	server := NewHTTPServer(newFakeStorage())

	req := httptest.NewRequest(http.MethodGet, "/media/abc123", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "9", rec.Header().Get("Content-Length"))
	assert.Equal(t, "png-bytes", rec.Body.String())
}

func TestServeFile_NotFound(t *testing.T) {
	server := NewHTTPServer(newFakeStorage())

	req := httptest.NewRequest(http.MethodGet, "/media/missing", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServeFile_FallbackContentType(t *testing.T) {
	server := NewHTTPServer(newFakeStorage())

	req := httptest.NewRequest(http.MethodGet, "/media/noext", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/octet-stream", rec.Header().Get("Content-Type"))
}

func TestHealth(t *testing.T) {
	server := NewHTTPServer(newFakeStorage())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
