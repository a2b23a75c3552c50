package common

import "strings"

// MediaKind discriminates the two attachment categories the composer accepts.
type MediaKind string

const (
	MediaKindImage MediaKind = "image"
	MediaKindVideo MediaKind = "video"
)

// String returns the string representation
func (mk MediaKind) String() string {
	return string(mk)
}

// IsValid checks if the media kind is valid
func (mk MediaKind) IsValid() bool {
	return mk == MediaKindImage || mk == MediaKindVideo
}

// DetectMediaKind maps a MIME type onto an attachment kind. The second
// return is false for anything that is neither image/* nor video/*, and
// callers must reject such files rather than fall back to a default.
func DetectMediaKind(mimeType string) (MediaKind, bool) {
	lowerMimeType := strings.ToLower(mimeType)
	if strings.HasPrefix(lowerMimeType, "image/") {
		return MediaKindImage, true
	}
	if strings.HasPrefix(lowerMimeType, "video/") {
		return MediaKindVideo, true
	}
	return "", false
}
