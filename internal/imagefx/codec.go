package imagefx

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"strings"

	_ "image/gif"
	_ "image/png"
)

// DecodeDataURI decodes a data:<mime>;base64,<payload> reference back into
// an image. Attachments ingested through the inline converter carry exactly
// this shape.
func DecodeDataURI(ref string) (image.Image, error) {
	if !strings.HasPrefix(ref, "data:") {
		return nil, fmt.Errorf("not a data URI")
	}
	idx := strings.Index(ref, ";base64,")
	if idx < 0 {
		return nil, fmt.Errorf("missing base64 payload")
	}

	raw, err := base64.StdEncoding.DecodeString(ref[idx+len(";base64,"):])
	if err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// EncodeJPEGDataURI compresses the raster surface to a JPEG data URI at the
// given quality.
func EncodeJPEGDataURI(img image.Image, quality int) (string, int, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return "", 0, fmt.Errorf("encode jpeg: %w", err)
	}
	encoded := base64.StdEncoding.EncodeToString(buf.Bytes())
	return "data:image/jpeg;base64," + encoded, buf.Len(), nil
}
