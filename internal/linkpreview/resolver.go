package linkpreview

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"feedcompose/internal/common"
)

// Resolver turns a detected URL into preview metadata. Resolution may fail
// transiently; a nil preview with nil error means the URL was unusable and
// should be ignored without surfacing anything.
type Resolver interface {
	Resolve(ctx context.Context, rawURL string) (*common.LinkPreview, error)
}

// SyntheticResolver derives deterministic preview metadata from the URL's
// host instead of fetching the page. Real metadata fetching is an external
// concern; the composition core only needs the resolution contract.
type SyntheticResolver struct{}

func NewSyntheticResolver() *SyntheticResolver {
	return &SyntheticResolver{}
}

func (r *SyntheticResolver) Resolve(ctx context.Context, rawURL string) (*common.LinkPreview, error) {
	domain := ExtractDomain(rawURL)
	if domain == "" {
		return nil, nil
	}

	return &common.LinkPreview{
		URL:         rawURL,
		Domain:      domain,
		Title:       fmt.Sprintf("Shared link from %s", domain),
		Description: fmt.Sprintf("Preview of content hosted on %s", domain),
		ImageURL:    fmt.Sprintf("https://%s/preview.jpg", domain),
	}, nil
}

// ExtractDomain returns the host of a URL with any leading "www." stripped,
// or "" when the URL does not parse to a host.
func ExtractDomain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return ""
	}
	host := u.Hostname()
	return strings.TrimPrefix(host, "www.")
}
