package linkpreview

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedcompose/internal/common"
	"feedcompose/internal/dispatch"
)

const testDebounce = 20 * time.Millisecond

type previewRecorder struct {
	mu      sync.Mutex
	changes []*common.LinkPreview
}

func (r *previewRecorder) record(p *common.LinkPreview) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.changes = append(r.changes, p)
}

func (r *previewRecorder) all() []*common.LinkPreview {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*common.LinkPreview, len(r.changes))
	copy(out, r.changes)
	return out
}

func settle(q *dispatch.Queue) {
	time.Sleep(3 * testDebounce)
	q.Flush()
}

func TestExtractURL(t *testing.T) {
	assert.Equal(t, "http://example.com/x", ExtractURL("check this out http://example.com/x"))
	assert.Equal(t, "https://a.io", ExtractURL("https://a.io and http://b.io"))
	assert.Equal(t, "", ExtractURL("no links here"))
}

func TestExtractDomain(t *testing.T) {
	assert.Equal(t, "example.com", ExtractDomain("http://example.com/x?q=1"))
	assert.Equal(t, "example.com", ExtractDomain("https://www.example.com"))
	assert.Equal(t, "", ExtractDomain("http://%zz"))
}

func TestSyntheticResolver_DerivesFromHost(t *testing.T) {
	r := NewSyntheticResolver()
	p, err := r.Resolve(context.Background(), "https://www.example.com/story/42")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "example.com", p.Domain)
	assert.Contains(t, p.Title, "example.com")
	assert.NotEmpty(t, p.Description)
	assert.NotEmpty(t, p.ImageURL)
}

func TestDetector_ResolvesAfterDebounce(t *testing.T) {
	q := dispatch.NewQueue()
	defer q.Shutdown()
	rec := &previewRecorder{}
	d := NewDetector(q, NewSyntheticResolver(), testDebounce, rec.record)

	d.Observe("check this out http://example.com/x")
	settle(q)

	changes := rec.all()
	require.Len(t, changes, 1)
	assert.Equal(t, "example.com", changes[0].Domain)
}

func TestDetector_IdempotentOnUnchangedURL(t *testing.T) {
	q := dispatch.NewQueue()
	defer q.Shutdown()
	rec := &previewRecorder{}
	d := NewDetector(q, NewSyntheticResolver(), testDebounce, rec.record)

	d.Observe("see http://example.com/x")
	settle(q)
	d.Observe("see http://example.com/x please") // same URL, more text
	settle(q)

	assert.Len(t, rec.all(), 1)
}

func TestDetector_ReplacedURLCancelsFirstResolution(t *testing.T) {
	q := dispatch.NewQueue()
	defer q.Shutdown()
	rec := &previewRecorder{}
	d := NewDetector(q, NewSyntheticResolver(), testDebounce, rec.record)

	d.Observe("look http://first.com/a")
	d.Observe("look http://second.com/b") // before the debounce elapses
	settle(q)

	changes := rec.all()
	require.Len(t, changes, 1)
	assert.Equal(t, "second.com", changes[0].Domain)
}

func TestDetector_RemovingURLClearsImmediately(t *testing.T) {
	q := dispatch.NewQueue()
	defer q.Shutdown()
	rec := &previewRecorder{}
	d := NewDetector(q, NewSyntheticResolver(), testDebounce, rec.record)

	d.Observe("go to http://example.com")
	settle(q)
	require.Len(t, rec.all(), 1)

	d.Observe("go to")
	q.Flush() // no debounce on clear

	changes := rec.all()
	require.Len(t, changes, 2)
	assert.Nil(t, changes[1])
}

type failingResolver struct{}

func (failingResolver) Resolve(context.Context, string) (*common.LinkPreview, error) {
	return nil, errors.New("resolution blew up")
}

func TestDetector_TransientFailureClearsPreview(t *testing.T) {
	q := dispatch.NewQueue()
	defer q.Shutdown()
	rec := &previewRecorder{}
	d := NewDetector(q, failingResolver{}, testDebounce, rec.record)

	d.Observe("see http://example.com")
	settle(q)

	// No preview existed before, so nothing was surfaced either way.
	assert.Empty(t, rec.all())
}

func TestDetector_MalformedURLIgnored(t *testing.T) {
	q := dispatch.NewQueue()
	defer q.Shutdown()
	rec := &previewRecorder{}
	d := NewDetector(q, NewSyntheticResolver(), testDebounce, rec.record)

	d.Observe("broken http://%zz")
	settle(q)

	assert.Empty(t, rec.all())
}

func TestDetector_StopCancelsPending(t *testing.T) {
	q := dispatch.NewQueue()
	defer q.Shutdown()
	rec := &previewRecorder{}
	d := NewDetector(q, NewSyntheticResolver(), testDebounce, rec.record)

	d.Observe("see http://example.com")
	d.Stop()
	settle(q)

	assert.Empty(t, rec.all())
}
