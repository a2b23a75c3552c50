package imagefx

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedcompose/internal/common"
	"feedcompose/internal/dispatch"
)

func pngDataURI(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, gradientImage()))
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func imageAttachment(t *testing.T) common.Attachment {
	return common.Attachment{
		ID:        "att-1",
		Kind:      common.MediaKindImage,
		Ref:       pngDataURI(t),
		Name:      "photo.png",
		SizeLabel: "1.0 KB",
	}
}

func TestDecodeDataURI_RoundTrip(t *testing.T) {
	img, err := DecodeDataURI(pngDataURI(t))
	require.NoError(t, err)
	assert.Equal(t, 4, img.Bounds().Dx())
}

func TestDecodeDataURI_Errors(t *testing.T) {
	_, err := DecodeDataURI("https://example.com/a.png")
	assert.Error(t, err)

	_, err = DecodeDataURI("data:image/png;base64,!!!not-base64!!!")
	assert.Error(t, err)

	_, err = DecodeDataURI("data:image/png,plain")
	assert.Error(t, err)
}

func TestEncodeJPEGDataURI(t *testing.T) {
	ref, size, err := EncodeJPEGDataURI(gradientImage(), 90)
	require.NoError(t, err)
	assert.Greater(t, size, 0)
	assert.Contains(t, ref, "data:image/jpeg;base64,")

	round, err := DecodeDataURI(ref)
	require.NoError(t, err)
	assert.Equal(t, 4, round.Bounds().Dx())
}

func TestEditor_BeginRejectsVideo(t *testing.T) {
	q := dispatch.NewQueue()
	defer q.Shutdown()
	e := NewEditor(q, 90)

	err := e.Begin(common.Attachment{ID: "v", Kind: common.MediaKindVideo, Ref: "data:video/mp4;base64,AAAA"})
	assert.Error(t, err)
	assert.Equal(t, StateIdle, e.State())
}

func TestEditor_BeginStartsNeutralSession(t *testing.T) {
	q := dispatch.NewQueue()
	defer q.Shutdown()
	e := NewEditor(q, 90)

	require.NoError(t, e.Begin(imageAttachment(t)))
	assert.Equal(t, StateEditing, e.State())
	assert.True(t, e.Adjustments().IsNeutral())

	q.Flush()
	assert.NotNil(t, e.Rendered())
}

func TestEditor_SlidersClampAndRerender(t *testing.T) {
	q := dispatch.NewQueue()
	defer q.Shutdown()
	e := NewEditor(q, 90)
	require.NoError(t, e.Begin(imageAttachment(t)))

	e.SetBrightness(350)
	e.SetContrast(-20)
	e.SetSaturation(140)
	e.SetFilter(FilterFade)
	q.Flush()

	adj := e.Adjustments()
	assert.Equal(t, 200, adj.Brightness)
	assert.Equal(t, 0, adj.Contrast)
	assert.Equal(t, 140, adj.Saturation)
	assert.Equal(t, FilterFade, adj.Filter)
}

func TestEditor_ResetSlidersKeepsFilter(t *testing.T) {
	q := dispatch.NewQueue()
	defer q.Shutdown()
	e := NewEditor(q, 90)
	require.NoError(t, e.Begin(imageAttachment(t)))

	e.SetFilter(FilterNoir)
	e.SetBrightness(150)
	e.ResetSliders()

	adj := e.Adjustments()
	assert.Equal(t, FilterNoir, adj.Filter)
	assert.Equal(t, 100, adj.Brightness)
	assert.Equal(t, 100, adj.Contrast)
	assert.Equal(t, 100, adj.Saturation)
}

func TestEditor_SaveReplacesReferencePreservingIdentity(t *testing.T) {
	q := dispatch.NewQueue()
	defer q.Shutdown()
	e := NewEditor(q, 90)

	original := imageAttachment(t)
	require.NoError(t, e.Begin(original))
	e.SetFilter(FilterNoir)
	e.SetBrightness(120)

	saved, err := e.Save()
	require.NoError(t, err)
	assert.Equal(t, StateSaved, e.State())

	assert.Equal(t, original.ID, saved.ID)
	assert.Equal(t, common.MediaKindImage, saved.Kind)
	assert.NotEqual(t, original.Ref, saved.Ref)
	assert.Contains(t, saved.Ref, "data:image/jpeg;base64,")

	// Noir output is grayscale; JPEG compression allows a small channel drift.
	img, err := DecodeDataURI(saved.Ref)
	require.NoError(t, err)
	r, g, b, _ := img.At(2, 2).RGBA()
	assert.InDelta(t, float64(r>>8), float64(g>>8), 12)
	assert.InDelta(t, float64(g>>8), float64(b>>8), 12)
}

func TestEditor_CancelDiscardsSession(t *testing.T) {
	q := dispatch.NewQueue()
	defer q.Shutdown()
	e := NewEditor(q, 90)
	require.NoError(t, e.Begin(imageAttachment(t)))

	e.SetBrightness(0)
	e.Cancel()
	assert.Equal(t, StateCancelled, e.State())

	_, err := e.Save()
	assert.Error(t, err)

	// Changes after cancel are ignored.
	e.SetBrightness(150)
	assert.Equal(t, Adjustments{}, e.Adjustments())
}

func TestEditor_StaleRenderAfterSaveIsDropped(t *testing.T) {
	q := dispatch.NewQueue()
	defer q.Shutdown()
	e := NewEditor(q, 90)

	// Hold the queue so Begin's render stays in flight.
	gate := make(chan struct{})
	q.Post(func() { <-gate })

	require.NoError(t, e.Begin(imageAttachment(t)))
	_, err := e.Save() // synchronous, ends the session
	require.NoError(t, err)

	close(gate)
	q.Flush()

	// The in-flight render must not resurrect a surface for a closed session.
	assert.Nil(t, e.Rendered())
}
