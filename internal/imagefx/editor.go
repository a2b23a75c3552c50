// Package imagefx is the non-destructive image adjustment engine: one
// attachment at a time gets a named filter preset plus brightness, contrast
// and saturation sliders, composited through a raster surface and exported
// as a JPEG replacing the original reference on save.
package imagefx

import (
	"fmt"
	"image"
	"sync"

	"feedcompose/internal/common"
	"feedcompose/internal/dispatch"
)

type State string

const (
	StateIdle      State = "idle"
	StateEditing   State = "editing"
	StateSaved     State = "saved"
	StateCancelled State = "cancelled"
)

// Editor runs one edit session. Slider and filter changes trigger a full
// asynchronous re-render; a generation counter keyed to the adjustment-state
// snapshot keeps a stale in-flight render from overwriting a newer result.
type Editor struct {
	queue   *dispatch.Queue
	quality int
	decode  func(ref string) (image.Image, error)

	mu       sync.Mutex
	state    State
	target   common.Attachment
	adj      Adjustments
	gen      uint64
	rendered image.Image
}

func NewEditor(queue *dispatch.Queue, quality int) *Editor {
	return &Editor{
		queue:   queue,
		quality: quality,
		decode:  DecodeDataURI,
		state:   StateIdle,
	}
}

func (e *Editor) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

func (e *Editor) Adjustments() Adjustments {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.adj
}

// Rendered returns the latest committed preview surface, nil before the
// first render lands.
func (e *Editor) Rendered() image.Image {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rendered
}

// Begin opens an edit session for one attachment. Video attachments are not
// editable. The session starts from the identity filter and neutral sliders.
func (e *Editor) Begin(att common.Attachment) error {
	if att.Kind != common.MediaKindImage {
		return fmt.Errorf("only image attachments can be edited")
	}
	if _, err := e.decode(att.Ref); err != nil {
		return fmt.Errorf("load image: %w", err)
	}

	e.mu.Lock()
	e.state = StateEditing
	e.target = att
	e.adj = Neutral()
	e.gen++
	e.rendered = nil
	gen := e.gen
	adj := e.adj
	e.mu.Unlock()

	e.render(gen, adj)
	return nil
}

func (e *Editor) SetFilter(f Filter) {
	e.change(func(a *Adjustments) { a.Filter = f })
}

func (e *Editor) SetBrightness(v int) {
	e.change(func(a *Adjustments) { a.Brightness = ClampPercent(v) })
}

func (e *Editor) SetContrast(v int) {
	e.change(func(a *Adjustments) { a.Contrast = ClampPercent(v) })
}

func (e *Editor) SetSaturation(v int) {
	e.change(func(a *Adjustments) { a.Saturation = ClampPercent(v) })
}

// ResetSliders restores the three sliders to neutral; the selected filter
// stays. This is the only undo the session offers.
func (e *Editor) ResetSliders() {
	e.change(func(a *Adjustments) {
		a.Brightness = 100
		a.Contrast = 100
		a.Saturation = 100
	})
}

func (e *Editor) change(mutate func(*Adjustments)) {
	e.mu.Lock()
	if e.state != StateEditing {
		e.mu.Unlock()
		return
	}
	mutate(&e.adj)
	e.gen++
	gen := e.gen
	adj := e.adj
	e.mu.Unlock()

	e.render(gen, adj)
}

// render decodes the source and composites the snapshot's adjustments on the
// queue. The result is dropped if a newer snapshot exists by the time it
// completes.
func (e *Editor) render(gen uint64, adj Adjustments) {
	e.mu.Lock()
	ref := e.target.Ref
	e.mu.Unlock()

	e.queue.Post(func() {
		src, err := e.decode(ref)
		if err != nil {
			return // preview keeps the last good surface
		}
		out := Apply(src, adj)

		e.mu.Lock()
		defer e.mu.Unlock()
		if e.state != StateEditing || gen != e.gen {
			return // stale render, a newer snapshot owns the surface
		}
		e.rendered = out
	})
}

// Save composites the current adjustments, encodes the surface as JPEG and
// returns the attachment with its reference replaced in place. Kind and
// identity are preserved; the caller swaps it back at the same index.
func (e *Editor) Save() (common.Attachment, error) {
	e.mu.Lock()
	if e.state != StateEditing {
		e.mu.Unlock()
		return common.Attachment{}, fmt.Errorf("no edit session open")
	}
	target := e.target
	adj := e.adj
	e.mu.Unlock()

	src, err := e.decode(target.Ref)
	if err != nil {
		return common.Attachment{}, fmt.Errorf("load image: %w", err)
	}
	ref, size, err := EncodeJPEGDataURI(Apply(src, adj), e.quality)
	if err != nil {
		return common.Attachment{}, err
	}

	target.Ref = ref
	target.SizeLabel = common.SizeLabel(size)

	e.mu.Lock()
	e.state = StateSaved
	e.target = common.Attachment{}
	e.adj = Adjustments{}
	e.rendered = nil
	e.gen++ // orphan any in-flight render
	e.mu.Unlock()

	return target, nil
}

// Cancel discards the session without touching the attachment.
func (e *Editor) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != StateEditing {
		return
	}
	e.state = StateCancelled
	e.target = common.Attachment{}
	e.adj = Adjustments{}
	e.rendered = nil
	e.gen++
}
