// Package linkpreview watches draft text for the first well-formed URL and
// resolves it to preview metadata after a debounce window.
package linkpreview

import (
	"context"
	"regexp"
	"time"

	"feedcompose/internal/common"
	"feedcompose/internal/dispatch"
)

var urlPattern = regexp.MustCompile(`https?://\S+`)

// ExtractURL returns the first URL-shaped substring of text, or "".
func ExtractURL(text string) string {
	return urlPattern.FindString(text)
}

// Detector debounces text changes and resolves at most one URL at a time.
// All state lives on the dispatch queue; a generation counter guarantees
// last-request-wins even when a timer expiry races a newer text change.
type Detector struct {
	queue    *dispatch.Queue
	resolver Resolver
	debounce time.Duration
	onChange func(*common.LinkPreview)

	// queue-owned state
	lastURL    string
	preview    *common.LinkPreview
	pending    *dispatch.Timer
	generation uint64
}

// NewDetector creates a detector. onChange fires on the dispatch queue with
// the new preview, or nil when the preview is cleared.
func NewDetector(queue *dispatch.Queue, resolver Resolver, debounce time.Duration, onChange func(*common.LinkPreview)) *Detector {
	return &Detector{
		queue:    queue,
		resolver: resolver,
		debounce: debounce,
		onChange: onChange,
	}
}

// Observe reports the current draft text. Safe to call from any goroutine.
func (d *Detector) Observe(text string) {
	d.queue.Post(func() { d.observe(text) })
}

func (d *Detector) observe(text string) {
	url := ExtractURL(text)

	// Idempotent while the URL in the text is unchanged, whether it is
	// already resolved or still pending.
	if url == d.lastURL {
		return
	}
	d.lastURL = url
	d.generation++
	if d.pending != nil {
		d.pending.Stop()
		d.pending = nil
	}

	if url == "" {
		// No URL left: clear immediately, no debounce.
		d.clear()
		return
	}

	gen := d.generation
	d.pending = d.queue.After(d.debounce, func() {
		d.resolve(gen, url)
	})
}

func (d *Detector) resolve(gen uint64, url string) {
	if gen != d.generation {
		return // superseded by a newer request
	}
	d.pending = nil

	preview, err := d.resolver.Resolve(context.Background(), url)
	if err != nil || preview == nil {
		// Malformed URL or transient failure: no preview, nothing surfaced.
		d.clear()
		return
	}

	d.preview = preview
	d.onChange(preview)
}

func (d *Detector) clear() {
	if d.preview == nil {
		return
	}
	d.preview = nil
	d.onChange(nil)
}

// Stop cancels any pending resolution. Called on teardown.
func (d *Detector) Stop() {
	d.queue.Post(func() {
		d.generation++
		if d.pending != nil {
			d.pending.Stop()
			d.pending = nil
		}
	})
}
