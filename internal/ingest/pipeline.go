// Package ingest validates and converts media files from the file picker,
// drag-and-drop, and the GIF gallery into draft attachments.
package ingest

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"feedcompose/internal/common"
	"feedcompose/internal/dispatch"
)

// File is one raw media file handed to the pipeline.
type File struct {
	Name string
	MIME string
	Data []byte
}

// Sink receives completed attachments. The draft composer implements it;
// the pipeline never owns the attachment list itself.
type Sink interface {
	AttachmentCount() int
	AppendAttachment(a common.Attachment)
}

// Pipeline validates files at enqueue time and converts them
// asynchronously. Each conversion is an independent unit: completions are
// appended in completion order, and an in-flight conversion is never
// cancelled, so the list can legitimately overshoot the cap when conversions
// race new submissions. The cap is checked only at enqueue.
type Pipeline struct {
	queue     *dispatch.Queue
	converter Converter
	notifier  common.Notifier
	sink      Sink
	maxItems  int

	mu         sync.Mutex
	processing int
}

func NewPipeline(queue *dispatch.Queue, converter Converter, notifier common.Notifier, sink Sink, maxItems int) *Pipeline {
	return &Pipeline{
		queue:     queue,
		converter: converter,
		notifier:  notifier,
		sink:      sink,
		maxItems:  maxItems,
	}
}

// Processing reports how many conversions are still in flight; the UI shows
// a placeholder slot per pending item.
func (p *Pipeline) Processing() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.processing
}

// Ingest validates one file and schedules its conversion. Rejections are
// reported through the notifier and never returned as errors.
func (p *Pipeline) Ingest(file File) {
	kind, ok := common.DetectMediaKind(file.MIME)
	if !ok {
		p.notifier.Notify(common.SeverityError, fmt.Sprintf("%s is not an image or video", file.Name))
		return
	}

	if p.sink.AttachmentCount() >= p.maxItems {
		p.notifier.Notify(common.SeverityError, fmt.Sprintf("You can attach up to %d items", p.maxItems))
		return
	}

	p.mu.Lock()
	p.processing++
	p.mu.Unlock()

	// Conversion runs off-queue; only the completion is serialized. There is
	// no cancellation: a started conversion always completes and appends.
	go func() {
		ref, err := p.converter.Convert(context.Background(), file)
		p.queue.Post(func() {
			p.mu.Lock()
			p.processing--
			p.mu.Unlock()

			if err != nil {
				p.notifier.Notify(common.SeverityError, fmt.Sprintf("Could not process %s", file.Name))
				return
			}
			p.sink.AppendAttachment(common.Attachment{
				ID:        uuid.NewString(),
				Kind:      kind,
				Ref:       ref,
				Name:      file.Name,
				SizeLabel: common.SizeLabel(len(file.Data)),
			})
		})
	}()
}

// IngestAll submits a multi-select or multi-file drop. Files are processed
// independently and may complete out of order.
func (p *Pipeline) IngestAll(files []File) {
	for _, f := range files {
		p.Ingest(f)
	}
}

// AddGIF appends a gallery-picked GIF directly as an image attachment with a
// fixed label. File validation is bypassed; the list cap still holds.
func (p *Pipeline) AddGIF(gifURL string) {
	if p.sink.AttachmentCount() >= p.maxItems {
		p.notifier.Notify(common.SeverityError, fmt.Sprintf("You can attach up to %d items", p.maxItems))
		return
	}
	p.sink.AppendAttachment(common.Attachment{
		ID:        uuid.NewString(),
		Kind:      common.MediaKindImage,
		Ref:       gifURL,
		Name:      "GIF",
		SizeLabel: "GIF",
	})
}
