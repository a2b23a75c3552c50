// Package composer owns the draft state of the composition surface and
// coordinates text annotation, link preview, media ingestion and image
// editing into one submission payload.
package composer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"feedcompose/internal/common"
	"feedcompose/internal/config"
	"feedcompose/internal/dispatch"
	"feedcompose/internal/imagefx"
	"feedcompose/internal/ingest"
	"feedcompose/internal/linkpreview"
	"feedcompose/internal/scanner"
)

// Deps bundles the collaborators the composer consumes. Recognizer and Store
// are optional; nil disables dictation and autosave respectively.
type Deps struct {
	Config     config.ComposerConfig
	Queue      *dispatch.Queue
	Sink       common.PostSink
	Notifier   common.Notifier
	Wallet     common.WalletFunc
	Converter  ingest.Converter
	Resolver   linkpreview.Resolver
	Recognizer common.SpeechRecognizer
	Store      common.DraftStore
	Directory  []common.User
	AuthorID   string
}

// Composer is the orchestrator. It exclusively owns the draft and the
// attachment list; the ingestion pipeline and the image editor only hand
// finished values back through it.
type Composer struct {
	cfg        config.ComposerConfig
	queue      *dispatch.Queue
	sink       common.PostSink
	notifier   common.Notifier
	wallet     common.WalletFunc
	recognizer common.SpeechRecognizer
	store      common.DraftStore
	directory  []common.User
	authorID   string

	detector *linkpreview.Detector
	pipeline *ingest.Pipeline
	drag     *ingest.DragState

	mu        sync.Mutex
	draft     Draft
	preview   *common.LinkPreview
	expanded  bool
	dictating bool
	interim   string
	editor    *imagefx.Editor
	editIndex int
}

func New(deps Deps) *Composer {
	c := &Composer{
		cfg:        deps.Config,
		queue:      deps.Queue,
		sink:       deps.Sink,
		notifier:   deps.Notifier,
		wallet:     deps.Wallet,
		recognizer: deps.Recognizer,
		store:      deps.Store,
		directory:  deps.Directory,
		authorID:   deps.AuthorID,
		draft:      emptyDraft(),
		editIndex:  -1,
	}
	c.detector = linkpreview.NewDetector(deps.Queue, deps.Resolver, deps.Config.LinkDebounce, c.onPreviewChange)
	c.pipeline = ingest.NewPipeline(deps.Queue, deps.Converter, deps.Notifier, c, deps.Config.MaxAttachments)
	c.drag = ingest.NewDragState()
	return c
}

// --------- DRAFT TEXT ---------

// SetText replaces the draft text and feeds both the annotation scanner
// state (on demand, via Detect) and the link detector.
func (c *Composer) SetText(text string) {
	c.mu.Lock()
	c.draft.Text = text
	c.mu.Unlock()
	c.detector.Observe(text)
}

func (c *Composer) Text() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft.Text
}

// OverLength reports whether the text exceeds the character ceiling; the UI
// uses it to warn and disable the submit action.
func (c *Composer) OverLength() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len([]rune(c.draft.Text)) > c.cfg.CharacterCeiling
}

// Detect returns the live tag/mention suggestion state at a caret offset.
func (c *Composer) Detect(caret int) scanner.Result {
	return scanner.Detect(c.Text(), caret)
}

// MentionCandidates filters the injected directory snapshot for the query.
func (c *Composer) MentionCandidates(query string) []common.User {
	return scanner.FilterUsers(c.directory, query)
}

// AcceptSuggestion splices a chosen tag or mention over the in-progress
// token and returns the caret offset where editing resumes.
func (c *Composer) AcceptSuggestion(caret int, value, prefix string) int {
	c.mu.Lock()
	text, newCaret := scanner.Insert(c.draft.Text, caret, value, prefix)
	c.draft.Text = text
	c.mu.Unlock()
	c.detector.Observe(text)
	return newCaret
}

// --------- LINK PREVIEW ---------

func (c *Composer) onPreviewChange(p *common.LinkPreview) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.preview = p
}

// LinkPreview returns the currently tracked preview data, if any.
func (c *Composer) LinkPreview() *common.LinkPreview {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.preview
}

// DisplayPreview is the presentation rule: attached media suppresses the
// preview card even though the draft may carry both.
func (c *Composer) DisplayPreview() *common.LinkPreview {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.draft.Attachments) > 0 {
		return nil
	}
	return c.preview
}

// --------- ATTACHMENTS ---------

// AttachmentCount implements ingest.Sink.
func (c *Composer) AttachmentCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.draft.Attachments)
}

// AppendAttachment implements ingest.Sink. Appends unconditionally: the cap
// was checked when the file was enqueued.
func (c *Composer) AppendAttachment(a common.Attachment) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft.Attachments = append(c.draft.Attachments, a)
}

func (c *Composer) Attachments() []common.Attachment {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]common.Attachment(nil), c.draft.Attachments...)
}

func (c *Composer) RemoveAttachment(index int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= len(c.draft.Attachments) {
		return
	}
	c.draft.Attachments = append(c.draft.Attachments[:index], c.draft.Attachments[index+1:]...)
}

// IngestFiles feeds picked or dropped files through the pipeline.
func (c *Composer) IngestFiles(files []ingest.File) {
	c.pipeline.IngestAll(files)
}

// AddGIF appends a gallery-picked GIF.
func (c *Composer) AddGIF(gifURL string) {
	c.pipeline.AddGIF(gifURL)
}

// ProcessingCount reports in-flight conversions for placeholder slots.
func (c *Composer) ProcessingCount() int {
	return c.pipeline.Processing()
}

// Drag exposes the drop-target state tracker.
func (c *Composer) Drag() *ingest.DragState {
	return c.drag
}

// DropFiles resets the drag visual and ingests the dropped files.
func (c *Composer) DropFiles(files []ingest.File) {
	c.drag.Drop()
	c.pipeline.IngestAll(files)
}

// --------- IMAGE EDITING ---------

// BeginImageEdit opens an adjustment session for the attachment at index.
func (c *Composer) BeginImageEdit(index int) (*imagefx.Editor, error) {
	c.mu.Lock()
	if index < 0 || index >= len(c.draft.Attachments) {
		c.mu.Unlock()
		return nil, fmt.Errorf("no attachment at index %d", index)
	}
	att := c.draft.Attachments[index]
	c.mu.Unlock()

	editor := imagefx.NewEditor(c.queue, c.cfg.JPEGQuality)
	if err := editor.Begin(att); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.editor = editor
	c.editIndex = index
	c.mu.Unlock()
	return editor, nil
}

// CommitImageEdit saves the open session and swaps the replacement in at the
// same index, kind preserved.
func (c *Composer) CommitImageEdit() error {
	c.mu.Lock()
	editor := c.editor
	index := c.editIndex
	c.mu.Unlock()
	if editor == nil {
		return fmt.Errorf("no edit session open")
	}

	saved, err := editor.Save()
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if index >= 0 && index < len(c.draft.Attachments) {
		c.draft.Attachments[index] = saved
	}
	c.editor = nil
	c.editIndex = -1
	return nil
}

// CancelImageEdit discards the open session; the attachment is untouched.
func (c *Composer) CancelImageEdit() {
	c.mu.Lock()
	editor := c.editor
	c.editor = nil
	c.editIndex = -1
	c.mu.Unlock()
	if editor != nil {
		editor.Cancel()
	}
}

// --------- TOGGLES ---------

func (c *Composer) ToggleMint() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft.Mint = !c.draft.Mint
}

func (c *Composer) Minted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft.Mint
}

func (c *Composer) SetSchedule(at time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft.ScheduledAt = &at
}

func (c *Composer) ClearSchedule() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft.ScheduledAt = nil
}

func (c *Composer) SetLocation(label string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft.Location = label
}

func (c *Composer) SetQuote(q *common.QuotedPost) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft.Quote = q
}

func (c *Composer) ClearQuote() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft.Quote = nil
}

// Expand engages the composition surface.
func (c *Composer) Expand() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expanded = true
}

// Expanded is observed by the presentation layer; a successful submission
// collapses the surface.
func (c *Composer) Expanded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.expanded
}

// --------- DICTATION ---------

// StartDictation begins the external transcript stream. Platforms without
// speech support get an error notification and nothing else.
func (c *Composer) StartDictation() {
	if c.recognizer == nil {
		c.notifier.Notify(common.SeverityError, "Dictation is not supported on this device")
		return
	}

	c.mu.Lock()
	if c.dictating {
		c.mu.Unlock()
		return
	}
	c.dictating = true
	c.mu.Unlock()

	err := c.recognizer.Start(
		func(partial string) {
			c.queue.Post(func() {
				c.mu.Lock()
				c.interim = partial
				c.mu.Unlock()
			})
		},
		func(final string) {
			c.queue.Post(func() { c.commitTranscript(final) })
		},
	)
	if err != nil {
		c.mu.Lock()
		c.dictating = false
		c.mu.Unlock()
		c.notifier.Notify(common.SeverityError, "Dictation is not supported on this device")
	}
}

func (c *Composer) commitTranscript(final string) {
	c.mu.Lock()
	c.interim = ""
	if isBlank(final) {
		c.mu.Unlock()
		return
	}
	if c.draft.Text == "" {
		c.draft.Text = final
	} else {
		c.draft.Text = c.draft.Text + " " + final
	}
	text := c.draft.Text
	c.mu.Unlock()
	c.detector.Observe(text)
}

// InterimTranscript is the not-yet-final dictation segment for display.
func (c *Composer) InterimTranscript() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.interim
}

// StopDictation ends the stream; also called on teardown.
func (c *Composer) StopDictation() {
	c.mu.Lock()
	wasDictating := c.dictating
	c.dictating = false
	c.interim = ""
	c.mu.Unlock()
	if wasDictating && c.recognizer != nil {
		c.recognizer.Stop()
	}
}

// --------- AUTOSAVE ---------

// SaveDraft snapshots the in-progress draft through the configured store.
func (c *Composer) SaveDraft(ctx context.Context) error {
	if c.store == nil {
		return nil
	}
	c.mu.Lock()
	snap := c.draft.snapshot(c.authorID)
	c.mu.Unlock()
	return c.store.Save(ctx, snap)
}

// RestoreDraft loads the latest autosaved snapshot, if any.
func (c *Composer) RestoreDraft(ctx context.Context) error {
	if c.store == nil {
		return nil
	}
	snap, err := c.store.Latest(ctx, c.authorID)
	if err != nil {
		return err
	}
	if snap == nil {
		return nil
	}

	c.mu.Lock()
	c.draft.restore(snap)
	text := c.draft.Text
	c.mu.Unlock()
	c.detector.Observe(text)
	return nil
}

// Close tears the composer down: pending link resolution and dictation are
// cancelled.
func (c *Composer) Close() {
	c.detector.Stop()
	c.StopDictation()
}
