package composer

import (
	"context"
	"fmt"

	"feedcompose/internal/common"
)

// Submit assembles the draft into one immutable payload and hands it to the
// post sink. Returns true only when a payload was emitted; every rejection
// path leaves the draft exactly as it was.
func (c *Composer) Submit(ctx context.Context) bool {
	c.mu.Lock()

	if c.draft.IsEmpty() || len([]rune(c.draft.Text)) > c.cfg.CharacterCeiling {
		c.mu.Unlock()
		return false
	}

	if c.draft.Mint && c.wallet() < c.cfg.MintCost {
		c.mu.Unlock()
		c.notifier.Notify(common.SeverityError,
			fmt.Sprintf("Minting costs %.0f and your balance is too low", c.cfg.MintCost))
		return false
	}

	payload := c.buildPayload()
	c.mu.Unlock()

	if err := c.sink.CreatePost(ctx, payload); err != nil {
		c.notifier.Notify(common.SeverityError, "Could not create post")
		return false
	}

	c.reset(ctx)
	c.notifier.Notify(common.SeveritySuccess, "Your post is live")
	return true
}

// buildPayload strips internal-only attachment fields and pulls the current
// poll, preview, quote and schedule into one value. Caller holds the lock.
func (c *Composer) buildPayload() *common.SubmissionPayload {
	var media []common.MediaItem
	for _, a := range c.draft.Attachments {
		media = append(media, common.MediaItem{Kind: a.Kind, Ref: a.Ref})
	}

	var quotedID *string
	if c.draft.Quote != nil {
		id := c.draft.Quote.ID
		quotedID = &id
	}

	var preview *common.LinkPreview
	if c.preview != nil {
		p := *c.preview
		preview = &p
	}

	var scheduledAt = c.draft.ScheduledAt
	if scheduledAt != nil {
		at := *scheduledAt
		scheduledAt = &at
	}

	return &common.SubmissionPayload{
		Content:      c.draft.Text,
		Media:        media,
		QuotedPostID: quotedID,
		Poll:         derivePoll(c.draft.PollOpen, c.draft.PollOptions, c.cfg.PollDuration),
		LinkPreview:  preview,
		IsMinted:     c.draft.Mint,
		ScheduledAt:  scheduledAt,
		Location:     c.draft.Location,
	}
}

// reset clears the entire draft back to its initial state and collapses the
// composition surface.
func (c *Composer) reset(ctx context.Context) {
	c.mu.Lock()
	c.draft = emptyDraft()
	c.preview = nil
	c.expanded = false
	c.interim = ""
	c.mu.Unlock()

	c.detector.Observe("")

	if c.store != nil {
		if err := c.store.Delete(ctx, c.authorID); err != nil {
			// autosave cleanup is best effort
			c.notifier.Notify(common.SeverityInfo, "Draft autosave could not be cleared")
		}
	}
}
