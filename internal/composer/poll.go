package composer

import (
	"strings"
	"time"

	"feedcompose/internal/common"
)

const (
	minPollSlots = 2
	maxPollSlots = 5
)

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// OpenPoll shows the poll builder with the minimum two blank slots.
// Attachments are untouched; poll and media may coexist in the payload.
func (c *Composer) OpenPoll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.draft.PollOpen {
		return
	}
	c.draft.PollOpen = true
	c.draft.PollOptions = make([]string, minPollSlots)
}

// ClosePoll hides the builder and drops its slots.
func (c *Composer) ClosePoll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft.PollOpen = false
	c.draft.PollOptions = nil
}

func (c *Composer) PollOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft.PollOpen
}

func (c *Composer) PollOptions() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.draft.PollOptions...)
}

// SetPollOption writes one slot's text. Out-of-range indexes are ignored.
func (c *Composer) SetPollOption(index int, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.draft.PollOpen || index < 0 || index >= len(c.draft.PollOptions) {
		return
	}
	c.draft.PollOptions[index] = text
}

// AddPollSlot appends a blank slot up to the five-slot limit.
func (c *Composer) AddPollSlot() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.draft.PollOpen || len(c.draft.PollOptions) >= maxPollSlots {
		return
	}
	c.draft.PollOptions = append(c.draft.PollOptions, "")
}

// RemovePollSlot deletes one slot but never below the two-slot minimum.
func (c *Composer) RemovePollSlot(index int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	opts := c.draft.PollOptions
	if !c.draft.PollOpen || len(opts) <= minPollSlots || index < 0 || index >= len(opts) {
		return
	}
	c.draft.PollOptions = append(opts[:index], opts[index+1:]...)
}

// derivePoll builds the submission poll: blank slots are dropped, votes
// start at zero, and fewer than two non-blank options omits the poll
// entirely. Caller holds the lock.
func derivePoll(open bool, options []string, duration time.Duration) *common.PollPayload {
	if !open {
		return nil
	}

	var kept []common.PollOption
	for _, opt := range options {
		if isBlank(opt) {
			continue
		}
		kept = append(kept, common.PollOption{Text: opt, Votes: 0})
	}
	if len(kept) < minPollSlots {
		return nil
	}
	return &common.PollPayload{Options: kept, Duration: duration}
}
