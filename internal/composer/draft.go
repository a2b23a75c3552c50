package composer

import (
	"time"

	"feedcompose/internal/common"
)

// Draft is the mutable in-progress post. Created empty when the composition
// surface is first engaged and reset to empty right after a successful
// submission.
type Draft struct {
	Text        string
	Attachments []common.Attachment
	PollOpen    bool
	PollOptions []string
	ScheduledAt *time.Time
	Location    string
	Mint        bool
	Quote       *common.QuotedPost
}

func emptyDraft() Draft {
	return Draft{}
}

// IsEmpty reports whether the draft carries nothing submittable: blank text,
// no attachments, no quote, poll builder closed.
func (d *Draft) IsEmpty() bool {
	return isBlank(d.Text) && len(d.Attachments) == 0 && d.Quote == nil && !d.PollOpen
}

func (d *Draft) snapshot(authorID string) *common.DraftSnapshot {
	attachments := make([]common.Attachment, len(d.Attachments))
	copy(attachments, d.Attachments)
	options := make([]string, len(d.PollOptions))
	copy(options, d.PollOptions)

	return &common.DraftSnapshot{
		AuthorID:    authorID,
		Text:        d.Text,
		Attachments: attachments,
		PollOptions: options,
		Location:    d.Location,
		MintFlag:    d.Mint,
	}
}

func (d *Draft) restore(s *common.DraftSnapshot) {
	d.Text = s.Text
	d.Attachments = append([]common.Attachment(nil), s.Attachments...)
	d.PollOptions = append([]string(nil), s.PollOptions...)
	d.PollOpen = len(s.PollOptions) > 0
	d.Location = s.Location
	d.Mint = s.MintFlag
}
