package common

import (
	"time"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// Attachment is one ingested media item. Ref is a self-contained displayable
// reference (data URI or served URL); index 0 in the draft's list is the cover.
type Attachment struct {
	ID        string    `json:"id"`
	Kind      MediaKind `json:"kind"`
	Ref       string    `json:"ref"`
	Name      string    `json:"name"`
	SizeLabel string    `json:"size_label"`
}

// LinkPreview is derived metadata for the single URL tracked in the draft text.
type LinkPreview struct {
	URL         string `json:"url"`
	Domain      string `json:"domain"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// User is one entry of the injected directory snapshot used for
// mention suggestions.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Handle    string `json:"handle"`
	AvatarURL string `json:"avatar_url"`
}

// QuotedPost is the externally supplied reference when composing a quote.
type QuotedPost struct {
	ID       string `json:"id"`
	Content  string `json:"content"`
	UserName string `json:"user_name"`
	Avatar   string `json:"avatar"`
}

type PollOption struct {
	Text  string `json:"text"`
	Votes int    `json:"votes"`
}

type PollPayload struct {
	Options  []PollOption  `json:"options"`
	Duration time.Duration `json:"duration"`
}

// MediaItem is the external shape of an attachment inside a submission
// payload: internal bookkeeping fields are stripped, kind and reference kept.
type MediaItem struct {
	Kind MediaKind `json:"kind"`
	Ref  string    `json:"ref"`
}

// SubmissionPayload is the single immutable value handed to the post sink.
type SubmissionPayload struct {
	Content      string       `json:"content"`
	Media        []MediaItem  `json:"media,omitempty"`
	QuotedPostID *string      `json:"quoted_post_id,omitempty"`
	Poll         *PollPayload `json:"poll,omitempty"`
	LinkPreview  *LinkPreview `json:"link_preview,omitempty"`
	IsMinted     bool         `json:"is_minted,omitempty"`
	ScheduledAt  *time.Time   `json:"scheduled_at,omitempty"`
	Location     string       `json:"location,omitempty"`
}
