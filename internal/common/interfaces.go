package common

import (
	"context"
)

// PostSink is the external collaborator that owns actual post creation.
type PostSink interface {
	CreatePost(ctx context.Context, payload *SubmissionPayload) error
}

// Notifier is the external notification sink for user-facing messages.
type Notifier interface {
	Notify(severity Severity, message string)
}

// WalletFunc reports the caller's available balance, used only for the
// mint-affordability check.
type WalletFunc func() float64

// SpeechRecognizer delivers incremental and final transcript events from an
// external dictation stream. Start returns an error when the platform has no
// speech-recognition support. Stop is idempotent.
type SpeechRecognizer interface {
	Start(onPartial func(text string), onFinal func(text string)) error
	Stop()
}

// DraftStore persists draft snapshots for autosave/restore. Implemented by
// dbmysql; the composer only sees this interface.
type DraftStore interface {
	Save(ctx context.Context, snapshot *DraftSnapshot) error
	Latest(ctx context.Context, authorID string) (*DraftSnapshot, error)
	Delete(ctx context.Context, authorID string) error
}

// DraftSnapshot is the persistable shape of an in-progress draft.
type DraftSnapshot struct {
	AuthorID    string       `json:"author_id"`
	Text        string       `json:"text"`
	Attachments []Attachment `json:"attachments,omitempty"`
	PollOptions []string     `json:"poll_options,omitempty"`
	Location    string       `json:"location,omitempty"`
	MintFlag    bool         `json:"mint_flag,omitempty"`
}
