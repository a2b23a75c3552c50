package dbmysql

import (
	"time"

	"feedcompose/internal/common"
)

// DraftRecord is one autosaved snapshot of an in-progress post.
type DraftRecord struct {
	ID          uint                `gorm:"primaryKey;autoIncrement;column:draft_id"`
	AuthorID    string              `gorm:"index;column:author_id"`
	Text        string              `gorm:"type:text;column:text"`
	Attachments []common.Attachment `gorm:"serializer:json;column:attachments"`
	PollOptions []string            `gorm:"serializer:json;column:poll_options"`
	Location    string              `gorm:"column:location"`
	MintFlag    bool                `gorm:"column:mint_flag"`
	SavedAt     time.Time           `gorm:"column:saved_at"`
}

func (DraftRecord) TableName() string {
	return "draft_autosaves"
}

func recordFromSnapshot(s *common.DraftSnapshot) *DraftRecord {
	return &DraftRecord{
		AuthorID:    s.AuthorID,
		Text:        s.Text,
		Attachments: s.Attachments,
		PollOptions: s.PollOptions,
		Location:    s.Location,
		MintFlag:    s.MintFlag,
		SavedAt:     time.Now(),
	}
}

func (r *DraftRecord) snapshot() *common.DraftSnapshot {
	return &common.DraftSnapshot{
		AuthorID:    r.AuthorID,
		Text:        r.Text,
		Attachments: r.Attachments,
		PollOptions: r.PollOptions,
		Location:    r.Location,
		MintFlag:    r.MintFlag,
	}
}
