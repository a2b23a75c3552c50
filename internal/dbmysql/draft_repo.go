package dbmysql

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"feedcompose/internal/common"
)

// DraftRepository persists draft autosaves. It implements common.DraftStore.
type DraftRepository struct {
	db *gorm.DB
}

func NewDraftRepository(db *gorm.DB) *DraftRepository {
	return &DraftRepository{db: db}
}

// Save appends a new snapshot; older snapshots stay until Delete so the most
// recent one can always be restored.
func (r *DraftRepository) Save(ctx context.Context, snapshot *common.DraftSnapshot) error {
	record := recordFromSnapshot(snapshot)
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

// Latest returns the most recent snapshot for the author, or nil when there
// is none.
func (r *DraftRepository) Latest(ctx context.Context, authorID string) (*common.DraftSnapshot, error) {
	var record DraftRecord
	err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("draft_id DESC").
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load draft: %w", err)
	}
	return record.snapshot(), nil
}

// Delete removes every autosave for the author.
func (r *DraftRepository) Delete(ctx context.Context, authorID string) error {
	if err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Delete(&DraftRecord{}).Error; err != nil {
		return fmt.Errorf("delete drafts: %w", err)
	}
	return nil
}
