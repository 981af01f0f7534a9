package audit

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

type auditEntryModel struct {
	EntryID   string    `gorm:"column:entry_id;primaryKey"`
	Level     string    `gorm:"column:level;not null"`
	Action    string    `gorm:"column:action;index;not null"`
	Message   string    `gorm:"column:message;not null"`
	UserID    string    `gorm:"column:user_id;index;not null"`
	Details   []byte    `gorm:"column:details;type:jsonb"`
	CreatedAt time.Time `gorm:"column:created_at;index;not null"`
}

func (auditEntryModel) TableName() string { return "audit_entries" }

// PostgresStore persists audit entries in Postgres via gorm.
type PostgresStore struct {
	db *gorm.DB
}

func NewPostgresStore(db *gorm.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Append(ctx context.Context, entry Entry) error {
	details, err := json.Marshal(entry.Details)
	if err != nil {
		return err
	}
	row := auditEntryModel{
		EntryID:   entry.EntryID,
		Level:     string(entry.Level),
		Action:    entry.Action,
		Message:   entry.Message,
		UserID:    entry.UserID,
		Details:   details,
		CreatedAt: entry.CreatedAt,
	}
	return s.db.WithContext(ctx).Create(&row).Error
}

func (s *PostgresStore) PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&auditEntryModel{})
	return result.RowsAffected, result.Error
}
