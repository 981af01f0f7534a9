package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"tokentab/contexts/finance-core/lending-ledger-service/domain/entities"
	domainerrors "tokentab/contexts/finance-core/lending-ledger-service/domain/errors"
)

type lendingRecordModel struct {
	RecordID         string    `gorm:"column:record_id;primaryKey"`
	LenderUserID     string    `gorm:"column:lender_user_id;index;not null"`
	PersonName       string    `gorm:"column:person_name;not null"`
	TokenCount       int64     `gorm:"column:token_count;not null"`
	TotalTokensLent  int64     `gorm:"column:total_tokens_lent;not null"`
	AcceptanceStatus string    `gorm:"column:acceptance_status;not null"`
	Version          int64     `gorm:"column:version;not null"`
	CreatedAt        time.Time `gorm:"column:created_at;not null"`
	UpdatedAt        time.Time `gorm:"column:updated_at;not null"`
}

func (lendingRecordModel) TableName() string { return "lending_records" }

func (m lendingRecordModel) toEntity() entities.LendingRecord {
	return entities.LendingRecord{
		RecordID:         m.RecordID,
		LenderUserID:     m.LenderUserID,
		PersonName:       m.PersonName,
		TokenCount:       m.TokenCount,
		TotalTokensLent:  m.TotalTokensLent,
		AcceptanceStatus: entities.AcceptanceStatus(m.AcceptanceStatus),
		Version:          m.Version,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func toModel(record entities.LendingRecord) lendingRecordModel {
	return lendingRecordModel{
		RecordID:         record.RecordID,
		LenderUserID:     record.LenderUserID,
		PersonName:       record.PersonName,
		TokenCount:       record.TokenCount,
		TotalTokensLent:  record.TotalTokensLent,
		AcceptanceStatus: string(record.AcceptanceStatus),
		Version:          record.Version,
		CreatedAt:        record.CreatedAt,
		UpdatedAt:        record.UpdatedAt,
	}
}

// Repository persists lending records in Postgres via gorm.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) ListByLender(ctx context.Context, lenderUserID string) ([]entities.LendingRecord, error) {
	var rows []lendingRecordModel
	err := r.db.WithContext(ctx).
		Where("lender_user_id = ?", lenderUserID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	records := make([]entities.LendingRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.toEntity())
	}
	return records, nil
}

func (r *Repository) GetRecord(ctx context.Context, recordID string) (entities.LendingRecord, error) {
	var row lendingRecordModel
	err := r.db.WithContext(ctx).Where("record_id = ?", recordID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.LendingRecord{}, domainerrors.ErrRecordNotFound
	}
	if err != nil {
		return entities.LendingRecord{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) CreateRecord(ctx context.Context, record entities.LendingRecord) error {
	row := toModel(record)
	err := r.db.WithContext(ctx).Create(&row).Error
	if isUniqueViolation(err) {
		return domainerrors.ErrInvalidRecordInput
	}
	return err
}

// UpdateRecord matches on the previous version so concurrent writers
// lose deterministically instead of overwriting each other.
func (r *Repository) UpdateRecord(ctx context.Context, record entities.LendingRecord) error {
	row := toModel(record)
	result := r.db.WithContext(ctx).
		Model(&lendingRecordModel{}).
		Where("record_id = ? AND version = ?", record.RecordID, record.Version-1).
		Updates(map[string]any{
			"person_name":       row.PersonName,
			"token_count":       row.TokenCount,
			"total_tokens_lent": row.TotalTokensLent,
			"acceptance_status": row.AcceptanceStatus,
			"version":           row.Version,
			"updated_at":        row.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		if _, err := r.GetRecord(ctx, record.RecordID); errors.Is(err, domainerrors.ErrRecordNotFound) {
			return domainerrors.ErrRecordNotFound
		}
		return domainerrors.ErrConcurrentUpdate
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
