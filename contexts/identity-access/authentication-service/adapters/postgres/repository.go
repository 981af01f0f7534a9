package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"tokentab/contexts/identity-access/authentication-service/domain/entities"
)

type userModel struct {
	UserID       string    `gorm:"column:user_id;primaryKey"`
	Email        string    `gorm:"column:email;uniqueIndex;not null"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	Role         string    `gorm:"column:role;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;not null"`
}

func (userModel) TableName() string { return "users" }

func (m userModel) toEntity() entities.User {
	return entities.User{
		UserID:       m.UserID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         m.Role,
		CreatedAt:    m.CreatedAt,
	}
}

type sessionModel struct {
	Token     string    `gorm:"column:token;primaryKey"`
	UserID    string    `gorm:"column:user_id;index;not null"`
	Email     string    `gorm:"column:email;not null"`
	Role      string    `gorm:"column:role;not null"`
	IssuedAt  time.Time `gorm:"column:issued_at;not null"`
	ExpiresAt time.Time `gorm:"column:expires_at;index;not null"`
}

func (sessionModel) TableName() string { return "sessions" }

func (m sessionModel) toEntity() entities.UserSession {
	return entities.UserSession{
		Token:     m.Token,
		UserID:    m.UserID,
		Email:     m.Email,
		Role:      m.Role,
		IssuedAt:  m.IssuedAt,
		ExpiresAt: m.ExpiresAt,
	}
}

// Repository persists users and sessions in Postgres via gorm.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (entities.User, bool, error) {
	var row userModel
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.User{}, false, nil
	}
	if err != nil {
		return entities.User{}, false, err
	}
	return row.toEntity(), true, nil
}

func (r *Repository) PutSession(ctx context.Context, session entities.UserSession) error {
	row := sessionModel{
		Token:     session.Token,
		UserID:    session.UserID,
		Email:     session.Email,
		Role:      session.Role,
		IssuedAt:  session.IssuedAt,
		ExpiresAt: session.ExpiresAt,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *Repository) GetSession(ctx context.Context, token string) (entities.UserSession, bool, error) {
	var row sessionModel
	err := r.db.WithContext(ctx).Where("token = ?", token).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.UserSession{}, false, nil
	}
	if err != nil {
		return entities.UserSession{}, false, err
	}
	return row.toEntity(), true, nil
}

func (r *Repository) DeleteSession(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).Where("token = ?", token).Delete(&sessionModel{}).Error
}

func (r *Repository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at > ? AND expires_at <= ?", time.Time{}, now).
		Delete(&sessionModel{})
	return result.RowsAffected, result.Error
}
