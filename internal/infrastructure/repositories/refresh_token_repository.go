package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Pratham3232/Market-Place-Mobile-Application-Backend/domain"
)

// RefreshTokenRepositoryImpl implements domain.RefreshTokenRepository
// using GORM. One row per issued refresh token; a user may hold several
// concurrently (multi-device).
type RefreshTokenRepositoryImpl struct {
	db *gorm.DB
}

// DBRefreshToken represents the database model for RefreshToken
type DBRefreshToken struct {
	Token     string    `gorm:"primaryKey;size:64"`
	UserID    uint      `gorm:"index"`
	ExpiresAt time.Time `gorm:"index"`
	CreatedAt time.Time
}

// TableName returns the table name for GORM
func (DBRefreshToken) TableName() string {
	return "refresh_tokens"
}

// NewRefreshTokenRepository creates a new refresh token repository
func NewRefreshTokenRepository(db *gorm.DB) domain.RefreshTokenRepository {
	return &RefreshTokenRepositoryImpl{db: db}
}

// Create implements domain.RefreshTokenRepository
func (r *RefreshTokenRepositoryImpl) Create(ctx context.Context, token *domain.RefreshToken) error {
	row := &DBRefreshToken{
		Token:     token.Token,
		UserID:    token.UserID,
		ExpiresAt: token.ExpiresAt,
	}
	return r.db.WithContext(ctx).Create(row).Error
}

// FindByToken implements domain.RefreshTokenRepository. Expiry is not
// checked here; callers must compare ExpiresAt against now.
func (r *RefreshTokenRepositoryImpl) FindByToken(ctx context.Context, token string) (*domain.RefreshToken, error) {
	var row DBRefreshToken
	err := r.db.WithContext(ctx).Where("token = ?", token).First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrRefreshTokenInvalid
		}
		return nil, err
	}
	return &domain.RefreshToken{
		Token:     row.Token,
		UserID:    row.UserID,
		ExpiresAt: row.ExpiresAt,
		CreatedAt: row.CreatedAt,
	}, nil
}

// DeleteByToken implements domain.RefreshTokenRepository
func (r *RefreshTokenRepositoryImpl) DeleteByToken(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).Where("token = ?", token).Delete(&DBRefreshToken{}).Error
}

// DeleteByUser implements domain.RefreshTokenRepository
func (r *RefreshTokenRepositoryImpl) DeleteByUser(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&DBRefreshToken{}).Error
}
