package repositories

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"github.com/Pratham3232/Market-Place-Mobile-Application-Backend/domain"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser represents the database model for User (with GORM tags).
// The role set is persisted as a JSON-encoded text column.
type DBUser struct {
	ID          uint           `gorm:"primaryKey"`
	PhoneNumber string         `gorm:"uniqueIndex;size:32"`
	Roles       string         `gorm:"type:text"`
	CreatedAt   time.Time      `gorm:"index"`
	UpdatedAt   time.Time      `gorm:"index"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "users"
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	dbUser, err := r.domainToDB(user)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		return err
	}
	user.ID = dbUser.ID
	return nil
}

// FindByPhone implements domain.UserRepository
func (r *UserRepositoryImpl) FindByPhone(ctx context.Context, phoneNumber string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("phone_number = ?", phoneNumber).First(&dbUser).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser)
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbUser).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser)
}

// AddRole implements domain.UserRepository. Granting a role the user
// already holds is a no-op.
func (r *UserRepositoryImpl) AddRole(ctx context.Context, userID uint, role string) error {
	user, err := r.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if domain.HasTag(user.Roles, role) {
		return nil
	}
	encoded, err := encodeRoles(append(user.Roles, role))
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", userID).Update("roles", encoded).Error
}

func (r *UserRepositoryImpl) domainToDB(user *domain.User) (*DBUser, error) {
	encoded, err := encodeRoles(user.Roles)
	if err != nil {
		return nil, err
	}
	return &DBUser{
		ID:          user.ID,
		PhoneNumber: user.PhoneNumber,
		Roles:       encoded,
	}, nil
}

func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) (*domain.User, error) {
	roles, err := decodeRoles(dbUser.Roles)
	if err != nil {
		return nil, err
	}
	return &domain.User{
		ID:          dbUser.ID,
		PhoneNumber: dbUser.PhoneNumber,
		Roles:       roles,
		CreatedAt:   dbUser.CreatedAt,
		UpdatedAt:   dbUser.UpdatedAt,
	}, nil
}

func encodeRoles(roles []string) (string, error) {
	if len(roles) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(roles)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeRoles(encoded string) ([]string, error) {
	if encoded == "" {
		return []string{}, nil
	}
	var roles []string
	if err := json.Unmarshal([]byte(encoded), &roles); err != nil {
		return nil, err
	}
	return roles, nil
}
