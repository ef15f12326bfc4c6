package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	UserName     string    `gorm:"column:user_name;type:varchar(100);not null" json:"user_name"`
	UserEmail    string    `gorm:"column:user_email;type:varchar(255);not null;uniqueIndex" json:"user_email"`
	UserPassword string    `gorm:"column:user_password;type:varchar(255);not null" json:"-"`
	UserRole     string    `gorm:"column:user_role;type:varchar(20);not null;default:'admin'" json:"user_role"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"-"`
}

func (UserModel) TableName() string { return "users" }

// TokenBlacklist holds revoked access tokens until they expire.
type TokenBlacklist struct {
	TokenBlacklistID        uuid.UUID      `gorm:"column:token_blacklist_id;type:uuid;default:gen_random_uuid();primaryKey" json:"token_blacklist_id"`
	TokenBlacklistToken     string         `gorm:"column:token;type:text;not null;index" json:"token"`
	TokenBlacklistExpiresAt time.Time      `gorm:"column:expires_at;not null" json:"expires_at"`
	TokenBlacklistCreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	TokenBlacklistDeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (TokenBlacklist) TableName() string { return "token_blacklist" }
