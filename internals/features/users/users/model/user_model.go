package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel is an admin console account.
type UserModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName    string         `gorm:"size:50;not null" json:"user_name"`
	Email       string         `gorm:"size:255;not null;uniqueIndex:uq_users_email,where:deleted_at IS NULL" json:"email"`
	Password    string         `gorm:"not null" json:"-"`
	Role        string         `gorm:"type:varchar(20);not null;default:'manager'" json:"role"`
	IsActive    bool           `gorm:"not null;default:true" json:"is_active"`
	LastLoginAt *time.Time     `gorm:"type:timestamptz" json:"last_login_at,omitempty"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (UserModel) TableName() string {
	return "users"
}
