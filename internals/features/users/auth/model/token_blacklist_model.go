package model

import (
	"time"

	"gorm.io/gorm"
)

// TokenBlacklist holds access tokens revoked by logout until they expire.
type TokenBlacklist struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Token     string         `gorm:"type:text;not null;uniqueIndex:uq_token_blacklist_token" json:"token"`
	ExpiredAt time.Time      `gorm:"type:timestamptz;not null;index:idx_token_blacklist_expired" json:"expired_at"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (TokenBlacklist) TableName() string {
	return "token_blacklist"
}
