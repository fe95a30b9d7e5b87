// file: internals/features/users/auth/repository/auth_repository.go
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	authModel "aptads_backend/internals/features/users/auth/model"
	userModel "aptads_backend/internals/features/users/users/model"
)

/* ====================== USER ====================== */

func FindUserByEmail(ctx context.Context, db *gorm.DB, email string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.WithContext(ctx).Where("id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func UpdateUserPassword(ctx context.Context, db *gorm.DB, userID uuid.UUID, hash string) error {
	return db.WithContext(ctx).Model(&userModel.UserModel{}).
		Where("id = ?", userID).
		Update("password", hash).Error
}

func TouchLastLogin(ctx context.Context, db *gorm.DB, userID uuid.UUID, at time.Time) error {
	return db.WithContext(ctx).Model(&userModel.UserModel{}).
		Where("id = ?", userID).
		UpdateColumn("last_login_at", at).Error
}

/* ====================== BLACKLIST TOKEN ====================== */

// BlacklistToken is idempotent: a token already listed is left as is.
func BlacklistToken(ctx context.Context, db *gorm.DB, token string, expiredAt time.Time) error {
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "token"}}, DoNothing: true}).
		Create(&authModel.TokenBlacklist{Token: token, ExpiredAt: expiredAt.UTC()}).Error
}

func IsTokenBlacklisted(ctx context.Context, db *gorm.DB, token string) (bool, error) {
	var n int64
	err := db.WithContext(ctx).Model(&authModel.TokenBlacklist{}).
		Where("token = ?", token).
		Count(&n).Error
	return n > 0, err
}

// CleanupExpiredBlacklist hard-deletes entries that expired before `before`.
func CleanupExpiredBlacklist(ctx context.Context, db *gorm.DB, before time.Time) (int64, error) {
	res := db.WithContext(ctx).Unscoped().
		Where("expired_at < ?", before.UTC()).
		Delete(&authModel.TokenBlacklist{})
	return res.RowsAffected, res.Error
}
