// file: internals/features/ads/banners/repository/banner_repository.go
package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	bannerDTO "aptads_backend/internals/features/ads/banners/dto"
)

// Soft-deleted advertisers stay joined; see BannerRow.StatusRecord.
func baseQuery(ctx context.Context, db *gorm.DB) *gorm.DB {
	return db.WithContext(ctx).
		Table("banners AS b").
		Select("b.*, adv.advertiser_business_name, adv.advertiser_is_active, adv.advertiser_contract_end_date, adv.advertiser_deleted_at").
		Joins("LEFT JOIN advertisers AS adv ON adv.advertiser_id = b.banner_advertiser_id").
		Where("b.banner_deleted_at IS NULL")
}

// ListRows loads banners, optionally for one position.
func ListRows(ctx context.Context, db *gorm.DB, position string) ([]bannerDTO.BannerRow, error) {
	q := baseQuery(ctx, db)
	if position != "" {
		q = q.Where("b.banner_position = ?", position)
	}
	var rows []bannerDTO.BannerRow
	if err := q.Order("b.banner_sort_order ASC, b.banner_start_date DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func GetRow(ctx context.Context, db *gorm.DB, id uuid.UUID) (*bannerDTO.BannerRow, error) {
	var rows []bannerDTO.BannerRow
	if err := baseQuery(ctx, db).Where("b.banner_id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}
