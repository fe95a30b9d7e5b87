// file: internals/features/ads/advertisements/repository/advertisement_repository.go
package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	adDTO "aptads_backend/internals/features/ads/advertisements/dto"
)

const rowSelect = `
	a.advertisement_id, a.advertisement_advertiser_id, a.advertisement_title,
	a.advertisement_image_url, a.advertisement_link_url, a.advertisement_apartment_ids,
	a.advertisement_is_active, a.advertisement_start_date, a.advertisement_end_date,
	a.advertisement_created_at, a.advertisement_updated_at,
	adv.advertiser_business_name, adv.advertiser_is_active, adv.advertiser_contract_end_date,
	adv.advertiser_deleted_at`

// The join keeps soft-deleted advertisers so their gate still applies.
func baseQuery(ctx context.Context, db *gorm.DB) *gorm.DB {
	return db.WithContext(ctx).
		Table("advertisements AS a").
		Select(rowSelect).
		Joins("LEFT JOIN advertisers AS adv ON adv.advertiser_id = a.advertisement_advertiser_id").
		Where("a.advertisement_deleted_at IS NULL")
}

// ListRows loads joined rows; advertiserID narrows the scan when set.
func ListRows(ctx context.Context, db *gorm.DB, advertiserID *uuid.UUID) ([]adDTO.AdvertisementRow, error) {
	q := baseQuery(ctx, db)
	if advertiserID != nil {
		q = q.Where("a.advertisement_advertiser_id = ?", *advertiserID)
	}
	var rows []adDTO.AdvertisementRow
	if err := q.Order("a.advertisement_created_at DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func GetRow(ctx context.Context, db *gorm.DB, id uuid.UUID) (*adDTO.AdvertisementRow, error) {
	var rows []adDTO.AdvertisementRow
	if err := baseQuery(ctx, db).Where("a.advertisement_id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}

// AdvertiserExists checks a live (not soft-deleted) advertiser.
func AdvertiserExists(ctx context.Context, db *gorm.DB, id uuid.UUID) (bool, error) {
	var exists bool
	err := db.WithContext(ctx).
		Raw(`SELECT EXISTS(SELECT 1 FROM advertisers WHERE advertiser_id = ? AND advertiser_deleted_at IS NULL)`, id).
		Scan(&exists).Error
	return exists, err
}
