// file: internals/features/ads/banners/model/banner_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================================
   ENUM: BannerPosition
========================================================= */

type BannerPosition string

const (
	BannerPositionHomeTop    BannerPosition = "home_top"
	BannerPositionHomeMiddle BannerPosition = "home_middle"
	BannerPositionPopup      BannerPosition = "popup"
)

func (p BannerPosition) Valid() bool {
	switch p {
	case BannerPositionHomeTop, BannerPositionHomeMiddle, BannerPositionPopup:
		return true
	default:
		return false
	}
}

/* =========================================================
   MODEL: banners
========================================================= */

type BannerModel struct {
	BannerID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:banner_id" json:"banner_id"`

	// Optional sponsor; house banners have none
	BannerAdvertiserID *uuid.UUID `gorm:"type:uuid;index;column:banner_advertiser_id" json:"banner_advertiser_id,omitempty"`

	BannerTitle     string         `gorm:"type:varchar(160);not null;column:banner_title" json:"banner_title"`
	BannerLinkURL   *string        `gorm:"type:text;column:banner_link_url" json:"banner_link_url,omitempty"`
	BannerPosition  BannerPosition `gorm:"type:varchar(24);not null;default:'home_top';index;column:banner_position" json:"banner_position"`
	BannerSortOrder int            `gorm:"not null;default:0;column:banner_sort_order" json:"banner_sort_order"`

	// Image (OSS)
	BannerImageURL           *string `gorm:"type:text;column:banner_image_url" json:"banner_image_url,omitempty"`
	BannerImageObjectKey     *string `gorm:"type:text;column:banner_image_object_key" json:"banner_image_object_key,omitempty"`
	BannerThumbnailURL       *string `gorm:"type:text;column:banner_thumbnail_url" json:"banner_thumbnail_url,omitempty"`
	BannerThumbnailObjectKey *string `gorm:"type:text;column:banner_thumbnail_object_key" json:"banner_thumbnail_object_key,omitempty"`

	BannerIsActive  bool      `gorm:"not null;default:true;column:banner_is_active" json:"banner_is_active"`
	BannerStartDate time.Time `gorm:"type:timestamptz;not null;column:banner_start_date" json:"banner_start_date"`
	BannerEndDate   time.Time `gorm:"type:timestamptz;not null;column:banner_end_date" json:"banner_end_date"`

	BannerCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:banner_created_at" json:"banner_created_at"`
	BannerUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:banner_updated_at" json:"banner_updated_at"`
	BannerDeletedAt gorm.DeletedAt `gorm:"column:banner_deleted_at;index" json:"-"`
}

func (BannerModel) TableName() string { return "banners" }
