// file: internals/features/ads/advertisements/model/advertisement_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Status is derived at read time and never stored.
type AdvertisementModel struct {
	AdvertisementID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:advertisement_id" json:"advertisement_id"`
	AdvertisementAdvertiserID uuid.UUID `gorm:"type:uuid;not null;index;column:advertisement_advertiser_id" json:"advertisement_advertiser_id"`

	AdvertisementTitle    string  `gorm:"type:varchar(160);not null;column:advertisement_title" json:"advertisement_title"`
	AdvertisementImageURL *string `gorm:"type:text;column:advertisement_image_url" json:"advertisement_image_url,omitempty"`
	AdvertisementLinkURL  *string `gorm:"type:text;column:advertisement_link_url" json:"advertisement_link_url,omitempty"`

	// Screens the ad plays on
	AdvertisementApartmentIDs pq.StringArray `gorm:"type:text[];not null;default:'{}';column:advertisement_apartment_ids" json:"advertisement_apartment_ids"`

	AdvertisementIsActive  bool      `gorm:"not null;default:true;column:advertisement_is_active" json:"advertisement_is_active"`
	AdvertisementStartDate time.Time `gorm:"type:timestamptz;not null;column:advertisement_start_date" json:"advertisement_start_date"`
	AdvertisementEndDate   time.Time `gorm:"type:timestamptz;not null;column:advertisement_end_date" json:"advertisement_end_date"`

	AdvertisementCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:advertisement_created_at" json:"advertisement_created_at"`
	AdvertisementUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:advertisement_updated_at" json:"advertisement_updated_at"`
	AdvertisementDeletedAt gorm.DeletedAt `gorm:"column:advertisement_deleted_at;index" json:"-"`
}

func (AdvertisementModel) TableName() string { return "advertisements" }
