// file: internals/features/apartments/apartments/model/apartment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApartmentModel struct {
	ApartmentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:apartment_id" json:"apartment_id"`

	ApartmentName           string `gorm:"type:varchar(120);not null;column:apartment_name" json:"apartment_name"`
	ApartmentAddress        string `gorm:"type:text;not null;default:'';column:apartment_address" json:"apartment_address"`
	ApartmentHouseholdCount int    `gorm:"not null;default:0;column:apartment_household_count" json:"apartment_household_count"`

	// Location (nullable); geohash is derived on save
	ApartmentLatitude  *float64 `gorm:"column:apartment_latitude" json:"apartment_latitude,omitempty"`
	ApartmentLongitude *float64 `gorm:"column:apartment_longitude" json:"apartment_longitude,omitempty"`
	ApartmentGeohash   *string  `gorm:"type:varchar(12);index;column:apartment_geohash" json:"apartment_geohash,omitempty"`

	ApartmentIsActive bool `gorm:"not null;default:true;column:apartment_is_active" json:"apartment_is_active"`

	ApartmentCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:apartment_created_at" json:"apartment_created_at"`
	ApartmentUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:apartment_updated_at" json:"apartment_updated_at"`
	ApartmentDeletedAt gorm.DeletedAt `gorm:"column:apartment_deleted_at;index" json:"-"`
}

func (ApartmentModel) TableName() string { return "apartments" }
