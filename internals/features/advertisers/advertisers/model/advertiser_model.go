// file: internals/features/advertisers/advertisers/model/advertiser_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =========================================================
   ENUM: AdvertiserKind
========================================================= */

type AdvertiserKind string

const (
	AdvertiserKindNeighborhood AdvertiserKind = "neighborhood"
	AdvertiserKindRegion       AdvertiserKind = "region"
)

func (k AdvertiserKind) Valid() bool {
	switch k {
	case AdvertiserKindNeighborhood, AdvertiserKindRegion:
		return true
	default:
		return false
	}
}

// AdvertiserRegion is one entry of advertiser_regions (jsonb).
type AdvertiserRegion struct {
	Sido    string `json:"sido"`
	Sigungu string `json:"sigungu,omitempty"`
	Dong    string `json:"dong,omitempty"`
}

/* =========================================================
   MODEL: advertisers
========================================================= */

type AdvertiserModel struct {
	AdvertiserID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:advertiser_id" json:"advertiser_id"`

	AdvertiserBusinessName string         `gorm:"type:varchar(160);not null;column:advertiser_business_name" json:"advertiser_business_name"`
	AdvertiserKind         AdvertiserKind `gorm:"type:varchar(16);not null;column:advertiser_kind" json:"advertiser_kind"`

	// Targeting: apartments (neighborhood) or administrative regions (region)
	AdvertiserApartmentIDs pq.StringArray                        `gorm:"type:text[];not null;default:'{}';column:advertiser_apartment_ids" json:"advertiser_apartment_ids"`
	AdvertiserRegions      datatypes.JSONSlice[AdvertiserRegion] `gorm:"type:jsonb;not null;default:'[]';column:advertiser_regions" json:"advertiser_regions"`

	// Denormalized keyword index, recomputed on every write
	AdvertiserSearchTags pq.StringArray `gorm:"type:text[];not null;default:'{}';index:idx_advertisers_search_tags,type:gin;column:advertiser_search_tags" json:"advertiser_search_tags"`

	AdvertiserIsActive          bool       `gorm:"not null;default:true;column:advertiser_is_active" json:"advertiser_is_active"`
	AdvertiserContractStartDate *time.Time `gorm:"type:timestamptz;column:advertiser_contract_start_date" json:"advertiser_contract_start_date,omitempty"`
	AdvertiserContractEndDate   *time.Time `gorm:"type:timestamptz;column:advertiser_contract_end_date" json:"advertiser_contract_end_date,omitempty"`

	AdvertiserContactName  *string `gorm:"type:varchar(80);column:advertiser_contact_name" json:"advertiser_contact_name,omitempty"`
	AdvertiserContactPhone *string `gorm:"type:varchar(32);column:advertiser_contact_phone" json:"advertiser_contact_phone,omitempty"`

	AdvertiserCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:advertiser_created_at" json:"advertiser_created_at"`
	AdvertiserUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:advertiser_updated_at" json:"advertiser_updated_at"`
	AdvertiserDeletedAt gorm.DeletedAt `gorm:"column:advertiser_deleted_at;index" json:"-"`
}

func (AdvertiserModel) TableName() string { return "advertisers" }
