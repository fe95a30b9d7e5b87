// file: internals/features/apartments/apartments/dto/apartment_dto.go
package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"aptads_backend/internals/features/apartments/apartments/model"
	"aptads_backend/internals/features/apartments/apartments/service"
	helper "aptads_backend/internals/helpers"
)

/* =========================================================
   CREATE
========================================================= */

type CreateApartmentRequest struct {
	ApartmentName           string   `json:"apartment_name" validate:"required,max=120"`
	ApartmentAddress        string   `json:"apartment_address" validate:"omitempty,max=500"`
	ApartmentHouseholdCount int      `json:"apartment_household_count" validate:"omitempty,min=0"`
	ApartmentLatitude       *float64 `json:"apartment_latitude" validate:"omitempty,latitude"`
	ApartmentLongitude      *float64 `json:"apartment_longitude" validate:"omitempty,longitude"`
	ApartmentIsActive       *bool    `json:"apartment_is_active"`
}

func (r *CreateApartmentRequest) ToModel() *model.ApartmentModel {
	isActive := true
	if r.ApartmentIsActive != nil {
		isActive = *r.ApartmentIsActive
	}
	return &model.ApartmentModel{
		ApartmentName:           strings.TrimSpace(r.ApartmentName),
		ApartmentAddress:        strings.TrimSpace(r.ApartmentAddress),
		ApartmentHouseholdCount: r.ApartmentHouseholdCount,
		ApartmentLatitude:       r.ApartmentLatitude,
		ApartmentLongitude:      r.ApartmentLongitude,
		ApartmentGeohash:        service.Encode(r.ApartmentLatitude, r.ApartmentLongitude),
		ApartmentIsActive:       isActive,
	}
}

/* =========================================================
   PATCH
========================================================= */

type PatchApartmentRequest struct {
	ApartmentName           helper.UpdateField[string]  `json:"apartment_name"`
	ApartmentAddress        helper.UpdateField[string]  `json:"apartment_address"`
	ApartmentHouseholdCount helper.UpdateField[int]     `json:"apartment_household_count"`
	ApartmentLatitude       helper.UpdateField[float64] `json:"apartment_latitude"`
	ApartmentLongitude      helper.UpdateField[float64] `json:"apartment_longitude"`
	ApartmentIsActive       helper.UpdateField[bool]    `json:"apartment_is_active"`
}

// TagsAffected reports whether search tags of linked advertisers must be rebuilt.
func (p *PatchApartmentRequest) TagsAffected() bool {
	return p.ApartmentName.ShouldUpdate() || p.ApartmentAddress.ShouldUpdate()
}

func (p *PatchApartmentRequest) ApplyToModel(m *model.ApartmentModel) error {
	if p.ApartmentName.ShouldUpdate() {
		name := strings.TrimSpace(p.ApartmentName.Val())
		if p.ApartmentName.IsNull() || name == "" {
			return errors.New("apartment_name cannot be empty")
		}
		m.ApartmentName = name
	}
	if p.ApartmentAddress.ShouldUpdate() {
		m.ApartmentAddress = strings.TrimSpace(p.ApartmentAddress.Val())
	}
	if p.ApartmentHouseholdCount.ShouldUpdate() {
		if p.ApartmentHouseholdCount.Val() < 0 {
			return errors.New("apartment_household_count must be >= 0")
		}
		m.ApartmentHouseholdCount = p.ApartmentHouseholdCount.Val()
	}
	if p.ApartmentLatitude.ShouldUpdate() {
		if p.ApartmentLatitude.IsNull() {
			m.ApartmentLatitude = nil
		} else {
			m.ApartmentLatitude = helper.Ptr(p.ApartmentLatitude.Val())
		}
	}
	if p.ApartmentLongitude.ShouldUpdate() {
		if p.ApartmentLongitude.IsNull() {
			m.ApartmentLongitude = nil
		} else {
			m.ApartmentLongitude = helper.Ptr(p.ApartmentLongitude.Val())
		}
	}
	if p.ApartmentIsActive.ShouldUpdate() && !p.ApartmentIsActive.IsNull() {
		m.ApartmentIsActive = p.ApartmentIsActive.Val()
	}

	m.ApartmentGeohash = service.Encode(m.ApartmentLatitude, m.ApartmentLongitude)
	return nil
}

/* =========================================================
   QUERY
========================================================= */

type ListApartmentsQuery struct {
	Q        string `query:"q" validate:"omitempty,max=120"`
	IsActive *bool  `query:"is_active"`
}

type NearbyQuery struct {
	Lat       float64 `query:"lat" validate:"latitude"`
	Lng       float64 `query:"lng" validate:"longitude"`
	Precision int     `query:"precision" validate:"omitempty,min=1,max=7"`
}

/* =========================================================
   RESPONSE
========================================================= */

type ApartmentResponse struct {
	ApartmentID             uuid.UUID `json:"apartment_id"`
	ApartmentName           string    `json:"apartment_name"`
	ApartmentAddress        string    `json:"apartment_address"`
	ApartmentHouseholdCount int       `json:"apartment_household_count"`
	ApartmentLatitude       *float64  `json:"apartment_latitude,omitempty"`
	ApartmentLongitude      *float64  `json:"apartment_longitude,omitempty"`
	ApartmentGeohash        *string   `json:"apartment_geohash,omitempty"`
	ApartmentIsActive       bool      `json:"apartment_is_active"`
	ApartmentCreatedAt      time.Time `json:"apartment_created_at"`
	ApartmentUpdatedAt      time.Time `json:"apartment_updated_at"`
}

func FromModel(m *model.ApartmentModel) ApartmentResponse {
	return ApartmentResponse{
		ApartmentID:             m.ApartmentID,
		ApartmentName:           m.ApartmentName,
		ApartmentAddress:        m.ApartmentAddress,
		ApartmentHouseholdCount: m.ApartmentHouseholdCount,
		ApartmentLatitude:       m.ApartmentLatitude,
		ApartmentLongitude:      m.ApartmentLongitude,
		ApartmentGeohash:        m.ApartmentGeohash,
		ApartmentIsActive:       m.ApartmentIsActive,
		ApartmentCreatedAt:      m.ApartmentCreatedAt,
		ApartmentUpdatedAt:      m.ApartmentUpdatedAt,
	}
}

func FromModels(list []model.ApartmentModel) []ApartmentResponse {
	out := make([]ApartmentResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
