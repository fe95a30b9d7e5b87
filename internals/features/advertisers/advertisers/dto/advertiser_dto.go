// file: internals/features/advertisers/advertisers/dto/advertiser_dto.go
package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"

	"aptads_backend/internals/features/advertisers/advertisers/model"
	"aptads_backend/internals/features/advertisers/advertisers/service"
	helper "aptads_backend/internals/helpers"
)

var (
	ErrInvalidKind         = errors.New("invalid advertiser_kind (use neighborhood|region)")
	ErrInvalidContractDate = errors.New("invalid contract date (use YYYY-MM-DD or RFC3339)")
	ErrContractRange       = errors.New("advertiser_contract_end_date must not be before advertiser_contract_start_date")
	ErrEmptyName           = errors.New("advertiser_business_name cannot be empty")
)

type RegionRequest struct {
	Sido    string `json:"sido" validate:"required,max=40"`
	Sigungu string `json:"sigungu" validate:"omitempty,max=40"`
	Dong    string `json:"dong" validate:"omitempty,max=40"`
}

func toRegions(in []RegionRequest) datatypes.JSONSlice[model.AdvertiserRegion] {
	out := make(datatypes.JSONSlice[model.AdvertiserRegion], 0, len(in))
	for _, r := range in {
		out = append(out, model.AdvertiserRegion{
			Sido:    service.NormalizeName(r.Sido),
			Sigungu: service.NormalizeName(r.Sigungu),
			Dong:    service.NormalizeName(r.Dong),
		})
	}
	return out
}

func toApartmentIDs(in []string) pq.StringArray {
	out := make(pq.StringArray, 0, len(in))
	seen := map[string]struct{}{}
	for _, s := range in {
		s = strings.ToLower(strings.TrimSpace(s))
		if _, dup := seen[s]; dup || s == "" {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func parseDatePtr(s *string, loc *time.Location) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := helper.ParseDate(*s, loc)
	if err != nil {
		return nil, ErrInvalidContractDate
	}
	return &t, nil
}

// exclusive targeting: a neighborhood advertiser has no regions and vice versa
func clearOtherTarget(m *model.AdvertiserModel) {
	switch m.AdvertiserKind {
	case model.AdvertiserKindNeighborhood:
		m.AdvertiserRegions = datatypes.JSONSlice[model.AdvertiserRegion]{}
	case model.AdvertiserKindRegion:
		m.AdvertiserApartmentIDs = pq.StringArray{}
	}
}

func checkContract(m *model.AdvertiserModel) error {
	if m.AdvertiserContractStartDate != nil && m.AdvertiserContractEndDate != nil &&
		m.AdvertiserContractEndDate.Before(*m.AdvertiserContractStartDate) {
		return ErrContractRange
	}
	return nil
}

/* =========================================================
   CREATE
========================================================= */

type CreateAdvertiserRequest struct {
	AdvertiserBusinessName string          `json:"advertiser_business_name" validate:"required,max=160"`
	AdvertiserKind         string          `json:"advertiser_kind" validate:"required,oneof=neighborhood region"`
	AdvertiserApartmentIDs []string        `json:"advertiser_apartment_ids" validate:"omitempty,dive,uuid"`
	AdvertiserRegions      []RegionRequest `json:"advertiser_regions" validate:"omitempty,dive"`

	AdvertiserIsActive          *bool   `json:"advertiser_is_active"`
	AdvertiserContractStartDate *string `json:"advertiser_contract_start_date"`
	AdvertiserContractEndDate   *string `json:"advertiser_contract_end_date"`

	AdvertiserContactName  *string `json:"advertiser_contact_name" validate:"omitempty,max=80"`
	AdvertiserContactPhone *string `json:"advertiser_contact_phone" validate:"omitempty,max=32"`
}

// ToModel builds the row; search tags are filled by the caller (needs DB).
func (r *CreateAdvertiserRequest) ToModel(loc *time.Location) (*model.AdvertiserModel, error) {
	kind := model.AdvertiserKind(strings.ToLower(strings.TrimSpace(r.AdvertiserKind)))
	if !kind.Valid() {
		return nil, ErrInvalidKind
	}
	name := service.NormalizeName(r.AdvertiserBusinessName)
	if name == "" {
		return nil, ErrEmptyName
	}

	start, err := parseDatePtr(r.AdvertiserContractStartDate, loc)
	if err != nil {
		return nil, err
	}
	end, err := parseDatePtr(r.AdvertiserContractEndDate, loc)
	if err != nil {
		return nil, err
	}

	isActive := true
	if r.AdvertiserIsActive != nil {
		isActive = *r.AdvertiserIsActive
	}

	m := &model.AdvertiserModel{
		AdvertiserBusinessName:      name,
		AdvertiserKind:              kind,
		AdvertiserApartmentIDs:      toApartmentIDs(r.AdvertiserApartmentIDs),
		AdvertiserRegions:           toRegions(r.AdvertiserRegions),
		AdvertiserSearchTags:        pq.StringArray{},
		AdvertiserIsActive:          isActive,
		AdvertiserContractStartDate: start,
		AdvertiserContractEndDate:   end,
		AdvertiserContactName:       helper.TrimPtr(r.AdvertiserContactName),
		AdvertiserContactPhone:      helper.TrimPtr(r.AdvertiserContactPhone),
	}
	clearOtherTarget(m)
	if err := checkContract(m); err != nil {
		return nil, err
	}
	return m, nil
}

/* =========================================================
   PATCH
========================================================= */

type PatchAdvertiserRequest struct {
	AdvertiserBusinessName helper.UpdateField[string]          `json:"advertiser_business_name"`
	AdvertiserKind         helper.UpdateField[string]          `json:"advertiser_kind"`
	AdvertiserApartmentIDs helper.UpdateField[[]string]        `json:"advertiser_apartment_ids"`
	AdvertiserRegions      helper.UpdateField[[]RegionRequest] `json:"advertiser_regions"`

	AdvertiserIsActive          helper.UpdateField[bool]   `json:"advertiser_is_active"`
	AdvertiserContractStartDate helper.UpdateField[string] `json:"advertiser_contract_start_date"`
	AdvertiserContractEndDate   helper.UpdateField[string] `json:"advertiser_contract_end_date"`

	AdvertiserContactName  helper.UpdateField[string] `json:"advertiser_contact_name"`
	AdvertiserContactPhone helper.UpdateField[string] `json:"advertiser_contact_phone"`
}

func (p *PatchAdvertiserRequest) ApplyToModel(m *model.AdvertiserModel, loc *time.Location) error {
	if p.AdvertiserBusinessName.ShouldUpdate() {
		name := service.NormalizeName(p.AdvertiserBusinessName.Val())
		if p.AdvertiserBusinessName.IsNull() || name == "" {
			return ErrEmptyName
		}
		m.AdvertiserBusinessName = name
	}
	if p.AdvertiserKind.ShouldUpdate() {
		k := model.AdvertiserKind(strings.ToLower(strings.TrimSpace(p.AdvertiserKind.Val())))
		if !k.Valid() {
			return ErrInvalidKind
		}
		m.AdvertiserKind = k
	}
	if p.AdvertiserApartmentIDs.ShouldUpdate() {
		for _, id := range p.AdvertiserApartmentIDs.Val() {
			if _, err := uuid.Parse(strings.TrimSpace(id)); err != nil {
				return errors.New("advertiser_apartment_ids must contain UUIDs")
			}
		}
		m.AdvertiserApartmentIDs = toApartmentIDs(p.AdvertiserApartmentIDs.Val())
	}
	if p.AdvertiserRegions.ShouldUpdate() {
		for _, r := range p.AdvertiserRegions.Val() {
			if strings.TrimSpace(r.Sido) == "" {
				return errors.New("advertiser_regions[].sido is required")
			}
		}
		m.AdvertiserRegions = toRegions(p.AdvertiserRegions.Val())
	}
	if p.AdvertiserIsActive.ShouldUpdate() && !p.AdvertiserIsActive.IsNull() {
		m.AdvertiserIsActive = p.AdvertiserIsActive.Val()
	}
	if p.AdvertiserContractStartDate.ShouldUpdate() {
		v := p.AdvertiserContractStartDate.Val()
		t, err := parseDatePtr(&v, loc)
		if err != nil {
			return err
		}
		m.AdvertiserContractStartDate = t
	}
	if p.AdvertiserContractEndDate.ShouldUpdate() {
		v := p.AdvertiserContractEndDate.Val()
		t, err := parseDatePtr(&v, loc)
		if err != nil {
			return err
		}
		m.AdvertiserContractEndDate = t
	}
	if p.AdvertiserContactName.ShouldUpdate() {
		v := p.AdvertiserContactName.Val()
		m.AdvertiserContactName = helper.TrimPtr(&v)
	}
	if p.AdvertiserContactPhone.ShouldUpdate() {
		v := p.AdvertiserContactPhone.Val()
		m.AdvertiserContactPhone = helper.TrimPtr(&v)
	}

	clearOtherTarget(m)
	return checkContract(m)
}

/* =========================================================
   LIST QUERY
========================================================= */

type ListAdvertisersQuery struct {
	Q        string `query:"q" validate:"omitempty,max=120"`
	Kind     string `query:"kind" validate:"omitempty,oneof=neighborhood region"`
	IsActive *bool  `query:"is_active"`
}

/* =========================================================
   RESPONSE
========================================================= */

type AdvertiserResponse struct {
	AdvertiserID                uuid.UUID                `json:"advertiser_id"`
	AdvertiserBusinessName      string                   `json:"advertiser_business_name"`
	AdvertiserKind              string                   `json:"advertiser_kind"`
	AdvertiserApartmentIDs      []string                 `json:"advertiser_apartment_ids"`
	AdvertiserRegions           []model.AdvertiserRegion `json:"advertiser_regions"`
	AdvertiserSearchTags        []string                 `json:"advertiser_search_tags"`
	AdvertiserIsActive          bool                     `json:"advertiser_is_active"`
	AdvertiserContractStartDate *time.Time               `json:"advertiser_contract_start_date,omitempty"`
	AdvertiserContractEndDate   *time.Time               `json:"advertiser_contract_end_date,omitempty"`
	AdvertiserContactName       *string                  `json:"advertiser_contact_name,omitempty"`
	AdvertiserContactPhone      *string                  `json:"advertiser_contact_phone,omitempty"`
	AdvertiserCreatedAt         time.Time                `json:"advertiser_created_at"`
	AdvertiserUpdatedAt         time.Time                `json:"advertiser_updated_at"`
}

func FromModel(m *model.AdvertiserModel) AdvertiserResponse {
	regions := []model.AdvertiserRegion(m.AdvertiserRegions)
	if regions == nil {
		regions = []model.AdvertiserRegion{}
	}
	ids := []string(m.AdvertiserApartmentIDs)
	if ids == nil {
		ids = []string{}
	}
	tags := []string(m.AdvertiserSearchTags)
	if tags == nil {
		tags = []string{}
	}
	return AdvertiserResponse{
		AdvertiserID:                m.AdvertiserID,
		AdvertiserBusinessName:      m.AdvertiserBusinessName,
		AdvertiserKind:              string(m.AdvertiserKind),
		AdvertiserApartmentIDs:      ids,
		AdvertiserRegions:           regions,
		AdvertiserSearchTags:        tags,
		AdvertiserIsActive:          m.AdvertiserIsActive,
		AdvertiserContractStartDate: m.AdvertiserContractStartDate,
		AdvertiserContractEndDate:   m.AdvertiserContractEndDate,
		AdvertiserContactName:       m.AdvertiserContactName,
		AdvertiserContactPhone:      m.AdvertiserContactPhone,
		AdvertiserCreatedAt:         m.AdvertiserCreatedAt,
		AdvertiserUpdatedAt:         m.AdvertiserUpdatedAt,
	}
}

func FromModels(list []model.AdvertiserModel) []AdvertiserResponse {
	out := make([]AdvertiserResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
