// file: internals/features/ads/advertisements/dto/advertisement_dto.go
package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"aptads_backend/internals/features/ads/advertisements/model"
	"aptads_backend/internals/features/ads/status"
	helper "aptads_backend/internals/helpers"
)

var (
	ErrInvalidDate = errors.New("invalid date (use YYYY-MM-DD or RFC3339)")
	ErrDateRange   = errors.New("advertisement_end_date must not be before advertisement_start_date")
	ErrEmptyTitle  = errors.New("advertisement_title cannot be empty")
)

func parseDate(s string, loc *time.Location) (time.Time, error) {
	t, err := helper.ParseDate(s, loc)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

func cleanIDs(in []string) pq.StringArray {
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

/* =========================================================
   CREATE
========================================================= */

type CreateAdvertisementRequest struct {
	AdvertisementAdvertiserID uuid.UUID `json:"advertisement_advertiser_id" validate:"required"`
	AdvertisementTitle        string    `json:"advertisement_title" validate:"required,max=160"`
	AdvertisementImageURL     *string   `json:"advertisement_image_url" validate:"omitempty,url"`
	AdvertisementLinkURL      *string   `json:"advertisement_link_url" validate:"omitempty,url"`
	AdvertisementApartmentIDs []string  `json:"advertisement_apartment_ids" validate:"omitempty,dive,uuid"`
	AdvertisementIsActive     *bool     `json:"advertisement_is_active"`
	AdvertisementStartDate    string    `json:"advertisement_start_date" validate:"required"`
	AdvertisementEndDate      string    `json:"advertisement_end_date" validate:"required"`
}

func (r *CreateAdvertisementRequest) ToModel(loc *time.Location) (*model.AdvertisementModel, error) {
	title := strings.TrimSpace(r.AdvertisementTitle)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	start, err := parseDate(r.AdvertisementStartDate, loc)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(r.AdvertisementEndDate, loc)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, ErrDateRange
	}
	isActive := true
	if r.AdvertisementIsActive != nil {
		isActive = *r.AdvertisementIsActive
	}
	return &model.AdvertisementModel{
		AdvertisementAdvertiserID: r.AdvertisementAdvertiserID,
		AdvertisementTitle:        title,
		AdvertisementImageURL:     helper.TrimPtr(r.AdvertisementImageURL),
		AdvertisementLinkURL:      helper.TrimPtr(r.AdvertisementLinkURL),
		AdvertisementApartmentIDs: cleanIDs(r.AdvertisementApartmentIDs),
		AdvertisementIsActive:     isActive,
		AdvertisementStartDate:    start,
		AdvertisementEndDate:      end,
	}, nil
}

/* =========================================================
   PATCH
========================================================= */

type PatchAdvertisementRequest struct {
	AdvertisementAdvertiserID helper.UpdateField[uuid.UUID] `json:"advertisement_advertiser_id"`
	AdvertisementTitle        helper.UpdateField[string]    `json:"advertisement_title"`
	AdvertisementImageURL     helper.UpdateField[string]    `json:"advertisement_image_url"`
	AdvertisementLinkURL      helper.UpdateField[string]    `json:"advertisement_link_url"`
	AdvertisementApartmentIDs helper.UpdateField[[]string]  `json:"advertisement_apartment_ids"`
	AdvertisementIsActive     helper.UpdateField[bool]      `json:"advertisement_is_active"`
	AdvertisementStartDate    helper.UpdateField[string]    `json:"advertisement_start_date"`
	AdvertisementEndDate      helper.UpdateField[string]    `json:"advertisement_end_date"`
}

func (p *PatchAdvertisementRequest) ApplyToModel(m *model.AdvertisementModel, loc *time.Location) error {
	if p.AdvertisementAdvertiserID.ShouldUpdate() {
		if p.AdvertisementAdvertiserID.IsNull() || p.AdvertisementAdvertiserID.Val() == uuid.Nil {
			return errors.New("advertisement_advertiser_id cannot be null")
		}
		m.AdvertisementAdvertiserID = p.AdvertisementAdvertiserID.Val()
	}
	if p.AdvertisementTitle.ShouldUpdate() {
		t := strings.TrimSpace(p.AdvertisementTitle.Val())
		if t == "" {
			return ErrEmptyTitle
		}
		m.AdvertisementTitle = t
	}
	if p.AdvertisementImageURL.ShouldUpdate() {
		v := p.AdvertisementImageURL.Val()
		m.AdvertisementImageURL = helper.TrimPtr(&v)
	}
	if p.AdvertisementLinkURL.ShouldUpdate() {
		v := p.AdvertisementLinkURL.Val()
		m.AdvertisementLinkURL = helper.TrimPtr(&v)
	}
	if p.AdvertisementApartmentIDs.ShouldUpdate() {
		m.AdvertisementApartmentIDs = cleanIDs(p.AdvertisementApartmentIDs.Val())
	}
	if p.AdvertisementIsActive.ShouldUpdate() && !p.AdvertisementIsActive.IsNull() {
		m.AdvertisementIsActive = p.AdvertisementIsActive.Val()
	}
	if p.AdvertisementStartDate.ShouldUpdate() {
		t, err := parseDate(p.AdvertisementStartDate.Val(), loc)
		if err != nil {
			return err
		}
		m.AdvertisementStartDate = t
	}
	if p.AdvertisementEndDate.ShouldUpdate() {
		t, err := parseDate(p.AdvertisementEndDate.Val(), loc)
		if err != nil {
			return err
		}
		m.AdvertisementEndDate = t
	}
	if m.AdvertisementEndDate.Before(m.AdvertisementStartDate) {
		return ErrDateRange
	}
	return nil
}

/* =========================================================
   ROW (joined read at the query boundary)
========================================================= */

// AdvertisementRow is one advertisement joined with its advertiser's gate.
// Advertiser columns are NULL when the advertiser is gone.
type AdvertisementRow struct {
	AdvertisementID           uuid.UUID      `gorm:"column:advertisement_id"`
	AdvertisementAdvertiserID uuid.UUID      `gorm:"column:advertisement_advertiser_id"`
	AdvertisementTitle        string         `gorm:"column:advertisement_title"`
	AdvertisementImageURL     *string        `gorm:"column:advertisement_image_url"`
	AdvertisementLinkURL      *string        `gorm:"column:advertisement_link_url"`
	AdvertisementApartmentIDs pq.StringArray `gorm:"column:advertisement_apartment_ids"`
	AdvertisementIsActive     bool           `gorm:"column:advertisement_is_active"`
	AdvertisementStartDate    time.Time      `gorm:"column:advertisement_start_date"`
	AdvertisementEndDate      time.Time      `gorm:"column:advertisement_end_date"`
	AdvertisementCreatedAt    time.Time      `gorm:"column:advertisement_created_at"`
	AdvertisementUpdatedAt    time.Time      `gorm:"column:advertisement_updated_at"`

	AdvertiserBusinessName    *string    `gorm:"column:advertiser_business_name"`
	AdvertiserIsActive        *bool      `gorm:"column:advertiser_is_active"`
	AdvertiserContractEndDate *time.Time `gorm:"column:advertiser_contract_end_date"`
	AdvertiserDeletedAt       *time.Time `gorm:"column:advertiser_deleted_at"`
}

func (r AdvertisementRow) StatusRecord() status.Record {
	rec := status.Record{
		IsActive:  r.AdvertisementIsActive,
		StartDate: r.AdvertisementStartDate,
		EndDate:   r.AdvertisementEndDate,
	}
	if r.AdvertiserIsActive != nil {
		rec.Advertiser = &status.AdvertiserTerms{
			IsActive:        *r.AdvertiserIsActive && r.AdvertiserDeletedAt == nil,
			ContractEndDate: r.AdvertiserContractEndDate,
		}
	}
	return rec
}

/* =========================================================
   RESPONSE
========================================================= */

type AdvertisementResponse struct {
	AdvertisementID             uuid.UUID     `json:"advertisement_id"`
	AdvertisementAdvertiserID   uuid.UUID     `json:"advertisement_advertiser_id"`
	AdvertisementAdvertiserName *string       `json:"advertisement_advertiser_name,omitempty"`
	AdvertisementTitle          string        `json:"advertisement_title"`
	AdvertisementImageURL       *string       `json:"advertisement_image_url,omitempty"`
	AdvertisementLinkURL        *string       `json:"advertisement_link_url,omitempty"`
	AdvertisementApartmentIDs   []string      `json:"advertisement_apartment_ids"`
	AdvertisementIsActive       bool          `json:"advertisement_is_active"`
	AdvertisementStartDate      time.Time     `json:"advertisement_start_date"`
	AdvertisementEndDate        time.Time     `json:"advertisement_end_date"`
	AdvertisementEffectiveEnd   time.Time     `json:"advertisement_effective_end"`
	AdvertisementStatus         status.Status `json:"advertisement_status"`
	AdvertisementCreatedAt      time.Time     `json:"advertisement_created_at"`
	AdvertisementUpdatedAt      time.Time     `json:"advertisement_updated_at"`
}

// FromRow classifies the row at now.
func FromRow(r AdvertisementRow, now time.Time, opts status.Options) AdvertisementResponse {
	rec := r.StatusRecord()
	ids := []string(r.AdvertisementApartmentIDs)
	if ids == nil {
		ids = []string{}
	}
	return AdvertisementResponse{
		AdvertisementID:             r.AdvertisementID,
		AdvertisementAdvertiserID:   r.AdvertisementAdvertiserID,
		AdvertisementAdvertiserName: r.AdvertiserBusinessName,
		AdvertisementTitle:          r.AdvertisementTitle,
		AdvertisementImageURL:       r.AdvertisementImageURL,
		AdvertisementLinkURL:        r.AdvertisementLinkURL,
		AdvertisementApartmentIDs:   ids,
		AdvertisementIsActive:       r.AdvertisementIsActive,
		AdvertisementStartDate:      r.AdvertisementStartDate,
		AdvertisementEndDate:        r.AdvertisementEndDate,
		AdvertisementEffectiveEnd:   status.EffectiveEnd(rec),
		AdvertisementStatus:         status.Classify(rec, now, opts),
		AdvertisementCreatedAt:      r.AdvertisementCreatedAt,
		AdvertisementUpdatedAt:      r.AdvertisementUpdatedAt,
	}
}

func FromRows(rows []AdvertisementRow, now time.Time, opts status.Options) []AdvertisementResponse {
	out := make([]AdvertisementResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromRow(r, now, opts))
	}
	return out
}
