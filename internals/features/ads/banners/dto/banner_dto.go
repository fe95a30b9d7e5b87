// file: internals/features/ads/banners/dto/banner_dto.go
package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"aptads_backend/internals/features/ads/banners/model"
	"aptads_backend/internals/features/ads/status"
	helper "aptads_backend/internals/helpers"
)

var (
	ErrInvalidPosition = errors.New("invalid banner_position (use home_top|home_middle|popup)")
	ErrInvalidDate     = errors.New("invalid date (use YYYY-MM-DD or RFC3339)")
	ErrDateRange       = errors.New("banner_end_date must not be before banner_start_date")
	ErrEmptyTitle      = errors.New("banner_title cannot be empty")
)

func parsePosition(s string) (model.BannerPosition, error) {
	p := model.BannerPosition(strings.ToLower(strings.TrimSpace(s)))
	if p == "" {
		return model.BannerPositionHomeTop, nil
	}
	if !p.Valid() {
		return "", ErrInvalidPosition
	}
	return p, nil
}

func parseDate(s string, loc *time.Location) (time.Time, error) {
	t, err := helper.ParseDate(s, loc)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

/* =========================================================
   CREATE
========================================================= */

type CreateBannerRequest struct {
	BannerAdvertiserID *uuid.UUID `json:"banner_advertiser_id"`
	BannerTitle        string     `json:"banner_title" validate:"required,max=160"`
	BannerLinkURL      *string    `json:"banner_link_url" validate:"omitempty,url"`
	BannerPosition     string     `json:"banner_position" validate:"omitempty,oneof=home_top home_middle popup"`
	BannerSortOrder    int        `json:"banner_sort_order" validate:"omitempty,min=0"`
	BannerIsActive     *bool      `json:"banner_is_active"`
	BannerStartDate    string     `json:"banner_start_date" validate:"required"`
	BannerEndDate      string     `json:"banner_end_date" validate:"required"`
}

func (r *CreateBannerRequest) ToModel(loc *time.Location) (*model.BannerModel, error) {
	title := strings.TrimSpace(r.BannerTitle)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	pos, err := parsePosition(r.BannerPosition)
	if err != nil {
		return nil, err
	}
	start, err := parseDate(r.BannerStartDate, loc)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(r.BannerEndDate, loc)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, ErrDateRange
	}
	isActive := true
	if r.BannerIsActive != nil {
		isActive = *r.BannerIsActive
	}
	adv := r.BannerAdvertiserID
	if adv != nil && *adv == uuid.Nil {
		adv = nil
	}
	return &model.BannerModel{
		BannerAdvertiserID: adv,
		BannerTitle:        title,
		BannerLinkURL:      helper.TrimPtr(r.BannerLinkURL),
		BannerPosition:     pos,
		BannerSortOrder:    r.BannerSortOrder,
		BannerIsActive:     isActive,
		BannerStartDate:    start,
		BannerEndDate:      end,
	}, nil
}

/* =========================================================
   PATCH
========================================================= */

type PatchBannerRequest struct {
	BannerAdvertiserID helper.UpdateField[uuid.UUID] `json:"banner_advertiser_id"`
	BannerTitle        helper.UpdateField[string]    `json:"banner_title"`
	BannerLinkURL      helper.UpdateField[string]    `json:"banner_link_url"`
	BannerPosition     helper.UpdateField[string]    `json:"banner_position"`
	BannerSortOrder    helper.UpdateField[int]       `json:"banner_sort_order"`
	BannerIsActive     helper.UpdateField[bool]      `json:"banner_is_active"`
	BannerStartDate    helper.UpdateField[string]    `json:"banner_start_date"`
	BannerEndDate      helper.UpdateField[string]    `json:"banner_end_date"`
}

func (p *PatchBannerRequest) ApplyToModel(m *model.BannerModel, loc *time.Location) error {
	if p.BannerAdvertiserID.ShouldUpdate() {
		if p.BannerAdvertiserID.IsNull() || p.BannerAdvertiserID.Val() == uuid.Nil {
			m.BannerAdvertiserID = nil
		} else {
			m.BannerAdvertiserID = helper.Ptr(p.BannerAdvertiserID.Val())
		}
	}
	if p.BannerTitle.ShouldUpdate() {
		t := strings.TrimSpace(p.BannerTitle.Val())
		if t == "" {
			return ErrEmptyTitle
		}
		m.BannerTitle = t
	}
	if p.BannerLinkURL.ShouldUpdate() {
		v := p.BannerLinkURL.Val()
		m.BannerLinkURL = helper.TrimPtr(&v)
	}
	if p.BannerPosition.ShouldUpdate() {
		pos, err := parsePosition(p.BannerPosition.Val())
		if err != nil {
			return err
		}
		m.BannerPosition = pos
	}
	if p.BannerSortOrder.ShouldUpdate() {
		m.BannerSortOrder = p.BannerSortOrder.Val()
	}
	if p.BannerIsActive.ShouldUpdate() && !p.BannerIsActive.IsNull() {
		m.BannerIsActive = p.BannerIsActive.Val()
	}
	if p.BannerStartDate.ShouldUpdate() {
		t, err := parseDate(p.BannerStartDate.Val(), loc)
		if err != nil {
			return err
		}
		m.BannerStartDate = t
	}
	if p.BannerEndDate.ShouldUpdate() {
		t, err := parseDate(p.BannerEndDate.Val(), loc)
		if err != nil {
			return err
		}
		m.BannerEndDate = t
	}
	if m.BannerEndDate.Before(m.BannerStartDate) {
		return ErrDateRange
	}
	return nil
}

/* =========================================================
   ROW (joined read)
========================================================= */

// BannerRow is a banner plus its optional sponsor's gate.
type BannerRow struct {
	model.BannerModel

	AdvertiserBusinessName    *string    `gorm:"column:advertiser_business_name"`
	AdvertiserIsActive        *bool      `gorm:"column:advertiser_is_active"`
	AdvertiserContractEndDate *time.Time `gorm:"column:advertiser_contract_end_date"`
	AdvertiserDeletedAt       *time.Time `gorm:"column:advertiser_deleted_at"`
}

func (r BannerRow) StatusRecord() status.Record {
	rec := status.Record{
		IsActive:  r.BannerIsActive,
		StartDate: r.BannerStartDate,
		EndDate:   r.BannerEndDate,
	}
	if r.BannerAdvertiserID != nil && r.AdvertiserIsActive != nil {
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

type BannerResponse struct {
	BannerID             uuid.UUID     `json:"banner_id"`
	BannerAdvertiserID   *uuid.UUID    `json:"banner_advertiser_id,omitempty"`
	BannerAdvertiserName *string       `json:"banner_advertiser_name,omitempty"`
	BannerTitle          string        `json:"banner_title"`
	BannerLinkURL        *string       `json:"banner_link_url,omitempty"`
	BannerPosition       string        `json:"banner_position"`
	BannerSortOrder      int           `json:"banner_sort_order"`
	BannerImageURL       *string       `json:"banner_image_url,omitempty"`
	BannerThumbnailURL   *string       `json:"banner_thumbnail_url,omitempty"`
	BannerIsActive       bool          `json:"banner_is_active"`
	BannerStartDate      time.Time     `json:"banner_start_date"`
	BannerEndDate        time.Time     `json:"banner_end_date"`
	BannerStatus         status.Status `json:"banner_status"`
	BannerCreatedAt      time.Time     `json:"banner_created_at"`
	BannerUpdatedAt      time.Time     `json:"banner_updated_at"`
}

func FromRow(r BannerRow, now time.Time, opts status.Options) BannerResponse {
	return BannerResponse{
		BannerID:             r.BannerID,
		BannerAdvertiserID:   r.BannerAdvertiserID,
		BannerAdvertiserName: r.AdvertiserBusinessName,
		BannerTitle:          r.BannerTitle,
		BannerLinkURL:        r.BannerLinkURL,
		BannerPosition:       string(r.BannerPosition),
		BannerSortOrder:      r.BannerSortOrder,
		BannerImageURL:       r.BannerImageURL,
		BannerThumbnailURL:   r.BannerThumbnailURL,
		BannerIsActive:       r.BannerIsActive,
		BannerStartDate:      r.BannerStartDate,
		BannerEndDate:        r.BannerEndDate,
		BannerStatus:         status.Classify(r.StatusRecord(), now, opts),
		BannerCreatedAt:      r.BannerCreatedAt,
		BannerUpdatedAt:      r.BannerUpdatedAt,
	}
}

func FromRows(rows []BannerRow, now time.Time, opts status.Options) []BannerResponse {
	out := make([]BannerResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromRow(r, now, opts))
	}
	return out
}
