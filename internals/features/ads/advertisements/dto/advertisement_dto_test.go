package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aptads_backend/internals/features/ads/advertisements/model"
	"aptads_backend/internals/features/ads/status"
)

var kst = time.FixedZone("KST", 9*3600)

func day(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, kst) }

func TestCreateAdvertisement_ToModel(t *testing.T) {
	req := CreateAdvertisementRequest{
		AdvertisementAdvertiserID: uuid.New(),
		AdvertisementTitle:        " Spring ",
		AdvertisementStartDate:    "2025-03-01",
		AdvertisementEndDate:      "2025-03-31",
	}
	m, err := req.ToModel(kst)
	require.NoError(t, err)
	assert.Equal(t, "Spring", m.AdvertisementTitle)
	assert.Equal(t, day(2025, 3, 1), m.AdvertisementStartDate)
	assert.True(t, m.AdvertisementIsActive)

	req.AdvertisementEndDate = "2025-02-28"
	_, err = req.ToModel(kst)
	assert.ErrorIs(t, err, ErrDateRange)

	req.AdvertisementEndDate = "soon"
	_, err = req.ToModel(kst)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestPatchAdvertisement_DateRange(t *testing.T) {
	m := &model.AdvertisementModel{AdvertisementStartDate: day(2025, 3, 1), AdvertisementEndDate: day(2025, 3, 31)}

	var p PatchAdvertisementRequest
	require.NoError(t, json.Unmarshal([]byte(`{"advertisement_start_date":"2025-04-01"}`), &p))
	assert.ErrorIs(t, p.ApplyToModel(m, kst), ErrDateRange)

	p = PatchAdvertisementRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"advertisement_end_date":"2025-04-30","advertisement_is_active":false}`), &p))
	require.NoError(t, p.ApplyToModel(m, kst))
	assert.Equal(t, day(2025, 4, 30), m.AdvertisementEndDate)
	assert.False(t, m.AdvertisementIsActive)
}

func TestFromRow_Status(t *testing.T) {
	opts5 := status.Variant5
	opts5.Location = kst
	now := time.Date(2025, 3, 20, 12, 0, 0, 0, kst)

	r := AdvertisementRow{
		AdvertisementIsActive:  true,
		AdvertisementStartDate: day(2025, 3, 1),
		AdvertisementEndDate:   day(2025, 12, 31),
	}

	// no joined advertiser → no advertiser gate
	got := FromRow(r, now, opts5)
	assert.Equal(t, status.Active, got.AdvertisementStatus)
	assert.NotNil(t, got.AdvertisementApartmentIDs)

	// contract ends soon → expiring, effective end is the contract date
	active := true
	contract := day(2025, 4, 1)
	r.AdvertiserIsActive = &active
	r.AdvertiserContractEndDate = &contract
	got = FromRow(r, now, opts5)
	assert.Equal(t, status.Expiring, got.AdvertisementStatus)
	assert.Equal(t, contract, got.AdvertisementEffectiveEnd)

	// inactive advertiser wins over dates
	inactive := false
	r.AdvertiserIsActive = &inactive
	assert.Equal(t, status.Expired, FromRow(r, now, opts5).AdvertisementStatus)
	assert.Equal(t, status.Ended, FromRow(r, now, status.Options{Location: kst}).AdvertisementStatus)
}

func TestFromRow_DeletedAdvertiserEndsAds(t *testing.T) {
	now := time.Date(2025, 3, 20, 12, 0, 0, 0, kst)
	active := true
	deleted := day(2025, 3, 10)
	r := AdvertisementRow{
		AdvertisementIsActive:  true,
		AdvertisementStartDate: day(2025, 3, 1),
		AdvertisementEndDate:   day(2025, 12, 31),
		AdvertiserIsActive:     &active,
		AdvertiserDeletedAt:    &deleted,
	}

	rec := r.StatusRecord()
	require.NotNil(t, rec.Advertiser)
	assert.False(t, rec.Advertiser.IsActive)
	assert.Equal(t, status.Ended, FromRow(r, now, status.Options{Location: kst}).AdvertisementStatus)

	opts5 := status.Variant5
	opts5.Location = kst
	assert.Equal(t, status.Expired, FromRow(r, now, opts5).AdvertisementStatus)
}
