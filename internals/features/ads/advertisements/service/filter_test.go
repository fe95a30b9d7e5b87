package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adDTO "aptads_backend/internals/features/ads/advertisements/dto"
	"aptads_backend/internals/features/ads/status"
)

func row(title string, st status.Status, adv uuid.UUID, active bool) adDTO.AdvertisementResponse {
	return adDTO.AdvertisementResponse{
		AdvertisementID:           uuid.New(),
		AdvertisementAdvertiserID: adv,
		AdvertisementTitle:        title,
		AdvertisementIsActive:     active,
		AdvertisementStatus:       st,
	}
}

func TestNewAdFilter(t *testing.T) {
	adv := uuid.New()
	f, err := NewAdFilter([]string{"Active", " scheduled", "active", ""}, adv.String(), "  Summer  Sale ", true, status.Variant4)
	require.NoError(t, err)
	assert.Equal(t, []status.Status{status.Active, status.Scheduled}, f.Statuses)
	require.NotNil(t, f.AdvertiserID)
	assert.Equal(t, adv, *f.AdvertiserID)
	assert.Equal(t, "summersale", f.Query)
	assert.True(t, f.ActiveOnly)

	_, err = NewAdFilter([]string{"expiring"}, "", "", false, status.Variant4)
	assert.Error(t, err, "expiring is not a 4-state label")

	_, err = NewAdFilter([]string{"expiring", "expired"}, "", "", false, status.Variant5)
	assert.NoError(t, err)

	_, err = NewAdFilter(nil, "nope", "", false, status.Variant4)
	assert.Error(t, err)
}

func TestApplyAdFilter(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	name := "Happy Laundry"
	rows := []adDTO.AdvertisementResponse{
		row("Spring promo", status.Active, a, true),
		row("Summer sale", status.Scheduled, a, true),
		row("Winter", status.Pending, b, false),
		row("Autumn", status.Ended, b, true),
	}
	rows[3].AdvertisementAdvertiserName = &name

	all, _ := NewAdFilter(nil, "", "", false, status.Variant4)
	assert.Len(t, ApplyAdFilter(rows, all), 4)

	f, _ := NewAdFilter([]string{"active", "scheduled"}, "", "", false, status.Variant4)
	assert.Len(t, ApplyAdFilter(rows, f), 2)

	f, _ = NewAdFilter(nil, b.String(), "", true, status.Variant4)
	got := ApplyAdFilter(rows, f)
	require.Len(t, got, 1)
	assert.Equal(t, "Autumn", got[0].AdvertisementTitle)

	f, _ = NewAdFilter(nil, "", "summer", false, status.Variant4)
	got = ApplyAdFilter(rows, f)
	require.Len(t, got, 1)
	assert.Equal(t, "Summer sale", got[0].AdvertisementTitle)

	// query also matches the advertiser name, whitespace-insensitive
	f, _ = NewAdFilter(nil, "", "happylaundry", false, status.Variant4)
	assert.Len(t, ApplyAdFilter(rows, f), 1)

	// filter is a value: deriving a copy leaves the original intact
	f, _ = NewAdFilter([]string{"active"}, "", "", false, status.Variant4)
	g := f.WithoutStatuses().WithAdvertiser(a)
	assert.Len(t, f.Statuses, 1)
	assert.Nil(t, f.AdvertiserID)
	assert.Len(t, ApplyAdFilter(rows, g), 2)
}

func TestCountByStatus(t *testing.T) {
	rows := []adDTO.AdvertisementResponse{
		row("a", status.Active, uuid.Nil, true),
		row("b", status.Active, uuid.Nil, true),
		row("c", status.Expiring, uuid.Nil, true),
	}
	got := CountByStatus(rows, status.Variant5)
	assert.Equal(t, 2, got[status.Active])
	assert.Equal(t, 1, got[status.Expiring])
	assert.Equal(t, 0, got[status.Expired])
	assert.Len(t, got, len(status.All(status.Variant5)))
}

func TestSortRows(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := []adDTO.AdvertisementResponse{
		{AdvertisementTitle: "b", AdvertisementStartDate: base.AddDate(0, 0, 2)},
		{AdvertisementTitle: "a", AdvertisementStartDate: base.AddDate(0, 0, 1)},
		{AdvertisementTitle: "c", AdvertisementStartDate: base},
	}
	SortRows(rows, "start_date", false)
	assert.Equal(t, "c", rows[0].AdvertisementTitle)

	SortRows(rows, "title", true)
	assert.Equal(t, []string{"c", "b", "a"}, []string{rows[0].AdvertisementTitle, rows[1].AdvertisementTitle, rows[2].AdvertisementTitle})
}
