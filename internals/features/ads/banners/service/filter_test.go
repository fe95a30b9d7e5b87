package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bannerDTO "aptads_backend/internals/features/ads/banners/dto"
	"aptads_backend/internals/features/ads/status"
)

func TestNewBannerFilter(t *testing.T) {
	f, err := NewBannerFilter([]string{"ACTIVE"}, " Popup ", "Big Sale", false)
	require.NoError(t, err)
	assert.Equal(t, []status.Status{status.Active}, f.Statuses)
	assert.Equal(t, "popup", f.Position)
	assert.Equal(t, "bigsale", f.Query)

	_, err = NewBannerFilter([]string{"expiring"}, "", "", false)
	assert.Error(t, err)
}

func TestApplyBannerFilterAndSort(t *testing.T) {
	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := []bannerDTO.BannerResponse{
		{BannerTitle: "B", BannerPosition: "home_top", BannerSortOrder: 2, BannerStatus: status.Active, BannerIsActive: true, BannerStartDate: t0},
		{BannerTitle: "A", BannerPosition: "home_top", BannerSortOrder: 1, BannerStatus: status.Active, BannerIsActive: true, BannerStartDate: t0},
		{BannerTitle: "P", BannerPosition: "popup", BannerStatus: status.Pending},
		{BannerTitle: "E", BannerPosition: "home_top", BannerStatus: status.Ended, BannerIsActive: true},
	}

	f, _ := NewBannerFilter([]string{"active"}, "home_top", "", false)
	got := ApplyBannerFilter(rows, f)
	SortForDisplay(got)
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].BannerTitle)
	assert.Equal(t, "B", got[1].BannerTitle)

	f, _ = NewBannerFilter(nil, "", "", true)
	assert.Len(t, ApplyBannerFilter(rows, f), 3)
}
