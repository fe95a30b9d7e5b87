// file: internals/features/ads/banners/service/filter.go
package service

import (
	"fmt"
	"sort"
	"strings"

	bannerDTO "aptads_backend/internals/features/ads/banners/dto"
	"aptads_backend/internals/features/ads/status"
)

type BannerFilter struct {
	Statuses   []status.Status
	Position   string
	Query      string
	ActiveOnly bool
}

// NewBannerFilter accepts only 4-state labels.
func NewBannerFilter(statuses []string, position, query string, activeOnly bool) (BannerFilter, error) {
	f := BannerFilter{
		Position:   strings.ToLower(strings.TrimSpace(position)),
		Query:      strings.ToLower(strings.Join(strings.Fields(query), "")),
		ActiveOnly: activeOnly,
	}
	allowed := map[status.Status]struct{}{}
	for _, s := range status.All(status.Variant4) {
		allowed[s] = struct{}{}
	}
	for _, raw := range statuses {
		s := status.Status(strings.ToLower(strings.TrimSpace(raw)))
		if _, ok := allowed[s]; !ok {
			return BannerFilter{}, fmt.Errorf("unknown status %q", raw)
		}
		f.Statuses = append(f.Statuses, s)
	}
	return f, nil
}

func (f BannerFilter) matches(b bannerDTO.BannerResponse) bool {
	if f.ActiveOnly && !b.BannerIsActive {
		return false
	}
	if f.Position != "" && b.BannerPosition != f.Position {
		return false
	}
	if len(f.Statuses) > 0 {
		hit := false
		for _, s := range f.Statuses {
			if s == b.BannerStatus {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	if f.Query != "" && !strings.Contains(strings.ToLower(strings.Join(strings.Fields(b.BannerTitle), "")), f.Query) {
		return false
	}
	return true
}

func ApplyBannerFilter(rows []bannerDTO.BannerResponse, f BannerFilter) []bannerDTO.BannerResponse {
	out := make([]bannerDTO.BannerResponse, 0, len(rows))
	for _, r := range rows {
		if f.matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// SortForDisplay orders by position, sort_order, then newest start first.
func SortForDisplay(rows []bannerDTO.BannerResponse) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.BannerPosition != b.BannerPosition {
			return a.BannerPosition < b.BannerPosition
		}
		if a.BannerSortOrder != b.BannerSortOrder {
			return a.BannerSortOrder < b.BannerSortOrder
		}
		return a.BannerStartDate.After(b.BannerStartDate)
	})
}
