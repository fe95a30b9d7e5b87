// file: internals/features/ads/advertisements/service/filter.go
package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	adDTO "aptads_backend/internals/features/ads/advertisements/dto"
	"aptads_backend/internals/features/ads/status"
)

// AdFilter is the list filter. Build it with NewAdFilter and treat it as a value:
// the With* methods return modified copies.
type AdFilter struct {
	Statuses     []status.Status
	AdvertiserID *uuid.UUID
	Query        string
	ActiveOnly   bool
}

// NewAdFilter validates raw inputs; statuses must be reachable under opts.
func NewAdFilter(statuses []string, advertiserID, query string, activeOnly bool, opts status.Options) (AdFilter, error) {
	f := AdFilter{
		Query:      compact(query),
		ActiveOnly: activeOnly,
	}

	allowed := map[status.Status]struct{}{}
	for _, s := range status.All(opts) {
		allowed[s] = struct{}{}
	}
	seen := map[status.Status]struct{}{}
	for _, raw := range statuses {
		s := status.Status(strings.ToLower(strings.TrimSpace(raw)))
		if s == "" {
			continue
		}
		if _, ok := allowed[s]; !ok {
			return AdFilter{}, fmt.Errorf("unknown status %q", raw)
		}
		if _, dup := seen[s]; !dup {
			seen[s] = struct{}{}
			f.Statuses = append(f.Statuses, s)
		}
	}

	if v := strings.TrimSpace(advertiserID); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return AdFilter{}, fmt.Errorf("invalid advertiser_id")
		}
		f.AdvertiserID = &id
	}
	return f, nil
}

func (f AdFilter) WithoutStatuses() AdFilter {
	f.Statuses = nil
	return f
}

func (f AdFilter) WithAdvertiser(id uuid.UUID) AdFilter {
	f.AdvertiserID = &id
	return f
}

func (f AdFilter) matches(r adDTO.AdvertisementResponse) bool {
	if f.ActiveOnly && !r.AdvertisementIsActive {
		return false
	}
	if f.AdvertiserID != nil && r.AdvertisementAdvertiserID != *f.AdvertiserID {
		return false
	}
	if len(f.Statuses) > 0 {
		hit := false
		for _, s := range f.Statuses {
			if r.AdvertisementStatus == s {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	if f.Query != "" {
		name := ""
		if r.AdvertisementAdvertiserName != nil {
			name = *r.AdvertisementAdvertiserName
		}
		if !strings.Contains(compact(r.AdvertisementTitle), f.Query) && !strings.Contains(compact(name), f.Query) {
			return false
		}
	}
	return true
}

// ApplyAdFilter returns the rows that pass f, preserving order. Input is not modified.
func ApplyAdFilter(rows []adDTO.AdvertisementResponse, f AdFilter) []adDTO.AdvertisementResponse {
	out := make([]adDTO.AdvertisementResponse, 0, len(rows))
	for _, r := range rows {
		if f.matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// CountByStatus tallies every label reachable under opts (zeros included).
func CountByStatus(rows []adDTO.AdvertisementResponse, opts status.Options) map[status.Status]int {
	out := make(map[status.Status]int)
	for _, s := range status.All(opts) {
		out[s] = 0
	}
	for _, r := range rows {
		out[r.AdvertisementStatus]++
	}
	return out
}

// SortRows sorts in place by a whitelisted key; unknown keys fall back to created_at.
func SortRows(rows []adDTO.AdvertisementResponse, key string, desc bool) {
	less := func(a, b adDTO.AdvertisementResponse) bool {
		switch key {
		case "title":
			return a.AdvertisementTitle < b.AdvertisementTitle
		case "start_date":
			return a.AdvertisementStartDate.Before(b.AdvertisementStartDate)
		case "end_date":
			return a.AdvertisementEffectiveEnd.Before(b.AdvertisementEffectiveEnd)
		default:
			return a.AdvertisementCreatedAt.Before(b.AdvertisementCreatedAt)
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if desc {
			return less(rows[j], rows[i])
		}
		return less(rows[i], rows[j])
	})
}

func compact(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}
