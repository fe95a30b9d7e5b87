// file: internals/features/ads/status/status.go
package status

import "time"

// Status is a display label derived from an ad's flags and date window.
// It is recomputed on every read and never stored.
type Status string

const (
	Pending   Status = "pending"
	Scheduled Status = "scheduled"
	Active    Status = "active"
	Expiring  Status = "expiring"
	Ended     Status = "ended"
	Expired   Status = "expired"
)

// DefaultExpiringWindow is the pre-expiry window used by the 5-state variant.
const DefaultExpiringWindow = 30 * 24 * time.Hour

// AdvertiserTerms carries the linked advertiser's own gate and contract end.
type AdvertiserTerms struct {
	IsActive        bool
	ContractEndDate *time.Time
}

// Record is the classifier input, built from an ad or banner row.
// Advertiser is nil when the row has no linked advertiser.
type Record struct {
	IsActive   bool
	StartDate  time.Time
	EndDate    time.Time
	Advertiser *AdvertiserTerms
}

// Options selects the variant.
// Zero value = 4-state (pending/scheduled/active/ended).
type Options struct {
	IncludeExpiringWindow bool
	ExpiringWindow        time.Duration  // 0 → DefaultExpiringWindow
	Location              *time.Location // end-of-day zone; nil → zone of the effective end
}

var (
	// Variant4 is used by banner and general ad listings.
	Variant4 = Options{}
	// Variant5 is used by single-advertiser ad listings.
	Variant5 = Options{IncludeExpiringWindow: true}
)

// All returns the labels reachable under the given options, in display order.
func All(opts Options) []Status {
	if opts.IncludeExpiringWindow {
		return []Status{Pending, Scheduled, Active, Expiring, Expired}
	}
	return []Status{Pending, Scheduled, Active, Ended}
}

// IsValid reports whether s is one of the known labels.
func IsValid(s Status) bool {
	switch s {
	case Pending, Scheduled, Active, Expiring, Ended, Expired:
		return true
	}
	return false
}

// Classify derives the status of rec at instant now. First match wins:
//  1. inactive ad              → pending
//  2. inactive advertiser      → ended / expired
//  3. now < start              → scheduled
//  4. now > endOfDay(effEnd)   → ended / expired
//  5. within expiring window   → expiring (5-state only)
//  6. otherwise                → active
func Classify(rec Record, now time.Time, opts Options) Status {
	terminal := Ended
	if opts.IncludeExpiringWindow {
		terminal = Expired
	}

	if !rec.IsActive {
		return Pending
	}
	if rec.Advertiser != nil && !rec.Advertiser.IsActive {
		return terminal
	}

	effectiveEnd := EffectiveEnd(rec)

	if now.Before(rec.StartDate) {
		return Scheduled
	}
	if now.After(EndOfDay(effectiveEnd, opts.Location)) {
		return terminal
	}
	if opts.IncludeExpiringWindow {
		window := opts.ExpiringWindow
		if window <= 0 {
			window = DefaultExpiringWindow
		}
		if !now.Before(effectiveEnd.Add(-window)) {
			return Expiring
		}
	}
	return Active
}

// EffectiveEnd is min(EndDate, ContractEndDate) when a contract end is supplied.
func EffectiveEnd(rec Record) time.Time {
	end := rec.EndDate
	if rec.Advertiser != nil && rec.Advertiser.ContractEndDate != nil {
		if c := *rec.Advertiser.ContractEndDate; c.Before(end) {
			end = c
		}
	}
	return end
}

// EndOfDay returns 23:59:59.999 of t's calendar day in loc (t's own zone if loc is nil).
func EndOfDay(t time.Time, loc *time.Location) time.Time {
	if loc != nil {
		t = t.In(loc)
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}
