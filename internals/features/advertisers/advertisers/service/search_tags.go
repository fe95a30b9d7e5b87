// file: internals/features/advertisers/advertisers/service/search_tags.go
package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"

	advModel "aptads_backend/internals/features/advertisers/advertisers/model"
	"aptads_backend/internals/features/advertisers/searchtags"
	aptModel "aptads_backend/internals/features/apartments/apartments/model"
)

const rebuildBatchSize = 200

// NormalizeName NFC-normalizes and trims; decomposed Hangul from some
// clients would otherwise never match composed search input.
func NormalizeName(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}

// NormalizeQuery prepares a search term for matching against stored tags.
func NormalizeQuery(q string) string {
	return searchtags.StripSpaces(norm.NFC.String(q))
}

/* =========================================================
   Pure: model → generator input
========================================================= */

// BuildInput maps an advertiser and its loaded apartments to generator input.
// Apartments are ordered as in advertiser_apartment_ids; unknown ids are skipped.
func BuildInput(m *advModel.AdvertiserModel, apartments []aptModel.ApartmentModel) searchtags.Input {
	in := searchtags.Input{
		BusinessName: m.AdvertiserBusinessName,
		Kind:         searchtags.Kind(m.AdvertiserKind),
	}

	switch m.AdvertiserKind {
	case advModel.AdvertiserKindNeighborhood:
		byID := make(map[string]aptModel.ApartmentModel, len(apartments))
		for _, a := range apartments {
			byID[a.ApartmentID.String()] = a
		}
		for _, id := range m.AdvertiserApartmentIDs {
			if a, ok := byID[strings.ToLower(strings.TrimSpace(id))]; ok {
				in.Apartments = append(in.Apartments, searchtags.Apartment{
					Name:    a.ApartmentName,
					Address: a.ApartmentAddress,
				})
			}
		}
	case advModel.AdvertiserKindRegion:
		for _, r := range m.AdvertiserRegions {
			in.Regions = append(in.Regions, searchtags.Region{
				Sido:    r.Sido,
				Sigungu: r.Sigungu,
				Dong:    r.Dong,
			})
		}
	}
	return in
}

/* =========================================================
   DB-backed recompute
========================================================= */

func loadApartments(ctx context.Context, db *gorm.DB, ids []string) ([]aptModel.ApartmentModel, error) {
	valid := make([]uuid.UUID, 0, len(ids))
	for _, s := range ids {
		if id, err := uuid.Parse(strings.TrimSpace(s)); err == nil {
			valid = append(valid, id)
		}
	}
	if len(valid) == 0 {
		return nil, nil
	}
	var rows []aptModel.ApartmentModel
	err := db.WithContext(ctx).
		Select("apartment_id", "apartment_name", "apartment_address").
		Where("apartment_id IN ?", valid).
		Find(&rows).Error
	return rows, err
}

// Recompute refreshes m.AdvertiserSearchTags in memory (no write).
func Recompute(ctx context.Context, db *gorm.DB, m *advModel.AdvertiserModel) error {
	var apartments []aptModel.ApartmentModel
	if m.AdvertiserKind == advModel.AdvertiserKindNeighborhood {
		var err error
		if apartments, err = loadApartments(ctx, db, m.AdvertiserApartmentIDs); err != nil {
			return fmt.Errorf("load apartments: %w", err)
		}
	}
	m.AdvertiserSearchTags = pq.StringArray(searchtags.Generate(BuildInput(m, apartments)).Sorted())
	return nil
}

func saveTags(ctx context.Context, db *gorm.DB, m *advModel.AdvertiserModel) error {
	return db.WithContext(ctx).
		Model(&advModel.AdvertiserModel{}).
		Where("advertiser_id = ?", m.AdvertiserID).
		UpdateColumn("advertiser_search_tags", m.AdvertiserSearchTags).Error
}

// RebuildOne recomputes and stores the tags of a single advertiser.
func RebuildOne(ctx context.Context, db *gorm.DB, id uuid.UUID) (*advModel.AdvertiserModel, error) {
	var m advModel.AdvertiserModel
	if err := db.WithContext(ctx).First(&m, "advertiser_id = ?", id).Error; err != nil {
		return nil, err
	}
	if err := Recompute(ctx, db, &m); err != nil {
		return nil, err
	}
	if err := saveTags(ctx, db, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// RebuildAll walks every advertiser in batches; returns the number rewritten.
func RebuildAll(ctx context.Context, db *gorm.DB) (int, error) {
	var batch []advModel.AdvertiserModel
	n := 0
	res := db.WithContext(ctx).FindInBatches(&batch, rebuildBatchSize, func(tx *gorm.DB, _ int) error {
		for i := range batch {
			if err := Recompute(ctx, db, &batch[i]); err != nil {
				return err
			}
			if err := saveTags(ctx, db, &batch[i]); err != nil {
				return err
			}
			n++
		}
		return nil
	})
	if res.Error != nil {
		return n, res.Error
	}
	log.Printf("[SEARCH_TAGS] rebuilt %d advertisers", n)
	return n, nil
}

// RebuildForApartment refreshes every neighborhood advertiser linked to the apartment.
func RebuildForApartment(ctx context.Context, db *gorm.DB, apartmentID uuid.UUID) (int, error) {
	var rows []advModel.AdvertiserModel
	if err := db.WithContext(ctx).
		Where("advertiser_kind = ? AND ? = ANY(advertiser_apartment_ids)", advModel.AdvertiserKindNeighborhood, apartmentID.String()).
		Find(&rows).Error; err != nil {
		return 0, err
	}
	for i := range rows {
		if err := Recompute(ctx, db, &rows[i]); err != nil {
			return i, err
		}
		if err := saveTags(ctx, db, &rows[i]); err != nil {
			return i, err
		}
	}
	return len(rows), nil
}
