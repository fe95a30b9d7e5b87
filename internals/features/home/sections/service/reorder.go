package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"aptads_backend/internals/features/home/sections/model"
)

var (
	ErrReorderLength    = errors.New("ids must list every section exactly once")
	ErrReorderDuplicate = errors.New("duplicate section id")
)

type OrderChange struct {
	ID        uuid.UUID `json:"home_section_id"`
	SortOrder int       `json:"home_section_sort_order"`
}

// PlanReorder maps ids (the new display order) onto sort_order 0..n-1.
// Only sections whose sort_order actually changes are returned.
func PlanReorder(current []model.HomeSectionModel, ids []uuid.UUID) ([]OrderChange, error) {
	if len(ids) != len(current) {
		return nil, ErrReorderLength
	}
	existing := make(map[uuid.UUID]int, len(current))
	for _, s := range current {
		existing[s.HomeSectionID] = s.HomeSectionSortOrder
	}

	seen := make(map[uuid.UUID]struct{}, len(ids))
	changes := make([]OrderChange, 0, len(ids))
	for i, id := range ids {
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: %s", ErrReorderDuplicate, id)
		}
		seen[id] = struct{}{}

		old, ok := existing[id]
		if !ok {
			return nil, fmt.Errorf("unknown section id: %s", id)
		}
		if old != i {
			changes = append(changes, OrderChange{ID: id, SortOrder: i})
		}
	}
	return changes, nil
}
