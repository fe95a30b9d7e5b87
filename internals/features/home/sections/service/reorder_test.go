package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aptads_backend/internals/features/home/sections/model"
)

func sections(n int) []model.HomeSectionModel {
	out := make([]model.HomeSectionModel, n)
	for i := range out {
		out[i] = model.HomeSectionModel{HomeSectionID: uuid.New(), HomeSectionSortOrder: i}
	}
	return out
}

func TestPlanReorder(t *testing.T) {
	cur := sections(3)
	a, b, c := cur[0].HomeSectionID, cur[1].HomeSectionID, cur[2].HomeSectionID

	t.Run("swap first and last", func(t *testing.T) {
		got, err := PlanReorder(cur, []uuid.UUID{c, b, a})
		require.NoError(t, err)
		assert.Equal(t, []OrderChange{{ID: c, SortOrder: 0}, {ID: a, SortOrder: 2}}, got)
	})

	t.Run("same order is a no-op", func(t *testing.T) {
		got, err := PlanReorder(cur, []uuid.UUID{a, b, c})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := PlanReorder(cur, []uuid.UUID{a, b})
		assert.ErrorIs(t, err, ErrReorderLength)
	})

	t.Run("duplicate id", func(t *testing.T) {
		_, err := PlanReorder(cur, []uuid.UUID{a, a, c})
		assert.ErrorIs(t, err, ErrReorderDuplicate)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := PlanReorder(cur, []uuid.UUID{a, b, uuid.New()})
		assert.ErrorContains(t, err, "unknown section id")
	})
}
