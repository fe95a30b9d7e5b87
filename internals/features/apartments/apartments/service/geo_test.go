package service

import (
	"testing"

	"github.com/mmcloughlin/geohash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func TestEncode(t *testing.T) {
	h := Encode(f(37.5006), f(127.0364))
	require.NotNil(t, h)
	assert.Len(t, *h, StoredPrecision)
	assert.Equal(t, geohash.EncodeWithPrecision(37.5006, 127.0364, StoredPrecision), *h)

	assert.Nil(t, Encode(nil, f(127)))
	assert.Nil(t, Encode(f(37), nil))
	assert.Nil(t, Encode(f(91), f(127)))
}

func TestNearbyCells(t *testing.T) {
	cells := NearbyCells(37.5006, 127.0364, 5)
	require.Len(t, cells, 9)
	for _, c := range cells {
		assert.Len(t, c, 5)
	}
	assert.Equal(t, geohash.EncodeWithPrecision(37.5006, 127.0364, 5), cells[0])

	// a point stored at full precision falls under the center prefix
	stored := *Encode(f(37.5006), f(127.0364))
	assert.Equal(t, cells[0], stored[:5])
}

func TestClampPrecision(t *testing.T) {
	assert.Equal(t, DefaultPrecision, ClampPrecision(0))
	assert.Equal(t, StoredPrecision, ClampPrecision(12))
	assert.Equal(t, 4, ClampPrecision(4))
}
