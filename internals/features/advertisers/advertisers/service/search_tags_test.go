package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	advModel "aptads_backend/internals/features/advertisers/advertisers/model"
	"aptads_backend/internals/features/advertisers/searchtags"
	aptModel "aptads_backend/internals/features/apartments/apartments/model"
)

func TestNormalizeName(t *testing.T) {
	decomposed := "\u1100\u1161\u11bc" // conjoining jamo
	assert.Equal(t, "강", NormalizeName("  "+decomposed+" "))
	assert.Equal(t, "강남", NormalizeQuery(" 강 남 "))
}

func TestBuildInput_Neighborhood(t *testing.T) {
	a1 := aptModel.ApartmentModel{ApartmentID: uuid.New(), ApartmentName: "래미안", ApartmentAddress: "서울 강남구 역삼동 1"}
	a2 := aptModel.ApartmentModel{ApartmentID: uuid.New(), ApartmentName: "자이", ApartmentAddress: "서울 서초구 반포동 2"}

	m := &advModel.AdvertiserModel{
		AdvertiserBusinessName: "행복 세탁",
		AdvertiserKind:         advModel.AdvertiserKindNeighborhood,
		AdvertiserApartmentIDs: pq.StringArray{a2.ApartmentID.String(), "not-a-uuid", a1.ApartmentID.String()},
	}

	in := BuildInput(m, []aptModel.ApartmentModel{a1, a2})
	assert.Equal(t, searchtags.KindNeighborhood, in.Kind)
	require.Len(t, in.Apartments, 2)
	assert.Equal(t, "자이", in.Apartments[0].Name)
	assert.Equal(t, "래미안", in.Apartments[1].Name)
	assert.Empty(t, in.Regions)

	tags := searchtags.Generate(in)
	assert.True(t, tags.Has("행복세탁"))
	assert.True(t, tags.Has("래미안_행복세탁"))
	assert.True(t, tags.Has("자이_세탁"))
	assert.True(t, tags.Has("서초구_행복 세탁"))
	assert.True(t, tags.Has("반포동_행복"))
	assert.False(t, tags.Has("반포동_행복세탁"))
}

func TestBuildInput_Region(t *testing.T) {
	m := &advModel.AdvertiserModel{
		AdvertiserBusinessName: "동네 꽃집",
		AdvertiserKind:         advModel.AdvertiserKindRegion,
		AdvertiserApartmentIDs: pq.StringArray{uuid.NewString()},
		AdvertiserRegions: datatypes.JSONSlice[advModel.AdvertiserRegion]{
			{Sido: "경기", Sigungu: "성남시 분당구", Dong: "정자동"},
		},
	}

	in := BuildInput(m, nil)
	assert.Empty(t, in.Apartments)
	require.Len(t, in.Regions, 1)
	assert.Equal(t, searchtags.Region{Sido: "경기", Sigungu: "성남시 분당구", Dong: "정자동"}, in.Regions[0])

	tags := searchtags.Generate(in)
	assert.True(t, tags.Has("경기_동네꽃집"))
	assert.True(t, tags.Has("성남시 분당구_꽃집"))
	assert.True(t, tags.Has("정자동_동네 꽃집"))
	assert.False(t, tags.Has("정자동_동네꽃집"))
}
