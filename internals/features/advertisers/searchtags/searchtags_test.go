package searchtags

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_NeighborhoodScenario(t *testing.T) {
	got := Generate(Input{
		BusinessName: "강남 필라테스",
		Kind:         KindNeighborhood,
		Apartments:   []Apartment{{Name: "강남자이", Address: "서울 강남구 역삼동"}},
	})

	for _, want := range []string{
		"강남 필라테스", "강남필라테스", "강남", "필라테스",
		"강남자이_강남 필라테스", "강남자이_강남필라테스", "강남자이_강남", "강남자이_필라테스",
		"서울_강남 필라테스", "서울_강남필라테스", "서울_강남", "서울_필라테스",
		"강남구_강남 필라테스", "강남구_강남필라테스", "강남구_강남", "강남구_필라테스",
		"역삼동_강남 필라테스", "역삼동_강남", "역삼동_필라테스",
	} {
		assert.Truef(t, got.Has(want), "missing %q", want)
	}
	// dong tier has no compact variant
	assert.False(t, got.Has("역삼동_강남필라테스"))
	assert.Equal(t, 19, got.Len())
}

func TestGenerate_AlwaysKeepsVerbatimName(t *testing.T) {
	for _, name := range []string{"요가", "  양 옆 공백  ", "a\tb", "강남 필라테스"} {
		got := Generate(Input{BusinessName: name, Kind: KindRegion, Regions: []Region{{Sido: "서울"}}})
		assert.True(t, got.Has(name), name)
	}
}

func TestGenerate_EmptyLocalitiesOnlyNameTags(t *testing.T) {
	want := []string{"강남", "강남 필라테스", "강남필라테스", "필라테스"}

	got := Generate(Input{BusinessName: "강남 필라테스", Kind: KindNeighborhood})
	assert.Equal(t, want, got.Sorted())

	got = Generate(Input{BusinessName: "강남 필라테스", Kind: KindRegion, Regions: []Region{}})
	assert.Equal(t, want, got.Sorted())
}

func TestGenerate_SingleKeyword(t *testing.T) {
	got := Generate(Input{
		BusinessName: "필라테스",
		Kind:         KindRegion,
		Regions:      []Region{{Sido: "부산"}},
	})
	assert.ElementsMatch(t, []string{"필라테스", "부산_필라테스"}, got.Sorted())
}

func TestGenerate_ShortAddressSkipsMissingTiers(t *testing.T) {
	got := Generate(Input{
		BusinessName: "수학 학원",
		Kind:         KindNeighborhood,
		Apartments:   []Apartment{{Name: "래미안 1차", Address: "서울 서초구"}},
	})
	assert.True(t, got.Has("래미안1차_수학 학원"))
	assert.True(t, got.Has("래미안1차_수학학원"))
	assert.True(t, got.Has("서초구_학원"))
	for tag := range got {
		assert.NotContains(t, tag, "래미안 1차")
	}

	only := Generate(Input{
		BusinessName: "수학 학원",
		Kind:         KindNeighborhood,
		Apartments:   []Apartment{{Name: "", Address: ""}},
	})
	assert.Equal(t, 4, only.Len())
}

func TestGenerate_RegionTiers(t *testing.T) {
	in := Input{
		BusinessName: "동네 세탁",
		Kind:         KindRegion,
		Regions: []Region{
			{Sido: "경기"},
			{Sido: "서울", Sigungu: "마포구", Dong: "합정동"},
		},
	}
	got := Generate(in)

	assert.True(t, got.Has("경기_동네 세탁"))
	assert.True(t, got.Has("경기_동네세탁"))
	assert.True(t, got.Has("경기_세탁"))
	assert.True(t, got.Has("마포구_동네세탁"))
	assert.True(t, got.Has("합정동_동네 세탁"))
	assert.True(t, got.Has("합정동_동네"))
	assert.False(t, got.Has("합정동_동네세탁"))

	// 4 base + 경기(4) + 서울(4) + 마포구(4) + 합정동(3)
	assert.Equal(t, 19, got.Len())
}

func TestGenerate_KindDecidesSource(t *testing.T) {
	got := Generate(Input{
		BusinessName: "카페",
		Kind:         KindRegion,
		Apartments:   []Apartment{{Name: "무시됨", Address: "서울 중구 명동"}},
	})
	assert.Equal(t, []string{"카페"}, got.Sorted())
}

func TestGenerate_Idempotent(t *testing.T) {
	in := Input{
		BusinessName: "강남 필라테스 센터",
		Kind:         KindNeighborhood,
		Apartments: []Apartment{
			{Name: "강남자이", Address: "서울 강남구 역삼동 123"},
			{Name: "역삼 아이파크", Address: "서울 강남구 역삼동"},
		},
	}
	a := Generate(in)
	b := Generate(in)
	require.Equal(t, a, b)

	// locality order does not matter
	in.Apartments[0], in.Apartments[1] = in.Apartments[1], in.Apartments[0]
	assert.Equal(t, a.Sorted(), Generate(in).Sorted())
}

func TestGenerate_BlankName(t *testing.T) {
	got := Generate(Input{
		BusinessName: "   ",
		Kind:         KindRegion,
		Regions:      []Region{{Sido: "서울"}},
	})
	assert.Equal(t, []string{"   "}, got.Sorted())

	got = Generate(Input{BusinessName: "", Kind: KindNeighborhood,
		Apartments: []Apartment{{Name: "자이", Address: "서울"}}})
	assert.Equal(t, 0, got.Len())
}

func TestKindValid(t *testing.T) {
	assert.True(t, KindNeighborhood.Valid())
	assert.True(t, KindRegion.Valid())
	assert.False(t, Kind("city").Valid())
}
