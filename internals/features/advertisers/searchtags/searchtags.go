// file: internals/features/advertisers/searchtags/searchtags.go
package searchtags

import (
	"sort"
	"strings"
)

// Kind selects which localities scope an advertiser.
type Kind string

const (
	KindNeighborhood Kind = "neighborhood" // apartment complexes
	KindRegion       Kind = "region"       // sido / sigungu / dong
)

func (k Kind) Valid() bool { return k == KindNeighborhood || k == KindRegion }

type Apartment struct {
	Name    string
	Address string // "서울 강남구 역삼동 ..." (sido sigungu dong ...)
}

// Region is an administrative area; empty Sigungu/Dong mean "not set".
type Region struct {
	Sido    string
	Sigungu string
	Dong    string
}

type Input struct {
	BusinessName string
	Kind         Kind
	Apartments   []Apartment // KindNeighborhood
	Regions      []Region    // KindRegion
}

// Set is a deduplicated tag collection.
type Set map[string]struct{}

func (s Set) add(tag string) {
	if tag == "" {
		return
	}
	s[tag] = struct{}{}
}

func (s Set) Has(tag string) bool {
	_, ok := s[tag]
	return ok
}

func (s Set) Len() int { return len(s) }

// Sorted returns the tags in byte order, for stable persistence.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// StripSpaces removes every Unicode whitespace rune.
func StripSpaces(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// Generate builds the search tags for an advertiser:
//
//	name, name-without-spaces, each keyword
//	<apt>_name, <apt>_compact, <apt>_<kw>                 (per apartment)
//	<sido|sigungu>_name, _compact, _<kw>                  (per locality)
//	<dong>_name, <dong>_<kw>                              (no compact variant)
//
// A blank business name yields only the verbatim name (if non-empty).
func Generate(in Input) Set {
	tags := Set{}
	name := in.BusinessName
	tags.add(name)

	keywords := strings.Fields(name)
	if len(keywords) == 0 {
		return tags
	}
	compact := StripSpaces(name)
	tags.add(compact)
	for _, kw := range keywords {
		tags.add(kw)
	}

	g := generator{tags: tags, name: name, compact: compact, keywords: keywords}

	switch in.Kind {
	case KindNeighborhood:
		for _, apt := range in.Apartments {
			if aptKey := StripSpaces(apt.Name); aptKey != "" {
				g.withCompact(aptKey)
			}
			g.address(apt.Address)
		}
	case KindRegion:
		for _, r := range in.Regions {
			g.region(strings.TrimSpace(r.Sido), strings.TrimSpace(r.Sigungu), strings.TrimSpace(r.Dong))
		}
	}
	return tags
}

type generator struct {
	tags     Set
	name     string
	compact  string
	keywords []string
}

// address reads "sido sigungu dong ..." positionally; missing parts are skipped.
func (g generator) address(addr string) {
	parts := strings.Fields(addr)
	var sido, sigungu, dong string
	if len(parts) > 0 {
		sido = parts[0]
	}
	if len(parts) > 1 {
		sigungu = parts[1]
	}
	if len(parts) > 2 {
		dong = parts[2]
	}
	g.region(sido, sigungu, dong)
}

func (g generator) region(sido, sigungu, dong string) {
	if sido != "" {
		g.withCompact(sido)
	}
	if sigungu != "" {
		g.withCompact(sigungu)
	}
	if dong != "" {
		g.plain(dong)
	}
}

func (g generator) withCompact(prefix string) {
	g.plain(prefix)
	g.tags.add(prefix + "_" + g.compact)
}

func (g generator) plain(prefix string) {
	g.tags.add(prefix + "_" + g.name)
	for _, kw := range g.keywords {
		g.tags.add(prefix + "_" + kw)
	}
}
