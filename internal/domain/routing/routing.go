// Package routing maps per-shard platform codes to the regional routing
// domains used by account and match-history endpoints.
package routing

import (
	"strings"
	"unicode"
)

// Platform is a lowercase server shard code such as "euw1" or "kr".
type Platform string

// Region is a broader routing domain served by the regional hosts.
type Region string

const (
	RegionAmericas Region = "americas"
	RegionAsia     Region = "asia"
	RegionEurope   Region = "europe"
	RegionSEA      Region = "sea"
)

// Normalize lowercases and trims a platform code.
func Normalize(raw string) Platform {
	return Platform(strings.ToLower(strings.TrimSpace(raw)))
}

// Table is an immutable platform lookup built once at startup.
type Table struct {
	regions       map[Platform]Region
	tagLines      map[Platform]string
	aliases       map[string]Platform
	defaultRegion Region
}

// NewTable copies the provided maps so callers cannot mutate the table afterwards.
func NewTable(regions map[Platform]Region, tagLines map[Platform]string, aliases map[string]Platform, fallback Region) Table {
	t := Table{
		regions:       make(map[Platform]Region, len(regions)),
		tagLines:      make(map[Platform]string, len(tagLines)),
		aliases:       make(map[string]Platform, len(aliases)),
		defaultRegion: fallback,
	}
	for k, v := range regions {
		t.regions[Normalize(string(k))] = v
	}
	for k, v := range tagLines {
		t.tagLines[Normalize(string(k))] = v
	}
	for k, v := range aliases {
		t.aliases[strings.ToLower(k)] = Normalize(string(v))
	}
	if t.defaultRegion == "" {
		t.defaultRegion = RegionEurope
	}
	return t
}

// DefaultTable returns the live server layout.
func DefaultTable() Table {
	return NewTable(
		map[Platform]Region{
			"na1":  RegionAmericas,
			"br1":  RegionAmericas,
			"la1":  RegionAmericas,
			"la2":  RegionAmericas,
			"kr":   RegionAsia,
			"jp1":  RegionAsia,
			"euw1": RegionEurope,
			"eun1": RegionEurope,
			"tr1":  RegionEurope,
			"ru":   RegionEurope,
			"me1":  RegionEurope,
			"oc1":  RegionSEA,
			"ph2":  RegionSEA,
			"sg2":  RegionSEA,
			"th2":  RegionSEA,
			"tw2":  RegionSEA,
			"vn2":  RegionSEA,
		},
		map[Platform]string{
			"euw1": "EUW",
			"eun1": "EUNE",
			"na1":  "NA1",
			"kr":   "KR1",
			"jp1":  "JP1",
			"br1":  "BR1",
			"la1":  "LAN",
			"la2":  "LAS",
			"oc1":  "OCE",
			"tr1":  "TR1",
			"ru":   "RU1",
		},
		map[string]Platform{
			"euw":  "euw1",
			"eune": "eun1",
			"na":   "na1",
			"kr":   "kr",
			"jp":   "jp1",
			"br":   "br1",
			"lan":  "la1",
			"las":  "la2",
			"oce":  "oc1",
			"tr":   "tr1",
			"ru":   "ru",
			"me":   "me1",
			"ph":   "ph2",
			"sg":   "sg2",
			"th":   "th2",
			"tw":   "tw2",
			"vn":   "vn2",
		},
		RegionEurope,
	)
}

// Region returns the regional route for a platform, falling back to the table default.
func (t Table) Region(p Platform) Region {
	if r, ok := t.regions[Normalize(string(p))]; ok {
		return r
	}
	return t.defaultRegion
}

// Known reports whether the platform is present in the table.
func (t Table) Known(p Platform) bool {
	_, ok := t.regions[Normalize(string(p))]
	return ok
}

// DefaultTagLine returns the tag line assigned to accounts created on the platform.
// Unlisted platforms use the uppercased code with trailing digits removed.
func (t Table) DefaultTagLine(p Platform) string {
	p = Normalize(string(p))
	if tag, ok := t.tagLines[p]; ok {
		return tag
	}
	return strings.ToUpper(strings.TrimRightFunc(string(p), unicode.IsDigit))
}

// FromAlias maps a third-party site's region segment ("euw", "na") to a platform.
// A value that already names a platform is returned as-is.
func (t Table) FromAlias(alias string) (Platform, bool) {
	a := strings.ToLower(strings.TrimSpace(alias))
	if p, ok := t.aliases[a]; ok {
		return p, true
	}
	if t.Known(Platform(a)) {
		return Platform(a), true
	}
	return "", false
}

// Empty reports whether the table has no platforms, as with the zero value.
func (t Table) Empty() bool {
	return len(t.regions) == 0
}
