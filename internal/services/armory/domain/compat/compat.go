// Package compat answers which ammunition records can stand in for one
// another and which record a weapon loads by default.
package compat

import "github.com/louisbranch/ordnance/internal/services/armory/domain/munition"

// familyTags are the tags that make a separate ammunition family. Every
// other tag marks a munition loadable from the family's bins, so family
// comparisons ignore it.
var familyTags = munition.NewSet(
	munition.TagCluster,
	munition.TagExtendedRange,
	munition.TagHighExplosive,
	munition.TagExplosive,
	munition.TagHaywire,
	munition.TagECM,
)

// shareable lists the categories whose ammunition may be shared between
// weapons at all.
var shareable = munition.NewSet(
	munition.CategoryAutocannon,
	munition.CategoryLightAutocannon,
	munition.CategoryRotaryAC,
	munition.CategoryLBX,
	munition.CategoryLBXTHB,
	munition.CategoryUltraAC,
	munition.CategoryUltraACTHB,
	munition.CategoryGauss,
	munition.CategoryMachineGun,
	munition.CategoryAMS,
	munition.CategoryLRM,
	munition.CategorySRM,
	munition.CategoryStreakSRM,
	munition.CategoryMRM,
	munition.CategoryMML,
	munition.CategoryATM,
	munition.CategoryAR10,
	munition.CategoryNarc,
	munition.CategoryINarc,
	munition.CategoryArrowIV,
	munition.CategoryThumper,
	munition.CategorySniper,
	munition.CategoryLongTom,
	munition.CategoryMekMortar,
)

// crossFamily is one documented pairing of two different families. The flag
// fields, when set, restrict a side to one sub-family.
type crossFamily struct {
	From     munition.Category
	FromFlag munition.Flag
	To       munition.Category
	ToFlag   munition.Flag
}

var crossFamilies = []crossFamily{
	{From: munition.CategoryMML, FromFlag: munition.FlagLongRange, To: munition.CategoryLRM},
	{From: munition.CategoryMML, FromFlag: munition.FlagShortRange, To: munition.CategorySRM},
	{From: munition.CategoryLBX, To: munition.CategoryLBXTHB},
	{From: munition.CategoryUltraAC, To: munition.CategoryUltraACTHB},
}

// Shareable reports whether c is on the shareable allow-list.
func Shareable(c munition.Category) bool {
	return shareable.Has(c)
}

// SameFamily reports whether a and b belong to one ammunition family: same
// category, rack size and family tags, and for categories split into
// sub-families, the same sub-family.
func SameFamily(a, b munition.Record) bool {
	if a.Category != b.Category || a.RackSize != b.RackSize {
		return false
	}
	if !sameFamilyTags(a, b) {
		return false
	}
	for _, flag := range munition.SubFamilyFlags[a.Category] {
		if a.Flags.Has(flag) != b.Flags.Has(flag) {
			return false
		}
	}
	return true
}

// Interchangeable reports whether a weapon loading a can load b. It holds for
// every same-family pair and for the documented cross-family pairings, and
// never outside the shareable allow-list.
func Interchangeable(a, b munition.Record) bool {
	if !Shareable(a.Category) || !Shareable(b.Category) {
		return false
	}
	if SameFamily(a, b) {
		return true
	}
	if a.RackSize != b.RackSize || !sameFamilyTags(a, b) {
		return false
	}
	for _, pair := range crossFamilies {
		if pair.matches(a, b) || pair.matches(b, a) {
			return true
		}
	}
	return false
}

// CanLoadoutSwitch reports whether a weapon loaded with current may switch
// to candidate. Caseless and cased rounds never mix. Static-feed weapons
// additionally require the identical munition.
func CanLoadoutSwitch(current, candidate munition.Record, staticFeedRestricted bool) bool {
	if !Interchangeable(current, candidate) {
		return false
	}
	if current.Flags.Has(munition.FlagCaseless) != candidate.Flags.Has(munition.FlagCaseless) {
		return false
	}
	return !staticFeedRestricted || current.Tags.Equal(candidate.Tags)
}

func (p crossFamily) matches(a, b munition.Record) bool {
	if a.Category != p.From || b.Category != p.To {
		return false
	}
	if p.FromFlag != "" && !a.Flags.Has(p.FromFlag) {
		return false
	}
	return p.ToFlag == "" || b.Flags.Has(p.ToFlag)
}

func sameFamilyTags(a, b munition.Record) bool {
	return familyTagsOf(a).Equal(familyTagsOf(b))
}

func familyTagsOf(r munition.Record) munition.TagSet {
	out := munition.NewSet[munition.Tag]()
	for tag := range r.Tags {
		if familyTags.Has(tag) {
			out[tag] = struct{}{}
		}
	}
	return out
}
