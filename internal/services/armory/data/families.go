package data

import "github.com/louisbranch/ordnance/internal/services/armory/domain/munition"

// Family pairs a base family with the descriptors derived from it.
type Family struct {
	Name       string
	Categories []munition.Category
	// TechBases restricts the base family. Empty accepts any tech base.
	TechBases []munition.TechBase
	// SubFamily, when set, restricts the base family to records carrying it.
	SubFamily   munition.Flag
	Descriptors []munition.Descriptor
}

// Matches reports whether base belongs to the family's base family: a
// Standard record of one of the family's categories and tech bases.
func (f Family) Matches(base munition.Record) bool {
	if base.IsDerived() || !base.Tags.Equal(munition.StandardTags()) {
		return false
	}
	if !containsCategory(f.Categories, base.Category) {
		return false
	}
	if len(f.TechBases) > 0 && !containsTechBase(f.TechBases, base.Tech.Base) {
		return false
	}
	return f.SubFamily == "" || base.Flags.Has(f.SubFamily)
}

func containsCategory(list []munition.Category, c munition.Category) bool {
	for _, v := range list {
		if v == c {
			return true
		}
	}
	return false
}

func containsTechBase(list []munition.TechBase, b munition.TechBase) bool {
	for _, v := range list {
		if v == b {
			return true
		}
	}
	return false
}

func is(intro int, level munition.RulesLevel) *munition.TechInfo {
	return &munition.TechInfo{Base: munition.TechBaseInnerSphere, IntroYear: intro, Level: level}
}

const (
	sourceTacticalOperations = "Tactical Operations"
	sourceTechManual         = "TechManual"
	sourceInterstellarOps    = "Interstellar Operations"
)

// mmlHeatSeeking keeps the MML heat-seeking price at the standard rate.
var mmlHeatSeeking = &munition.Multiplier{
	Cost:    1,
	BV:      1,
	Flagged: "MML heat-seeking is priced as standard ammunition while LRM and SRM heat-seeking double the cost",
}

var lrmDescriptors = []munition.Descriptor{
	{Name: "Artemis-capable", WeightRatio: 1, Tag: munition.TagArtemisCapable, Tech: is(2598, munition.LevelStandard), Source: sourceTechManual},
	{Name: "Fragmentation", WeightRatio: 1, Tag: munition.TagFragmentation, Tech: is(2377, munition.LevelStandard), Source: sourceTechManual},
	{Name: "Heat-Seeking", WeightRatio: 2, Tag: munition.TagHeatSeeking, Tech: is(2375, munition.LevelAdvanced), Source: sourceTacticalOperations},
	{Name: "Mine Clearance", WeightRatio: 1, Tag: munition.TagMineClearance, Tech: is(3069, munition.LevelAdvanced), Source: sourceTacticalOperations},
	{Name: "Narc-capable", WeightRatio: 1, Tag: munition.TagNarcCapable, Tech: is(2587, munition.LevelStandard), Source: sourceTechManual},
	{Name: "Semi-guided", WeightRatio: 1, Tag: munition.TagSemiGuided, Tech: is(3057, munition.LevelAdvanced), Source: sourceTacticalOperations},
	{Name: "Smoke", WeightRatio: 1, Tag: munition.TagSmoke, Tech: is(3054, munition.LevelAdvanced), Source: sourceTacticalOperations},
	{Name: "Swarm", WeightRatio: 1, Tag: munition.TagSwarm, Tech: is(3052, munition.LevelAdvanced), Source: sourceTacticalOperations},
	{Name: "Swarm-I", WeightRatio: 1, Tag: munition.TagSwarmI, Tech: is(3057, munition.LevelAdvanced), Source: sourceTacticalOperations},
	{Name: "Thunder", WeightRatio: 1, Tag: munition.TagThunder, Tech: is(3052, munition.LevelAdvanced), Source: sourceTacticalOperations},
	{Name: "Thunder-Augmented", WeightRatio: 2, Tag: munition.TagThunderAugmented, Tech: is(3057, munition.LevelAdvanced), Source: sourceTacticalOperations},
	{Name: "Thunder-Inferno", WeightRatio: 2, Tag: munition.TagThunderInferno, Tech: is(3056, munition.LevelAdvanced), Source: sourceTacticalOperations},
	{Name: "Thunder-Vibrabomb", WeightRatio: 2, Tag: munition.TagThunderVibrabomb, Tech: is(3056, munition.LevelAdvanced), Source: sourceTacticalOperations},
	{Name: "Thunder-Active", WeightRatio: 2, Tag: munition.TagThunderActive, Tech: is(3058, munition.LevelAdvanced), Source: sourceTacticalOperations},
	{Name: "Dead-Fire", WeightRatio: 1, Tag: munition.TagDeadFire, Tech: is(3052, munition.LevelExperimental), Source: sourceTacticalOperations},
}

var srmDescriptors = []munition.Descriptor{
	{Name: "Artemis-capable", WeightRatio: 1, Tag: munition.TagArtemisCapable, Tech: is(2598, munition.LevelStandard), Source: sourceTechManual},
	{Name: "Fragmentation", WeightRatio: 1, Tag: munition.TagFragmentation, Tech: is(2377, munition.LevelStandard), Source: sourceTechManual},
	{Name: "Heat-Seeking", WeightRatio: 2, Tag: munition.TagHeatSeeking, Tech: is(2375, munition.LevelAdvanced), Source: sourceTacticalOperations},
	{Name: "Inferno", WeightRatio: 1, Tag: munition.TagInferno, Tech: is(2380, munition.LevelStandard), Source: sourceTechManual},
	{Name: "Mine Clearance", WeightRatio: 1, Tag: munition.TagMineClearance, Tech: is(3069, munition.LevelAdvanced), Source: sourceTacticalOperations},
	{Name: "Narc-capable", WeightRatio: 1, Tag: munition.TagNarcCapable, Tech: is(2587, munition.LevelStandard), Source: sourceTechManual},
	{Name: "Smoke", WeightRatio: 1, Tag: munition.TagSmoke, Tech: is(3054, munition.LevelAdvanced), Source: sourceTacticalOperations},
	{Name: "Tandem-Charge", WeightRatio: 2, Tag: munition.TagTandemCharge, Tech: is(3061, munition.LevelAdvanced), Source: sourceTacticalOperations},
	{Name: "Anti-TSM", WeightRatio: 1, Tag: munition.TagAntiTSM, Tech: is(3027, munition.LevelExperimental), Source: sourceInterstellarOps},
	{Name: "Dead-Fire", WeightRatio: 1, Tag: munition.TagDeadFire, Tech: is(3052, munition.LevelExperimental), Source: sourceTacticalOperations},
}

// mmlLongDescriptors and mmlShortDescriptors share the LRM and SRM munition
// rows, with the flagged heat-seeking price.
var mmlLongDescriptors = withMultiplier(pick(lrmDescriptors,
	munition.TagArtemisCapable,
	munition.TagFragmentation,
	munition.TagHeatSeeking,
	munition.TagNarcCapable,
	munition.TagSemiGuided,
	munition.TagSmoke,
	munition.TagSwarm,
	munition.TagThunder,
), munition.TagHeatSeeking, mmlHeatSeeking)

var mmlShortDescriptors = withMultiplier(pick(srmDescriptors,
	munition.TagArtemisCapable,
	munition.TagFragmentation,
	munition.TagHeatSeeking,
	munition.TagInferno,
	munition.TagNarcCapable,
	munition.TagSmoke,
	munition.TagTandemCharge,
), munition.TagHeatSeeking, mmlHeatSeeking)

var families = []Family{
	{
		Name:       "Autocannon Munitions",
		Categories: []munition.Category{munition.CategoryAutocannon, munition.CategoryLightAutocannon},
		TechBases:  []munition.TechBase{munition.TechBaseInnerSphere},
		Descriptors: []munition.Descriptor{
			{Name: "Armor-Piercing", WeightRatio: 2, Tag: munition.TagArmorPiercing, Tech: is(3055, munition.LevelStandard), Source: sourceTechManual},
			{Name: "Flechette", WeightRatio: 1, Tag: munition.TagFlechette, Tech: is(3055, munition.LevelStandard), Source: sourceTechManual},
			{Name: "Incendiary", WeightRatio: 1, Tag: munition.TagIncendiary, Tech: is(3059, munition.LevelAdvanced), Source: sourceTacticalOperations},
			{Name: "Precision", WeightRatio: 2, Tag: munition.TagPrecision, Tech: is(3062, munition.LevelStandard), Source: sourceTechManual},
			{Name: "Tracer", WeightRatio: 1, Tag: munition.TagTracer, Tech: is(3059, munition.LevelAdvanced), Source: sourceTacticalOperations},
		},
	},
	{
		Name: "Caseless Autocannon",
		Categories: []munition.Category{
			munition.CategoryAutocannon,
			munition.CategoryUltraAC,
			munition.CategoryLBX,
			munition.CategoryRotaryAC,
		},
		TechBases: []munition.TechBase{munition.TechBaseInnerSphere},
		Descriptors: []munition.Descriptor{
			{Name: "Caseless", WeightRatio: 1, Tag: munition.TagCaseless, Tech: is(3079, munition.LevelExperimental), Source: sourceInterstellarOps},
		},
	},
	{
		Name:        "LRM Munitions",
		Categories:  []munition.Category{munition.CategoryLRM},
		TechBases:   []munition.TechBase{munition.TechBaseInnerSphere},
		Descriptors: lrmDescriptors,
	},
	{
		Name:        "MML Long-Range Munitions",
		Categories:  []munition.Category{munition.CategoryMML},
		TechBases:   []munition.TechBase{munition.TechBaseInnerSphere},
		SubFamily:   munition.FlagLongRange,
		Descriptors: mmlLongDescriptors,
	},
	{
		Name:        "SRM Munitions",
		Categories:  []munition.Category{munition.CategorySRM},
		TechBases:   []munition.TechBase{munition.TechBaseInnerSphere},
		Descriptors: srmDescriptors,
	},
	{
		Name:        "MML Short-Range Munitions",
		Categories:  []munition.Category{munition.CategoryMML},
		TechBases:   []munition.TechBase{munition.TechBaseInnerSphere},
		SubFamily:   munition.FlagShortRange,
		Descriptors: mmlShortDescriptors,
	},
	{
		Name:       "Arrow IV Munitions",
		Categories: []munition.Category{munition.CategoryArrowIV},
		Descriptors: []munition.Descriptor{
			{Name: "Cluster", WeightRatio: 1, Tag: munition.TagCluster, Source: sourceTacticalOperations},
			{Name: "Homing", WeightRatio: 1, Tag: munition.TagHoming, Source: sourceTacticalOperations},
			{Name: "FASCAM", WeightRatio: 1, Tag: munition.TagFASCAM, Source: sourceTacticalOperations},
			{Name: "Smoke", WeightRatio: 1, Tag: munition.TagSmoke, Source: sourceTacticalOperations},
			{Name: "Illumination", WeightRatio: 1, Tag: munition.TagIllumination, Source: sourceTacticalOperations},
			{Name: "Inferno-IV", WeightRatio: 1, Tag: munition.TagInferno, Source: sourceTacticalOperations},
			{Name: "ADA", WeightRatio: 1, Tag: munition.TagADA, Source: sourceTacticalOperations},
		},
	},
	{
		Name: "Tube Artillery Munitions",
		Categories: []munition.Category{
			munition.CategoryThumper,
			munition.CategorySniper,
			munition.CategoryLongTom,
		},
		Descriptors: []munition.Descriptor{
			{Name: "Cluster", WeightRatio: 1, Tag: munition.TagCluster, Source: sourceTacticalOperations},
			{Name: "Flechette", WeightRatio: 1, Tag: munition.TagFlechette, Source: sourceTacticalOperations},
			{Name: "FASCAM", WeightRatio: 1, Tag: munition.TagFASCAM, Source: sourceTacticalOperations},
			{Name: "Smoke", WeightRatio: 1, Tag: munition.TagSmoke, Source: sourceTacticalOperations},
			{Name: "Illumination", WeightRatio: 1, Tag: munition.TagIllumination, Source: sourceTacticalOperations},
		},
	},
	{
		Name:       "Mek Mortar Munitions",
		Categories: []munition.Category{munition.CategoryMekMortar},
		TechBases:  []munition.TechBase{munition.TechBaseInnerSphere},
		Descriptors: []munition.Descriptor{
			{Name: "Armor-Piercing", WeightRatio: 1, Tag: munition.TagArmorPiercing, Tech: is(2531, munition.LevelAdvanced), Source: sourceTacticalOperations},
			{Name: "Airburst", WeightRatio: 1, Tag: munition.TagAirburst, Tech: is(2540, munition.LevelAdvanced), Source: sourceTacticalOperations},
			{Name: "Anti-personnel", WeightRatio: 1, Tag: munition.TagAntiPersonnel, Tech: is(2540, munition.LevelAdvanced), Source: sourceTacticalOperations},
			{Name: "Flare", WeightRatio: 1, Tag: munition.TagFlare, Tech: is(2536, munition.LevelAdvanced), Source: sourceTacticalOperations},
			{Name: "Semi-guided", WeightRatio: 1, Tag: munition.TagSemiGuided, Tech: is(3064, munition.LevelAdvanced), Source: sourceTacticalOperations},
			{Name: "Smoke", WeightRatio: 1, Tag: munition.TagSmoke, Tech: is(2531, munition.LevelAdvanced), Source: sourceTacticalOperations},
		},
	},
}

// Families returns the munition family table in derivation order.
func Families() []Family {
	out := make([]Family, len(families))
	copy(out, families)
	return out
}

func pick(from []munition.Descriptor, tags ...munition.Tag) []munition.Descriptor {
	want := munition.NewSet(tags...)
	out := make([]munition.Descriptor, 0, len(tags))
	for _, d := range from {
		if want.Has(d.Tag) {
			out = append(out, d)
		}
	}
	return out
}

func withMultiplier(ds []munition.Descriptor, tag munition.Tag, m *munition.Multiplier) []munition.Descriptor {
	for i := range ds {
		if ds[i].Tag == tag {
			ds[i].Multiplier = m
		}
	}
	return ds
}
