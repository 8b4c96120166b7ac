package munition

// Tag is a semantic marker describing non-default munition behavior.
type Tag string

const (
	TagStandard         Tag = "standard"
	TagCluster          Tag = "cluster"
	TagArmorPiercing    Tag = "armor_piercing"
	TagFlechette        Tag = "flechette"
	TagIncendiary       Tag = "incendiary"
	TagPrecision        Tag = "precision"
	TagTracer           Tag = "tracer"
	TagCaseless         Tag = "caseless"
	TagArtemisCapable   Tag = "artemis_capable"
	TagArtemisVCapable  Tag = "artemis_v_capable"
	TagNarcCapable      Tag = "narc_capable"
	TagFragmentation    Tag = "fragmentation"
	TagHeatSeeking      Tag = "heat_seeking"
	TagInferno          Tag = "inferno"
	TagMineClearance    Tag = "mine_clearance"
	TagSemiGuided       Tag = "semi_guided"
	TagSmoke            Tag = "smoke"
	TagSwarm            Tag = "swarm"
	TagSwarmI           Tag = "swarm_i"
	TagTandemCharge     Tag = "tandem_charge"
	TagThunder          Tag = "thunder"
	TagThunderAugmented Tag = "thunder_augmented"
	TagThunderInferno   Tag = "thunder_inferno"
	TagThunderVibrabomb Tag = "thunder_vibrabomb"
	TagThunderActive    Tag = "thunder_active"
	TagDeadFire         Tag = "dead_fire"
	TagAntiTSM          Tag = "anti_tsm"
	TagFASCAM           Tag = "fascam"
	TagHoming           Tag = "homing"
	TagIllumination     Tag = "illumination"
	TagADA              Tag = "ada"
	TagAirburst         Tag = "airburst"
	TagAntiPersonnel    Tag = "anti_personnel"
	TagFlare            Tag = "flare"
	TagExtendedRange    Tag = "extended_range"
	TagHighExplosive    Tag = "high_explosive"
	TagExplosive        Tag = "explosive"
	TagHaywire          Tag = "haywire"
	TagECM              Tag = "ecm"
)

var tagLabels = map[Tag]string{
	TagStandard:         "Standard",
	TagCluster:          "Cluster",
	TagArmorPiercing:    "Armor-Piercing",
	TagFlechette:        "Flechette",
	TagIncendiary:       "Incendiary",
	TagPrecision:        "Precision",
	TagTracer:           "Tracer",
	TagCaseless:         "Caseless",
	TagArtemisCapable:   "Artemis-capable",
	TagArtemisVCapable:  "Artemis V-capable",
	TagNarcCapable:      "Narc-capable",
	TagFragmentation:    "Fragmentation",
	TagHeatSeeking:      "Heat-Seeking",
	TagInferno:          "Inferno",
	TagMineClearance:    "Mine Clearance",
	TagSemiGuided:       "Semi-guided",
	TagSmoke:            "Smoke",
	TagSwarm:            "Swarm",
	TagSwarmI:           "Swarm-I",
	TagTandemCharge:     "Tandem-Charge",
	TagThunder:          "Thunder",
	TagThunderAugmented: "Thunder-Augmented",
	TagThunderInferno:   "Thunder-Inferno",
	TagThunderVibrabomb: "Thunder-Vibrabomb",
	TagThunderActive:    "Thunder-Active",
	TagDeadFire:         "Dead-Fire",
	TagAntiTSM:          "Anti-TSM",
	TagFASCAM:           "FASCAM",
	TagHoming:           "Homing",
	TagIllumination:     "Illumination",
	TagADA:              "ADA",
	TagAirburst:         "Airburst",
	TagAntiPersonnel:    "Anti-personnel",
	TagFlare:            "Flare",
	TagExtendedRange:    "ER",
	TagHighExplosive:    "HE",
	TagExplosive:        "Explosive",
	TagHaywire:          "Haywire",
	TagECM:              "ECM",
}

// Known reports whether t is a declared tag.
func (t Tag) Known() bool {
	_, ok := tagLabels[t]
	return ok
}

// Label returns the English display label, or the raw value for unknown tags.
func (t Tag) Label() string {
	if label, ok := tagLabels[t]; ok {
		return label
	}
	return string(t)
}

// MessageKey returns the i18n catalog key for the tag label.
func (t Tag) MessageKey() string {
	return "tag." + string(t)
}

// Tags returns every declared tag in lexical order.
func Tags() []Tag {
	set := make(TagSet, len(tagLabels))
	for t := range tagLabels {
		set[t] = struct{}{}
	}
	return set.Sorted()
}

// Flag is a capability flag.
type Flag string

const (
	// Sub-family flags split MML racks.
	FlagLongRange  Flag = "LONG_RANGE"
	FlagShortRange Flag = "SHORT_RANGE"

	// Sub-family flags split AR10 launchers by missile type.
	FlagBarracuda   Flag = "BARRACUDA"
	FlagWhiteShark  Flag = "WHITE_SHARK"
	FlagKillerWhale Flag = "KILLER_WHALE"

	FlagInterceptor Flag = "INTERCEPTOR"
	FlagCaseless    Flag = "CASELESS"
	FlagCapital     Flag = "CAPITAL"
)

// SubFamilyFlags lists the sub-family flags that partition each category.
var SubFamilyFlags = map[Category][]Flag{
	CategoryMML:  {FlagLongRange, FlagShortRange},
	CategoryAR10: {FlagBarracuda, FlagWhiteShark, FlagKillerWhale},
}
