// Package munition defines ammunition records and derives munition variants
// from base records.
package munition

// Category partitions records by the weapon family they load into.
type Category string

const (
	CategoryAutocannon      Category = "AC"
	CategoryLightAutocannon Category = "AC_LIGHT"
	CategoryRotaryAC        Category = "AC_ROTARY"
	CategoryLBX             Category = "AC_LBX"
	CategoryLBXTHB          Category = "AC_LBX_THB"
	CategoryUltraAC         Category = "AC_ULTRA"
	CategoryUltraACTHB      Category = "AC_ULTRA_THB"
	CategoryGauss           Category = "GAUSS"
	CategoryMachineGun      Category = "MG"
	CategoryAMS             Category = "AMS"
	CategoryLRM             Category = "LRM"
	CategorySRM             Category = "SRM"
	CategoryStreakSRM       Category = "SRM_STREAK"
	CategoryMRM             Category = "MRM"
	CategoryMML             Category = "MML"
	CategoryATM             Category = "ATM"
	CategoryAR10            Category = "AR10"
	CategoryNarc            Category = "NARC"
	CategoryINarc           Category = "INARC"
	CategoryArrowIV         Category = "ARROW_IV"
	CategoryThumper         Category = "THUMPER"
	CategorySniper          Category = "SNIPER"
	CategoryLongTom         Category = "LONG_TOM"
	CategoryMekMortar       Category = "MEK_MORTAR"
)

// Categories lists every known category in declaration order.
var Categories = []Category{
	CategoryAutocannon,
	CategoryLightAutocannon,
	CategoryRotaryAC,
	CategoryLBX,
	CategoryLBXTHB,
	CategoryUltraAC,
	CategoryUltraACTHB,
	CategoryGauss,
	CategoryMachineGun,
	CategoryAMS,
	CategoryLRM,
	CategorySRM,
	CategoryStreakSRM,
	CategoryMRM,
	CategoryMML,
	CategoryATM,
	CategoryAR10,
	CategoryNarc,
	CategoryINarc,
	CategoryArrowIV,
	CategoryThumper,
	CategorySniper,
	CategoryLongTom,
	CategoryMekMortar,
}

// Known reports whether c is a declared category.
func (c Category) Known() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// TechBase identifies the technology lineage of a record.
type TechBase string

const (
	TechBaseInnerSphere TechBase = "IS"
	TechBaseClan        TechBase = "CLAN"
	TechBaseMixed       TechBase = "MIXED"
)

// RulesLevel is the rules maturity tier. Higher values are less mature.
type RulesLevel int

const (
	LevelIntroductory RulesLevel = iota
	LevelStandard
	LevelAdvanced
	LevelExperimental
)

var rulesLevelNames = map[RulesLevel]string{
	LevelIntroductory: "INTRODUCTORY",
	LevelStandard:     "STANDARD",
	LevelAdvanced:     "ADVANCED",
	LevelExperimental: "EXPERIMENTAL",
}

// String returns the canonical level name.
func (l RulesLevel) String() string {
	if name, ok := rulesLevelNames[l]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseRulesLevel parses a canonical level name.
func ParseRulesLevel(name string) (RulesLevel, bool) {
	for level, levelName := range rulesLevelNames {
		if levelName == name {
			return level, true
		}
	}
	return 0, false
}

// TechInfo holds era and maturity metadata.
type TechInfo struct {
	Base        TechBase
	IntroYear   int
	ExtinctYear int // 0 while still in production
	Level       RulesLevel
}

// AvailableIn reports whether the technology is legal in year.
func (t TechInfo) AvailableIn(year int) bool {
	if t.IntroYear > year {
		return false
	}
	return t.ExtinctYear == 0 || year < t.ExtinctYear
}

// Ref is a handle into the registry. The zero Ref refers to nothing.
type Ref int

// Valid reports whether r refers to a registered record.
func (r Ref) Valid() bool {
	return r > 0
}

// Record is one ammunition entry.
type Record struct {
	Name          string
	ShortName     string
	Key           string
	Category      Category
	RackSize      int
	DamagePerShot int
	Shots         int
	Cost          float64
	BV            float64
	Tech          TechInfo
	Tags          TagSet
	Flags         FlagSet
	Base          Ref
	MassPerShot   float64 // kg; 0 means an even split of one ton
	Ref           Ref
}

// IsDerived reports whether the record was derived from a base record.
func (r Record) IsDerived() bool {
	return r.Base.Valid()
}

// KgPerShot returns the mass of one shot in kilograms.
func (r Record) KgPerShot() float64 {
	if r.MassPerShot > 0 {
		return r.MassPerShot
	}
	if r.Shots <= 0 {
		return 0
	}
	return 1000 / float64(r.Shots)
}

// Tonnage returns the mass in tons of the given number of shots.
func (r Record) Tonnage(shots int) float64 {
	return r.KgPerShot() * float64(shots) / 1000
}

// StandardTags returns the default tag set.
func StandardTags() TagSet {
	return NewSet(TagStandard)
}
