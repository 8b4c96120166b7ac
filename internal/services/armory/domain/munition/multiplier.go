package munition

// Multiplier scales base cost and battle value for one tag.
type Multiplier struct {
	Cost float64
	BV   float64
	// AreaDenial, when positive, replaces the BV scaling with
	// RackSize * Shots / 5 * AreaDenial.
	AreaDenial float64
	// Flagged records a known inconsistency kept to match the published rules.
	Flagged string
}

var identityMultiplier = Multiplier{Cost: 1, BV: 1}

var multipliers = map[Tag]Multiplier{
	TagPrecision:        {Cost: 6, BV: 1},
	TagArmorPiercing:    {Cost: 4, BV: 1},
	TagFlechette:        {Cost: 1.5, BV: 1},
	TagIncendiary:       {Cost: 1.5, BV: 1},
	TagTracer:           {Cost: 1.5, BV: 1},
	TagCaseless:         {Cost: 1.5, BV: 1},
	TagArtemisCapable:   {Cost: 2, BV: 1},
	TagArtemisVCapable:  {Cost: 2.5, BV: 1},
	TagNarcCapable:      {Cost: 2, BV: 1},
	TagFragmentation:    {Cost: 1, BV: 1},
	TagHeatSeeking:      {Cost: 2, BV: 1},
	TagInferno:          {Cost: 1, BV: 1},
	TagMineClearance:    {Cost: 1, BV: 1},
	TagSemiGuided:       {Cost: 3, BV: 1},
	TagSmoke:            {Cost: 1, BV: 1},
	TagSwarm:            {Cost: 2, BV: 1},
	TagSwarmI:           {Cost: 3, BV: 1},
	TagTandemCharge:     {Cost: 5, BV: 1},
	TagDeadFire:         {Cost: 1.5, BV: 1.5},
	TagAntiTSM:          {Cost: 2, BV: 1},
	TagHoming:           {Cost: 1.5, BV: 1},
	TagIllumination:     {Cost: 1, BV: 1},
	TagADA:              {Cost: 4, BV: 1},
	TagAirburst:         {Cost: 1, BV: 1},
	TagAntiPersonnel:    {Cost: 1, BV: 1},
	TagFlare:            {Cost: 1, BV: 1},
	TagThunder:          {Cost: 2, AreaDenial: 1},
	TagThunderAugmented: {Cost: 4, AreaDenial: 2},
	TagThunderInferno:   {Cost: 3, AreaDenial: 2},
	TagThunderVibrabomb: {Cost: 5, AreaDenial: 2.5},
	TagThunderActive:    {Cost: 6, AreaDenial: 2.5},
	TagFASCAM:           {Cost: 1.5, AreaDenial: 1},
}

// MultiplierFor returns the table entry for t. Tags without an entry leave
// cost and BV unchanged.
func MultiplierFor(t Tag) Multiplier {
	if m, ok := multipliers[t]; ok {
		return m
	}
	return identityMultiplier
}

// IsAreaDenialTag reports whether t recomputes BV from area coverage.
func IsAreaDenialTag(t Tag) bool {
	return MultiplierFor(t).AreaDenial > 0
}
