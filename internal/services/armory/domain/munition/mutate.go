package munition

import (
	"fmt"
	"math"

	apperrors "github.com/louisbranch/ordnance/internal/platform/errors"
)

// Mutate derives the munition variant described by d from base.
//
// The result shares no mutable state with base: tags hold only d.Tag and the
// flag set is cloned. The derived record is unregistered, so its Ref is zero
// and its Base points at base.Ref.
func Mutate(base Record, d Descriptor) (Record, error) {
	if err := d.Validate(); err != nil {
		return Record{}, err
	}
	template, ok := nameTemplates[base.Category]
	if !ok {
		return Record{}, apperrors.WithMetadata(
			apperrors.CodeUnsupportedCategory,
			fmt.Sprintf("derive %q from %q: no naming rule for category %q", d.label(), base.Key, base.Category),
			map[string]string{"Category": string(base.Category), "Key": base.Key},
		)
	}
	names, err := template(base, d.label(), d.slug())
	if err != nil {
		return Record{}, err
	}

	derived := base
	derived.Name = names.Name
	derived.ShortName = names.ShortName
	derived.Key = names.Key
	derived.Tags = NewSet(d.Tag)
	derived.Flags = base.Flags.Clone()
	derived.Base = base.Ref
	derived.Ref = 0

	shots := base.Shots
	massRatio := d.WeightRatio
	if d.Tag == TagCaseless {
		shots *= 2
		massRatio = d.WeightRatio / 2
		derived.Flags[FlagCaseless] = struct{}{}
	}
	derived.Shots = max(1, int(math.Floor(float64(shots)/d.WeightRatio)))
	derived.MassPerShot = base.KgPerShot() * massRatio

	m := d.multiplier()
	derived.Cost = base.Cost * m.Cost
	if m.AreaDenial > 0 {
		derived.BV = float64(derived.RackSize*derived.Shots) / 5 * m.AreaDenial
	} else {
		derived.BV = base.BV * m.BV
	}

	derived.Tech = base.Tech
	if d.Tech != nil {
		derived.Tech = *d.Tech
	}
	derived.Tech.Level = max(derived.Tech.Level, base.Tech.Level)
	return derived, nil
}
