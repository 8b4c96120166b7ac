package classify

import "github.com/louisbranch/ordnance/internal/services/armory/domain/munition"

// IsAreaDenial reports whether rec counts as an area-denial munition.
func (r *Rules) IsAreaDenial(rec munition.Record) bool {
	return r.areaDenial.matches(rec)
}

// CanDeliverMinefield reports whether rec lays a minefield.
func (r *Rules) CanDeliverMinefield(rec munition.Record) bool {
	return r.minefieldDelivery.matches(rec)
}

// CanClearMinefield reports whether rec clears a minefield.
func (r *Rules) CanClearMinefield(rec munition.Record) bool {
	return r.minefieldClearance.matches(rec)
}

// CanBeIntercepted reports whether point defense carrying interceptorFlags
// may engage rec. The defense must carry FlagInterceptor.
func (r *Rules) CanBeIntercepted(rec munition.Record, interceptorFlags munition.FlagSet, opts Options) bool {
	if !interceptorFlags.Has(munition.FlagInterceptor) {
		return false
	}
	if r.interceptable.matches(rec) {
		return true
	}
	return opts.InterceptArtillery && r.interceptableArtillery.matches(rec)
}

// UsableBy reports whether unit may carry rec. Units and categories absent
// from the selected table are unrestricted.
func (r *Rules) UsableBy(rec munition.Record, unit UnitClass, opts Options) bool {
	tables := r.strictUnitAmmo
	if opts.PermissiveUnitAmmo {
		tables = r.permissiveUnitAmmo
	}
	t, ok := tables[unit]
	if !ok {
		return true
	}
	if _, restricted := t[rec.Category]; !restricted {
		return true
	}
	return t.matches(rec)
}

// IsAreaDenial reports whether rec counts as an area-denial munition under
// the default rules.
func IsAreaDenial(rec munition.Record) bool {
	return defaultRules.IsAreaDenial(rec)
}

// CanDeliverMinefield reports whether rec lays a minefield under the
// default rules.
func CanDeliverMinefield(rec munition.Record) bool {
	return defaultRules.CanDeliverMinefield(rec)
}

// CanClearMinefield reports whether rec clears a minefield under the default
// rules.
func CanClearMinefield(rec munition.Record) bool {
	return defaultRules.CanClearMinefield(rec)
}

// CanBeIntercepted applies the default rules.
func CanBeIntercepted(rec munition.Record, interceptorFlags munition.FlagSet, opts Options) bool {
	return defaultRules.CanBeIntercepted(rec, interceptorFlags, opts)
}

// UsableBy applies the default rules.
func UsableBy(rec munition.Record, unit UnitClass, opts Options) bool {
	return defaultRules.UsableBy(rec, unit, opts)
}
