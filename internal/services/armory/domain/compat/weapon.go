package compat

import "github.com/louisbranch/ordnance/internal/services/armory/domain/munition"

// FallbackYear is the era tried when nothing is legal in the requested year.
const FallbackYear = 3145

// Weapon describes the ammunition slot of a mounted weapon.
type Weapon struct {
	Name       string
	Category   munition.Category
	RackSize   int
	StaticFeed bool
}

// Lister returns the records of one category in registration order.
type Lister interface {
	ByCategory(c munition.Category) ([]munition.Record, error)
}

// IsEligibleForWeapon reports whether rec fits the weapon exactly: same
// category and rack size, with no family matching.
func IsEligibleForWeapon(rec munition.Record, weapon Weapon) bool {
	return rec.Category == weapon.Category && rec.RackSize == weapon.RackSize
}

// SelectDefaultForWeapon returns the first registered record eligible for
// the weapon and legal in year, retrying in FallbackYear. The bool is false
// when nothing matches; the error is non-nil only when the lister fails.
func SelectDefaultForWeapon(lister Lister, weapon Weapon, year int) (munition.Record, bool, error) {
	records, err := lister.ByCategory(weapon.Category)
	if err != nil {
		return munition.Record{}, false, err
	}
	if rec, ok := firstLegal(records, weapon, year); ok {
		return rec, true, nil
	}
	if year != FallbackYear {
		if rec, ok := firstLegal(records, weapon, FallbackYear); ok {
			return rec, true, nil
		}
	}
	return munition.Record{}, false, nil
}

func firstLegal(records []munition.Record, weapon Weapon, year int) (munition.Record, bool) {
	for _, rec := range records {
		if IsEligibleForWeapon(rec, weapon) && rec.Tech.AvailableIn(year) {
			return rec, true
		}
	}
	return munition.Record{}, false
}
