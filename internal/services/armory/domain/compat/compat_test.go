package compat

import (
	"testing"

	"github.com/louisbranch/ordnance/internal/services/armory/domain/catalog"
	"github.com/louisbranch/ordnance/internal/services/armory/domain/munition"
)

func record(category munition.Category, rackSize int, tags munition.TagSet, flags ...munition.Flag) munition.Record {
	return munition.Record{
		Key:      string(category),
		Category: category,
		RackSize: rackSize,
		Shots:    10,
		Tags:     tags,
		Flags:    munition.NewSet(flags...),
	}
}

func TestMultiRackSubFamilies(t *testing.T) {
	std := munition.StandardTags()
	long := record(munition.CategoryMML, 5, std, munition.FlagLongRange)
	short := record(munition.CategoryMML, 5, std, munition.FlagShortRange)
	lrm := record(munition.CategoryLRM, 5, std)

	if SameFamily(long, short) || SameFamily(short, long) {
		t.Fatal("long and short MML racks must not share a family")
	}
	if !Interchangeable(lrm, long) || !Interchangeable(long, lrm) {
		t.Fatal("LRM 5 should interchange with the long-range MML 5")
	}
	if Interchangeable(lrm, short) || Interchangeable(short, lrm) {
		t.Fatal("LRM 5 must not interchange with the short-range MML 5")
	}
	if Interchangeable(lrm, record(munition.CategoryMML, 7, std, munition.FlagLongRange)) {
		t.Fatal("cross-family pairs require equal rack size")
	}
	srm := record(munition.CategorySRM, 5, std)
	if !Interchangeable(short, srm) {
		t.Fatal("SRM should interchange with the short-range MML")
	}
}

func TestSameFamily(t *testing.T) {
	std := munition.StandardTags()
	tests := []struct {
		name string
		a, b munition.Record
		want bool
	}{
		{"identical", record(munition.CategoryLRM, 10, std), record(munition.CategoryLRM, 10, std), true},
		{"munition variant", record(munition.CategoryLRM, 10, std), record(munition.CategoryLRM, 10, munition.NewSet(munition.TagThunder)), true},
		{"rack size", record(munition.CategoryLRM, 10, std), record(munition.CategoryLRM, 15, std), false},
		{"category", record(munition.CategoryLRM, 10, std), record(munition.CategoryMRM, 10, std), false},
		{"family tag", record(munition.CategoryATM, 6, std), record(munition.CategoryATM, 6, munition.NewSet(munition.TagExtendedRange)), false},
		{
			"ar10 missiles",
			record(munition.CategoryAR10, 1, std, munition.FlagBarracuda),
			record(munition.CategoryAR10, 1, std, munition.FlagKillerWhale),
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameFamily(tt.a, tt.b); got != tt.want {
				t.Fatalf("SameFamily = %v, want %v", got, tt.want)
			}
			if got := SameFamily(tt.b, tt.a); got != tt.want {
				t.Fatalf("SameFamily reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInterchangeableTHBVariants(t *testing.T) {
	std := munition.StandardTags()
	if !Interchangeable(record(munition.CategoryLBX, 10, std), record(munition.CategoryLBXTHB, 10, std)) {
		t.Fatal("LB-X and LB-X (THB) should interchange")
	}
	if !Interchangeable(record(munition.CategoryUltraACTHB, 20, std), record(munition.CategoryUltraAC, 20, std)) {
		t.Fatal("Ultra and Ultra (THB) should interchange in either direction")
	}
	if Interchangeable(record(munition.CategoryLBX, 10, std), record(munition.CategoryUltraAC, 10, std)) {
		t.Fatal("LB-X and Ultra are different families")
	}
	if Interchangeable(record(munition.CategoryLBX, 10, munition.NewSet(munition.TagCluster)), record(munition.CategoryLBXTHB, 10, std)) {
		t.Fatal("cross-family pairs require matching family tags")
	}
}

func TestShareableAllowListGates(t *testing.T) {
	std := munition.StandardTags()
	unknown := record("MultiRack", 5, std)
	if !SameFamily(unknown, unknown) {
		t.Fatal("expected same family by fields")
	}
	if Interchangeable(unknown, unknown) {
		t.Fatal("categories outside the allow-list never interchange")
	}
	if CanLoadoutSwitch(unknown, unknown, false) {
		t.Fatal("categories outside the allow-list never switch")
	}
}

func TestCanLoadoutSwitch(t *testing.T) {
	std := munition.StandardTags()
	standard := record(munition.CategoryAutocannon, 10, std)
	precision := record(munition.CategoryAutocannon, 10, munition.NewSet(munition.TagPrecision))
	caseless := record(munition.CategoryAutocannon, 10, munition.NewSet(munition.TagCaseless), munition.FlagCaseless)

	if !CanLoadoutSwitch(standard, precision, false) {
		t.Fatal("munition variants should switch on a normal feed")
	}
	if CanLoadoutSwitch(standard, precision, true) {
		t.Fatal("static feed requires the identical munition")
	}
	if !CanLoadoutSwitch(standard, standard, true) {
		t.Fatal("identical munitions switch on a static feed")
	}
	if CanLoadoutSwitch(standard, caseless, false) || CanLoadoutSwitch(caseless, standard, false) {
		t.Fatal("caseless and cased rounds never mix")
	}
}

func TestRegisteredRecordProperties(t *testing.T) {
	records := catalog.Default().All()
	byCategory := map[munition.Category][]munition.Record{}
	for _, rec := range records {
		if !CanLoadoutSwitch(rec, rec, false) {
			t.Fatalf("%s: expected reflexive loadout switch", rec.Key)
		}
		if !CanLoadoutSwitch(rec, rec, true) {
			t.Fatalf("%s: expected reflexive static-feed switch", rec.Key)
		}
		byCategory[rec.Category] = append(byCategory[rec.Category], rec)
	}
	// SameFamily only holds within one category, so pairs across
	// categories need no check.
	for _, group := range byCategory {
		for _, a := range group {
			for _, b := range group {
				if SameFamily(a, b) && !Interchangeable(a, b) {
					t.Fatalf("%s and %s: same family but not interchangeable", a.Key, b.Key)
				}
			}
		}
	}
}

func TestIsEligibleForWeapon(t *testing.T) {
	rec := record(munition.CategoryMML, 5, munition.StandardTags(), munition.FlagLongRange)
	if !IsEligibleForWeapon(rec, Weapon{Category: munition.CategoryMML, RackSize: 5}) {
		t.Fatal("expected exact match to be eligible")
	}
	if IsEligibleForWeapon(rec, Weapon{Category: munition.CategoryLRM, RackSize: 5}) {
		t.Fatal("eligibility has no family matching")
	}
	if IsEligibleForWeapon(rec, Weapon{Category: munition.CategoryMML, RackSize: 7}) {
		t.Fatal("rack size must match")
	}
}
