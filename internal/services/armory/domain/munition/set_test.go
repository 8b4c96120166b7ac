package munition

import (
	"reflect"
	"testing"
)

func TestSetOperations(t *testing.T) {
	a := NewSet(TagThunder, TagStandard)
	b := NewSet(TagStandard, TagThunder)
	c := NewSet(TagSwarm)

	if !a.Equal(b) || a.Equal(c) {
		t.Fatal("unexpected equality")
	}
	if !a.Intersects(NewSet(TagThunder, TagSwarm)) || a.Intersects(c) {
		t.Fatal("unexpected intersection")
	}
	if got := a.Sorted(); !reflect.DeepEqual(got, []Tag{TagStandard, TagThunder}) {
		t.Fatalf("sorted = %v", got)
	}

	clone := a.Clone()
	clone[TagSwarm] = struct{}{}
	if a.Has(TagSwarm) {
		t.Fatal("clone shares storage")
	}

	var empty FlagSet
	if empty.Has(FlagCaseless) || len(empty.Clone()) != 0 {
		t.Fatal("nil set should behave as empty")
	}
	if !empty.Equal(NewSet[Flag]()) {
		t.Fatal("nil and empty sets should be equal")
	}
}

func TestRecordMass(t *testing.T) {
	r := Record{Shots: 20}
	if r.KgPerShot() != 50 {
		t.Fatalf("kg per shot = %v, want 50", r.KgPerShot())
	}
	if r.Tonnage(10) != 0.5 {
		t.Fatalf("tonnage = %v, want 0.5", r.Tonnage(10))
	}
	r.MassPerShot = 30000
	if r.Tonnage(1) != 30 {
		t.Fatalf("tonnage = %v, want override", r.Tonnage(1))
	}
	if (Record{}).KgPerShot() != 0 {
		t.Fatal("expected zero mass without shots")
	}
}

func TestTechAvailability(t *testing.T) {
	tech := TechInfo{IntroYear: 2600, ExtinctYear: 2800}
	tests := []struct {
		year int
		want bool
	}{
		{2599, false},
		{2600, true},
		{2799, true},
		{2800, false},
	}
	for _, tt := range tests {
		if got := tech.AvailableIn(tt.year); got != tt.want {
			t.Errorf("AvailableIn(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}
	if !(TechInfo{IntroYear: 2600}).AvailableIn(3145) {
		t.Fatal("expected unextinct tech to stay available")
	}
}

func TestTagsAndLevels(t *testing.T) {
	if TagArmorPiercing.Label() != "Armor-Piercing" || Tag("custom").Label() != "custom" {
		t.Fatal("unexpected labels")
	}
	if TagThunder.MessageKey() != "tag.thunder" {
		t.Fatalf("message key = %q", TagThunder.MessageKey())
	}
	if len(Tags()) == 0 || !Tags()[0].Known() {
		t.Fatal("expected declared tags")
	}
	level, ok := ParseRulesLevel("ADVANCED")
	if !ok || level != LevelAdvanced || level.String() != "ADVANCED" {
		t.Fatalf("level = %v, %v", level, ok)
	}
	if _, ok := ParseRulesLevel("LEGENDARY"); ok {
		t.Fatal("expected unknown level")
	}
	if !CategoryMML.Known() || Category("MultiRack").Known() {
		t.Fatal("unexpected category membership")
	}
	if Derivable(CategoryGauss) || !Derivable(CategoryMekMortar) {
		t.Fatal("unexpected derivable categories")
	}
}
