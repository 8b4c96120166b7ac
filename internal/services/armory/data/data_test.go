package data

import (
	"errors"
	"testing"

	apperrors "github.com/louisbranch/ordnance/internal/platform/errors"
	"github.com/louisbranch/ordnance/internal/services/armory/domain/munition"
)

func TestBaseRecordsDecode(t *testing.T) {
	records, err := BaseRecords()
	if err != nil {
		t.Fatalf("BaseRecords: %v", err)
	}
	if len(records) == 0 {
		t.Fatal("expected base records")
	}
	seen := map[string]bool{}
	for _, r := range records {
		if seen[r.Key] {
			t.Fatalf("duplicate key %s", r.Key)
		}
		seen[r.Key] = true
		if len(r.Tags) == 0 {
			t.Fatalf("%s: expected default tags", r.Key)
		}
		if r.IsDerived() {
			t.Fatalf("%s: base rows must not be derived", r.Key)
		}
	}

	first := records[0]
	if first.Key != "IS-AC2-Ammo" || first.Shots != 45 || first.Tech.Level != munition.LevelIntroductory {
		t.Fatalf("first record = %+v", first)
	}
	if !first.Tags.Equal(munition.StandardTags()) {
		t.Fatalf("first record tags = %v", first.Tags.Sorted())
	}
}

func TestParseBaseRecordsRejectsInvalidRows(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed yaml", "records: [\n"},
		{"empty table", "records: []\n"},
		{"unknown category", `records:
  - {key: X-Ammo, name: X Ammo, short_name: X, category: LASER, shots: 1, tech: {base: IS, level: STANDARD}}
`},
		{"zero shots", `records:
  - {key: X-Ammo, name: X Ammo, short_name: X, category: AC, shots: 0, tech: {base: IS, level: STANDARD}}
`},
		{"unknown tag", `records:
  - {key: X-Ammo, name: X Ammo, short_name: X, category: AC, shots: 1, tags: [shiny], tech: {base: IS, level: STANDARD}}
`},
		{"unknown flag", `records:
  - {key: X-Ammo, name: X Ammo, short_name: X, category: AC, shots: 1, flags: [SHINY], tech: {base: IS, level: STANDARD}}
`},
		{"extinct before intro", `records:
  - {key: X-Ammo, name: X Ammo, short_name: X, category: AC, shots: 1, tech: {base: IS, intro: 3000, extinct: 2900, level: STANDARD}}
`},
		{"unknown level", `records:
  - {key: X-Ammo, name: X Ammo, short_name: X, category: AC, shots: 1, tech: {base: IS, level: LEGENDARY}}
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBaseRecords([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, apperrors.New(apperrors.CodeInvalidRecord, "")) {
				t.Fatalf("error = %v, want invalid record code", err)
			}
		})
	}
}

func TestParseBaseRecordsKeepsOrderAndFields(t *testing.T) {
	records, err := ParseBaseRecords([]byte(`records:
  - key: IS-Ammo-AR10-Barracuda
    name: AR10 Barracuda Ammo
    short_name: AR10 Barracuda
    category: AR10
    rack_size: 1
    shots: 1
    tech: {base: IS, intro: 3071, level: ADVANCED}
    flags: [BARRACUDA, CAPITAL]
    mass_per_shot: 30000
  - key: IS-Ammo-Narc-Explosive
    name: Narc Explosive Pods
    short_name: Narc Explosive
    category: NARC
    shots: 6
    tags: [explosive]
    tech: {base: IS, intro: 3060, level: ADVANCED}
`))
	if err != nil {
		t.Fatalf("ParseBaseRecords: %v", err)
	}
	if len(records) != 2 || records[0].Key != "IS-Ammo-AR10-Barracuda" {
		t.Fatalf("records = %+v", records)
	}
	if !records[0].Flags.Has(munition.FlagBarracuda) || records[0].Tonnage(1) != 30 {
		t.Fatalf("barracuda = %+v", records[0])
	}
	if !records[1].Tags.Equal(munition.NewSet(munition.TagExplosive)) {
		t.Fatalf("narc tags = %v", records[1].Tags.Sorted())
	}
}

func TestFlaggedRows(t *testing.T) {
	rows, err := FlaggedRows()
	if err != nil {
		t.Fatalf("FlaggedRows: %v", err)
	}
	if rows["IS-Ammo-AR10-KillerWhale"] == "" {
		t.Fatalf("expected flagged killer whale row, got %v", rows)
	}
}

func TestFamiliesMatchBaseRecords(t *testing.T) {
	records, err := BaseRecords()
	if err != nil {
		t.Fatalf("BaseRecords: %v", err)
	}
	for _, family := range Families() {
		matched := 0
		for _, r := range records {
			if family.Matches(r) {
				matched++
			}
		}
		if matched == 0 {
			t.Errorf("family %q matches no base records", family.Name)
		}
		for _, d := range family.Descriptors {
			if err := d.Validate(); err != nil {
				t.Errorf("family %q: %v", family.Name, err)
			}
		}
	}
}

func TestFamilyMatchesSubFamily(t *testing.T) {
	long := munition.Record{
		Category: munition.CategoryMML,
		Tags:     munition.StandardTags(),
		Flags:    munition.NewSet(munition.FlagLongRange),
		Tech:     munition.TechInfo{Base: munition.TechBaseInnerSphere},
	}
	short := long
	short.Flags = munition.NewSet(munition.FlagShortRange)
	family := Family{
		Categories: []munition.Category{munition.CategoryMML},
		TechBases:  []munition.TechBase{munition.TechBaseInnerSphere},
		SubFamily:  munition.FlagLongRange,
	}
	if !family.Matches(long) || family.Matches(short) {
		t.Fatal("unexpected sub-family matching")
	}
	clan := long
	clan.Tech.Base = munition.TechBaseClan
	if family.Matches(clan) {
		t.Fatal("expected tech base filter")
	}
	tagged := long
	tagged.Tags = munition.NewSet(munition.TagThunder)
	if family.Matches(tagged) {
		t.Fatal("expected only standard bases")
	}
}

func TestMMLHeatSeekingIsFlagged(t *testing.T) {
	for _, family := range Families() {
		for _, d := range family.Descriptors {
			if d.Tag != munition.TagHeatSeeking {
				continue
			}
			isMML := family.SubFamily != ""
			if isMML && (d.Multiplier == nil || d.Multiplier.Flagged == "") {
				t.Fatalf("%s: expected flagged multiplier override", family.Name)
			}
			if !isMML && d.Multiplier != nil {
				t.Fatalf("%s: unexpected override", family.Name)
			}
		}
	}
}
