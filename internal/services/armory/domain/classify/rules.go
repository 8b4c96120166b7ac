// Package classify answers fixed battlefield questions about ammunition
// records from a declarative rules table.
package classify

import (
	_ "embed"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	apperrors "github.com/louisbranch/ordnance/internal/platform/errors"
	"github.com/louisbranch/ordnance/internal/services/armory/domain/munition"
)

//go:embed rules.yaml
var rulesYAML []byte

// UnitClass identifies the kind of unit mounting a weapon.
type UnitClass string

const (
	UnitMek         UnitClass = "MEK"
	UnitVehicle     UnitClass = "VEHICLE"
	UnitProtoMek    UnitClass = "PROTOMEK"
	UnitBattleArmor UnitClass = "BATTLE_ARMOR"
	UnitInfantry    UnitClass = "INFANTRY"
	UnitAerospace   UnitClass = "AEROSPACE"
)

// Options are the ruleset toggles that widen predicates.
type Options struct {
	// InterceptArtillery lets point defense engage artillery munitions.
	InterceptArtillery bool
	// PermissiveUnitAmmo selects the larger per-unit ammunition allow-lists.
	PermissiveUnitAmmo bool
}

var rulesValidate = newRulesValidator()

func newRulesValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return munition.Category(fl.Field().String()).Known()
	})
	_ = v.RegisterValidation("tag", func(fl validator.FieldLevel) bool {
		return munition.Tag(fl.Field().String()).Known()
	})
	_ = v.RegisterValidation("unitclass", func(fl validator.FieldLevel) bool {
		switch UnitClass(fl.Field().String()) {
		case UnitMek, UnitVehicle, UnitProtoMek, UnitBattleArmor, UnitInfantry, UnitAerospace:
			return true
		default:
			return false
		}
	})
	return v
}

type ruleRow struct {
	Categories []string `yaml:"categories" validate:"required,min=1,dive,category"`
	Tags       []string `yaml:"tags" validate:"required_without=AnyTag,dive,tag"`
	AnyTag     bool     `yaml:"any_tag"`
	Flagged    string   `yaml:"flagged"`
}

type unitTables struct {
	Strict     map[string][]ruleRow `yaml:"strict" validate:"dive,keys,unitclass,endkeys,dive"`
	Permissive map[string][]ruleRow `yaml:"permissive" validate:"dive,keys,unitclass,endkeys,dive"`
}

type rulesFile struct {
	AreaDenial             []ruleRow  `yaml:"area_denial" validate:"required,dive"`
	MinefieldDelivery      []ruleRow  `yaml:"minefield_delivery" validate:"required,dive"`
	MinefieldClearance     []ruleRow  `yaml:"minefield_clearance" validate:"required,dive"`
	Interceptable          []ruleRow  `yaml:"interceptable" validate:"required,dive"`
	InterceptableArtillery []ruleRow  `yaml:"interceptable_artillery" validate:"dive"`
	UnitAmmo               unitTables `yaml:"unit_ammo"`
}

// match is the compiled allow-list for one category.
type match struct {
	anyTag bool
	tags   munition.TagSet
}

// table maps a category to its allow-list.
type table map[munition.Category]match

func (t table) matches(rec munition.Record) bool {
	m, ok := t[rec.Category]
	if !ok {
		return false
	}
	return m.anyTag || rec.Tags.Intersects(m.tags)
}

// Rules is a compiled classification table.
type Rules struct {
	areaDenial             table
	minefieldDelivery      table
	minefieldClearance     table
	interceptable          table
	interceptableArtillery table
	strictUnitAmmo         map[UnitClass]table
	permissiveUnitAmmo     map[UnitClass]table
}

var defaultRules = mustLoadEmbedded()

// Default returns the rules compiled from the embedded table.
func Default() *Rules {
	return defaultRules
}

// LoadRules decodes, validates and compiles a rules table.
func LoadRules(raw []byte) (*Rules, error) {
	var file rulesFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInvalidRecord, "decode classification rules", err)
	}
	if err := rulesValidate.Struct(file); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInvalidRecord, fmt.Sprintf("validate classification rules: %v", err), err)
	}
	return &Rules{
		areaDenial:             compile(file.AreaDenial),
		minefieldDelivery:      compile(file.MinefieldDelivery),
		minefieldClearance:     compile(file.MinefieldClearance),
		interceptable:          compile(file.Interceptable),
		interceptableArtillery: compile(file.InterceptableArtillery),
		strictUnitAmmo:         compileUnits(file.UnitAmmo.Strict),
		permissiveUnitAmmo:     compileUnits(file.UnitAmmo.Permissive),
	}, nil
}

func compile(rows []ruleRow) table {
	out := table{}
	for _, row := range rows {
		for _, c := range row.Categories {
			category := munition.Category(c)
			m, ok := out[category]
			if !ok {
				m = match{tags: munition.NewSet[munition.Tag]()}
			}
			m.anyTag = m.anyTag || row.AnyTag
			for _, t := range row.Tags {
				m.tags[munition.Tag(t)] = struct{}{}
			}
			out[category] = m
		}
	}
	return out
}

func compileUnits(rows map[string][]ruleRow) map[UnitClass]table {
	out := make(map[UnitClass]table, len(rows))
	for unit, unitRows := range rows {
		out[UnitClass(unit)] = compile(unitRows)
	}
	return out
}

func mustLoadEmbedded() *Rules {
	rules, err := LoadRules(rulesYAML)
	if err != nil {
		panic(err)
	}
	return rules
}
