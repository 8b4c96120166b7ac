// Package data holds the fixed ammunition tables: the embedded base-record
// rows and the munition families derived from them.
package data

import (
	_ "embed"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	apperrors "github.com/louisbranch/ordnance/internal/platform/errors"
	"github.com/louisbranch/ordnance/internal/services/armory/domain/munition"
)

//go:embed base_records.yaml
var baseRecordsYAML []byte

// rowValidate checks decoded rows against the category, tag and flag enums.
var rowValidate = newRowValidator()

func newRowValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return munition.Category(fl.Field().String()).Known()
	})
	_ = v.RegisterValidation("tag", func(fl validator.FieldLevel) bool {
		return munition.Tag(fl.Field().String()).Known()
	})
	_ = v.RegisterValidation("flag", func(fl validator.FieldLevel) bool {
		return knownFlags.Has(munition.Flag(fl.Field().String()))
	})
	return v
}

var knownFlags = munition.NewSet(
	munition.FlagLongRange,
	munition.FlagShortRange,
	munition.FlagBarracuda,
	munition.FlagWhiteShark,
	munition.FlagKillerWhale,
	munition.FlagInterceptor,
	munition.FlagCaseless,
	munition.FlagCapital,
)

type recordFile struct {
	Records []baseRow `yaml:"records" validate:"required,min=1,dive"`
}

type baseRow struct {
	Key         string   `yaml:"key" validate:"required"`
	Name        string   `yaml:"name" validate:"required"`
	ShortName   string   `yaml:"short_name" validate:"required"`
	Category    string   `yaml:"category" validate:"required,category"`
	RackSize    int      `yaml:"rack_size" validate:"gte=0"`
	Damage      int      `yaml:"damage" validate:"gte=0"`
	Shots       int      `yaml:"shots" validate:"gt=0"`
	Cost        float64  `yaml:"cost" validate:"gte=0"`
	BV          float64  `yaml:"bv" validate:"gte=0"`
	Tech        techRow  `yaml:"tech"`
	Tags        []string `yaml:"tags" validate:"dive,tag"`
	Flags       []string `yaml:"flags" validate:"dive,flag"`
	MassPerShot float64  `yaml:"mass_per_shot" validate:"gte=0"`
	// Flagged notes a known inconsistency kept as published.
	Flagged string `yaml:"flagged"`
}

type techRow struct {
	Base    string `yaml:"base" validate:"required,oneof=IS CLAN MIXED"`
	Intro   int    `yaml:"intro" validate:"gte=0"`
	Extinct int    `yaml:"extinct" validate:"omitempty,gtfield=Intro"`
	Level   string `yaml:"level" validate:"required,oneof=INTRODUCTORY STANDARD ADVANCED EXPERIMENTAL"`
}

// BaseRecords decodes the embedded base-record table.
func BaseRecords() ([]munition.Record, error) {
	return ParseBaseRecords(baseRecordsYAML)
}

// ParseBaseRecords decodes and validates a base-record table. Rows keep
// their file order, which is the registration order.
func ParseBaseRecords(raw []byte) ([]munition.Record, error) {
	var file recordFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInvalidRecord, "decode base records", err)
	}
	if err := rowValidate.Struct(file); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInvalidRecord, fmt.Sprintf("validate base records: %v", err), err)
	}

	records := make([]munition.Record, 0, len(file.Records))
	for _, row := range file.Records {
		records = append(records, row.record())
	}
	return records, nil
}

// FlaggedRows returns the keys of rows carrying a flagged note, with the note.
func FlaggedRows() (map[string]string, error) {
	var file recordFile
	if err := yaml.Unmarshal(baseRecordsYAML, &file); err != nil {
		return nil, fmt.Errorf("decode base records: %w", err)
	}
	out := map[string]string{}
	for _, row := range file.Records {
		if row.Flagged != "" {
			out[row.Key] = row.Flagged
		}
	}
	return out, nil
}

func (r baseRow) record() munition.Record {
	level, _ := munition.ParseRulesLevel(r.Tech.Level)
	tags := munition.NewSet[munition.Tag]()
	for _, t := range r.Tags {
		tags[munition.Tag(t)] = struct{}{}
	}
	if len(tags) == 0 {
		tags = munition.StandardTags()
	}
	flags := munition.NewSet[munition.Flag]()
	for _, f := range r.Flags {
		flags[munition.Flag(f)] = struct{}{}
	}
	return munition.Record{
		Name:          r.Name,
		ShortName:     r.ShortName,
		Key:           r.Key,
		Category:      munition.Category(r.Category),
		RackSize:      r.RackSize,
		DamagePerShot: r.Damage,
		Shots:         r.Shots,
		Cost:          r.Cost,
		BV:            r.BV,
		Tech: munition.TechInfo{
			Base:        munition.TechBase(r.Tech.Base),
			IntroYear:   r.Tech.Intro,
			ExtinctYear: r.Tech.Extinct,
			Level:       level,
		},
		Tags:        tags,
		Flags:       flags,
		MassPerShot: r.MassPerShot,
	}
}
