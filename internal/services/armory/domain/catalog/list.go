package catalog

import (
	"fmt"

	apperrors "github.com/louisbranch/ordnance/internal/platform/errors"
	"github.com/louisbranch/ordnance/internal/services/armory/domain/catalog/filter"
	"github.com/louisbranch/ordnance/internal/services/armory/domain/munition"
)

// ListFields are the AIP-160 filter fields accepted by List.
var ListFields = filter.Fields{
	"key":        filter.FieldString,
	"name":       filter.FieldString,
	"short_name": filter.FieldString,
	"category":   filter.FieldString,
	"tech_base":  filter.FieldString,
	"level":      filter.FieldString,
	"base":       filter.FieldString,
	"rack_size":  filter.FieldInt,
	"damage":     filter.FieldInt,
	"shots":      filter.FieldInt,
	"intro_year": filter.FieldInt,
	"cost":       filter.FieldFloat,
	"bv":         filter.FieldFloat,
}

// ListRequest narrows a listing. Zero values match everything.
type ListRequest struct {
	// Filter is an AIP-160 expression over ListFields.
	Filter   string
	Category munition.Category
	Tag      munition.Tag
}

// List returns the records matching req in registration order.
func List(s *Store, req ListRequest) ([]munition.Record, error) {
	e, err := filter.Parse(req.Filter, ListFields)
	if err != nil {
		return nil, apperrors.WithMetadata(
			apperrors.CodeInvalidFilter,
			err.Error(),
			map[string]string{"Filter": req.Filter},
		)
	}

	candidates := s.All()
	if req.Category != "" {
		if candidates, err = s.ByCategory(req.Category); err != nil {
			return nil, err
		}
	}

	var out []munition.Record
	for _, rec := range candidates {
		if req.Tag != "" && !rec.Tags.Has(req.Tag) {
			continue
		}
		ok, err := filter.Evaluate(e, s.resolver(rec))
		if err != nil {
			return nil, apperrors.WithMetadata(
				apperrors.CodeInvalidFilter,
				fmt.Sprintf("evaluate filter on %s: %v", rec.Key, err),
				map[string]string{"Filter": req.Filter},
			)
		}
		if ok {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (s *Store) resolver(rec munition.Record) filter.Resolver {
	return func(name string) (any, bool) {
		switch name {
		case "key":
			return rec.Key, true
		case "name":
			return rec.Name, true
		case "short_name":
			return rec.ShortName, true
		case "category":
			return string(rec.Category), true
		case "tech_base":
			return string(rec.Tech.Base), true
		case "level":
			return rec.Tech.Level.String(), true
		case "base":
			base, _ := s.BaseOf(rec)
			return base.Key, true
		case "rack_size":
			return rec.RackSize, true
		case "damage":
			return rec.DamagePerShot, true
		case "shots":
			return rec.Shots, true
		case "intro_year":
			return rec.Tech.IntroYear, true
		case "cost":
			return rec.Cost, true
		case "bv":
			return rec.BV, true
		default:
			return nil, false
		}
	}
}
