package catalog

import (
	"cmp"
	"slices"

	apperrors "github.com/louisbranch/ordnance/internal/platform/errors"
	"github.com/louisbranch/ordnance/internal/platform/pagination"
	"github.com/louisbranch/ordnance/internal/services/armory/domain/munition"
)

var (
	pageSizes = pagination.PageSizeConfig{Default: 50, Max: 500}
	orderBys  = pagination.OrderByConfig{Allowed: []string{"key", "name", "shots", "cost", "bv", "intro_year"}}
)

// PageRequest is a ListRequest with ordering and pagination. An empty
// OrderBy keeps registration order.
type PageRequest struct {
	ListRequest
	OrderBy   string
	PageSize  int
	PageToken string
}

// Page is one page of List results.
type Page struct {
	Records       []munition.Record
	NextPageToken string
	TotalSize     int
}

// ListPage runs List, orders the result and returns one page of it.
func ListPage(s *Store, req PageRequest) (Page, error) {
	order, err := pagination.NormalizeOrderBy(req.OrderBy, orderBys)
	if err != nil {
		return Page{}, apperrors.WithMetadata(apperrors.CodeInvalidFilter, err.Error(),
			map[string]string{"Filter": req.OrderBy})
	}
	offset, err := pagination.DecodeOffset(req.PageToken)
	if err != nil {
		return Page{}, apperrors.WithMetadata(apperrors.CodeInvalidFilter, err.Error(),
			map[string]string{"Filter": req.PageToken})
	}
	records, err := List(s, req.ListRequest)
	if err != nil {
		return Page{}, err
	}

	if order.Field != "" {
		slices.SortStableFunc(records, func(a, b munition.Record) int {
			c := compareBy(order.Field, a, b)
			if order.Desc {
				return -c
			}
			return c
		})
	}

	size := pagination.ClampPageSize(req.PageSize, pageSizes)
	page := Page{TotalSize: len(records)}
	if offset >= len(records) {
		return page, nil
	}
	end := min(offset+size, len(records))
	page.Records = records[offset:end]
	if end < len(records) {
		page.NextPageToken = pagination.EncodeOffset(end)
	}
	return page, nil
}

func compareBy(field string, a, b munition.Record) int {
	switch field {
	case "key":
		return cmp.Compare(a.Key, b.Key)
	case "name":
		return cmp.Compare(a.Name, b.Name)
	case "shots":
		return cmp.Compare(a.Shots, b.Shots)
	case "cost":
		return cmp.Compare(a.Cost, b.Cost)
	case "bv":
		return cmp.Compare(a.BV, b.BV)
	case "intro_year":
		return cmp.Compare(a.Tech.IntroYear, b.Tech.IntroYear)
	default:
		return 0
	}
}
