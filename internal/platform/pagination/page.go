// Package pagination normalizes page sizes, ordering and offset page tokens
// for list queries.
package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// PageSizeConfig configures page size normalization.
type PageSizeConfig struct {
	Default int
	Max     int
}

// OrderByConfig configures order_by validation.
type OrderByConfig struct {
	Default string
	Allowed []string
}

// ClampPageSize applies defaults and limits for page sizes.
func ClampPageSize(value int, cfg PageSizeConfig) int {
	pageSize := value
	if pageSize <= 0 {
		pageSize = cfg.Default
	}
	if cfg.Max > 0 && pageSize > cfg.Max {
		pageSize = cfg.Max
	}
	if pageSize <= 0 {
		pageSize = 1
	}
	return pageSize
}

// OrderBy is a parsed order_by clause: one field, optionally descending.
type OrderBy struct {
	Field string
	Desc  bool
}

// NormalizeOrderBy validates order_by ("field" or "field desc") against the
// allowed fields and applies the default.
func NormalizeOrderBy(orderBy string, cfg OrderByConfig) (OrderBy, error) {
	orderBy = strings.TrimSpace(orderBy)
	if orderBy == "" {
		orderBy = cfg.Default
	}
	if orderBy == "" {
		return OrderBy{}, nil
	}
	parts := strings.Fields(orderBy)
	out := OrderBy{Field: parts[0]}
	switch {
	case len(parts) == 1:
	case len(parts) == 2 && strings.EqualFold(parts[1], "desc"):
		out.Desc = true
	case len(parts) == 2 && strings.EqualFold(parts[1], "asc"):
	default:
		return OrderBy{}, fmt.Errorf("invalid order_by: %s", orderBy)
	}
	for _, allowed := range cfg.Allowed {
		if out.Field == allowed {
			return out, nil
		}
	}
	return OrderBy{}, fmt.Errorf("invalid order_by: %s", orderBy)
}

const offsetPrefix = "offset:"

// EncodeOffset returns an opaque page token for offset. Offset 0 encodes as
// the empty token.
func EncodeOffset(offset int) string {
	if offset <= 0 {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString([]byte(offsetPrefix + strconv.Itoa(offset)))
}

// DecodeOffset parses a token from EncodeOffset. The empty token is offset 0.
func DecodeOffset(token string) (int, error) {
	if token == "" {
		return 0, nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return 0, fmt.Errorf("invalid page token: %w", err)
	}
	value, ok := strings.CutPrefix(string(raw), offsetPrefix)
	if !ok {
		return 0, fmt.Errorf("invalid page token")
	}
	offset, err := strconv.Atoi(value)
	if err != nil || offset < 0 {
		return 0, fmt.Errorf("invalid page token")
	}
	return offset, nil
}
