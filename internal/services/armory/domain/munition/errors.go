package munition

import apperrors "github.com/louisbranch/ordnance/internal/platform/errors"

var (
	// ErrUnsupportedCategory indicates derivation was requested for a category
	// without a naming rule.
	ErrUnsupportedCategory = apperrors.New(apperrors.CodeUnsupportedCategory, "unsupported category")

	// ErrMalformedKey indicates a base record name or key does not fit its
	// category's naming rule.
	ErrMalformedKey = apperrors.New(apperrors.CodeMalformedKey, "malformed key")

	// ErrInvalidDescriptor indicates a descriptor cannot be applied.
	ErrInvalidDescriptor = apperrors.New(apperrors.CodeInvalidDescriptor, "invalid munition descriptor")
)
