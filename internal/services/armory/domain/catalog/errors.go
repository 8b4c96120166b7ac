package catalog

import apperrors "github.com/louisbranch/ordnance/internal/platform/errors"

var (
	// ErrRegistryFrozen indicates a registration or rebuild after BuildIndex.
	ErrRegistryFrozen = apperrors.New(apperrors.CodeRegistryFrozen, "registry is frozen")

	// ErrIndexNotBuilt indicates a category query before BuildIndex.
	ErrIndexNotBuilt = apperrors.New(apperrors.CodeIndexNotBuilt, "category index not built")

	// ErrDuplicateKey indicates two records share a lookup key.
	ErrDuplicateKey = apperrors.New(apperrors.CodeDuplicateKey, "duplicate key")

	// ErrInvalidRecord indicates a record that cannot be registered.
	ErrInvalidRecord = apperrors.New(apperrors.CodeInvalidRecord, "invalid record")

	// ErrUnregisteredBase indicates derivation from a record not in this store.
	ErrUnregisteredBase = apperrors.New(apperrors.CodeUnregisteredBase, "base record is not registered")

	// ErrInvalidFilter indicates a list filter that does not parse.
	ErrInvalidFilter = apperrors.New(apperrors.CodeInvalidFilter, "invalid filter")
)
