// Package errors provides structured error handling with i18n support.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Catalog table defects. These surface while the registry is being
	// built and never from a query path.
	CodeUnsupportedCategory Code = "UNSUPPORTED_CATEGORY"
	CodeMalformedKey        Code = "MALFORMED_KEY"
	CodeDuplicateKey        Code = "DUPLICATE_KEY"
	CodeInvalidRecord       Code = "INVALID_RECORD"
	CodeInvalidDescriptor   Code = "INVALID_DESCRIPTOR"
	CodeUnregisteredBase    Code = "UNREGISTERED_BASE"
	CodeRegistryFrozen      Code = "REGISTRY_FROZEN"
	CodeIndexNotBuilt       Code = "INDEX_NOT_BUILT"

	// Query errors
	CodeInvalidFilter Code = "INVALID_FILTER"
	CodeNotFound      Code = "NOT_FOUND"
)

// IsProgrammerError reports whether the code marks a defect in the fixed
// catalog tables rather than bad caller input.
func (c Code) IsProgrammerError() bool {
	switch c {
	case CodeUnsupportedCategory,
		CodeMalformedKey,
		CodeDuplicateKey,
		CodeInvalidRecord,
		CodeInvalidDescriptor,
		CodeUnregisteredBase,
		CodeRegistryFrozen,
		CodeIndexNotBuilt:
		return true
	default:
		return false
	}
}

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - malformed query input
	case CodeInvalidFilter:
		return codes.InvalidArgument

	// FailedPrecondition - the registry is not in the lifecycle phase the call needs
	case CodeIndexNotBuilt,
		CodeRegistryFrozen:
		return codes.FailedPrecondition

	// NotFound - record doesn't exist
	case CodeNotFound:
		return codes.NotFound

	default:
		return codes.Internal
	}
}
