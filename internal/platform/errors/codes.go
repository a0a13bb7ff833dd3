// Package errors provides structured error handling with i18n support.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Dice/roll errors
	CodeDiceMissing       Code = "DICE_MISSING"
	CodeDiceInvalidSpec   Code = "DICE_INVALID_SPEC"
	CodeDiceLimitExceeded Code = "DICE_LIMIT_EXCEEDED"
	CodeRollTimesInvalid  Code = "ROLL_TIMES_INVALID"
	CodeRollIDEmpty       Code = "ROLL_ID_EMPTY"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeDiceMissing,
		CodeDiceInvalidSpec,
		CodeDiceLimitExceeded,
		CodeRollTimesInvalid,
		CodeRollIDEmpty:
		return codes.InvalidArgument

	// NotFound - resource doesn't exist
	case CodeNotFound:
		return codes.NotFound

	default:
		return codes.Internal
	}
}
