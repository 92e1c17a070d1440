package errors

import (
	"errors"
)

// Reasons used by sentinel errors
const (
	ReasonPlacementNotFound = "placement_not_found"
	ReasonNoWalkableCells   = "no_walkable_cells"
)

var (
	// ErrPlacementNotFound matches any error returned when a bounded
	// placement search runs out of attempts.
	ErrPlacementNotFound = NotFound("placement not found").WithReason(ReasonPlacementNotFound)

	// ErrNoWalkableCells matches errors raised when a grid has nothing to
	// anchor a start or exit point on.
	ErrNoWalkableCells = FailedPrecondition("grid has no walkable cells").WithReason(ReasonNoWalkableCells)
)

// PlacementNotFound builds a fresh placement error carrying the attempt count
func PlacementNotFound(attempts int) *Error {
	return NotFoundf("no valid placement after %d attempts", attempts).
		WithReason(ReasonPlacementNotFound).
		WithMeta("attempts", attempts)
}

// NoWalkableCells builds a fresh error for an empty grid
func NoWalkableCells(anchor string) *Error {
	return FailedPreconditionf("no walkable cell near %s", anchor).
		WithReason(ReasonNoWalkableCells).
		WithMeta("anchor", anchor)
}

// Is checks if an error matches a target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode extracts the error code from an error
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	return CodeInternal
}

// GetMeta extracts metadata from an error
func GetMeta(err error) map[string]any {
	if err == nil {
		return nil
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Meta
	}

	return nil
}

// GetMessage extracts the user-facing message from an error
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Message
	}

	return err.Error()
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsFailedPrecondition checks if an error is a failed precondition error
func IsFailedPrecondition(err error) bool {
	return GetCode(err) == CodeFailedPrecondition
}

// IsOutOfRange checks if an error is an out of range error
func IsOutOfRange(err error) bool {
	return GetCode(err) == CodeOutOfRange
}

// IsCanceled checks if an error is a canceled error
func IsCanceled(err error) bool {
	return GetCode(err) == CodeCanceled
}
