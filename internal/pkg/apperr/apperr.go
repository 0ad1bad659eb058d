// Package apperr defines the error kinds services report and the HTTP
// layer maps onto status codes. Services wrap these sentinels with
// fmt.Errorf("...: %w", apperr.ErrNotFound); controllers classify with
// errors.Is.
package apperr

import "errors"

var (
	// ErrValidation covers malformed or missing input fields.
	ErrValidation = errors.New("validation failed")
	// ErrConflict covers duplicate codes/emails among non-deleted rows.
	ErrConflict = errors.New("conflict")
	// ErrNotFound covers lookups of nonexistent or soft-deleted rows.
	ErrNotFound = errors.New("not found")
	// ErrUnauthenticated means no valid session was presented.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden is the coarse administrative gate verdict.
	ErrForbidden = errors.New("forbidden")
	// ErrFeatureDenied is the feature-access verdict. Surfaced like
	// ErrForbidden but kept distinct internally.
	ErrFeatureDenied = errors.New("feature access denied")
)

// StatusCode maps an error kind to the HTTP status the envelope carries.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return 400
	case errors.Is(err, ErrUnauthenticated):
		return 401
	case errors.Is(err, ErrForbidden), errors.Is(err, ErrFeatureDenied):
		return 403
	case errors.Is(err, ErrNotFound):
		return 404
	case errors.Is(err, ErrConflict):
		return 409
	default:
		return 500
	}
}
