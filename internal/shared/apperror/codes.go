package apperror

// Machine-readable codes carried in the error envelope. The portal's
// surface is small, so the taxonomy stays small: bad input, the three
// auth outcomes, missing rows, upsert conflicts, and everything else.
const (
	CodeInvalidInput = "INVALID_INPUT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"

	CodeInternalError = "INTERNAL_ERROR"
)
