package domain

import "errors"

// Sentinel errors for every classified failure in the core. Handlers never
// inspect these directly; the HTTP error handler maps them to status codes
// in one place.
var (
	// ErrInvalidCredentials covers every login failure: unknown email,
	// wrong password, deactivated account. The cases are deliberately
	// indistinguishable so login cannot be used as an account oracle.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthenticated covers every guard failure: missing, malformed,
	// tampered or expired token, or a token whose subject no longer
	// resolves to an active account.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrForbidden means the caller is authenticated but lacks the
	// privilege for the operation.
	ErrForbidden = errors.New("access forbidden")

	// ErrSelfTarget rejects an administrator changing their own privilege.
	ErrSelfTarget = errors.New("cannot change own admin role")

	ErrUserNotFound     = errors.New("user not found")
	ErrPostNotFound     = errors.New("post not found")
	ErrCategoryNotFound = errors.New("category not found")

	// Promote/demote are one-shot transitions, not upserts: repeating one
	// is an illegal state transition, not a no-op.
	ErrAlreadyAdmin = errors.New("user is already an administrator")
	ErrNotAdmin     = errors.New("user is not an administrator")

	// ErrEmailTaken surfaces the storage-level uniqueness violation.
	ErrEmailTaken = errors.New("email already registered")

	// ErrStorageUnavailable marks transient backend failures; clients get
	// a generic 503 while the full cause is logged server-side.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
