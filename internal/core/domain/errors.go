package domain

import "errors"

var (
	// ErrSubmissionNotFound is returned when a submission id does not exist.
	ErrSubmissionNotFound = errors.New("submission not found")

	// ErrAdminNotFound is returned by repositories when no matching admin
	// account exists. The auth service masks it as ErrInvalidCredentials so
	// login failures never reveal whether the username exists.
	ErrAdminNotFound = errors.New("admin user not found")

	// ErrAdminExists signals a unique-constraint violation on username or
	// email. Bootstrap treats it as "already seeded".
	ErrAdminExists = errors.New("admin user already exists")

	// ErrInvalidCredentials covers both unknown-username and wrong-password.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrAuthRequired is returned for any token verification failure:
	// missing, malformed, expired, or wrongly signed.
	ErrAuthRequired = errors.New("authentication required")

	// ErrInactiveAdmin is returned when a verified token resolves to an
	// account that no longer exists or has been deactivated.
	ErrInactiveAdmin = errors.New("invalid or inactive admin user")
)
