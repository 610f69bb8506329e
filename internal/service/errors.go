package service

import "errors"

// Sentinel errors for handler translation with errors.Is.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserInactive       = errors.New("account is deactivated")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidPosition    = errors.New("invalid position")

	ErrUserNotFound   = errors.New("user not found")
	ErrReportNotFound = errors.New("report not found")
	ErrKPINotFound    = errors.New("kpi record not found")

	// ErrInvalidStatus is returned when a review targets a status
	// outside {Under Review, Approved, Needs Revision}. The report is
	// left unchanged.
	ErrInvalidStatus = errors.New("invalid status")

	ErrReviewerRequired = errors.New("reviewer required")
)

// IsNotFound reports whether err maps to a missing resource.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrReportNotFound) ||
		errors.Is(err, ErrKPINotFound)
}

// IsClientError reports whether err is due to invalid client input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidStatus) ||
		errors.Is(err, ErrInvalidPosition) ||
		errors.Is(err, ErrEmailTaken) ||
		errors.Is(err, ErrReviewerRequired)
}
