// Package services defines the business logic for form intake and
// application PDF delivery. This file centralizes common service-level error
// values so that they can be consistently returned by service methods and
// checked by callers.
//
// These errors are intended for internal use by the service layer and
// translation into user-facing messages or HTTP status codes should be
// performed at the handler layer.
package services

import "errors"

var (
	// ErrApplicationNotFound indicates that the requested life insurance
	// application does not exist.
	ErrApplicationNotFound = errors.New("application not found")

	// ErrAlertSendFailed is returned when the internal lead alert could not
	// be delivered. The alert is the business-critical path, so it surfaces
	// to the caller even though the submission may already be stored.
	ErrAlertSendFailed = errors.New("failed to send internal notification")
)
