// Package service contains the enrollment workflows. Services validate
// requests, orchestrate repository lookups and translate storage-level
// outcomes into typed domain errors; expected absence is a checked result,
// never a panic.
package service

import (
	appErrors "github.com/enrolify/leads-api/pkg/errors"
)

// infraError classifies a repository failure: unreachable storage maps to a
// 503, anything else to an internal error carrying the given message.
func infraError(err error, message string) error {
	if appErrors.IsConnection(err) {
		return appErrors.Wrap(err, appErrors.ErrUnavailable.Code, appErrors.ErrUnavailable.Status, appErrors.ErrUnavailable.Message)
	}
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, message)
}
