// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrMemberNotFound is returned when a roster member does not exist.
	ErrMemberNotFound = errors.New("member not found")
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrPermissionDenied signals a non-admin invoking an admin-only operation.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrEmptyRoster signals a draw attempted with no members registered.
	ErrEmptyRoster = errors.New("empty roster")
	// ErrSessionNotFound signals a missing or expired manual-pick session.
	ErrSessionNotFound = errors.New("session not found")
	// ErrPersistence signals a failed read or write of a backing document.
	ErrPersistence = errors.New("persistence failure")
)
