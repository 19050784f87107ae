// Package common defines shared constants and sentinel errors used across
// client and server layers of RetailHub. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Business outcomes. Expected results of normal user flows, rendered
	// as messages and never logged as failures.
	ErrEmailExists = errors.New("email already exists")

	// Transport and auth errors.
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
)
