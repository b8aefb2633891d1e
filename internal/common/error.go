// Package common defines shared constants and sentinel errors used across
// the Ágora client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Transport-level errors. ErrNetwork covers every case where a request
	// could not complete: timeout, refused connection, DNS or TLS failure.
	ErrNetwork = errors.New("network error")

	// ErrNotFound maps a 404 response. For monthly-record lookups it is a
	// legitimate "no record yet" signal, not a failure.
	ErrNotFound = errors.New("not found")

	// ErrServer maps any non-2xx response other than 404.
	ErrServer = errors.New("server error")

	// ErrValidation marks input rejected client-side before a request is
	// even sent (e.g. a malformed email address).
	ErrValidation = errors.New("validation error")

	// ErrSendInProgress rejects a chat send while another is in flight.
	ErrSendInProgress = errors.New("send already in progress")

	// ErrUnsupportedLanguage marks a language code outside the supported set.
	ErrUnsupportedLanguage = errors.New("unsupported language")
)
