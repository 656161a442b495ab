package telemetry

import "errors"

var (
	// ErrNotFound: no row matches the lookup.
	ErrNotFound = errors.New("not found")

	// ErrUnknownReference: a write referenced a row that does not resolve,
	// e.g. an insert against an unknown box or a box added for an unknown
	// owner.
	ErrUnknownReference = errors.New("unknown reference")

	// ErrUnauthorized covers every guard rejection. Whether the cause was an
	// unknown identity, a bad credential or a missing admin flag is
	// deliberately not distinguishable, so callers cannot enumerate
	// identities.
	ErrUnauthorized = errors.New("unauthorized")
)
