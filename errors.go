package navi

import "errors"

var (
	ErrMalformedPattern        = errors.New("navi: malformed route pattern")
	ErrDuplicateRoute          = errors.New("navi: duplicate route pattern")
	ErrMissingView             = errors.New("navi: route has no view")
	ErrNoRoute                 = errors.New("navi: no route found")
	ErrViewNotFound            = errors.New("navi: view not found")
	ErrNoViewLookup            = errors.New("navi: no view lookup configured")
	ErrConflictingAddressModes = errors.New("navi: history and hash addressing are mutually exclusive")
	ErrAlreadyStarted          = errors.New("navi: engine already started")
)
