package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores and adapters return these
// (optionally wrapped) so services can translate them into domain errors.
//
//   - ErrNotFound: entity does not exist in store
//   - ErrUnavailable: collaborator or backing service temporarily unavailable
//   - ErrBadData: collaborator answered with a payload that does not match its contract
var (
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("unavailable")
	ErrBadData     = errors.New("bad data")
)
