package blogservice

import "errors"

// ErrUnauthorized is returned when a mutation is attempted by a user that
// does not own the target resource.
var ErrUnauthorized = errors.New("unauthorized access")

// authorizeOwner allows a mutation only when the requester owns the resource.
// Reads are never gated by ownership.
func authorizeOwner(ownerID, requesterID int) error {
	if ownerID != requesterID {
		return ErrUnauthorized
	}

	return nil
}
