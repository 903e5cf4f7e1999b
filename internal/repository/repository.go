package repository

import "errors"

// ErrDuplicate is returned when a write collides with a unique index
// (email, bar council id, google id). The index is the authority: two
// racing registrations both pass the service-level pre-check, but only
// one survives the write.
var ErrDuplicate = errors.New("duplicate record")
