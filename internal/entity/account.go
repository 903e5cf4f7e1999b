package entity

import "github.com/google/uuid"

type Role string

const (
	RoleIndividual Role = "individual"
	RoleAdmin      Role = "admin"
	RoleLawyer     Role = "lawyer"
)

// Valid reports whether the role is one the token issuer and gate accept.
func (r Role) Valid() bool {
	return r == RoleIndividual || r == RoleAdmin || r == RoleLawyer
}

// AccountRef is the {id, role} pair that identifies an account across the
// two collections. Bearer tokens, OAuth continuation tokens, and the auth
// middleware all carry exactly this shape.
type AccountRef struct {
	ID   uuid.UUID
	Role Role
}

// Account is the tagged view over the two account kinds. The role inside
// Ref() decides which collection the record lives in; callers dispatch on
// it instead of branching on concrete types.
type Account interface {
	Ref() AccountRef
	EmailAddress() string
	DisplayName() string
	PasswordHash() *string
	// ClearPassword drops the stored hash so the value can be attached to
	// a request context or serialized without leaking it.
	ClearPassword()
}
