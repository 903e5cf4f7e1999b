package service

import "legalconnect/internal/entity"

// RegisterInput carries the union of both kinds' fields; Role decides
// which subset is required.
type RegisterInput struct {
	Role     string
	FullName string
	Email    string
	Password string

	// individual/admin fields
	PhoneNumber       string
	State             string
	PreferredLanguage string

	// lawyer fields (PhoneNumber is shared)
	Specialization  string
	BarCouncilID    string
	ExperienceYears *int
	StateOfPractice string
	Language        string
	Bio             string

	IPAddress *string
}

type LoginInput struct {
	Email     string
	Password  string
	IPAddress *string
}

// AuthResult is the shape both the password path and the OAuth bridge
// produce; downstream consumers cannot tell which path authenticated the
// caller.
type AuthResult struct {
	ID       string
	FullName string
	Email    string
	Role     entity.Role
	Token    string
}
