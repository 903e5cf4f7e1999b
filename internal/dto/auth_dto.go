package dto

import "legalconnect/internal/service"

// RegisterRequest carries the union of both kinds' fields; the resolver
// decides which subset is required once it knows the role.
type RegisterRequest struct {
	Role     string `json:"role" validate:"required"`
	FullName string `json:"fullName"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password"`

	PhoneNumber       string `json:"phoneNumber"`
	State             string `json:"state"`
	PreferredLanguage string `json:"preferredLanguage"`

	Specialization  string `json:"specialization"`
	BarCouncilID    string `json:"barCouncilId"`
	ExperienceYears *int   `json:"experienceYears"`
	StateOfPractice string `json:"stateOfPractice"`
	Language        string `json:"language"`
	Bio             string `json:"bio"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is the wire shape both register and login return.
type AuthResponse struct {
	ID       string `json:"_id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Token    string `json:"token"`
}

func AuthResponseFromResult(result *service.AuthResult) AuthResponse {
	return AuthResponse{
		ID:       result.ID,
		FullName: result.FullName,
		Email:    result.Email,
		Role:     string(result.Role),
		Token:    result.Token,
	}
}
