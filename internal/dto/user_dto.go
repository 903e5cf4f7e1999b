package dto

import (
	"time"

	"legalconnect/internal/entity"
)

// UserResponse is an individual/admin account without password or
// googleId.
type UserResponse struct {
	ID                string    `json:"_id"`
	FullName          string    `json:"fullName"`
	Email             string    `json:"email"`
	PhoneNumber       string    `json:"phoneNumber"`
	State             string    `json:"state"`
	PreferredLanguage string    `json:"preferredLanguage"`
	Role              string    `json:"role"`
	IsVerified        bool      `json:"isVerified"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// LawyerResponse is the authenticated view of a lawyer, without password
// or googleId.
type LawyerResponse struct {
	ID              string    `json:"_id"`
	FullName        string    `json:"fullName"`
	Email           string    `json:"email"`
	PhoneNumber     string    `json:"phoneNumber"`
	Specialization  string    `json:"specialization"`
	BarCouncilID    string    `json:"barCouncilId"`
	ExperienceYears int       `json:"experienceYears"`
	StateOfPractice string    `json:"stateOfPractice"`
	Language        string    `json:"language"`
	Bio             string    `json:"bio"`
	Role            string    `json:"role"`
	IsVerified      bool      `json:"isVerified"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// PublicLawyerResponse additionally hides email and phone number.
type PublicLawyerResponse struct {
	ID              string    `json:"_id"`
	FullName        string    `json:"fullName"`
	Specialization  string    `json:"specialization"`
	BarCouncilID    string    `json:"barCouncilId"`
	ExperienceYears int       `json:"experienceYears"`
	StateOfPractice string    `json:"stateOfPractice"`
	Language        string    `json:"language"`
	Bio             string    `json:"bio"`
	Role            string    `json:"role"`
	IsVerified      bool      `json:"isVerified"`
	CreatedAt       time.Time `json:"createdAt"`
}

func UserResponseFromEntity(user *entity.User) UserResponse {
	return UserResponse{
		ID:                user.ID.String(),
		FullName:          user.FullName,
		Email:             user.Email,
		PhoneNumber:       user.PhoneNumber,
		State:             user.State,
		PreferredLanguage: user.PreferredLanguage,
		Role:              string(user.Role),
		IsVerified:        user.IsVerified,
		CreatedAt:         user.CreatedAt,
		UpdatedAt:         user.UpdatedAt,
	}
}

func LawyerResponseFromEntity(lawyer *entity.Lawyer) LawyerResponse {
	return LawyerResponse{
		ID:              lawyer.ID.String(),
		FullName:        lawyer.FullName,
		Email:           lawyer.Email,
		PhoneNumber:     lawyer.PhoneNumber,
		Specialization:  lawyer.Specialization,
		BarCouncilID:    lawyer.BarCouncilID,
		ExperienceYears: lawyer.ExperienceYears,
		StateOfPractice: lawyer.StateOfPractice,
		Language:        lawyer.Language,
		Bio:             lawyer.Bio,
		Role:            string(entity.RoleLawyer),
		IsVerified:      lawyer.IsVerified,
		CreatedAt:       lawyer.CreatedAt,
		UpdatedAt:       lawyer.UpdatedAt,
	}
}

func PublicLawyerResponseFromEntity(lawyer *entity.Lawyer) PublicLawyerResponse {
	return PublicLawyerResponse{
		ID:              lawyer.ID.String(),
		FullName:        lawyer.FullName,
		Specialization:  lawyer.Specialization,
		BarCouncilID:    lawyer.BarCouncilID,
		ExperienceYears: lawyer.ExperienceYears,
		StateOfPractice: lawyer.StateOfPractice,
		Language:        lawyer.Language,
		Bio:             lawyer.Bio,
		Role:            string(entity.RoleLawyer),
		IsVerified:      lawyer.IsVerified,
		CreatedAt:       lawyer.CreatedAt,
	}
}

// AccountResponse renders either kind for the profile endpoint.
func AccountResponse(account entity.Account) any {
	switch value := account.(type) {
	case *entity.User:
		return UserResponseFromEntity(value)
	case *entity.Lawyer:
		return LawyerResponseFromEntity(value)
	default:
		return nil
	}
}

func UserResponsesFromEntities(users []entity.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, UserResponseFromEntity(&users[i]))
	}
	return responses
}

func LawyerResponsesFromEntities(lawyers []entity.Lawyer) []LawyerResponse {
	responses := make([]LawyerResponse, 0, len(lawyers))
	for i := range lawyers {
		responses = append(responses, LawyerResponseFromEntity(&lawyers[i]))
	}
	return responses
}
