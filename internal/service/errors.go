package service

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidRole         = errors.New("invalid role specified for registration")
	ErrMissingUserFields   = errors.New("please provide all required fields for user registration")
	ErrMissingLawyerFields = errors.New("please provide all required fields for lawyer registration")
	ErrEmailTaken          = errors.New("account with this email already exists")
	ErrBarCouncilIDTaken   = errors.New("lawyer with this bar council id already exists")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrUnknownRole         = errors.New("unknown role in token")
	ErrAccountNotFound     = errors.New("user/lawyer not found")
	ErrLawyerNotFound      = errors.New("lawyer not found")

	ErrGoogleEmailMissing       = errors.New("google account email not found")
	ErrGoogleEmailNotRegistered = errors.New("email not registered; sign up with email and password first")
)
