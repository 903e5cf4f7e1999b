package service

import (
	"context"

	"legalconnect/internal/entity"
	"legalconnect/internal/repository"
	"legalconnect/internal/utils"
)

// ContinuationIssuer carries the {id, role} assertion across the OAuth
// redirect round trip.
type ContinuationIssuer interface {
	IssueContinuation(ref entity.AccountRef) (string, error)
	ParseContinuation(token string) (entity.AccountRef, error)
}

// OAuthService federates a Google profile into the two-collection model.
// It never creates accounts: an unmatched email is a hard failure and the
// caller is told to register with a password first.
type OAuthService struct {
	users         repository.UserRepository
	lawyers       repository.LawyerRepository
	auth          *AuthService
	continuations ContinuationIssuer
}

func NewOAuthService(
	users repository.UserRepository,
	lawyers repository.LawyerRepository,
	auth *AuthService,
	continuations ContinuationIssuer,
) *OAuthService {
	return &OAuthService{
		users:         users,
		lawyers:       lawyers,
		auth:          auth,
		continuations: continuations,
	}
}

// ResolveProfile maps a provider profile onto an existing account. Order:
// google id in users, google id in lawyers, email in users (link), email
// in lawyers (link). Each step short-circuits on match.
func (s *OAuthService) ResolveProfile(ctx context.Context, profile *GoogleProfile) (entity.Account, error) {
	if profile == nil || profile.Email == "" {
		return nil, ErrGoogleEmailMissing
	}

	user, err := s.users.FindByGoogleID(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		s.auditLogin(ctx, user.Ref(), entity.AuditOAuthLogin)
		return user, nil
	}
	lawyer, err := s.lawyers.FindByGoogleID(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	if lawyer != nil {
		s.auditLogin(ctx, lawyer.Ref(), entity.AuditOAuthLogin)
		return lawyer, nil
	}

	email := utils.NormalizeEmail(profile.Email)
	user, err = s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user != nil {
		if err := s.users.LinkGoogle(ctx, user.ID, profile.ID); err != nil {
			return nil, err
		}
		user.GoogleID = &profile.ID
		s.auditLogin(ctx, user.Ref(), entity.AuditOAuthLink)
		return user, nil
	}

	lawyer, err = s.lawyers.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if lawyer != nil {
		if err := s.lawyers.LinkGoogle(ctx, lawyer.ID, profile.ID); err != nil {
			return nil, err
		}
		lawyer.GoogleID = &profile.ID
		s.auditLogin(ctx, lawyer.Ref(), entity.AuditOAuthLink)
		return lawyer, nil
	}

	_ = s.auth.audit(ctx, nil, nil, entity.AuditOAuthRejected, map[string]any{"email": email})
	return nil, ErrGoogleEmailNotRegistered
}

// BeginContinuation signs the short-lived {id, role} assertion after
// profile resolution succeeds.
func (s *OAuthService) BeginContinuation(account entity.Account) (string, error) {
	return s.continuations.IssueContinuation(account.Ref())
}

// CompleteOAuth parses the continuation, rehydrates the account from the
// collection its role names, and issues the same result shape as a
// password login.
func (s *OAuthService) CompleteOAuth(ctx context.Context, continuation string) (*AuthResult, error) {
	ref, err := s.continuations.ParseContinuation(continuation)
	if err != nil {
		return nil, err
	}
	account, err := s.auth.LoadByRef(ctx, ref)
	if err != nil {
		return nil, err
	}
	return s.auth.authResult(account)
}

func (s *OAuthService) auditLogin(ctx context.Context, ref entity.AccountRef, action entity.AuditAction) {
	_ = s.auth.audit(ctx, &ref, nil, action, nil)
}
