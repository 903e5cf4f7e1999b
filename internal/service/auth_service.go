package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"legalconnect/internal/entity"
	"legalconnect/internal/repository"
	"legalconnect/internal/utils"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Compared against when an email has no matching account or the account
// has no stored password, so the two cases cost the same as a real check.
const dummyPasswordHash = "$2a$10$CwTycUXWue0Thq9StjUM0uJ8yQbWc1x9uxw2sQ2sXUNx5x9xJ9F2S"

// AuthService resolves registration and login input against the two
// account collections and issues role-aware tokens.
type AuthService struct {
	users     repository.UserRepository
	lawyers   repository.LawyerRepository
	auditLogs repository.AuditLogRepository

	passwordHash PasswordHasher
	tokens       AccessTokenIssuer
	emailSender  EmailSender
	clock        Clock
}

func NewAuthService(
	users repository.UserRepository,
	lawyers repository.LawyerRepository,
	auditLogs repository.AuditLogRepository,
	passwordHash PasswordHasher,
	tokens AccessTokenIssuer,
	emailSender EmailSender,
	clock Clock,
) *AuthService {
	return &AuthService{
		users:        users,
		lawyers:      lawyers,
		auditLogs:    auditLogs,
		passwordHash: passwordHash,
		tokens:       tokens,
		emailSender:  emailSender,
		clock:        clock,
	}
}

// Register dispatches on role: lawyer input goes to the lawyer
// collection, individual and admin input to the user collection, anything
// else is rejected before any store access.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	switch entity.Role(input.Role) {
	case entity.RoleLawyer:
		return s.registerLawyer(ctx, input)
	case entity.RoleIndividual, entity.RoleAdmin:
		return s.registerUser(ctx, input)
	default:
		return nil, ErrInvalidRole
	}
}

func (s *AuthService) registerUser(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if strings.TrimSpace(input.FullName) == "" ||
		strings.TrimSpace(input.Email) == "" ||
		strings.TrimSpace(input.Password) == "" ||
		strings.TrimSpace(input.PhoneNumber) == "" ||
		strings.TrimSpace(input.State) == "" ||
		strings.TrimSpace(input.PreferredLanguage) == "" {
		return nil, ErrMissingUserFields
	}

	email := utils.NormalizeEmail(input.Email)
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := s.passwordHash.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		FullName:          strings.TrimSpace(input.FullName),
		Email:             email,
		Password:          &hash,
		PhoneNumber:       strings.TrimSpace(input.PhoneNumber),
		State:             strings.TrimSpace(input.State),
		PreferredLanguage: strings.TrimSpace(input.PreferredLanguage),
		Role:              entity.Role(input.Role),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	_ = s.audit(ctx, refPtr(user.Ref()), input.IPAddress, entity.AuditRegister, map[string]any{"kind": "user"})
	return s.authResult(user)
}

func (s *AuthService) registerLawyer(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if strings.TrimSpace(input.FullName) == "" ||
		strings.TrimSpace(input.Email) == "" ||
		strings.TrimSpace(input.Password) == "" ||
		strings.TrimSpace(input.PhoneNumber) == "" ||
		strings.TrimSpace(input.Specialization) == "" ||
		strings.TrimSpace(input.BarCouncilID) == "" ||
		input.ExperienceYears == nil ||
		strings.TrimSpace(input.StateOfPractice) == "" ||
		strings.TrimSpace(input.Language) == "" ||
		strings.TrimSpace(input.Bio) == "" {
		return nil, ErrMissingLawyerFields
	}
	if *input.ExperienceYears < 0 || len(input.Bio) > 500 {
		return nil, ErrMissingLawyerFields
	}

	email := utils.NormalizeEmail(input.Email)
	existing, err := s.lawyers.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}
	byBar, err := s.lawyers.FindByBarCouncilID(ctx, strings.TrimSpace(input.BarCouncilID))
	if err != nil {
		return nil, err
	}
	if byBar != nil {
		return nil, ErrBarCouncilIDTaken
	}

	hash, err := s.passwordHash.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	lawyer := &entity.Lawyer{
		FullName:        strings.TrimSpace(input.FullName),
		Email:           email,
		Password:        &hash,
		PhoneNumber:     strings.TrimSpace(input.PhoneNumber),
		Specialization:  strings.TrimSpace(input.Specialization),
		BarCouncilID:    strings.TrimSpace(input.BarCouncilID),
		ExperienceYears: *input.ExperienceYears,
		StateOfPractice: strings.TrimSpace(input.StateOfPractice),
		Language:        strings.TrimSpace(input.Language),
		Bio:             input.Bio,
	}
	if err := s.lawyers.Create(ctx, lawyer); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	_ = s.audit(ctx, refPtr(lawyer.Ref()), input.IPAddress, entity.AuditRegister, map[string]any{"kind": "lawyer"})
	return s.authResult(lawyer)
}

// Login searches the user collection first, then lawyers; the first kind
// with a matching email is authoritative. Unknown email, OAuth-only
// account, and wrong password all fail with the same error.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	if strings.TrimSpace(input.Email) == "" || strings.TrimSpace(input.Password) == "" {
		return nil, ErrInvalidInput
	}

	email := utils.NormalizeEmail(input.Email)
	var account entity.Account
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user != nil {
		account = user
	} else {
		lawyer, err := s.lawyers.FindByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if lawyer != nil {
			account = lawyer
		}
	}

	if account == nil || account.PasswordHash() == nil {
		_ = s.passwordHash.Verify(dummyPasswordHash, input.Password)
		_ = s.audit(ctx, nil, input.IPAddress, entity.AuditLoginFailed, map[string]any{"email": email})
		return nil, ErrInvalidCredentials
	}
	if !s.passwordHash.Verify(*account.PasswordHash(), input.Password) {
		ref := account.Ref()
		_ = s.audit(ctx, &ref, input.IPAddress, entity.AuditLoginFailed, map[string]any{"email": email})
		return nil, ErrInvalidCredentials
	}

	ref := account.Ref()
	_ = s.audit(ctx, &ref, input.IPAddress, entity.AuditLoginSuccess, nil)
	return s.authResult(account)
}

// LoadByRef rehydrates an account from a verified {id, role} assertion,
// loading from the collection the role names. The returned account has
// its password hash cleared.
func (s *AuthService) LoadByRef(ctx context.Context, ref entity.AccountRef) (entity.Account, error) {
	var account entity.Account
	switch ref.Role {
	case entity.RoleLawyer:
		lawyer, err := s.lawyers.FindByID(ctx, ref.ID)
		if err != nil {
			return nil, err
		}
		if lawyer != nil {
			account = lawyer
		}
	case entity.RoleIndividual, entity.RoleAdmin:
		user, err := s.users.FindByID(ctx, ref.ID)
		if err != nil {
			return nil, err
		}
		if user != nil {
			account = user
		}
	default:
		return nil, ErrUnknownRole
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	account.ClearPassword()
	return account, nil
}

// PublicLawyer returns a lawyer for the unauthenticated profile page.
func (s *AuthService) PublicLawyer(ctx context.Context, id uuid.UUID) (*entity.Lawyer, error) {
	lawyer, err := s.lawyers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lawyer == nil {
		return nil, ErrLawyerNotFound
	}
	lawyer.ClearPassword()
	return lawyer, nil
}

func (s *AuthService) ListUsers(ctx context.Context, limit, offset int) ([]entity.User, error) {
	users, err := s.users.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].ClearPassword()
	}
	return users, nil
}

func (s *AuthService) ListLawyers(ctx context.Context, limit, offset int) ([]entity.Lawyer, error) {
	lawyers, err := s.lawyers.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	for i := range lawyers {
		lawyers[i].ClearPassword()
	}
	return lawyers, nil
}

// VerifyLawyer marks a lawyer professionally verified and, when a sender
// is configured, notifies them.
func (s *AuthService) VerifyLawyer(ctx context.Context, id uuid.UUID, actor entity.AccountRef) (*entity.Lawyer, error) {
	lawyer, err := s.lawyers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lawyer == nil {
		return nil, ErrLawyerNotFound
	}
	if err := s.lawyers.MarkVerified(ctx, lawyer.ID); err != nil {
		return nil, err
	}
	lawyer.IsVerified = true
	lawyer.ClearPassword()

	ref := lawyer.Ref()
	_ = s.audit(ctx, &ref, nil, entity.AuditLawyerVerified, map[string]any{"verified_by": actor.ID.String()})

	if s.emailSender != nil {
		_ = s.emailSender.SendLawyerVerifiedEmail(ctx, lawyer.Email, lawyer.FullName)
	}
	return lawyer, nil
}

func (s *AuthService) authResult(account entity.Account) (*AuthResult, error) {
	ref := account.Ref()
	token, err := s.tokens.Issue(ref)
	if err != nil {
		return nil, err
	}
	return &AuthResult{
		ID:       ref.ID.String(),
		FullName: account.DisplayName(),
		Email:    account.EmailAddress(),
		Role:     ref.Role,
		Token:    token,
	}, nil
}

func (s *AuthService) audit(
	ctx context.Context,
	ref *entity.AccountRef,
	ipAddress *string,
	action entity.AuditAction,
	metadata map[string]any,
) error {
	if s.auditLogs == nil {
		return nil
	}
	var payload datatypes.JSON
	if metadata != nil {
		bytes, err := json.Marshal(metadata)
		if err != nil {
			return err
		}
		payload = datatypes.JSON(bytes)
	}

	log := &entity.AuditLog{
		IPAddress: ipAddress,
		Action:    action,
		Metadata:  payload,
		CreatedAt: s.now(),
	}
	if ref != nil {
		log.AccountID = &ref.ID
		log.AccountRole = &ref.Role
	}
	return s.auditLogs.Log(ctx, log)
}

func (s *AuthService) now() time.Time {
	if s.clock == nil {
		return time.Now()
	}
	return s.clock.Now()
}

func refPtr(ref entity.AccountRef) *entity.AccountRef {
	return &ref
}
