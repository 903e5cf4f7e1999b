package handler_test

import (
	"context"
	"errors"

	"legalconnect/internal/entity"
	"legalconnect/internal/service"

	"github.com/google/uuid"
)

// Map-backed repositories for exercising handlers through the router.

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.Role == "" {
		user.Role = entity.RoleIndividual
	}
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByGoogleID(ctx context.Context, googleID string) (*entity.User, error) {
	for _, user := range f.users {
		if user.GoogleID != nil && *user.GoogleID == googleID {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) LinkGoogle(ctx context.Context, userID uuid.UUID, googleID string) error {
	if user, ok := f.users[userID]; ok {
		user.GoogleID = &googleID
	}
	return nil
}

func (f *fakeUserRepo) List(ctx context.Context, limit, offset int) ([]entity.User, error) {
	var users []entity.User
	for _, user := range f.users {
		users = append(users, *user)
	}
	return users, nil
}

type fakeLawyerRepo struct {
	lawyers map[uuid.UUID]*entity.Lawyer
}

func newFakeLawyerRepo() *fakeLawyerRepo {
	return &fakeLawyerRepo{lawyers: make(map[uuid.UUID]*entity.Lawyer)}
}

func (f *fakeLawyerRepo) Create(ctx context.Context, lawyer *entity.Lawyer) error {
	if lawyer.ID == uuid.Nil {
		lawyer.ID = uuid.New()
	}
	copied := *lawyer
	f.lawyers[lawyer.ID] = &copied
	return nil
}

func (f *fakeLawyerRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Lawyer, error) {
	lawyer, ok := f.lawyers[id]
	if !ok {
		return nil, nil
	}
	copied := *lawyer
	return &copied, nil
}

func (f *fakeLawyerRepo) FindByEmail(ctx context.Context, email string) (*entity.Lawyer, error) {
	for _, lawyer := range f.lawyers {
		if lawyer.Email == email {
			copied := *lawyer
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeLawyerRepo) FindByBarCouncilID(ctx context.Context, barCouncilID string) (*entity.Lawyer, error) {
	for _, lawyer := range f.lawyers {
		if lawyer.BarCouncilID == barCouncilID {
			copied := *lawyer
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeLawyerRepo) FindByGoogleID(ctx context.Context, googleID string) (*entity.Lawyer, error) {
	for _, lawyer := range f.lawyers {
		if lawyer.GoogleID != nil && *lawyer.GoogleID == googleID {
			copied := *lawyer
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeLawyerRepo) LinkGoogle(ctx context.Context, lawyerID uuid.UUID, googleID string) error {
	if lawyer, ok := f.lawyers[lawyerID]; ok {
		lawyer.GoogleID = &googleID
	}
	return nil
}

func (f *fakeLawyerRepo) MarkVerified(ctx context.Context, lawyerID uuid.UUID) error {
	if lawyer, ok := f.lawyers[lawyerID]; ok {
		lawyer.IsVerified = true
	}
	return nil
}

func (f *fakeLawyerRepo) List(ctx context.Context, limit, offset int) ([]entity.Lawyer, error) {
	var lawyers []entity.Lawyer
	for _, lawyer := range f.lawyers {
		lawyers = append(lawyers, *lawyer)
	}
	return lawyers, nil
}

// fakeGoogleProvider hands out a fixed profile for a fixed code.
type fakeGoogleProvider struct {
	profile *service.GoogleProfile
	code    string
}

func (f *fakeGoogleProvider) AuthCodeURL(state string) string {
	return "https://accounts.google.com/o/oauth2/auth?state=" + state
}

func (f *fakeGoogleProvider) FetchProfile(ctx context.Context, code string) (*service.GoogleProfile, error) {
	if f.profile == nil || code != f.code {
		return nil, errors.New("invalid code")
	}
	return f.profile, nil
}
