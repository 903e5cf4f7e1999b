package service

import (
	"context"
	"sync"

	"legalconnect/internal/entity"

	"github.com/google/uuid"
)

// FakeUserRepository is an in-memory UserRepository with injectable
// errors.
type FakeUserRepository struct {
	mu      sync.Mutex
	users   map[uuid.UUID]*entity.User
	creates int

	createErr error
	findErr   error
	linkErr   error
}

func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{users: make(map[uuid.UUID]*entity.User)}
}

func (f *FakeUserRepository) Create(ctx context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.Role == "" {
		user.Role = entity.RoleIndividual
	}
	copied := *user
	f.users[user.ID] = &copied
	f.creates++
	return nil
}

func (f *FakeUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (f *FakeUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *FakeUserRepository) FindByGoogleID(ctx context.Context, googleID string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, user := range f.users {
		if user.GoogleID != nil && *user.GoogleID == googleID {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *FakeUserRepository) LinkGoogle(ctx context.Context, userID uuid.UUID, googleID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.linkErr != nil {
		return f.linkErr
	}
	user, ok := f.users[userID]
	if !ok {
		return nil
	}
	user.GoogleID = &googleID
	return nil
}

func (f *FakeUserRepository) List(ctx context.Context, limit, offset int) ([]entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	var users []entity.User
	for _, user := range f.users {
		users = append(users, *user)
	}
	return users, nil
}

// FakeLawyerRepository mirrors FakeUserRepository for the lawyer
// collection.
type FakeLawyerRepository struct {
	mu      sync.Mutex
	lawyers map[uuid.UUID]*entity.Lawyer
	creates int

	createErr error
	findErr   error
	linkErr   error
}

func NewFakeLawyerRepository() *FakeLawyerRepository {
	return &FakeLawyerRepository{lawyers: make(map[uuid.UUID]*entity.Lawyer)}
}

func (f *FakeLawyerRepository) Create(ctx context.Context, lawyer *entity.Lawyer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	if lawyer.ID == uuid.Nil {
		lawyer.ID = uuid.New()
	}
	copied := *lawyer
	f.lawyers[lawyer.ID] = &copied
	f.creates++
	return nil
}

func (f *FakeLawyerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Lawyer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	lawyer, ok := f.lawyers[id]
	if !ok {
		return nil, nil
	}
	copied := *lawyer
	return &copied, nil
}

func (f *FakeLawyerRepository) FindByEmail(ctx context.Context, email string) (*entity.Lawyer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, lawyer := range f.lawyers {
		if lawyer.Email == email {
			copied := *lawyer
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *FakeLawyerRepository) FindByBarCouncilID(ctx context.Context, barCouncilID string) (*entity.Lawyer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, lawyer := range f.lawyers {
		if lawyer.BarCouncilID == barCouncilID {
			copied := *lawyer
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *FakeLawyerRepository) FindByGoogleID(ctx context.Context, googleID string) (*entity.Lawyer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, lawyer := range f.lawyers {
		if lawyer.GoogleID != nil && *lawyer.GoogleID == googleID {
			copied := *lawyer
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *FakeLawyerRepository) LinkGoogle(ctx context.Context, lawyerID uuid.UUID, googleID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.linkErr != nil {
		return f.linkErr
	}
	lawyer, ok := f.lawyers[lawyerID]
	if !ok {
		return nil
	}
	lawyer.GoogleID = &googleID
	return nil
}

func (f *FakeLawyerRepository) MarkVerified(ctx context.Context, lawyerID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	lawyer, ok := f.lawyers[lawyerID]
	if !ok {
		return nil
	}
	lawyer.IsVerified = true
	return nil
}

func (f *FakeLawyerRepository) List(ctx context.Context, limit, offset int) ([]entity.Lawyer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	var lawyers []entity.Lawyer
	for _, lawyer := range f.lawyers {
		lawyers = append(lawyers, *lawyer)
	}
	return lawyers, nil
}

type FakeAuditLogRepository struct {
	mu   sync.Mutex
	logs []entity.AuditLog
}

func NewFakeAuditLogRepository() *FakeAuditLogRepository {
	return &FakeAuditLogRepository{}
}

func (f *FakeAuditLogRepository) Log(ctx context.Context, log *entity.AuditLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logs = append(f.logs, *log)
	return nil
}
