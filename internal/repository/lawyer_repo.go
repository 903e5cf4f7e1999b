package repository

import (
	"context"
	"errors"

	"legalconnect/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LawyerRepository interface {
	Create(ctx context.Context, lawyer *entity.Lawyer) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Lawyer, error)
	FindByEmail(ctx context.Context, email string) (*entity.Lawyer, error)
	FindByBarCouncilID(ctx context.Context, barCouncilID string) (*entity.Lawyer, error)
	FindByGoogleID(ctx context.Context, googleID string) (*entity.Lawyer, error)
	LinkGoogle(ctx context.Context, lawyerID uuid.UUID, googleID string) error
	MarkVerified(ctx context.Context, lawyerID uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]entity.Lawyer, error)
}

type lawyerRepository struct {
	db *gorm.DB
}

func NewLawyerRepository(db *gorm.DB) LawyerRepository {
	return &lawyerRepository{db: db}
}

func (r *lawyerRepository) Create(ctx context.Context, lawyer *entity.Lawyer) error {
	err := r.db.WithContext(ctx).Create(lawyer).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}

func (r *lawyerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Lawyer, error) {
	var lawyer entity.Lawyer
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&lawyer).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &lawyer, nil
}

func (r *lawyerRepository) FindByEmail(ctx context.Context, email string) (*entity.Lawyer, error) {
	var lawyer entity.Lawyer
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&lawyer).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &lawyer, nil
}

func (r *lawyerRepository) FindByBarCouncilID(ctx context.Context, barCouncilID string) (*entity.Lawyer, error) {
	var lawyer entity.Lawyer
	err := r.db.WithContext(ctx).
		Where("bar_council_id = ?", barCouncilID).
		First(&lawyer).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &lawyer, nil
}

func (r *lawyerRepository) FindByGoogleID(ctx context.Context, googleID string) (*entity.Lawyer, error) {
	var lawyer entity.Lawyer
	err := r.db.WithContext(ctx).
		Where("google_id = ?", googleID).
		First(&lawyer).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &lawyer, nil
}

func (r *lawyerRepository) LinkGoogle(ctx context.Context, lawyerID uuid.UUID, googleID string) error {
	err := r.db.WithContext(ctx).
		Model(&entity.Lawyer{}).
		Where("id = ?", lawyerID).
		Update("google_id", googleID).
		Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}

func (r *lawyerRepository) MarkVerified(ctx context.Context, lawyerID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&entity.Lawyer{}).
		Where("id = ?", lawyerID).
		Update("is_verified", true).
		Error
}

func (r *lawyerRepository) List(ctx context.Context, limit, offset int) ([]entity.Lawyer, error) {
	var lawyers []entity.Lawyer
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if err := query.Find(&lawyers).Error; err != nil {
		return nil, err
	}
	return lawyers, nil
}
