package entity

import (
	"time"

	"github.com/google/uuid"
)

// Lawyer is the professional account kind. Its role is always
// RoleLawyer; IsVerified tracks professional verification by an admin,
// not email verification.
type Lawyer struct {
	ID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	FullName        string    `gorm:"type:varchar(255);not null"`
	Email           string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password        *string   `gorm:"type:text"`
	PhoneNumber     string    `gorm:"type:varchar(32);not null"`
	Specialization  string    `gorm:"type:varchar(128);not null"`
	BarCouncilID    string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	ExperienceYears int       `gorm:"not null"`
	StateOfPractice string    `gorm:"type:varchar(128);not null"`
	Language        string    `gorm:"type:varchar(64);not null"`
	Bio             string    `gorm:"type:varchar(500);not null"`
	GoogleID        *string   `gorm:"type:varchar(64);uniqueIndex"`
	IsVerified      bool      `gorm:"default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (l *Lawyer) Ref() AccountRef {
	return AccountRef{ID: l.ID, Role: RoleLawyer}
}

func (l *Lawyer) EmailAddress() string { return l.Email }

func (l *Lawyer) DisplayName() string { return l.FullName }

func (l *Lawyer) PasswordHash() *string { return l.Password }

func (l *Lawyer) ClearPassword() { l.Password = nil }
