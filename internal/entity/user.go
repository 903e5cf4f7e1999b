package entity

import (
	"time"

	"github.com/google/uuid"
)

// User holds individual and admin accounts. Lawyers live in their own
// collection; email uniqueness is enforced per kind only.
type User struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	FullName string    `gorm:"type:varchar(255);not null"`
	Email    string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	// Password is the bcrypt hash at rest; nil for accounts that only ever
	// signed in through Google.
	Password          *string `gorm:"type:text"`
	PhoneNumber       string  `gorm:"type:varchar(32);not null"`
	State             string  `gorm:"type:varchar(128);not null"`
	PreferredLanguage string  `gorm:"type:varchar(64);not null"`
	Role              Role    `gorm:"type:varchar(16);default:'individual';not null"`
	GoogleID          *string `gorm:"type:varchar(64);uniqueIndex"`
	IsVerified        bool    `gorm:"default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u *User) Ref() AccountRef {
	return AccountRef{ID: u.ID, Role: u.Role}
}

func (u *User) EmailAddress() string { return u.Email }

func (u *User) DisplayName() string { return u.FullName }

func (u *User) PasswordHash() *string { return u.Password }

func (u *User) ClearPassword() { u.Password = nil }
