package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AuditAction string

const (
	AuditRegister       AuditAction = "register"
	AuditLoginSuccess   AuditAction = "login_success"
	AuditLoginFailed    AuditAction = "login_failed"
	AuditOAuthLogin     AuditAction = "oauth_login"
	AuditOAuthLink      AuditAction = "oauth_link"
	AuditOAuthRejected  AuditAction = "oauth_rejected"
	AuditLawyerVerified AuditAction = "lawyer_verified"
)

// AuditLog records authentication events. AccountID/AccountRole point into
// either collection depending on the role; both are nil for failed
// attempts against unknown emails.
type AuditLog struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`

	AccountID   *uuid.UUID  `gorm:"type:uuid;index"`
	AccountRole *Role       `gorm:"type:varchar(16)"`
	IPAddress   *string     `gorm:"type:varchar(45)"`
	Action      AuditAction `gorm:"type:varchar(32);not null"`

	Metadata datatypes.JSON

	CreatedAt time.Time
}
