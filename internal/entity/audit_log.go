package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AuditAction string

const (
	SigninSuccess AuditAction = "signin_success"
	SigninFailed  AuditAction = "signin_failed"
	Verified      AuditAction = "verified"
	SignedOut     AuditAction = "signed_out"
)

// AuditLog records account lifecycle events best-effort; a failed insert
// never fails the request that produced it.
type AuditLog struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`

	AccountID *uuid.UUID `gorm:"type:uuid;index"`
	Account   *Account   `gorm:"constraint:OnDelete:SET NULL"`

	IPAddress *string     `gorm:"type:varchar(45)"`
	Action    AuditAction `gorm:"type:varchar(30);not null"`

	Metadata datatypes.JSON

	CreatedAt time.Time
}
