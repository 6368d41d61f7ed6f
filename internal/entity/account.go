package entity

import (
	"time"

	"github.com/google/uuid"
)

type AccountRole string

const (
	RoleStudent AccountRole = "student"
	RoleTeacher AccountRole = "teacher"
	RoleParent  AccountRole = "parent"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Account is the single record driving the whole lifecycle: created
// unverified, verified through an emailed OTP, then issued a session token.
type Account struct {
	ID        uuid.UUID   `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	FirstName string      `gorm:"type:varchar(50);not null"`
	LastName  string      `gorm:"type:varchar(50);not null"`
	Email     string      `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password  string      `gorm:"type:text;not null"`
	Role      AccountRole `gorm:"type:varchar(20);not null"`

	Verified bool `gorm:"default:false;not null"`

	// OTP and OTPExpires are set and cleared together. A verified account may
	// still hold a stale pair; expiry is checked lazily at verification time.
	OTP        *int
	OTPExpires *time.Time

	SessionToken *string `gorm:"type:text;index"`

	// Profile fields, populated after verification via UpdateProfile.
	Phone        *string    `gorm:"type:varchar(20)"`
	Address      *string    `gorm:"type:text"`
	DateOfBirth  *time.Time `gorm:"type:date"`
	Gender       *Gender    `gorm:"type:varchar(10)"`
	ProfileImage *string    `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
