package entity

import (
	"time"

	"github.com/google/uuid"
)

type Subject struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description *string   `gorm:"type:varchar(200)"`

	ClassID uuid.UUID `gorm:"type:uuid;not null;index"`

	TeacherID uuid.UUID `gorm:"type:uuid;not null"`
	Teacher   Account   `gorm:"foreignKey:TeacherID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
