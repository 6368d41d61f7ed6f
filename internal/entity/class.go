package entity

import (
	"time"

	"github.com/google/uuid"
)

type Class struct {
	ID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name    string    `gorm:"type:varchar(100);not null"`
	Grade   int       `gorm:"not null"`
	Section string    `gorm:"type:varchar(1);not null"`

	ClassTeacherID uuid.UUID `gorm:"type:uuid;not null;index"`
	ClassTeacher   Account   `gorm:"foreignKey:ClassTeacherID"`

	Students []Account `gorm:"many2many:class_students"`
	Subjects []Subject

	CreatedAt time.Time
	UpdatedAt time.Time
}
