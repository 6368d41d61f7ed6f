package dto

import (
	"time"

	"schoolhub/internal/entity"
)

type CreateClassRequest struct {
	Name           string `json:"name" validate:"required,min=3"`
	Grade          int    `json:"grade" validate:"required,min=1,max=12"`
	Section        string `json:"section" validate:"required,len=1,alpha"`
	ClassTeacherID string `json:"classTeacherId" validate:"required,uuid"`
}

type EnrollStudentRequest struct {
	StudentID string `json:"studentId" validate:"required,uuid"`
}

type CreateSubjectRequest struct {
	Name        string `json:"name" validate:"required,min=2"`
	Description string `json:"description" validate:"omitempty,max=200"`
	TeacherID   string `json:"teacherId" validate:"required,uuid"`
}

type ClassResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Grade          int       `json:"grade"`
	Section        string    `json:"section"`
	ClassTeacherID string    `json:"classTeacherId"`
	StudentCount   int       `json:"studentCount"`
	CreatedAt      time.Time `json:"createdAt"`
}

type SubjectResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	ClassID     string    `json:"classId"`
	TeacherID   string    `json:"teacherId"`
	CreatedAt   time.Time `json:"createdAt"`
}

func ClassResponseFromEntity(class *entity.Class) ClassResponse {
	return ClassResponse{
		ID:             class.ID.String(),
		Name:           class.Name,
		Grade:          class.Grade,
		Section:        class.Section,
		ClassTeacherID: class.ClassTeacherID.String(),
		StudentCount:   len(class.Students),
		CreatedAt:      class.CreatedAt,
	}
}

func ClassResponsesFromEntities(classes []entity.Class) []ClassResponse {
	responses := make([]ClassResponse, 0, len(classes))
	for i := range classes {
		responses = append(responses, ClassResponseFromEntity(&classes[i]))
	}
	return responses
}

func SubjectResponseFromEntity(subject *entity.Subject) SubjectResponse {
	return SubjectResponse{
		ID:          subject.ID.String(),
		Name:        subject.Name,
		Description: subject.Description,
		ClassID:     subject.ClassID.String(),
		TeacherID:   subject.TeacherID.String(),
		CreatedAt:   subject.CreatedAt,
	}
}

func SubjectResponsesFromEntities(subjects []entity.Subject) []SubjectResponse {
	responses := make([]SubjectResponse, 0, len(subjects))
	for i := range subjects {
		responses = append(responses, SubjectResponseFromEntity(&subjects[i]))
	}
	return responses
}
