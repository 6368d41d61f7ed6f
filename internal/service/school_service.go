package service

import (
	"context"
	"strings"

	"schoolhub/internal/entity"
	"schoolhub/internal/repository"

	"github.com/google/uuid"
)

type ClassInput struct {
	Name           string
	Grade          int
	Section        string
	ClassTeacherID uuid.UUID
}

type SubjectInput struct {
	Name        string
	Description string
	ClassID     uuid.UUID
	TeacherID   uuid.UUID
}

// SchoolService manages the class and subject records that hang off teacher
// and student accounts.
type SchoolService struct {
	accounts repository.AccountRepository
	classes  repository.ClassRepository
	subjects repository.SubjectRepository
}

func NewSchoolService(
	accounts repository.AccountRepository,
	classes repository.ClassRepository,
	subjects repository.SubjectRepository,
) *SchoolService {
	return &SchoolService{
		accounts: accounts,
		classes:  classes,
		subjects: subjects,
	}
}

func (s *SchoolService) CreateClass(ctx context.Context, input ClassInput) (*entity.Class, error) {
	if strings.TrimSpace(input.Name) == "" || input.Grade < 1 || input.Grade > 12 {
		return nil, ErrInvalidInput
	}

	teacher, err := s.accounts.FindByID(ctx, input.ClassTeacherID)
	if err != nil {
		return nil, err
	}
	if teacher == nil {
		return nil, ErrAccountNotFound
	}
	if teacher.Role != entity.RoleTeacher {
		return nil, ErrRoleMismatch
	}

	class := &entity.Class{
		Name:           input.Name,
		Grade:          input.Grade,
		Section:        strings.ToUpper(input.Section),
		ClassTeacherID: teacher.ID,
	}
	if err := s.classes.Create(ctx, class); err != nil {
		return nil, err
	}
	return class, nil
}

func (s *SchoolService) ListClasses(ctx context.Context, limit, offset int) ([]entity.Class, error) {
	return s.classes.List(ctx, limit, offset)
}

func (s *SchoolService) EnrollStudent(ctx context.Context, classID, studentID uuid.UUID) (*entity.Class, error) {
	class, err := s.classes.FindByID(ctx, classID)
	if err != nil {
		return nil, err
	}
	if class == nil {
		return nil, ErrClassNotFound
	}

	student, err := s.accounts.FindByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, ErrAccountNotFound
	}
	if student.Role != entity.RoleStudent {
		return nil, ErrRoleMismatch
	}

	if err := s.classes.AddStudent(ctx, class, student); err != nil {
		return nil, err
	}
	return class, nil
}

func (s *SchoolService) CreateSubject(ctx context.Context, input SubjectInput) (*entity.Subject, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrInvalidInput
	}

	class, err := s.classes.FindByID(ctx, input.ClassID)
	if err != nil {
		return nil, err
	}
	if class == nil {
		return nil, ErrClassNotFound
	}

	teacher, err := s.accounts.FindByID(ctx, input.TeacherID)
	if err != nil {
		return nil, err
	}
	if teacher == nil {
		return nil, ErrAccountNotFound
	}
	if teacher.Role != entity.RoleTeacher {
		return nil, ErrRoleMismatch
	}

	subject := &entity.Subject{
		Name:      input.Name,
		ClassID:   class.ID,
		TeacherID: teacher.ID,
	}
	if strings.TrimSpace(input.Description) != "" {
		subject.Description = &input.Description
	}
	if err := s.subjects.Create(ctx, subject); err != nil {
		return nil, err
	}
	return subject, nil
}

func (s *SchoolService) ListSubjects(ctx context.Context, classID uuid.UUID) ([]entity.Subject, error) {
	class, err := s.classes.FindByID(ctx, classID)
	if err != nil {
		return nil, err
	}
	if class == nil {
		return nil, ErrClassNotFound
	}
	return s.subjects.ListByClass(ctx, classID)
}
