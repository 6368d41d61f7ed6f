package service

import (
	"context"
	"testing"

	"schoolhub/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClassRepo struct {
	classes map[uuid.UUID]*entity.Class
}

func newFakeClassRepo() *fakeClassRepo {
	return &fakeClassRepo{classes: make(map[uuid.UUID]*entity.Class)}
}

func (f *fakeClassRepo) Create(ctx context.Context, class *entity.Class) error {
	if class.ID == uuid.Nil {
		class.ID = uuid.New()
	}
	copied := *class
	f.classes[class.ID] = &copied
	return nil
}

func (f *fakeClassRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Class, error) {
	class, ok := f.classes[id]
	if !ok {
		return nil, nil
	}
	copied := *class
	return &copied, nil
}

func (f *fakeClassRepo) List(ctx context.Context, limit, offset int) ([]entity.Class, error) {
	var classes []entity.Class
	for _, class := range f.classes {
		classes = append(classes, *class)
	}
	return classes, nil
}

func (f *fakeClassRepo) AddStudent(ctx context.Context, class *entity.Class, student *entity.Account) error {
	stored, ok := f.classes[class.ID]
	if !ok {
		return ErrClassNotFound
	}
	stored.Students = append(stored.Students, *student)
	return nil
}

type fakeSubjectRepo struct {
	subjects []*entity.Subject
}

func (f *fakeSubjectRepo) Create(ctx context.Context, subject *entity.Subject) error {
	if subject.ID == uuid.Nil {
		subject.ID = uuid.New()
	}
	copied := *subject
	f.subjects = append(f.subjects, &copied)
	return nil
}

func (f *fakeSubjectRepo) ListByClass(ctx context.Context, classID uuid.UUID) ([]entity.Subject, error) {
	var subjects []entity.Subject
	for _, subject := range f.subjects {
		if subject.ClassID == classID {
			subjects = append(subjects, *subject)
		}
	}
	return subjects, nil
}

func seedAccount(t *testing.T, repo *fakeAccountRepo, role entity.AccountRole) *entity.Account {
	t.Helper()
	account := &entity.Account{
		ID:        uuid.New(),
		FirstName: "Test",
		LastName:  string(role),
		Email:     string(role) + "-" + uuid.NewString() + "@x.com",
		Password:  "hash",
		Role:      role,
		Verified:  true,
	}
	require.NoError(t, repo.Create(context.Background(), account))
	return account
}

func newSchoolFixture(t *testing.T) (*SchoolService, *fakeAccountRepo, *fakeClassRepo, *fakeSubjectRepo) {
	t.Helper()
	accounts := newFakeAccountRepo()
	classes := newFakeClassRepo()
	subjects := &fakeSubjectRepo{}
	return NewSchoolService(accounts, classes, subjects), accounts, classes, subjects
}

func TestCreateClass_RequiresTeacherRole(t *testing.T) {
	svc, accounts, _, _ := newSchoolFixture(t)
	student := seedAccount(t, accounts, entity.RoleStudent)

	_, err := svc.CreateClass(context.Background(), ClassInput{
		Name:           "Mathematics 7B",
		Grade:          7,
		Section:        "B",
		ClassTeacherID: student.ID,
	})
	assert.ErrorIs(t, err, ErrRoleMismatch)
}

func TestCreateClass_UnknownTeacher(t *testing.T) {
	svc, _, _, _ := newSchoolFixture(t)

	_, err := svc.CreateClass(context.Background(), ClassInput{
		Name:           "Mathematics 7B",
		Grade:          7,
		Section:        "B",
		ClassTeacherID: uuid.New(),
	})
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestCreateClass_Success(t *testing.T) {
	svc, accounts, _, _ := newSchoolFixture(t)
	teacher := seedAccount(t, accounts, entity.RoleTeacher)

	class, err := svc.CreateClass(context.Background(), ClassInput{
		Name:           "Mathematics 7B",
		Grade:          7,
		Section:        "b",
		ClassTeacherID: teacher.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "B", class.Section)
	assert.Equal(t, teacher.ID, class.ClassTeacherID)
}

func TestCreateClass_GradeBounds(t *testing.T) {
	svc, accounts, _, _ := newSchoolFixture(t)
	teacher := seedAccount(t, accounts, entity.RoleTeacher)

	for _, grade := range []int{0, 13} {
		_, err := svc.CreateClass(context.Background(), ClassInput{
			Name:           "Mathematics",
			Grade:          grade,
			Section:        "A",
			ClassTeacherID: teacher.ID,
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestEnrollStudent(t *testing.T) {
	svc, accounts, classes, _ := newSchoolFixture(t)
	teacher := seedAccount(t, accounts, entity.RoleTeacher)
	student := seedAccount(t, accounts, entity.RoleStudent)

	class, err := svc.CreateClass(context.Background(), ClassInput{
		Name:           "Mathematics 7B",
		Grade:          7,
		Section:        "B",
		ClassTeacherID: teacher.ID,
	})
	require.NoError(t, err)

	_, err = svc.EnrollStudent(context.Background(), uuid.New(), student.ID)
	assert.ErrorIs(t, err, ErrClassNotFound)

	_, err = svc.EnrollStudent(context.Background(), class.ID, teacher.ID)
	assert.ErrorIs(t, err, ErrRoleMismatch)

	_, err = svc.EnrollStudent(context.Background(), class.ID, student.ID)
	require.NoError(t, err)

	stored, err := classes.FindByID(context.Background(), class.ID)
	require.NoError(t, err)
	require.Len(t, stored.Students, 1)
	assert.Equal(t, student.ID, stored.Students[0].ID)
}

func TestCreateSubjectAndList(t *testing.T) {
	svc, accounts, _, _ := newSchoolFixture(t)
	teacher := seedAccount(t, accounts, entity.RoleTeacher)

	class, err := svc.CreateClass(context.Background(), ClassInput{
		Name:           "Mathematics 7B",
		Grade:          7,
		Section:        "B",
		ClassTeacherID: teacher.ID,
	})
	require.NoError(t, err)

	_, err = svc.CreateSubject(context.Background(), SubjectInput{
		Name:      "Algebra",
		ClassID:   uuid.New(),
		TeacherID: teacher.ID,
	})
	assert.ErrorIs(t, err, ErrClassNotFound)

	subject, err := svc.CreateSubject(context.Background(), SubjectInput{
		Name:        "Algebra",
		Description: "Linear equations and factoring",
		ClassID:     class.ID,
		TeacherID:   teacher.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, subject.Description)

	subjects, err := svc.ListSubjects(context.Background(), class.ID)
	require.NoError(t, err)
	require.Len(t, subjects, 1)
	assert.Equal(t, "Algebra", subjects[0].Name)
}
