package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/roshr/careertrack/internal/app/models"
	"github.com/roshr/careertrack/internal/app/models/dto"
	"github.com/roshr/careertrack/internal/pkg/apperrors"
)

type fakeStudentStore struct {
	students map[string]*models.Student
}

func (f *fakeStudentStore) Create(ctx context.Context, student *models.Student) error {
	if _, ok := f.students[student.ID]; ok {
		return apperrors.NewConflictError("student with this identifier already exists")
	}
	clone := *student
	f.students[student.ID] = &clone
	return nil
}

func (f *fakeStudentStore) GetAll(ctx context.Context) ([]*models.Student, error) {
	all := []*models.Student{}
	for _, student := range f.students {
		clone := *student
		all = append(all, &clone)
	}
	return all, nil
}

func TestRegisterStudentStoresPasswordVerbatim(t *testing.T) {
	store := &fakeStudentStore{students: map[string]*models.Student{}}
	svc := NewStudentService(store, zerolog.Nop())

	err := svc.RegisterStudent(context.Background(), &dto.CreateStudentRequest{
		StudentID:   "S42",
		StudentName: "Rohan Iyer",
		Email:       "rohan@example.edu",
		Password:    "plain-secret",
		Gender:      "male",
	})
	if err != nil {
		t.Fatalf("RegisterStudent returned error: %v", err)
	}

	student := store.students["S42"]
	if student == nil {
		t.Fatal("student was not stored")
	}
	if student.Password != "plain-secret" {
		t.Errorf("password was transformed: %q", student.Password)
	}
}

func TestRegisterStudentDuplicate(t *testing.T) {
	store := &fakeStudentStore{students: map[string]*models.Student{}}
	svc := NewStudentService(store, zerolog.Nop())

	req := &dto.CreateStudentRequest{
		StudentID:   "S42",
		StudentName: "Rohan Iyer",
		Email:       "rohan@example.edu",
		Password:    "pw",
	}
	if err := svc.RegisterStudent(context.Background(), req); err != nil {
		t.Fatalf("first RegisterStudent returned error: %v", err)
	}
	if err := svc.RegisterStudent(context.Background(), req); !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestGetAllStudentsReturnsEveryRecord(t *testing.T) {
	store := &fakeStudentStore{students: map[string]*models.Student{}}
	svc := NewStudentService(store, zerolog.Nop())

	for _, id := range []string{"S1", "S2", "S3"} {
		err := svc.RegisterStudent(context.Background(), &dto.CreateStudentRequest{
			StudentID:   id,
			StudentName: "Student " + id,
			Email:       id + "@example.edu",
			Password:    "pw",
		})
		if err != nil {
			t.Fatalf("RegisterStudent(%s) returned error: %v", id, err)
		}
	}

	students, err := svc.GetAllStudents(context.Background())
	if err != nil {
		t.Fatalf("GetAllStudents returned error: %v", err)
	}
	seen := map[string]int{}
	for _, student := range students {
		seen[student.ID]++
	}
	for _, id := range []string{"S1", "S2", "S3"} {
		if seen[id] != 1 {
			t.Errorf("student %s appeared %d times", id, seen[id])
		}
	}
}
