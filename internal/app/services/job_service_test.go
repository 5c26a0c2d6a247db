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

type fakeJobStore struct {
	nextID int64
	jobs   map[int64]*models.JobListing
}

func newFakeJobStore() *fakeJobStore {
	return &fakeJobStore{jobs: map[int64]*models.JobListing{}}
}

func (f *fakeJobStore) Create(ctx context.Context, job *models.JobListing) (int64, error) {
	f.nextID++
	clone := *job
	clone.ID = f.nextID
	f.jobs[f.nextID] = &clone
	return f.nextID, nil
}

func (f *fakeJobStore) GetByID(ctx context.Context, id int64) (*models.JobListing, error) {
	job, ok := f.jobs[id]
	if !ok {
		return nil, apperrors.NewResourceNotFoundError("job listing not found")
	}
	clone := *job
	return &clone, nil
}

func (f *fakeJobStore) GetAll(ctx context.Context) ([]*models.JobListing, error) {
	all := []*models.JobListing{}
	for _, job := range f.jobs {
		clone := *job
		all = append(all, &clone)
	}
	return all, nil
}

func TestPublishListingAssignsGeneratedID(t *testing.T) {
	store := newFakeJobStore()
	svc := NewJobListingService(store, zerolog.Nop())

	job, err := svc.PublishListing(context.Background(), &dto.CreateJobListingRequest{
		JobTitle:       "Backend Engineer",
		JobDescription: "Go services",
		ExpectedSalary: "90000",
		CompanyID:      "C100",
	})
	if err != nil {
		t.Fatalf("PublishListing returned error: %v", err)
	}
	if job.ID == 0 {
		t.Error("listing returned without a generated identifier")
	}
	if job.Title != "Backend Engineer" || job.CompanyID != "C100" {
		t.Errorf("listing fields not carried through: %+v", job)
	}

	second, err := svc.PublishListing(context.Background(), &dto.CreateJobListingRequest{
		JobTitle:  "Frontend Engineer",
		CompanyID: "C100",
	})
	if err != nil {
		t.Fatalf("second PublishListing returned error: %v", err)
	}
	if second.ID == job.ID {
		t.Errorf("identifiers not unique: %d", second.ID)
	}
}

func TestGetListingByIDNotFound(t *testing.T) {
	svc := NewJobListingService(newFakeJobStore(), zerolog.Nop())

	_, err := svc.GetListingByID(context.Background(), 404)
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
}
