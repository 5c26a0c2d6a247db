package repositories

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/roshr/careertrack/internal/app/models"
	"github.com/roshr/careertrack/internal/pkg/apperrors"
)

// testPool connects to the database named by CAREERTRACK_TEST_DATABASE_URL.
// Tests that need a live database skip when it is unset.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	url := os.Getenv("CAREERTRACK_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("CAREERTRACK_TEST_DATABASE_URL not set; skipping live database test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping test database: %v", err)
	}
	return pool
}

func TestCompanyRepositoryLifecycle(t *testing.T) {
	pool := testPool(t)
	repo := NewCompanyRepository(pool)
	ctx := context.Background()

	id := fmt.Sprintf("test-%d", time.Now().UnixNano())
	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), `DELETE FROM companies WHERE company_id = $1`, id)
	})

	imagePath := "uploads/1-logo.png"
	company := &models.Company{
		ID:        id,
		Name:      "Lifecycle Test Co",
		Industry:  "Testing",
		ImagePath: &imagePath,
	}

	if err := repo.Create(ctx, company); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := repo.Create(ctx, company); !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("duplicate Create: expected conflict, got %v", err)
	}

	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if got.Name != company.Name || got.ImagePath == nil || *got.ImagePath != imagePath {
		t.Errorf("row does not match inserted values: %+v", got)
	}

	// Update without touching the image column
	got.Name = "Renamed Co"
	if err := repo.Update(ctx, got, false); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	updated, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID after update returned error: %v", err)
	}
	if updated.Name != "Renamed Co" {
		t.Errorf("name not updated: %+v", updated)
	}
	if updated.ImagePath == nil || *updated.ImagePath != imagePath {
		t.Errorf("image path changed on non-image update: %v", updated.ImagePath)
	}

	// Update replacing the image reference
	newPath := "uploads/2-logo.png"
	updated.ImagePath = &newPath
	if err := repo.Update(ctx, updated, true); err != nil {
		t.Fatalf("Update with image returned error: %v", err)
	}
	replaced, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID after image update returned error: %v", err)
	}
	if replaced.ImagePath == nil || *replaced.ImagePath != newPath {
		t.Errorf("image path not replaced: %v", replaced.ImagePath)
	}

	if err := repo.Delete(ctx, id); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := repo.GetByID(ctx, id); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("GetByID after delete: expected not found, got %v", err)
	}
	if err := repo.Delete(ctx, id); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("second Delete: expected not found, got %v", err)
	}
}
