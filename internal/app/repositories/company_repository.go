package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/roshr/careertrack/internal/app/models"
	"github.com/roshr/careertrack/internal/pkg/apperrors"
	"github.com/roshr/careertrack/internal/pkg/dberrors"
	"github.com/roshr/careertrack/internal/pkg/logger"
)

// CompanyRepository handles company database operations
type CompanyRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCompanyRepository creates a new CompanyRepository
func NewCompanyRepository(db *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new company row. The identifier is caller-supplied; a
// duplicate identifier fails with a conflict error.
func (r *CompanyRepository) Create(ctx context.Context, company *models.Company) error {
	sql, args, err := r.sb.Insert("companies").
		Columns("company_id", "company_name", "industry", "company_description", "image_path").
		Values(company.ID, company.Name, company.Industry, company.Description, company.ImagePath).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create company query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("company with this identifier already exists")
		}
		logger.Error().Err(err).Str("companyID", company.ID).Msg("Error executing create company query")
		return fmt.Errorf("error creating company: %w", err)
	}

	return nil
}

// GetByID retrieves a company by its identifier
func (r *CompanyRepository) GetByID(ctx context.Context, id string) (*models.Company, error) {
	sql, args, err := r.sb.Select("company_id", "company_name", "industry", "company_description", "image_path").
		From("companies").
		Where(squirrel.Eq{"company_id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get company query: %w", err)
	}

	company := &models.Company{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&company.ID, &company.Name, &company.Industry, &company.Description, &company.ImagePath)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewResourceNotFoundError("company not found")
		}
		logger.Error().Err(err).Str("companyID", id).Msg("Error scanning company row")
		return nil, fmt.Errorf("error getting company by ID: %w", err)
	}

	return company, nil
}

// GetAll retrieves all companies in the store's default order
func (r *CompanyRepository) GetAll(ctx context.Context) ([]*models.Company, error) {
	sql, args, err := r.sb.Select("company_id", "company_name", "industry", "company_description", "image_path").
		From("companies").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all companies query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all companies query")
		return nil, fmt.Errorf("error querying companies: %w", err)
	}
	defer rows.Close()

	companies := []*models.Company{}
	for rows.Next() {
		company := &models.Company{}
		if err := rows.Scan(&company.ID, &company.Name, &company.Industry, &company.Description, &company.ImagePath); err != nil {
			return nil, fmt.Errorf("error scanning company row: %w", err)
		}
		companies = append(companies, company)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating company rows: %w", err)
	}

	return companies, nil
}

// Update writes the company's mutable fields. The image_path column is written
// only when replaceImage is set; otherwise the stored reference is preserved.
func (r *CompanyRepository) Update(ctx context.Context, company *models.Company, replaceImage bool) error {
	setMap := map[string]interface{}{
		"company_name":        company.Name,
		"industry":            company.Industry,
		"company_description": company.Description,
	}
	if replaceImage {
		setMap["image_path"] = company.ImagePath
	}

	sql, args, err := r.sb.Update("companies").
		SetMap(setMap).
		Where(squirrel.Eq{"company_id": company.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update company query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("companyID", company.ID).Msg("Error executing update company query")
		return fmt.Errorf("error updating company: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError("company not found")
	}

	return nil
}

// Delete removes a company row by its identifier
func (r *CompanyRepository) Delete(ctx context.Context, id string) error {
	sql, args, err := r.sb.Delete("companies").
		Where(squirrel.Eq{"company_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete company query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("companyID", id).Msg("Error executing delete company query")
		return fmt.Errorf("error deleting company: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError("company not found")
	}

	return nil
}
