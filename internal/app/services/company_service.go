package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/rs/zerolog"

	"github.com/roshr/careertrack/internal/app/models"
	"github.com/roshr/careertrack/internal/app/models/dto"
	"github.com/roshr/careertrack/internal/pkg/filestorage"
)

// CompanyStore defines the persistence operations the company service needs.
// It is satisfied by repositories.CompanyRepository.
type CompanyStore interface {
	Create(ctx context.Context, company *models.Company) error
	GetByID(ctx context.Context, id string) (*models.Company, error)
	GetAll(ctx context.Context) ([]*models.Company, error)
	Update(ctx context.Context, company *models.Company, replaceImage bool) error
	Delete(ctx context.Context, id string) error
}

// CompanyService defines methods for managing companies and their images
type CompanyService interface {
	CreateCompany(ctx context.Context, req *dto.CreateCompanyRequest, image *multipart.FileHeader) (*dto.CompanyMutationResponse, error)
	GetCompanyByID(ctx context.Context, id string) (*models.Company, error)
	GetAllCompanies(ctx context.Context) ([]*models.Company, error)
	UpdateCompany(ctx context.Context, id string, req *dto.UpdateCompanyRequest, image *multipart.FileHeader) (*dto.CompanyMutationResponse, error)
	DeleteCompany(ctx context.Context, id string) error
}

type companyServiceImpl struct {
	store  CompanyStore
	images filestorage.ImageStore
	logger zerolog.Logger
}

// NewCompanyService creates a new CompanyService
func NewCompanyService(store CompanyStore, images filestorage.ImageStore, logger zerolog.Logger) CompanyService {
	return &companyServiceImpl{
		store:  store,
		images: images,
		logger: logger,
	}
}

// CreateCompany stores the uploaded image first, then inserts the row. If the
// insert fails after the image was stored, the asset is left behind and only
// logged; it is never referenced by any row.
func (s *companyServiceImpl) CreateCompany(ctx context.Context, req *dto.CreateCompanyRequest, image *multipart.FileHeader) (*dto.CompanyMutationResponse, error) {
	var imagePath *string
	if image != nil {
		stored, err := s.images.SaveImage(image)
		if err != nil {
			return nil, err
		}
		imagePath = &stored
	}

	company := &models.Company{
		ID:        req.CompanyID,
		Name:      req.CompanyName,
		Industry:  req.Industry,
		ImagePath: imagePath,
	}
	if req.CompanyDescription != "" {
		company.Description = &req.CompanyDescription
	}

	if err := s.store.Create(ctx, company); err != nil {
		if imagePath != nil {
			s.logger.Warn().Str("companyID", req.CompanyID).Str("imagePath", *imagePath).
				Msg("Company insert failed after image was stored; asset is unreferenced")
		}
		return nil, err
	}

	s.logger.Info().Str("companyID", company.ID).Msg("Company created")
	return &dto.CompanyMutationResponse{
		Message:   "Company added successfully",
		ImagePath: imagePath,
	}, nil
}

// GetCompanyByID retrieves a single company
func (s *companyServiceImpl) GetCompanyByID(ctx context.Context, id string) (*models.Company, error) {
	return s.store.GetByID(ctx, id)
}

// GetAllCompanies retrieves all companies
func (s *companyServiceImpl) GetAllCompanies(ctx context.Context) ([]*models.Company, error) {
	return s.store.GetAll(ctx)
}

// UpdateCompany replaces the company's fields. When a new image is supplied it
// is stored before the old asset is removed, so a storage failure leaves the
// existing image intact. Without a new image the stored reference is preserved.
func (s *companyServiceImpl) UpdateCompany(ctx context.Context, id string, req *dto.UpdateCompanyRequest, image *multipart.FileHeader) (*dto.CompanyMutationResponse, error) {
	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var newImagePath *string
	if image != nil {
		stored, err := s.images.SaveImage(image)
		if err != nil {
			return nil, err
		}
		newImagePath = &stored

		if existing.ImagePath != nil {
			if err := s.images.DeleteImage(*existing.ImagePath); err != nil {
				s.logger.Warn().Err(err).Str("companyID", id).Str("imagePath", *existing.ImagePath).
					Msg("Failed to remove replaced company image")
			}
		}
	}

	company := &models.Company{
		ID:        id,
		Name:      req.CompanyName,
		Industry:  req.Industry,
		ImagePath: newImagePath,
	}
	if req.CompanyDescription != "" {
		company.Description = &req.CompanyDescription
	}

	if err := s.store.Update(ctx, company, newImagePath != nil); err != nil {
		return nil, err
	}

	responsePath := existing.ImagePath
	if newImagePath != nil {
		responsePath = newImagePath
	}

	s.logger.Info().Str("companyID", id).Bool("imageReplaced", newImagePath != nil).Msg("Company updated")
	return &dto.CompanyMutationResponse{
		Message:   "Company updated successfully",
		ImagePath: responsePath,
	}, nil
}

// DeleteCompany removes the company's image asset first, then the row.
func (s *companyServiceImpl) DeleteCompany(ctx context.Context, id string) error {
	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if existing.ImagePath != nil {
		if err := s.images.DeleteImage(*existing.ImagePath); err != nil {
			return fmt.Errorf("error deleting company image: %w", err)
		}
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("companyID", id).Msg("Company deleted")
	return nil
}
