package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/roshr/careertrack/internal/app/models"
	"github.com/roshr/careertrack/internal/app/models/dto"
	"github.com/roshr/careertrack/internal/pkg/apperrors"
)

// fakeCompanyService returns canned results so the HTTP layer can be tested
// without storage.
type fakeCompanyService struct {
	createResp *dto.CompanyMutationResponse
	createErr  error
	getResp    *models.Company
	getErr     error
	listResp   []*models.Company
	updateResp *dto.CompanyMutationResponse
	updateErr  error
	deleteErr  error

	lastCreateReq *dto.CreateCompanyRequest
	lastImage     *multipart.FileHeader
}

func (f *fakeCompanyService) CreateCompany(ctx context.Context, req *dto.CreateCompanyRequest, image *multipart.FileHeader) (*dto.CompanyMutationResponse, error) {
	f.lastCreateReq = req
	f.lastImage = image
	return f.createResp, f.createErr
}

func (f *fakeCompanyService) GetCompanyByID(ctx context.Context, id string) (*models.Company, error) {
	return f.getResp, f.getErr
}

func (f *fakeCompanyService) GetAllCompanies(ctx context.Context) ([]*models.Company, error) {
	return f.listResp, nil
}

func (f *fakeCompanyService) UpdateCompany(ctx context.Context, id string, req *dto.UpdateCompanyRequest, image *multipart.FileHeader) (*dto.CompanyMutationResponse, error) {
	return f.updateResp, f.updateErr
}

func (f *fakeCompanyService) DeleteCompany(ctx context.Context, id string) error {
	return f.deleteErr
}

func newCompanyRouter(svc *fakeCompanyService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewCompanyController(svc)

	router := gin.New()
	companies := router.Group("/api/v1/companies")
	{
		companies.POST("", controller.CreateCompany)
		companies.GET("", controller.GetAllCompanies)
		companies.GET("/:id", controller.GetCompanyByID)
		companies.PUT("/:id", controller.UpdateCompany)
		companies.DELETE("/:id", controller.DeleteCompany)
	}
	return router
}

func multipartBody(t *testing.T, fields map[string]string, imageName string, imageContent []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("failed to write field %s: %v", key, err)
		}
	}
	if imageName != "" {
		part, err := writer.CreateFormFile("companyImage", imageName)
		if err != nil {
			t.Fatalf("failed to create form file: %v", err)
		}
		if _, err := part.Write(imageContent); err != nil {
			t.Fatalf("failed to write image content: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func TestCreateCompanyReturnsCreated(t *testing.T) {
	imagePath := "uploads/12345-logo.png"
	svc := &fakeCompanyService{
		createResp: &dto.CompanyMutationResponse{Message: "Company added successfully", ImagePath: &imagePath},
	}
	router := newCompanyRouter(svc)

	body, contentType := multipartBody(t, map[string]string{
		"companyId":   "C100",
		"companyName": "Initech",
		"industry":    "Software",
	}, "logo.png", []byte("png"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/companies", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d, body: %s", w.Code, http.StatusCreated, w.Body.String())
	}
	if svc.lastCreateReq == nil || svc.lastCreateReq.CompanyID != "C100" {
		t.Errorf("service did not receive the bound request: %+v", svc.lastCreateReq)
	}
	if svc.lastImage == nil || svc.lastImage.Filename != "logo.png" {
		t.Errorf("service did not receive the form image: %+v", svc.lastImage)
	}

	var resp dto.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !resp.Success {
		t.Error("expected success envelope")
	}
	if !strings.Contains(w.Body.String(), imagePath) {
		t.Errorf("response missing image path: %s", w.Body.String())
	}
}

func TestCreateCompanyWithoutImage(t *testing.T) {
	svc := &fakeCompanyService{
		createResp: &dto.CompanyMutationResponse{Message: "Company added successfully"},
	}
	router := newCompanyRouter(svc)

	body, contentType := multipartBody(t, map[string]string{
		"companyId":   "C100",
		"companyName": "Initech",
		"industry":    "Software",
	}, "", nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/companies", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d, body: %s", w.Code, http.StatusCreated, w.Body.String())
	}
	if svc.lastImage != nil {
		t.Errorf("expected nil image for image-less create, got %+v", svc.lastImage)
	}
}

func TestCreateCompanyMissingRequiredFields(t *testing.T) {
	svc := &fakeCompanyService{}
	router := newCompanyRouter(svc)

	body, contentType := multipartBody(t, map[string]string{
		"companyName": "Initech",
	}, "", nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/companies", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if svc.lastCreateReq != nil {
		t.Error("service was called despite failed binding")
	}
}

func TestCreateCompanyConflict(t *testing.T) {
	svc := &fakeCompanyService{
		createErr: apperrors.NewConflictError("company with this identifier already exists"),
	}
	router := newCompanyRouter(svc)

	body, contentType := multipartBody(t, map[string]string{
		"companyId":   "C100",
		"companyName": "Initech",
		"industry":    "Software",
	}, "", nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/companies", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d, body: %s", w.Code, http.StatusConflict, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), string(dto.ErrorCodeResourceAlreadyExists)) {
		t.Errorf("response missing conflict error code: %s", w.Body.String())
	}
}

func TestCreateCompanyUnsupportedMedia(t *testing.T) {
	svc := &fakeCompanyService{
		createErr: apperrors.NewUnsupportedMediaTypeError("unsupported image type"),
	}
	router := newCompanyRouter(svc)

	body, contentType := multipartBody(t, map[string]string{
		"companyId":   "C100",
		"companyName": "Initech",
		"industry":    "Software",
	}, "evil.exe", []byte("nope"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/companies", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("status = %d, want %d, body: %s", w.Code, http.StatusUnsupportedMediaType, w.Body.String())
	}
}

func TestGetCompanyByIDNotFound(t *testing.T) {
	svc := &fakeCompanyService{
		getErr: apperrors.NewResourceNotFoundError("company not found"),
	}
	router := newCompanyRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/companies/missing", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
	if !strings.Contains(w.Body.String(), string(dto.ErrorCodeResourceNotFound)) {
		t.Errorf("response missing not found error code: %s", w.Body.String())
	}
}

func TestGetAllCompaniesReturnsEachCompanyOnce(t *testing.T) {
	svc := &fakeCompanyService{
		listResp: []*models.Company{
			{ID: "C1", Name: "One", Industry: "A"},
			{ID: "C2", Name: "Two", Industry: "B"},
			{ID: "C3", Name: "Three", Industry: "C"},
		},
	}
	router := newCompanyRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/companies", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp struct {
		Data []models.Company `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	seen := map[string]int{}
	for _, company := range resp.Data {
		seen[company.ID]++
	}
	for _, id := range []string{"C1", "C2", "C3"} {
		if seen[id] != 1 {
			t.Errorf("company %s appeared %d times", id, seen[id])
		}
	}
}

func TestDeleteCompanyReturnsOK(t *testing.T) {
	svc := &fakeCompanyService{}
	router := newCompanyRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/companies/C100", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), "Company deleted successfully") {
		t.Errorf("response missing delete confirmation: %s", w.Body.String())
	}
}
