package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/roshr/careertrack/internal/pkg/apperrors"
	"github.com/roshr/careertrack/internal/pkg/logger"
)

// allowedImageExtensions is the fixed allow-list of raster image formats.
var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// allowedImageContentTypes mirrors the extension allow-list for the declared media type.
var allowedImageContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
}

// LocalStorage stores company images on the local filesystem.
type LocalStorage struct {
	basePath string // The root directory where images are stored
	urlPath  string // The path prefix stored in the database and served over HTTP
}

// NewLocalStorage creates a new LocalStorage instance rooted at basePath.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		urlPath:  "uploads",
	}, nil
}

// SaveImage validates and persists an uploaded image.
// The stored filename combines the current time with the original name to avoid
// collisions, and the returned reference is relative to the uploads root.
func (ls *LocalStorage) SaveImage(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader == nil {
		return "", nil // No file uploaded
	}

	if err := validateImageKind(fileHeader); err != nil {
		return "", err
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	storedName := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitizeFilename(fileHeader.Filename))
	dstPath := filepath.Join(ls.basePath, storedName)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		// Remove the partially written file
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	imagePath := ls.urlPath + "/" + storedName
	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", storedName).Msg("Image saved")
	return imagePath, nil
}

// DeleteImage removes a stored image by its database reference (e.g. uploads/169...-logo.png).
// Returns nil if deletion succeeds or if the file does not exist.
func (ls *LocalStorage) DeleteImage(imagePath string) error {
	if imagePath == "" {
		return nil // Nothing to delete
	}

	filename := filepath.Base(imagePath)
	if filename == "" || filename == "." || filename == "/" || filename == ls.urlPath {
		return fmt.Errorf("invalid image path: %s", imagePath)
	}

	physicalPath := filepath.Join(ls.basePath, filename)

	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("Image to delete does not exist")
		return nil // Idempotent delete
	}

	if err := os.Remove(physicalPath); err != nil {
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete image")
		return fmt.Errorf("failed to delete image: %w", err)
	}

	logger.Info().Str("path", physicalPath).Msg("Image deleted")
	return nil
}

// validateImageKind checks both the file extension and the declared content type
// against the image allow-list. Both must match.
func validateImageKind(fileHeader *multipart.FileHeader) error {
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExtensions[ext] {
		return apperrors.NewUnsupportedMediaTypeError(
			fmt.Sprintf("file extension %q is not an accepted image format", ext))
	}

	contentType := strings.ToLower(strings.TrimSpace(fileHeader.Header.Get("Content-Type")))
	// Strip any media type parameters (e.g. "image/png; charset=binary")
	if idx := strings.Index(contentType, ";"); idx >= 0 {
		contentType = strings.TrimSpace(contentType[:idx])
	}
	if !allowedImageContentTypes[contentType] {
		return apperrors.NewUnsupportedMediaTypeError(
			fmt.Sprintf("content type %q is not an accepted image format", contentType))
	}

	return nil
}

// sanitizeFilename strips any directory components and whitespace from the
// client-supplied name before it becomes part of the stored filename.
func sanitizeFilename(name string) string {
	base := filepath.Base(name)
	base = strings.ReplaceAll(base, " ", "_")
	return base
}
