package filestorage

import "mime/multipart"

// ImageStore defines the interface for company image storage operations.
type ImageStore interface {
	// SaveImage validates the attachment against the image allow-list, persists it
	// under the storage root and returns the path reference to store in the database.
	SaveImage(fileHeader *multipart.FileHeader) (string, error)

	// DeleteImage removes a stored image by its path reference. Deleting a missing
	// image is not an error.
	DeleteImage(imagePath string) error
}
