// Package media uploads product and profile images to Cloudinary.
package media

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// MaxImageBytes is the largest accepted upload.
const MaxImageBytes = 2 << 20

var allowedTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/jpg":  true,
	"image/webp": true,
}

// AllowedType reports whether the content type is an accepted image format.
func AllowedType(contentType string) bool {
	return allowedTypes[contentType]
}

// Uploader stores images and returns their public URLs.
type Uploader interface {
	Upload(ctx context.Context, file multipart.File, folder string) (string, error)
	Delete(ctx context.Context, publicID string) error
}

// CloudinaryUploader stores images in Cloudinary.
type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryUploader creates an uploader from Cloudinary credentials.
func NewCloudinaryUploader(cloudName, apiKey, apiSecret string) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("initializing cloudinary: %w", err)
	}
	return &CloudinaryUploader{cld: cld}, nil
}

// Upload stores the image in the given folder and returns its secure URL.
func (u *CloudinaryUploader) Upload(ctx context.Context, file multipart.File, folder string) (string, error) {
	unique := true
	overwrite := false

	result, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:         folder,
		ResourceType:   "image",
		UniqueFilename: &unique,
		Overwrite:      &overwrite,
	})
	if err != nil {
		return "", fmt.Errorf("uploading image: %w", err)
	}

	if result.SecureURL == "" {
		return "", fmt.Errorf("upload returned no URL")
	}

	return result.SecureURL, nil
}

// Delete removes an image by its public ID.
func (u *CloudinaryUploader) Delete(ctx context.Context, publicID string) error {
	_, err := u.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("deleting image %s: %w", publicID, err)
	}
	return nil
}
