package utils

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Bricklabsai/theralink/internal/pkg/constvars"
)

var (
	ErrImageNotImage        = errors.New("file is not an image")
	ErrImageExtensionDenied = errors.New("image extension is not allowed")
	ErrImageTooLarge        = errors.New("image exceeds maximum allowed size")
)

// ValidateImageUpload checks an uploaded profile image and returns its
// lower-cased extension without the leading dot.
func ValidateImageUpload(fileName, contentType string, size int64, maxSizeInMB int64) (string, error) {
	if size > maxSizeInMB*1024*1024 {
		return "", fmt.Errorf("%w: %dMB", ErrImageTooLarge, maxSizeInMB)
	}

	if !strings.HasPrefix(contentType, constvars.MIMEImagePrefix) {
		return "", ErrImageNotImage
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileName), "."))
	if !constvars.AllowedAvatarExtensions[ext] {
		return "", fmt.Errorf("%w: %q", ErrImageExtensionDenied, ext)
	}
	return ext, nil
}
