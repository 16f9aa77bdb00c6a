package security

import (
	"bytes"
	"errors"
	"path/filepath"
	"sort"
	"strings"
)

// FileValidationResult contains the result of file validation
type FileValidationResult struct {
	Valid     bool   // Whether the file passed all validation checks
	Extension string // Detected file extension
	MIME      string // MIME type implied by the extension
	Error     string // Error message if validation failed
}

// Magic byte signatures for embeddable images
// Maps lowercase extension to possible magic byte prefixes
var magicBytes = map[string][][]byte{
	".jpg":  {{0xFF, 0xD8, 0xFF}},
	".jpeg": {{0xFF, 0xD8, 0xFF}},
	".png":  {{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
	".gif":  {{0x47, 0x49, 0x46, 0x38, 0x37, 0x61}, {0x47, 0x49, 0x46, 0x38, 0x39, 0x61}}, // GIF87a & GIF89a
	".webp": {{0x52, 0x49, 0x46, 0x46}},                                                   // RIFF header
}

var imageMIMETypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// ValidateImage performs 2-layer validation before an asset is decoded:
// 1. Extension whitelist check
// 2. Magic byte verification (content matches extension)
func ValidateImage(filename string, data []byte) FileValidationResult {
	result := FileValidationResult{}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		result.Error = "file has no extension"
		return result
	}
	result.Extension = ext

	mime, ok := imageMIMETypes[ext]
	if !ok {
		result.Error = "file extension not allowed: " + ext
		return result
	}
	result.MIME = mime

	if !validateMagicBytes(ext, data) {
		result.Error = "file content does not match extension"
		return result
	}

	result.Valid = true
	return result
}

// validateMagicBytes checks if file content starts with expected magic bytes
func validateMagicBytes(ext string, data []byte) bool {
	if len(data) < 4 {
		return false // File too small to validate
	}

	signatures, ok := magicBytes[ext]
	if !ok {
		return false
	}

	for _, sig := range signatures {
		if len(data) >= len(sig) && bytes.HasPrefix(data, sig) {
			// RIFF is shared with WAV/AVI; WebP carries its own tag at offset 8
			if ext == ".webp" {
				return len(data) >= 12 && string(data[8:12]) == "WEBP"
			}
			return true
		}
	}

	return false
}

// ValidateFileExtension checks only the extension (for quick pre-validation)
func ValidateFileExtension(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return errors.New("file has no extension")
	}
	if !IsImageExtension(ext) {
		return errors.New("file extension not allowed: " + ext)
	}
	return nil
}

// GetAllowedExtensions returns a list of allowed extensions for error messages
func GetAllowedExtensions() []string {
	exts := make([]string, 0, len(imageMIMETypes))
	for ext := range imageMIMETypes {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// IsImageExtension checks if the extension is an embeddable image type
func IsImageExtension(ext string) bool {
	_, ok := imageMIMETypes[strings.ToLower(ext)]
	return ok
}
