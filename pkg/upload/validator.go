package upload

import (
	"bytes"
	"path/filepath"
	"strings"
)

// ValidationResult contains the result of upload validation
type ValidationResult struct {
	Valid     bool   // Whether the file passed all validation checks
	Extension string // Lowercased file extension
	Error     string // Error message if validation failed
}

// Magic byte signatures per extension. A file must start with one of the
// listed prefixes for its extension to be accepted.
var magicBytes = map[string][][]byte{
	".jpg":  {{0xFF, 0xD8, 0xFF}},
	".jpeg": {{0xFF, 0xD8, 0xFF}},
	".png":  {{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
	".webp": {{0x52, 0x49, 0x46, 0x46}}, // RIFF header
	".pdf":  {{0x25, 0x50, 0x44, 0x46}}, // %PDF
	".webm": {{0x1A, 0x45, 0xDF, 0xA3}}, // EBML header
}

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

var videoExtensions = map[string]bool{
	".mp4":  true,
	".webm": true,
	".mov":  true,
}

// ValidateResume accepts PDF documents only. Content must match the
// extension so a renamed executable cannot slip through.
func ValidateResume(filename string, data []byte) ValidationResult {
	ext := lowerExt(filename)
	if ext != ".pdf" {
		return failed(ext, "resume must be a PDF document")
	}
	if !matchesMagic(ext, data) {
		return failed(ext, "file content does not match extension")
	}
	return ValidationResult{Valid: true, Extension: ext}
}

// ValidateVideo accepts MP4, WebM and QuickTime containers.
func ValidateVideo(filename string, data []byte) ValidationResult {
	ext := lowerExt(filename)
	if !videoExtensions[ext] {
		return failed(ext, "video must be MP4, WebM or MOV")
	}
	// MP4 and MOV carry an "ftyp" box at offset 4 instead of a fixed prefix.
	if ext == ".mp4" || ext == ".mov" {
		if len(data) < 12 || !bytes.Equal(data[4:8], []byte("ftyp")) {
			return failed(ext, "file content does not match extension")
		}
		return ValidationResult{Valid: true, Extension: ext}
	}
	if !matchesMagic(ext, data) {
		return failed(ext, "file content does not match extension")
	}
	return ValidationResult{Valid: true, Extension: ext}
}

// ValidateImage accepts JPEG, PNG and WebP images.
func ValidateImage(filename string, data []byte) ValidationResult {
	ext := lowerExt(filename)
	if !imageExtensions[ext] {
		return failed(ext, "image must be JPEG, PNG or WebP")
	}
	if !matchesMagic(ext, data) {
		return failed(ext, "file content does not match extension")
	}
	return ValidationResult{Valid: true, Extension: ext}
}

func lowerExt(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

func failed(ext, msg string) ValidationResult {
	return ValidationResult{Extension: ext, Error: msg}
}

func matchesMagic(ext string, data []byte) bool {
	if len(data) < 4 {
		return false
	}
	signatures, ok := magicBytes[ext]
	if !ok {
		return false
	}
	for _, sig := range signatures {
		if len(data) >= len(sig) && bytes.Equal(data[:len(sig)], sig) {
			return true
		}
	}
	return false
}
