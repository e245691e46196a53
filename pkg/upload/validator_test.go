package upload

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func mp4Header() []byte {
	return []byte{0x00, 0x00, 0x00, 0x20, 'f', 't', 'y', 'p', 'i', 's', 'o', 'm'}
}

func TestValidateResume(t *testing.T) {
	pdf := []byte("%PDF-1.7 rest of document")

	result := ValidateResume("cv.pdf", pdf)
	assert.True(t, result.Valid)

	result = ValidateResume("cv.PDF", pdf)
	assert.True(t, result.Valid, "extension check is case-insensitive")

	result = ValidateResume("cv.docx", pdf)
	assert.False(t, result.Valid)

	// Renamed binary must not pass on extension alone.
	result = ValidateResume("cv.pdf", []byte{0x4D, 0x5A, 0x90, 0x00})
	assert.False(t, result.Valid)
	assert.Contains(t, result.Error, "does not match")
}

func TestValidateVideo(t *testing.T) {
	result := ValidateVideo("intro.mp4", mp4Header())
	assert.True(t, result.Valid)

	result = ValidateVideo("intro.webm", []byte{0x1A, 0x45, 0xDF, 0xA3, 0x01, 0x02})
	assert.True(t, result.Valid)

	result = ValidateVideo("intro.avi", mp4Header())
	assert.False(t, result.Valid)

	result = ValidateVideo("intro.mp4", []byte("not a video at all"))
	assert.False(t, result.Valid)
}

func TestValidateImage(t *testing.T) {
	jpeg := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00}
	png := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00}

	assert.True(t, ValidateImage("photo.jpg", jpeg).Valid)
	assert.True(t, ValidateImage("photo.png", png).Valid)
	assert.False(t, ValidateImage("photo.png", jpeg).Valid)
	assert.False(t, ValidateImage("photo.gif", png).Valid)
	assert.False(t, ValidateImage("photo.png", []byte{0x89}).Valid, "truncated input")
}
