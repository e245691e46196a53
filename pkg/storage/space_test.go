package storage

import (
	"testing"

	"skilledup-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestKeyFromURL(t *testing.T) {
	s := &Space{cdnEndpoint: "https://cdn.example.com"}

	assert.Equal(t, "resume-user-1-1756600000000.pdf",
		s.KeyFromURL("https://cdn.example.com/files/resume/resume-user-1-1756600000000.pdf"))
	assert.Equal(t, "video-abc.mp4",
		s.KeyFromURL("https://cdn.example.com/videos/video-resume/video-abc.mp4"))
	assert.Equal(t, "", s.KeyFromURL("https://cdn.example.com/files/resume/"))
	assert.Equal(t, "", s.KeyFromURL("no-slashes"))
}

func TestBucketFor(t *testing.T) {
	assert.Equal(t, "images", bucketFor(domain.FileKindImage))
	assert.Equal(t, "videos", bucketFor(domain.FileKindVideo))
	assert.Equal(t, "files", bucketFor(domain.FileKindFile))
}
