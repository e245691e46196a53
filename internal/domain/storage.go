package domain

import "context"

// FileKind selects the storage bucket for an object.
type FileKind string

const (
	FileKindImage FileKind = "image"
	FileKindFile  FileKind = "file"
	FileKindVideo FileKind = "video"
)

// Storage folders, one per media class.
const (
	FolderResume          = "resume"
	FolderVideoResume     = "video-resume"
	FolderJobCategories   = "job-categories"
	FolderBanners         = "banners"
	FolderProfilePictures = "profile-pictures"
)

// Content types passed through to the store.
const (
	ContentTypePDF   = "application/pdf"
	ContentTypeVideo = "video/mp4"
	ContentTypeJPEG  = "image/jpeg"
)

// UploadResult is what a successful put reports back.
type UploadResult struct {
	URL     string `json:"url"`
	Success bool   `json:"success"`
}

// BlobStore is durable key-addressed object storage. Put overwrites any
// object already stored under the key.
type BlobStore interface {
	Put(ctx context.Context, kind FileKind, data []byte, key, folder, contentType string) (*UploadResult, error)
	Delete(ctx context.Context, kind FileKind, key, folder string) error
	// KeyFromURL recovers the object key from a previously returned URL.
	KeyFromURL(url string) string
}

// MediaTransform shrinks raw image bytes before they hit the BlobStore.
type MediaTransform interface {
	Resize(data []byte, maxDimension, quality int) ([]byte, error)
}

// Notifier delivers out-of-band messages. Failures are the caller's
// problem to log or swallow.
type Notifier interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}
