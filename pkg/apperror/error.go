package apperror

import "net/http"

type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, message, nil)
}

func Forbidden(message string) *AppError {
	return New(http.StatusForbidden, message, nil)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message, nil)
}

func Conflict(message string) *AppError {
	return New(http.StatusConflict, message, nil)
}

// LimitExceeded rejects an operation that would break a cardinality cap,
// such as the video-resume limit. A user error, not a server fault.
func LimitExceeded(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

// AlreadyApproved rejects an illegal review-state transition.
func AlreadyApproved(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

// UploadFailed wraps a blob-store put error. Surfaced as 5xx because the
// failure is transient infrastructure and safe to retry.
func UploadFailed(message string, err error) *AppError {
	return New(http.StatusInternalServerError, message, err)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "Internal Server Error", err)
}
