package s3

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/minio/minio-go/v7"

	"github.com/custodia-labs/rna-msa/internal/core/domain"
)

// S3-specific errors.
var (
	// ErrNotConfigured indicates the endpoint or bucket is missing.
	ErrNotConfigured = errors.New("s3: endpoint and bucket are required")
)

// ObjectError represents an error response from the object store.
type ObjectError struct {
	StatusCode int
	Code       string
	Message    string
	Bucket     string
	Key        string
}

func (e *ObjectError) Error() string {
	return fmt.Sprintf("s3: %s (%d) on %s/%s: %s", e.Code, e.StatusCode, e.Bucket, e.Key, e.Message)
}

// Unwrap maps store error codes onto domain errors.
func (e *ObjectError) Unwrap() error {
	switch {
	case e.Code == "NoSuchKey" || e.Code == "NoSuchBucket" || e.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound
	default:
		return domain.ErrSourceUnavailable
	}
}

// wrapError converts minio errors to our error types.
func wrapError(err error, bucket, key string) error {
	if err == nil {
		return nil
	}
	resp := minio.ToErrorResponse(err)
	if resp.Code == "" && resp.StatusCode == 0 {
		return fmt.Errorf("%w: %s/%s: %w", domain.ErrSourceUnavailable, bucket, key, err)
	}
	return &ObjectError{
		StatusCode: resp.StatusCode,
		Code:       resp.Code,
		Message:    resp.Message,
		Bucket:     bucket,
		Key:        key,
	}
}

// IsNotFound checks if the error indicates a missing object or bucket.
func IsNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}

// isTransient reports whether a request may succeed when retried.
func isTransient(err error) bool {
	var objErr *ObjectError
	if errors.As(err, &objErr) {
		switch objErr.Code {
		case "SlowDown", "InternalError", "ServiceUnavailable", "RequestTimeout":
			return true
		}
		return objErr.StatusCode >= http.StatusInternalServerError ||
			objErr.StatusCode == http.StatusTooManyRequests
	}
	return errors.Is(err, domain.ErrSourceUnavailable)
}
