// Package s3 reads Stockholm alignments from an S3-compatible object store
// using the MinIO client. Every request passes through a client-side rate
// limiter and transient failures are retried with doubling backoff.
package s3
