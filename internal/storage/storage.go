package storage

import (
	"context"
	"io"
	"time"
)

// Uploader writes a resume blob to the configured bucket and returns the
// stored path recorded on the resume row. Object names are chosen by the
// caller (resumes/<consultant-id>/<uuid>.pdf) so uploads never collide.
type Uploader interface {
	Upload(ctx context.Context, objectName string, contentType string, r io.Reader) (storedPath string, err error)
}

// Signer mints short-lived download URLs for stored resumes. The bucket is
// private; clients never receive a raw object path.
type Signer interface {
	SignedGetURL(ctx context.Context, objectName string, ttl time.Duration) (string, error)
}
