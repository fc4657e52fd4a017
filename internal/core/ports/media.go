package ports

import (
	"context"

	"github.com/litogalan/portfolio-cms/internal/core/domain"
)

// FileUpload is an in-memory file received from a multipart request.
type FileUpload struct {
	Name        string
	ContentType string
	Data        []byte
}

// MediaStore wraps the external media provider so that create/update/delete
// of an owned asset keep the hosted object consistent with the stored
// reference.
type MediaStore interface {
	Upload(ctx context.Context, folder string, file FileUpload) (domain.HostedAsset, error)
	Delete(ctx context.Context, publicID string) error
	// Replace uploads the new object before removing the old one: a failed
	// upload must leave the previous asset intact. The old object is removed
	// exactly once; a failed removal after a successful upload is logged but
	// does not fail the call.
	Replace(ctx context.Context, oldPublicID, folder string, file FileUpload) (domain.HostedAsset, error)
}

// ImageProcessor validates and normalizes image uploads before they reach the
// media provider.
type ImageProcessor interface {
	// Normalize rejects non-jpeg/png or oversized input and re-encodes the
	// image bounded to the configured maximum dimensions. Returns the encoded
	// bytes and their content type.
	Normalize(data []byte) ([]byte, string, error)
}

// Mailer delivers outbound email. A failed send is reported to the caller but
// never retried here.
type Mailer interface {
	SendSubscriptionConfirmation(ctx context.Context, to, unsubscribeURL string) error
}
