package upload

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"

	"blogsphere/internal/config"
)

var ErrStorageUnavailable = errors.New("upload storage is not configured")

type Service interface {
	// UploadURL returns a presigned PUT URL for a new banner or inline image.
	UploadURL(ctx context.Context) (string, error)
}

// Presigner is the part of *minio.Client the service needs.
type Presigner interface {
	PresignedPutObject(ctx context.Context, bucketName, objectName string, expires time.Duration) (*url.URL, error)
}

type service struct {
	storage Presigner
	bucket  string
	expiry  time.Duration
	now     func() time.Time
}

// NewService returns an upload signer. storage may be nil when object
// storage could not be reached at startup.
func NewService(storage Presigner, cfg *config.Config) Service {
	return &service{
		storage: storage,
		bucket:  cfg.MinIOBucket,
		expiry:  cfg.UploadURLExpiry,
		now:     time.Now,
	}
}

func (s *service) UploadURL(ctx context.Context) (string, error) {
	if s.storage == nil {
		return "", ErrStorageUnavailable
	}

	key := fmt.Sprintf("%s-%d.jpeg", uuid.New(), s.now().UnixMilli())
	u, err := s.storage.PresignedPutObject(ctx, s.bucket, key, s.expiry)
	if err != nil {
		return "", fmt.Errorf("failed to sign upload url: %w", err)
	}
	return u.String(), nil
}
