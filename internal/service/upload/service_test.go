package upload

import (
	"context"
	"errors"
	"net/url"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogsphere/internal/config"
)

type fakePresigner struct {
	bucket  string
	object  string
	expires time.Duration
	err     error
}

func (f *fakePresigner) PresignedPutObject(ctx context.Context, bucketName, objectName string, expires time.Duration) (*url.URL, error) {
	f.bucket, f.object, f.expires = bucketName, objectName, expires
	if f.err != nil {
		return nil, f.err
	}
	return &url.URL{Scheme: "https", Host: "media.example.com", Path: "/" + bucketName + "/" + objectName}, nil
}

func TestUploadURL(t *testing.T) {
	cfg := &config.Config{MinIOBucket: "uploads", UploadURLExpiry: 1000 * time.Second}
	storage := &fakePresigner{}
	svc := NewService(storage, cfg).(*service)
	svc.now = func() time.Time { return time.UnixMilli(1700000000123) }

	got, err := svc.UploadURL(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "uploads", storage.bucket)
	assert.Equal(t, 1000*time.Second, storage.expires)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f-]{36}-1700000000123\.jpeg$`), storage.object)
	assert.Equal(t, "https://media.example.com/uploads/"+storage.object, got)
}

func TestUploadURLErrors(t *testing.T) {
	cfg := &config.Config{MinIOBucket: "uploads"}

	_, err := NewService(nil, cfg).UploadURL(context.Background())
	assert.ErrorIs(t, err, ErrStorageUnavailable)

	_, err = NewService(&fakePresigner{err: errors.New("signature mismatch")}, cfg).UploadURL(context.Background())
	assert.ErrorContains(t, err, "signature mismatch")
}
