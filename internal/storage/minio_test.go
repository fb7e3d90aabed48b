package storage

import (
	"context"
	"testing"

	"github.com/makoye224/cwru-courses-backend/internal/config"
	"github.com/stretchr/testify/require"
)

func TestNewMinIOStorage_RequiresEndpoint(t *testing.T) {
	_, err := NewMinIOStorage(context.Background(), config.MinIOConfig{Bucket: "course-catalog"})
	require.ErrorIs(t, err, ErrNotConfigured)
}

func TestNewMinIOStorage_RequiresBucket(t *testing.T) {
	_, err := NewMinIOStorage(context.Background(), config.MinIOConfig{Endpoint: "localhost:9000"})
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNotConfigured)
}

func TestNewMinIOStorage_RejectsBadEndpoint(t *testing.T) {
	// minio.New refuses endpoints carrying a path
	_, err := NewMinIOStorage(context.Background(), config.MinIOConfig{Endpoint: "localhost:9000/bucket", Bucket: "b"})
	require.Error(t, err)
}
