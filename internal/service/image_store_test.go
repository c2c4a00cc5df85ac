package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fadilmartias/resume-builder/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalImageStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "images")
	store, err := NewLocalImageStore(dir, "/uploads/")
	require.NoError(t, err)

	require.NoError(t, store.Save(context.Background(), "photo.png", strings.NewReader("data"), "image/png"))
	data, err := os.ReadFile(filepath.Join(dir, "photo.png"))
	require.NoError(t, err)
	assert.Equal(t, "data", string(data))
	assert.Equal(t, "/uploads/photo.png", store.URL("photo.png"))

	// names never escape the upload dir
	require.NoError(t, store.Save(context.Background(), "../escape.png", strings.NewReader("x"), ""))
	_, err = os.Stat(filepath.Join(dir, "escape.png"))
	assert.NoError(t, err)

	require.NoError(t, store.Delete(context.Background(), "photo.png"))
	_, err = os.Stat(filepath.Join(dir, "photo.png"))
	assert.True(t, os.IsNotExist(err))
	assert.NoError(t, store.Delete(context.Background(), "photo.png"))
}

func TestNewImageStore(t *testing.T) {
	ctx := context.Background()

	store, err := NewImageStore(ctx, &config.StorageConfig{Driver: "local", UploadDir: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &LocalImageStore{}, store)

	_, err = NewImageStore(ctx, &config.StorageConfig{Driver: "s3"})
	assert.ErrorContains(t, err, "S3_BUCKET")

	s3Store, err := NewImageStore(ctx, &config.StorageConfig{
		Driver:      "s3",
		S3Bucket:    "photos",
		S3Region:    "auto",
		S3Endpoint:  "http://localhost:9000",
		S3AccessKey: "key",
		S3SecretKey: "secret",
		S3PublicURL: "https://cdn.example.com/",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/a.png", s3Store.URL("a.png"))

	_, err = NewImageStore(ctx, &config.StorageConfig{Driver: "ftp"})
	assert.Error(t, err)
}
