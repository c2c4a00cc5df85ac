package config

import (
	"os"
	"sync"
)

// StorageConfig selects where personal photos are kept.
type StorageConfig struct {
	Driver    string // local | s3
	UploadDir string

	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3PublicURL string
}

var (
	storageConfig *StorageConfig
	storageOnce   sync.Once
)

func LoadStorageConfig() *StorageConfig {
	storageOnce.Do(func() {
		storageConfig = &StorageConfig{
			Driver:      getEnv("STORAGE_DRIVER", "local"),
			UploadDir:   getEnv("UPLOAD_DIR", "./uploads/images"),
			S3Bucket:    os.Getenv("S3_BUCKET"),
			S3Region:    getEnv("S3_REGION", "auto"),
			S3Endpoint:  os.Getenv("S3_ENDPOINT"),
			S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
			S3SecretKey: os.Getenv("S3_SECRET_KEY"),
			S3PublicURL: os.Getenv("S3_PUBLIC_URL"),
		}
	})
	return storageConfig
}
