package storage

import (
	"anubha-web/internal/app/contracts"
	"anubha-web/internal/pkg/exceptions"
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

type minioStorage struct {
	MinioClient *minio.Client
	BucketName  string
	Log         *zap.Logger
}

func NewMinioStorage(minioClient *minio.Client, bucketName string, logger *zap.Logger) contracts.ObjectStorage {
	return &minioStorage{
		MinioClient: minioClient,
		BucketName:  bucketName,
		Log:         logger,
	}
}

// EnsureBucket creates the bucket on first start.
func EnsureBucket(ctx context.Context, minioClient *minio.Client, bucketName string) error {
	exists, err := minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return exceptions.ErrMinioGetObject(err, bucketName)
	}
	if exists {
		return nil
	}
	err = minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
	if err != nil {
		return exceptions.ErrMinioCreateObject(err, bucketName)
	}
	return nil
}

func (m *minioStorage) PutObject(ctx context.Context, objectName, contentType string, content io.Reader, size int64) error {
	_, err := m.MinioClient.PutObject(ctx, m.BucketName, objectName, content, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return exceptions.ErrMinioCreateObject(err, m.BucketName)
	}
	return nil
}

func (m *minioStorage) GetObject(ctx context.Context, objectName string) ([]byte, error) {
	object, err := m.MinioClient.GetObject(ctx, m.BucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, exceptions.ErrMinioGetObject(err, m.BucketName)
	}
	defer object.Close()

	content, err := io.ReadAll(object)
	if err != nil {
		return nil, exceptions.ErrMinioGetObject(err, m.BucketName)
	}
	return content, nil
}

func (m *minioStorage) RemovePrefix(ctx context.Context, prefix string) error {
	objects := m.MinioClient.ListObjects(ctx, m.BucketName, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	})

	var firstErr error
	for removeErr := range m.MinioClient.RemoveObjects(ctx, m.BucketName, objects, minio.RemoveObjectsOptions{}) {
		if removeErr.Err == nil {
			continue
		}
		m.Log.Error("minioStorage.RemovePrefix error removing object",
			zap.String("object_name", removeErr.ObjectName),
			zap.Error(removeErr.Err),
		)
		if firstErr == nil {
			firstErr = removeErr.Err
		}
	}
	if firstErr != nil {
		return exceptions.ErrMinioRemoveObject(firstErr, m.BucketName)
	}
	return nil
}
