package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"parkfinder/internal/urbanpark"
)

// S3Service archives raw dataset files in S3-compatible storage. Uploading a
// new dataset file is what triggers the notification-driven re-import.
type S3Service struct {
	client *minio.Client
}

// NewS3Service connects to the MinIO server using credentials from
// environment variables.
func NewS3Service() (*S3Service, error) {
	minioEndpoint := os.Getenv("MINIO_ENDPOINT")
	minioAccessKey := os.Getenv("MINIO_ACCESS_KEY")
	minioSecretKey := os.Getenv("MINIO_SECRET_KEY")
	useSSL := os.Getenv("MINIO_USE_SSL") == "true"

	if minioEndpoint == "" || minioAccessKey == "" || minioSecretKey == "" {
		return nil, fmt.Errorf("missing one or more required environment variables: MINIO_ENDPOINT, MINIO_ACCESS_KEY, MINIO_SECRET_KEY")
	}

	minioClient, err := minio.New(minioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(minioAccessKey, minioSecretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %v", err)
	}

	log.Println("Successfully connected to MinIO endpoint:", minioEndpoint)
	return &S3Service{client: minioClient}, nil
}

// CreateBucket creates the bucket when it does not exist yet.
func (s *S3Service) CreateBucket(ctx context.Context, bucketName string, location string) error {
	exists, err := s.client.BucketExists(ctx, bucketName)
	if err != nil {
		return fmt.Errorf("error checking bucket existence: %v", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: location}); err != nil {
			return err
		}
	}
	return nil
}

// StoreDataset uploads a raw dataset file under the given object key.
func (s *S3Service) StoreDataset(ctx context.Context, bucketName, objectKey string, r io.Reader, size int64) error {
	_, err := s.client.PutObject(ctx, bucketName, objectKey, r, size,
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return fmt.Errorf("failed to store dataset in S3: %v", err)
	}
	log.Printf("Archived dataset in bucket '%s' with key '%s'", bucketName, objectKey)
	return nil
}

// GetDataset retrieves a dataset object and decodes it as a raw urban-park
// dataset file.
func (s *S3Service) GetDataset(ctx context.Context, bucketName, objectKey string) (*urbanpark.RawFile, error) {
	object, err := s.client.GetObject(ctx, bucketName, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object from S3: %v", err)
	}
	defer object.Close()

	// Stream the JSON straight from the reader; dataset files run to tens of
	// megabytes.
	var file urbanpark.RawFile
	if err := json.NewDecoder(object).Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode dataset JSON from stream: %v", err)
	}

	log.Printf("Retrieved dataset with %d records from bucket '%s' key '%s'",
		len(file.Records), bucketName, objectKey)
	return &file, nil
}
