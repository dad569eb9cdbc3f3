package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"mupro/lostfound-api/aws"

	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ImageStore persists uploaded item photos and hands back the path stored
// on the item row. storage.type picks the implementation at startup.
type ImageStore interface {
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
}

// LocalStore writes images to a directory on disk, served statically.
type LocalStore struct {
	Dir string
}

func (s *LocalStore) Save(_ context.Context, filename string, r io.Reader) (string, error) {
	name := fmt.Sprintf("%d_%s", time.Now().UnixMilli(), filepath.Base(filename))

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", err
	}

	f, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", err
	}

	return "/uploads/" + name, nil
}

// S3Store uploads images to a bucket through the s3 upload manager.
type S3Store struct {
	client *aws.S3Client
}

func NewS3Store(client *aws.S3Client) *S3Store {
	return &S3Store{client: client}
}

func (s *S3Store) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	key := fmt.Sprintf("uploads/%d_%s", time.Now().UnixMilli(), filepath.Base(filename))

	uploader := manager.NewUploader(s.client.C)

	_, err := uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket: s.client.Bucket,
		Key:    &key,
		Body:   r,
	})
	if err != nil {
		return "", err
	}

	return "/" + key, nil
}
