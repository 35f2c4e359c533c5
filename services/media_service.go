package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"bahasa-indah-nusantara/config"
	"bahasa-indah-nusantara/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// MaxUkuranMedia is the upload size ceiling (5 MB).
const MaxUkuranMedia = int64(5 * 1024 * 1024)

// allowedMedia maps accepted MIME types to the stored object extension.
var allowedMedia = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// MediaObject identifies one stored object and its public URL.
type MediaObject struct {
	Key string
	URL string
}

// MediaService validates and stores content media. Validation runs before any
// network call so bad files never reach the bucket.
type MediaService interface {
	Validate(file *multipart.FileHeader) error
	Upload(ctx context.Context, tipe models.TipeKonten, kontenID uint, file *multipart.FileHeader) (*MediaObject, error)
	Delete(ctx context.Context, key string) error
}

type mediaService struct {
	client *s3.Client
	cfg    *config.Config
}

func NewMediaService(cfg *config.Config) (MediaService, error) {
	awsCfg, err := awsConfig.LoadDefaultConfig(context.Background(),
		awsConfig.WithRegion(cfg.S3Region),
	)
	if err != nil {
		return nil, fmt.Errorf("gagal memuat konfigurasi S3: %w", err)
	}

	return &mediaService{
		client: s3.NewFromConfig(awsCfg),
		cfg:    cfg,
	}, nil
}

func (s *mediaService) Validate(file *multipart.FileHeader) error {
	contentType := file.Header.Get("Content-Type")
	if _, ok := allowedMedia[contentType]; !ok {
		return fmt.Errorf("tipe berkas %s tidak diizinkan (hanya jpeg, png, gif, webp)", contentType)
	}
	if file.Size > MaxUkuranMedia {
		return fmt.Errorf("ukuran berkas melebihi batas 5 MB")
	}
	return nil
}

func (s *mediaService) Upload(ctx context.Context, tipe models.TipeKonten, kontenID uint, file *multipart.FileHeader) (*MediaObject, error) {
	if err := s.Validate(file); err != nil {
		return nil, err
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("gagal membaca berkas: %w", err)
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	key := fmt.Sprintf("%s/%s/%d/%s%s",
		s.cfg.S3KeyPrefix, tipe, kontenID, uuid.New().String(), allowedMedia[contentType])

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.S3Bucket),
		Key:         aws.String(key),
		Body:        src,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return nil, fmt.Errorf("gagal mengunggah media: %w", err)
	}

	url := fmt.Sprintf("%s/%s/%s",
		strings.TrimRight(s.cfg.PublicURL, "/"), s.cfg.S3Bucket, key)

	return &MediaObject{Key: key, URL: url}, nil
}

func (s *mediaService) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.cfg.S3Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("gagal menghapus media: %w", err)
	}
	return nil
}
