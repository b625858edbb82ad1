package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var s3Client *s3.Client
var s3Bucket string
var s3Region string

var extByMime = map[string]string{
	"image/jpeg":    ".jpg",
	"image/png":     ".png",
	"image/gif":     ".gif",
	"image/webp":    ".webp",
	"image/heic":    ".heic",
	"image/svg+xml": ".svg",
}

func InitS3() error {
	s3Bucket = os.Getenv("AWS_BUCKET_NAME")
	s3Region = os.Getenv("AWS_REGION")

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(s3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			os.Getenv("AWS_ACCESS_KEY_ID"),
			os.Getenv("AWS_SECRET_ACCESS_KEY"),
			"",
		)),
	)
	if err != nil {
		return fmt.Errorf("loading AWS config: %w", err)
	}

	s3Client = s3.NewFromConfig(cfg)
	return nil
}

// ErrInvalidDataURL marks client-supplied image payloads that could not
// be decoded, as opposed to upload infrastructure failures.
var ErrInvalidDataURL = errors.New("invalid data URL")

// ParseDataURL splits a "data:<mime>;base64,<payload>" string into its
// decoded bytes and content type.
func ParseDataURL(dataURL string) ([]byte, string, error) {
	if !strings.HasPrefix(dataURL, "data:") {
		return nil, "", fmt.Errorf("%w: missing data: prefix", ErrInvalidDataURL)
	}
	meta, payload, found := strings.Cut(dataURL[len("data:"):], ",")
	if !found {
		return nil, "", fmt.Errorf("%w: no payload separator", ErrInvalidDataURL)
	}
	contentType, encoding, _ := strings.Cut(meta, ";")
	if encoding != "base64" {
		return nil, "", fmt.Errorf("%w: unsupported encoding %q", ErrInvalidDataURL, encoding)
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidDataURL, err)
	}
	if _, ok := extByMime[contentType]; !ok {
		return nil, "", fmt.Errorf("%w: unsupported content type %q", ErrInvalidDataURL, contentType)
	}
	return raw, contentType, nil
}

// UploadDataURL decodes a base64 data URL and stores it under
// <folder>/<name><ext>, returning the public object URL.
func UploadDataURL(dataURL, name, folder string) (string, error) {
	raw, contentType, err := ParseDataURL(dataURL)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("%s/%s%s", folder, name, extByMime[contentType])
	_, err = s3Client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(s3Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(raw),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload failed: %w", err)
	}

	publicURL := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s3Bucket, s3Region, key)
	return publicURL, nil
}

func DeleteFromS3(key string) error {
	_, err := s3Client.DeleteObject(context.TODO(), &s3.DeleteObjectInput{
		Bucket: aws.String(s3Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("S3 delete error: %w", err)
	}
	return nil
}

// KeyFromURL derives the object key from a public bucket URL. Returns ""
// for URLs that do not point at the bucket.
func KeyFromURL(url string) string {
	parts := strings.Split(url, ".amazonaws.com/")
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}
