package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/Diego-EC/questioner-backend/internal/config"
)

// putObjectAPI is the part of the S3 client S3 uses.
type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3 uploads public-read objects to a bucket.
type S3 struct {
	client  putObjectAPI
	bucket  string
	timeout time.Duration
}

// NewS3 builds an S3 store. Static credentials are used when configured,
// otherwise the default AWS credential chain applies.
func NewS3(ctx context.Context, cfg config.StorageConfig) (*S3, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return newS3(s3.NewFromConfig(awsCfg), cfg.Bucket, cfg.Timeout), nil
}

func newS3(client putObjectAPI, bucket string, timeout time.Duration) *S3 {
	return &S3{client: client, bucket: bucket, timeout: timeout}
}

// Save uploads the file under a unique key and returns its public URL.
func (s *S3) Save(ctx context.Context, fileHeader *multipart.FileHeader) (*UploadedFile, error) {
	if fileHeader == nil {
		return nil, fmt.Errorf("file header is nil")
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	key := objectName(fileHeader.Filename)
	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          src,
		ContentLength: aws.Int64(fileHeader.Size),
		ContentType:   aws.String(contentType),
		ACL:           types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return nil, fmt.Errorf("put s3://%s/%s: %w", s.bucket, key, err)
	}

	return &UploadedFile{
		URL:          fmt.Sprintf("http://%s.s3.amazonaws.com/%s", s.bucket, key),
		DiskType:     "s3",
		OriginalName: fileHeader.Filename,
		ModifiedName: key,
		Size:         fileHeader.Size,
	}, nil
}
