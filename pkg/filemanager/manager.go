package filemanager

import (
	"context"
	"fmt"
	"io"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/fx"

	"farmstand/pkg/config"
	"farmstand/pkg/logger"
)

var Module = fx.Provide(New)

type File interface {
	Upload(ctx context.Context, body io.Reader, key string, contentType string) (string, error)
	Remove(ctx context.Context, key string) error
}

type Params struct {
	fx.In

	Logger logger.Logger
	Config config.IConfig
}

type file struct {
	logger logger.Logger

	uploader *manager.Uploader
	s3Client *s3.Client
	bucket   string
	region   string
}

func New(p Params) (File, error) {
	var (
		region = p.Config.GetString("aws_region")
		bucket = p.Config.GetString("aws_s3_bucket")
	)

	crd := credentials.NewStaticCredentialsProvider(
		p.Config.GetString("aws_access_key_id"),
		p.Config.GetString("aws_secret_access_key"),
		"",
	)

	cfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(crd),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	s3Client := s3.NewFromConfig(cfg)

	return &file{
		logger:   p.Logger,
		uploader: manager.NewUploader(s3Client),
		s3Client: s3Client,
		bucket:   bucket,
		region:   region,
	}, nil
}

// Upload stores the object and returns its public URL.
func (f *file) Upload(ctx context.Context, body io.Reader, key string, contentType string) (string, error) {
	_, err := f.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      awsv2.String(f.bucket),
		Key:         awsv2.String(key),
		Body:        body,
		ContentType: awsv2.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload to s3: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", f.bucket, f.region, key), nil
}

func (f *file) Remove(ctx context.Context, key string) error {
	_, err := f.s3Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: awsv2.String(f.bucket),
		Key:    awsv2.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete from s3: %w", err)
	}
	return nil
}
