package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"
	"livecity/config"
	"livecity/infras/otel"
	"livecity/shared/constant"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

const (
	otelAttrObjectKey = "object_key"
	otelAttrBucket    = "bucket"
	defaultRegion     = "auto"
)

type S3 interface {
	// Upload stores data under directory/fileName and returns its public URL.
	Upload(ctx context.Context, directory, fileName, contentType string, data []byte) (url string, err error)
}

type s3Impl struct {
	client *s3.Client
	config *config.Config
	otel   otel.Otel
}

func (svc *s3Impl) Upload(ctx context.Context, directory, fileName, contentType string, data []byte) (url string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Upload")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bucket := svc.config.External.S3.BucketName
	objectKey := path.Join(directory, fileName)

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: objectKey,
		otelAttrBucket:    bucket,
	})

	reader := bytes.NewReader(data)

	_, err = svc.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(objectKey),
		Body:          reader,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(reader.Size()),
	})
	if err != nil {
		log.Error().Err(err).Str(otelAttrObjectKey, objectKey).Msg("failed to upload object to S3")

		return constant.Empty, fmt.Errorf("failed to upload object to S3: %w", err)
	}

	return ObjectURL(svc.config.External.S3.PublicDomain, objectKey), nil
}

// ObjectURL joins the public domain and object key without doubling slashes.
func ObjectURL(publicDomain, objectKey string) string {
	return strings.TrimSuffix(publicDomain, "/") + "/" + strings.TrimPrefix(objectKey, "/")
}

func New(config *config.Config, otel otel.Otel) S3 {
	staticProvider := credentials.NewStaticCredentialsProvider(
		config.External.S3.AccessKeyID,
		config.External.S3.SecretAccessKey,
		"",
	)

	cfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithCredentialsProvider(staticProvider),
		awsConfig.WithRegion(defaultRegion),
	)
	if err != nil {
		log.Err(err).Msg("Error loading AWS configuration")
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if config.External.S3.APIEndpoint != "" {
			o.BaseEndpoint = aws.String(config.External.S3.APIEndpoint)
		}

		o.UsePathStyle = true
	})

	return &s3Impl{
		client: client,
		config: config,
		otel:   otel,
	}
}
