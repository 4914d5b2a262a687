package chunkstore

import (
	"context"
	"fmt"
	"net/http"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/blob/s3blob"

	"github.com/aws/aws-sdk-go-v2/aws"
)

// Config selects the backing bucket for a Store. Exactly one of Dir or S3
// should be set.
type Config struct {
	// Dir backs the store with a local directory. Meant for development.
	Dir string
	// S3 backs the store with an S3-compatible bucket.
	S3 *S3Config
	// ChunkSize overrides DefaultChunkSize for uploads.
	ChunkSize int64
}

type S3Config struct {
	BucketName string
	Region     string
	AccessKey  string
	SecretKey  string
	Endpoint   string
}

// Open creates a Store from config, opening and owning the underlying bucket.
func Open(ctx context.Context, cfg *Config) (*Store, error) {
	var bucket *blob.Bucket
	var err error

	switch {
	case cfg.S3 != nil:
		bucket, err = openS3Bucket(ctx, cfg.S3)
	case cfg.Dir != "":
		bucket, err = fileblob.OpenBucket(cfg.Dir, &fileblob.Options{CreateDir: true})
	default:
		return nil, fmt.Errorf("chunkstore: no bucket configured")
	}
	if err != nil {
		return nil, fmt.Errorf("chunkstore: open bucket: %w", err)
	}

	store := New(bucket, WithChunkSize(cfg.ChunkSize))
	store.ownBucket = true
	return store, nil
}

func openS3Bucket(ctx context.Context, cfg *S3Config) (*blob.Bucket, error) {
	httpClient := &http.Client{
		Transport: &http.Transport{
			Proxy:                 http.ProxyFromEnvironment,
			MaxIdleConns:          200,
			MaxIdleConnsPerHost:   100,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   10 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
			ForceAttemptHTTP2:     true,
		},
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithHTTPClient(httpClient),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return s3blob.OpenBucketV2(ctx, client, cfg.BucketName, nil)
}
