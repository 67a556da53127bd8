package s3

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/plotbay/plotbay-backend/pkg/errorx"
)

type Client struct {
	s3Client *s3.Client
	bucket   string
}

func NewClient(ctx context.Context, endpoint, accessKey, secretKey, bucket, region string) (*Client, error) {
	const op = "s3.NewClient"
	opts := []func(*config.LoadOptions) error{
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")),
		config.WithRegion(region),
	}
	if endpoint != "" {
		opts = append(opts, config.WithBaseEndpoint(endpoint))
	}
	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errorx.Wrap(err, op)
	}

	return &Client{
		s3Client: s3.NewFromConfig(cfg, func(o *s3.Options) {
			o.UsePathStyle = endpoint != "" // Required for MinIO
		}),
		bucket: bucket,
	}, nil
}

// UploadFile stores the object world-readable, since profile image URLs are
// served to browsers directly from the bucket.
func (c *Client) UploadFile(ctx context.Context, key string, file io.Reader, contentType string) error {
	const op = "s3.Client.UploadFile"
	_, err := c.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(c.bucket),
		Key:          aws.String(key),
		Body:         file,
		ContentType:  aws.String(contentType),
		ACL:          types.ObjectCannedACLPublicRead,
		CacheControl: aws.String("max-age=604800"), // 1 week
	})
	return errorx.Wrap(err, op)
}

func (c *Client) DeleteFile(ctx context.Context, key string) error {
	const op = "s3.Client.DeleteFile"
	_, err := c.s3Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	return errorx.Wrap(err, op)
}

func (c *Client) GetObject(ctx context.Context, key string) ([]byte, error) {
	const op = "s3.Client.GetObject"
	output, err := c.s3Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, errorx.Wrap(err, op)
	}
	defer output.Body.Close()

	data, err := io.ReadAll(output.Body)
	if err != nil {
		return nil, errorx.Wrap(err, op)
	}

	return data, nil
}

func (c *Client) CreateBucket(ctx context.Context) error {
	const op = "s3.Client.CreateBucket"
	_, err := c.s3Client.CreateBucket(ctx, &s3.CreateBucketInput{
		Bucket: aws.String(c.bucket),
	})
	if err != nil {
		return errorx.Wrap(err, op)
	}
	return nil
}

func (c *Client) Bucket() string {
	return c.bucket
}
