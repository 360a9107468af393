package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// IObjectStorage 定義了物件儲存的操作介面
type IObjectStorage interface {
	// PutPublicObject 寫入物件並回傳可以公開存取的 URL
	PutPublicObject(ctx context.Context, key, contentType string, data []byte) (string, error)
}

// S3Operator 透過 S3 相容的 API 存取物件，
// 公開 URL 由 publicBase 加上物件的 key 組成(例如 CDN 或 R2 的公開網域)
type S3Operator struct {
	client     *s3.Client
	bucket     string
	publicBase *url.URL
}

func NewS3Operator(client *s3.Client, bucket, publicBaseURL string) (*S3Operator, error) {
	const op = "NewS3Operator"
	if bucket == "" {
		return nil, fmt.Errorf("[%s] %w", op, errors.New("bucket is required"))
	}
	publicBase, err := url.Parse(publicBaseURL)
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to parse public base URL, err=%w", op, err)
	}
	return &S3Operator{client: client, bucket: bucket, publicBase: publicBase}, nil
}

// PutPublicObject 的 key 每次上傳都不同，所以允許瀏覽器永久快取
func (s *S3Operator) PutPublicObject(ctx context.Context, key, contentType string, data []byte) (string, error) {
	const op = "PutPublicObject"
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
		CacheControl:  aws.String("public, max-age=31536000, immutable"),
	})
	if err != nil {
		return "", fmt.Errorf("[%s] Fail to put object %s, err=%w", op, key, err)
	}
	return s.PublicURL(key), nil
}

// PublicURL 組合物件的公開 URL，保留 public base URL 本身的路徑
func (s *S3Operator) PublicURL(key string) string {
	uri := *s.publicBase
	uri.Path = strings.TrimSuffix(uri.Path, "/") + "/" + strings.TrimPrefix(key, "/")
	return uri.String()
}
