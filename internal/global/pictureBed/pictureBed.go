// Package pictureBed 把活动封面图片存到 S3 兼容的对象存储
package pictureBed

import (
	"campus-connect/config"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// ErrNotConfigured 未配置 bucket 时上传接口不可用
var ErrNotConfigured = errors.New("object storage is not configured")

// ErrUnsupportedType 只接受常见图片格式
var ErrUnsupportedType = errors.New("unsupported image type")

var allowedExt = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
}

var Default *PictureBed

type PictureBed struct {
	cfg      config.S3
	client   *s3.Client
	uploader *manager.Uploader
}

// Init 按配置创建全局实例；未配置 bucket 时 Default 为未启用状态
func Init(ctx context.Context) error {
	pb, err := New(ctx, config.Get().S3)
	if err != nil {
		return err
	}
	Default = pb
	return nil
}

func New(ctx context.Context, cfg config.S3) (*PictureBed, error) {
	pb := &PictureBed{cfg: cfg}
	if cfg.Bucket == "" {
		return pb, nil
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretAccessKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("加载 S3 配置失败: %w", err)
	}

	pb.client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})
	pb.uploader = manager.NewUploader(pb.client)
	return pb, nil
}

func (pb *PictureBed) Enabled() bool {
	return pb != nil && pb.client != nil
}

// objectKey 生成 <prefix>/<yyyy/mm>/<uuid><ext>
func (pb *PictureBed) objectKey(filename string, now time.Time) (key, contentType string, err error) {
	ext := strings.ToLower(path.Ext(filename))
	contentType, ok := allowedExt[ext]
	if !ok {
		return "", "", ErrUnsupportedType
	}
	key = path.Join(strings.Trim(pb.cfg.Prefix, "/"), now.Format("2006/01"), uuid.NewString()+ext)
	return strings.TrimLeft(key, "/"), contentType, nil
}

// ObjectURL 返回对象的公开访问地址
func (pb *PictureBed) ObjectURL(key string) string {
	base := strings.TrimRight(pb.cfg.BaseURL, "/")
	if base != "" {
		return base + "/" + key
	}
	base = strings.TrimRight(pb.cfg.Endpoint, "/")
	if pb.cfg.UsePathStyle {
		return base + "/" + pb.cfg.Bucket + "/" + key
	}
	return base + "/" + key
}

// Upload 经由后端把图片写入 bucket，返回访问地址
func (pb *PictureBed) Upload(ctx context.Context, fileHeader *multipart.FileHeader) (string, error) {
	if !pb.Enabled() {
		return "", ErrNotConfigured
	}
	key, contentType, err := pb.objectKey(fileHeader.Filename, time.Now())
	if err != nil {
		return "", err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	_, err = pb.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(pb.cfg.Bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("上传到 S3 失败: %w", err)
	}
	return pb.ObjectURL(key), nil
}
