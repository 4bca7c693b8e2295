package pictureBed

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const defaultPresignTTL = 15 * time.Minute

type PresignedUploadRequest struct {
	Filename  string `json:"filename" binding:"required"`
	ExpiresIn int64  `json:"expiresIn"` // 秒，默认 15 分钟
}

type PresignedUploadResponse struct {
	UploadURL string            `json:"uploadUrl"`
	FileKey   string            `json:"fileKey"`
	FileURL   string            `json:"fileUrl"` // 上传成功后写入活动的 imageUrl
	ExpiresAt time.Time         `json:"expiresAt"`
	Method    string            `json:"method"`
	Headers   map[string]string `json:"headers"`
}

// GeneratePresignedUploadURL 让浏览器直接 PUT 到 bucket，不经过后端中转
func (pb *PictureBed) GeneratePresignedUploadURL(ctx context.Context, req PresignedUploadRequest) (*PresignedUploadResponse, error) {
	if !pb.Enabled() {
		return nil, ErrNotConfigured
	}

	ttl := time.Duration(req.ExpiresIn) * time.Second
	if ttl <= 0 || ttl > time.Hour {
		ttl = defaultPresignTTL
	}

	now := time.Now()
	key, contentType, err := pb.objectKey(req.Filename, now)
	if err != nil {
		return nil, err
	}

	presigned, err := s3.NewPresignClient(pb.client).PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(pb.cfg.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return nil, fmt.Errorf("生成预签名 URL 失败: %w", err)
	}

	headers := map[string]string{"Content-Type": contentType}
	for k, v := range presigned.SignedHeader {
		if len(v) > 0 {
			headers[k] = v[0]
		}
	}
	return &PresignedUploadResponse{
		UploadURL: presigned.URL,
		FileKey:   key,
		FileURL:   pb.ObjectURL(key),
		ExpiresAt: now.Add(ttl),
		Method:    presigned.Method,
		Headers:   headers,
	}, nil
}
