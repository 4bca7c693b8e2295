package httpclient

import (
	"campus-connect/internal/global/sentry/tracing"
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

var Client *resty.Client

func Init() {
	Client = New(10 * time.Second)
}

func New(timeout time.Duration) *resty.Client {
	client := resty.New().
		SetTimeout(timeout).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(5)).
		SetHeader("User-Agent", "campus-connect/1.0")
	if tracing.IsEnabled() {
		tracing.SetupRestyTracing(client)
	}
	return client
}

// ImageProber 用 HEAD 请求确认图片地址可以访问
type ImageProber struct {
	client *resty.Client
}

func NewImageProber(client *resty.Client) *ImageProber {
	return &ImageProber{client: client}
}

func (p *ImageProber) Probe(ctx context.Context, url string) error {
	resp, err := p.client.R().SetContext(ctx).Head(url)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("image url responded %s", resp.Status())
	}
	return nil
}
