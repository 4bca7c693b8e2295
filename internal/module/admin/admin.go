package admin

import (
	"campus-connect/internal/analytics"
	"campus-connect/internal/catalog"
	"campus-connect/internal/global/pictureBed"
	"context"
	"encoding/json"
	"time"
)

// ImageProber 检查封面图片地址是否可以访问
type ImageProber interface {
	Probe(ctx context.Context, url string) error
}

type Handler struct {
	catalog   *catalog.Service
	analytics *analytics.Service
	images    *pictureBed.PictureBed
	prober    ImageProber // 为 nil 时不探测
	now       func() time.Time
}

func NewHandler(cs *catalog.Service, as *analytics.Service, images *pictureBed.PictureBed, prober ImageProber) *Handler {
	selfInit()
	return &Handler{catalog: cs, analytics: as, images: images, prober: prober, now: time.Now}
}

// Categories 分类既可以传单个字符串也可以传数组
type Categories []string

func (c *Categories) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*c = Categories{}
		if one != "" {
			*c = Categories{one}
		}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*c = many
	return nil
}
