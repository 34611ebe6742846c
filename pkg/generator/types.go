package generator

import (
	"context"
	"time"

	"github.com/sashabaranov/go-openai"
)

const (
	// DefaultImageWidth / DefaultImageHeight は解像度未指定時のフォールバックです。
	DefaultImageWidth  = 1024
	DefaultImageHeight = 1024

	cacheKeyFetchedImage = "fetched_image:"
)

// ImageAPI は images/generations エンドポイントとの通信窓口です。
// *openai.Client がこれを満たします。
type ImageAPI interface {
	CreateImage(ctx context.Context, request openai.ImageRequest) (openai.ImageResponse, error)
}

// APIClientFactory は呼び出しごとのクレデンシャルから通信クライアントを生成します。
// クレデンシャルはユーザーが都度持ち込むため、クライアントは保持せず毎回組み立てます。
type APIClientFactory func(credential string) ImageAPI

// ImageCacher は、URLフォールバックで取得した画像バイト列のキャッシュです。
type ImageCacher interface {
	Get(key string) (any, bool)
	Set(key string, value any, d time.Duration)
}
