package generator

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/shouni/go-http-kit/pkg/httpkit"

	"github.com/shouni/planet-voyage-kit/pkg/domain"
)

// DalleImageCore は画像生成APIの呼び出しとレスポンス解析を担う基盤コンポーネントです。
// リトライもレスポンスのキャッシュも行わず、1回の要求につき1回（URLフォールバック時のみ2回）の
// 外部通信だけを発行します。
type DalleImageCore struct {
	newClient  APIClientFactory
	httpClient httpkit.ClientInterface
	cache      ImageCacher
	expiration time.Duration
}

// NewDalleImageCore は依存関係を注入して DalleImageCore を初期化します。
func NewDalleImageCore(factory APIClientFactory, httpClient httpkit.ClientInterface, cache ImageCacher, cacheTTL time.Duration) (*DalleImageCore, error) {
	if factory == nil {
		return nil, fmt.Errorf("factory is required")
	}
	if httpClient == nil {
		return nil, fmt.Errorf("httpClient is required")
	}
	// cache は nil を許容（キャッシュなし動作）

	return &DalleImageCore{
		newClient:  factory,
		httpClient: httpClient,
		cache:      cache,
		expiration: cacheTTL,
	}, nil
}

// NewOpenAIClientFactory は go-openai を用いた本番用のクライアントファクトリを返します。
// baseURL が空の場合は SDK のデフォルトエンドポイントを使います。
// timeout はリモート呼び出し全体の待ち時間上限です。
func NewOpenAIClientFactory(baseURL string, timeout time.Duration) APIClientFactory {
	return func(credential string) ImageAPI {
		cc := openai.DefaultConfig(credential)
		if baseURL != "" {
			cc.BaseURL = baseURL
		}
		cc.HTTPClient = &http.Client{Timeout: timeout}
		return openai.NewClientWithConfig(cc)
	}
}

// GenerateImageBytes はプロンプトを送信し、デコード前の画像バイト列を返します。
// b64_json を主経路として要求し、URLしか返らなかった場合のみ追加の取得を行います。
func (c *DalleImageCore) GenerateImageBytes(ctx context.Context, req domain.TourImageRequest) ([]byte, error) {
	slog.InfoContext(ctx, "画像生成リクエストを送信します",
		"model", req.Model,
		"size", fmt.Sprintf("%dx%d", req.Width, req.Height),
		"prompt_len", len(req.Prompt),
	)

	api := c.newClient(req.Credential)
	resp, err := api.CreateImage(ctx, openai.ImageRequest{
		Prompt:         req.Prompt,
		Model:          req.Model,
		N:              1,
		Size:           fmt.Sprintf("%dx%d", req.Width, req.Height),
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
	})
	if err != nil {
		return nil, err
	}

	return c.parseToBytes(ctx, resp)
}
