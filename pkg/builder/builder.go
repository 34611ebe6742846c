package builder

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/shouni/go-http-kit/pkg/httpkit"

	"github.com/shouni/planet-voyage-kit/pkg/config"
	"github.com/shouni/planet-voyage-kit/pkg/generator"
	"github.com/shouni/planet-voyage-kit/pkg/prompt"
)

// InitializeHTTPClient はURLフォールバック取得に使う共通HTTPクライアントを生成します。
func InitializeHTTPClient(timeout time.Duration) httpkit.ClientInterface {
	return httpkit.New(timeout)
}

// InitializeComposer は設定の文言差し替えを反映したプロンプトコンポーザーを生成します。
func InitializeComposer(cfg config.Config) *prompt.Composer {
	return prompt.NewComposer(cfg.SceneClause, cfg.StyleClause)
}

// InitializeImageCore は通信クライアントとキャッシュを束ねた画像取得コアを生成します。
func InitializeImageCore(cfg config.Config, httpClient httpkit.ClientInterface) (*generator.DalleImageCore, error) {
	// URLフォールバックで取得したバイト列を保持するキャッシュ
	imgCache := cache.New(30*time.Minute, 1*time.Hour)

	factory := generator.NewOpenAIClientFactory(cfg.APIBaseURL, cfg.HTTPTimeout)

	core, err := generator.NewDalleImageCore(factory, httpClient, imgCache, cfg.CacheTTL)
	if err != nil {
		return nil, fmt.Errorf("画像取得コアの初期化に失敗しました: %w", err)
	}
	return core, nil
}

// InitializeTourGenerator は Acquire の窓口となるジェネレーターを生成します。
func InitializeTourGenerator(core generator.ImageGeneratorCore) (*generator.TourImageGenerator, error) {
	gen, err := generator.NewTourImageGenerator(core)
	if err != nil {
		return nil, fmt.Errorf("ジェネレーターの初期化に失敗しました: %w", err)
	}
	return gen, nil
}
