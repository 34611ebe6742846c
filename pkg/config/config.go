package config

import (
	"strconv"
	"time"

	"github.com/shouni/go-utils/envutil"
)

// デフォルト値の定義
const (
	DefaultAPIBaseURL  = "https://api.openai.com/v1"
	DefaultImageModel  = "dall-e-3"
	DefaultImageWidth  = 1024
	DefaultImageHeight = 1024
	// DefaultHTTPTimeout はリモート生成呼び出し全体の待ち時間上限です。
	DefaultHTTPTimeout = 90 * time.Second
	DefaultCacheTTL    = 1 * time.Hour
)

// Config は Planet Voyage Kit の各コンポーネントを動作させるための基本設定です。
// クレデンシャルは設定に含めません。ユーザーが呼び出しごとに持ち込みます。
type Config struct {
	APIBaseURL string // images/generations エンドポイントのベースURL
	ImageModel string

	ImageWidth  int
	ImageHeight int

	// プロンプト文言の差し替え。空ならデフォルト文言を使う
	SceneClause string
	StyleClause string

	HTTPTimeout time.Duration
	CacheTTL    time.Duration
}

// DefaultConfig は推奨されるデフォルト設定を返すヘルパー関数です。
func DefaultConfig() Config {
	return Config{
		APIBaseURL:  DefaultAPIBaseURL,
		ImageModel:  DefaultImageModel,
		ImageWidth:  DefaultImageWidth,
		ImageHeight: DefaultImageHeight,
		HTTPTimeout: DefaultHTTPTimeout,
		CacheTTL:    DefaultCacheTTL,
	}
}

// LoadConfig は環境変数から設定を読み込み、構造体を返すのだ！
// 未設定の項目は DefaultConfig の値にフォールバックする。
func LoadConfig() Config {
	cfg := DefaultConfig()
	cfg.APIBaseURL = envutil.GetEnv("IMAGE_API_BASE_URL", cfg.APIBaseURL)
	cfg.ImageModel = envutil.GetEnv("IMAGE_MODEL", cfg.ImageModel)
	cfg.SceneClause = envutil.GetEnv("PROMPT_SCENE_CLAUSE", "")
	cfg.StyleClause = envutil.GetEnv("PROMPT_STYLE_CLAUSE", "")

	if w, err := strconv.Atoi(envutil.GetEnv("IMAGE_WIDTH", "")); err == nil && w > 0 {
		cfg.ImageWidth = w
	}
	if h, err := strconv.Atoi(envutil.GetEnv("IMAGE_HEIGHT", "")); err == nil && h > 0 {
		cfg.ImageHeight = h
	}
	if d, err := time.ParseDuration(envutil.GetEnv("IMAGE_HTTP_TIMEOUT", "")); err == nil && d > 0 {
		cfg.HTTPTimeout = d
	}

	return cfg
}
