package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/shouni/planet-voyage-kit/pkg/domain"
	"github.com/shouni/planet-voyage-kit/pkg/imgutil"
)

// ImageGeneratorCore は画像生成の通信・解析ロジックを抽象化するインターフェースです。
type ImageGeneratorCore interface {
	GenerateImageBytes(ctx context.Context, req domain.TourImageRequest) ([]byte, error)
}

// TourImageGenerator は観光イメージの取得窓口です。
// リモート生成を試み、失敗時はプレースホルダー画像へ必ず degrade するため、
// Acquire がエラーを返すことはありません。
type TourImageGenerator struct {
	core ImageGeneratorCore
}

// NewTourImageGenerator は依存関係を注入して TourImageGenerator を初期化します。
func NewTourImageGenerator(core ImageGeneratorCore) (*TourImageGenerator, error) {
	if core == nil {
		return nil, fmt.Errorf("core (ImageGeneratorCore) is required")
	}
	return &TourImageGenerator{core: core}, nil
}

// Acquire は1件の生成要求を処理し、常に要求解像度どおりの画像を返します。
//   - クレデンシャルが空の場合はネットワーク試行なしでプレースホルダーを返す
//     （サブキャプションにはユーザー入力をそのまま使う）
//   - リモート呼び出しの失敗・不正レスポンスは診断メッセージ付きプレースホルダーになる
//   - 成功時はデコードしたラスタを要求解像度に合わせて返す
func (g *TourImageGenerator) Acquire(ctx context.Context, req domain.TourImageRequest) *domain.TourImage {
	if req.Width <= 0 {
		req.Width = DefaultImageWidth
	}
	if req.Height <= 0 {
		req.Height = DefaultImageHeight
	}

	if strings.TrimSpace(req.Credential) == "" {
		slog.InfoContext(ctx, "クレデンシャル未指定のためリモート生成をスキップします", "planet", req.PlanetID)
		return g.fallback(req, req.UserText)
	}

	data, err := g.core.GenerateImageBytes(ctx, req)
	if err != nil {
		diag := diagnosticFromError(err)
		slog.WarnContext(ctx, "リモート生成に失敗したためプレースホルダーに切り替えます",
			"planet", req.PlanetID, "diagnostic", diag)
		return g.fallback(req, diag)
	}

	img, err := imgutil.Decode(data)
	if err != nil {
		diag := diagnosticFromError(err)
		slog.WarnContext(ctx, "画像デコードに失敗したためプレースホルダーに切り替えます",
			"planet", req.PlanetID, "diagnostic", diag)
		return g.fallback(req, diag)
	}

	// サービス側が別サイズを返しても解像度の不変条件を守る
	raster := imgutil.ScaleTo(img, req.Width, req.Height)

	return &domain.TourImage{
		Raster: raster,
		Source: domain.SourceRemote,
	}
}

func (g *TourImageGenerator) fallback(req domain.TourImageRequest, message string) *domain.TourImage {
	return &domain.TourImage{
		Raster:     renderPlaceholder(req, message),
		Source:     domain.SourcePlaceholder,
		Diagnostic: message,
	}
}

// diagnosticFromError はエラーを「HTTP <status>: <message>」形式の短い診断文に変換します。
// 構造化されたAPIエラーでない場合はエラー文字列をそのまま使います。
func diagnosticFromError(err error) string {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("HTTP %d: %s", apiErr.HTTPStatusCode, apiErr.Message)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Sprintf("HTTP %d: %v", reqErr.HTTPStatusCode, reqErr.Err)
	}

	return err.Error()
}
