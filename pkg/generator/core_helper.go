package generator

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"

	"github.com/sashabaranov/go-openai"
)

// parseToBytes はAPIレスポンスから画像バイト列を取り出します。
// b64_json フィールドを優先し、無ければ url フィールドへのフォールバック取得を試みます。
// どちらも無い場合は失敗として扱います。
func (c *DalleImageCore) parseToBytes(ctx context.Context, resp openai.ImageResponse) ([]byte, error) {
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("レスポンスに data 配列がありません")
	}
	data0 := resp.Data[0]

	if data0.B64JSON != "" {
		raw, err := base64.StdEncoding.DecodeString(data0.B64JSON)
		if err != nil {
			return nil, fmt.Errorf("b64_json のデコードに失敗しました: %w", err)
		}
		return raw, nil
	}

	if data0.URL != "" {
		slog.InfoContext(ctx, "b64_json が無いため画像URLから取得します", "url", data0.URL)
		return c.fetchImageBytes(ctx, data0.URL)
	}

	return nil, fmt.Errorf("レスポンスに画像データがありません (b64_json/url どちらも無し)")
}

// fetchImageBytes はフォールバック用のURLから画像バイト列を取得します。
// 一時ホスティングされたリンクを同一セッション内で引き直す場合に備えてキャッシュします。
func (c *DalleImageCore) fetchImageBytes(ctx context.Context, rawURL string) ([]byte, error) {
	cacheKey := cacheKeyFetchedImage + rawURL
	if c.cache != nil {
		if val, ok := c.cache.Get(cacheKey); ok {
			if data, ok := val.([]byte); ok {
				return data, nil
			}
		}
	}

	// SSRF対策のバリデーション
	if safe, err := isSafeURL(rawURL); err != nil || !safe {
		return nil, fmt.Errorf("安全ではないURLが指定されました: %w", err)
	}

	data, err := c.httpClient.FetchBytes(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("画像URLの取得に失敗しました: %w", err)
	}

	if c.cache != nil {
		c.cache.Set(cacheKey, data, c.expiration)
	}
	return data, nil
}
