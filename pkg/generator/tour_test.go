package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/sashabaranov/go-openai"

	"github.com/shouni/planet-voyage-kit/pkg/domain"
)

func TestTourImageGenerator_Acquire(t *testing.T) {
	ctx := context.Background()

	t.Run("成功: リモート画像を要求解像度で返すのだ", func(t *testing.T) {
		pngData := createDummyPNG(t, 10, 10)
		core := &mockCore{
			generateFunc: func(ctx context.Context, req domain.TourImageRequest) ([]byte, error) {
				return pngData, nil
			},
		}
		gen, _ := NewTourImageGenerator(core)

		req := testRequest()
		req.Width, req.Height = 64, 48
		img := gen.Acquire(ctx, req)

		if img.Source != domain.SourceRemote {
			t.Errorf("expected SourceRemote, got %s", img.Source)
		}
		w, h := img.Size()
		if w != 64 || h != 48 {
			t.Errorf("raster size should match requested resolution: got %dx%d", w, h)
		}
		if img.Diagnostic != "" {
			t.Errorf("diagnostic should be empty on success: %q", img.Diagnostic)
		}
	})

	t.Run("成功: サービスが別サイズを返しても要求解像度に合わせるのだ", func(t *testing.T) {
		core := &mockCore{
			generateFunc: func(ctx context.Context, req domain.TourImageRequest) ([]byte, error) {
				return createDummyPNG(t, 256, 256), nil
			},
		}
		gen, _ := NewTourImageGenerator(core)

		req := testRequest()
		req.Width, req.Height = 100, 80
		img := gen.Acquire(ctx, req)

		w, h := img.Size()
		if w != 100 || h != 80 {
			t.Errorf("expected 100x80, got %dx%d", w, h)
		}
		if img.Source != domain.SourceRemote {
			t.Errorf("rescaled remote image should stay SourceRemote")
		}
	})

	t.Run("失敗: コアのエラーはプレースホルダーと空でない診断文になるのだ", func(t *testing.T) {
		core := &mockCore{
			generateFunc: func(ctx context.Context, req domain.TourImageRequest) ([]byte, error) {
				return nil, &openai.APIError{HTTPStatusCode: 429, Message: "Rate limit reached"}
			},
		}
		gen, _ := NewTourImageGenerator(core)

		img := gen.Acquire(ctx, testRequest())

		if img.Source != domain.SourcePlaceholder {
			t.Fatalf("expected SourcePlaceholder, got %s", img.Source)
		}
		if img.Diagnostic == "" {
			t.Error("diagnostic must not be empty on failure")
		}
		if !strings.Contains(img.Diagnostic, "429") || !strings.Contains(img.Diagnostic, "Rate limit reached") {
			t.Errorf("diagnostic should carry status and message: %q", img.Diagnostic)
		}
		w, h := img.Size()
		if w != 1024 || h != 1024 {
			t.Errorf("placeholder must match requested resolution: got %dx%d", w, h)
		}
	})

	t.Run("失敗: デコードできないバイト列もプレースホルダーになるのだ", func(t *testing.T) {
		core := &mockCore{
			generateFunc: func(ctx context.Context, req domain.TourImageRequest) ([]byte, error) {
				return []byte("this is not an image"), nil
			},
		}
		gen, _ := NewTourImageGenerator(core)

		img := gen.Acquire(ctx, testRequest())

		if img.Source != domain.SourcePlaceholder {
			t.Errorf("expected SourcePlaceholder, got %s", img.Source)
		}
		if img.Diagnostic == "" {
			t.Error("diagnostic must not be empty")
		}
	})

	t.Run("クレデンシャルが空ならネットワーク試行なしでプレースホルダーを返すのだ", func(t *testing.T) {
		core := &mockCore{}
		gen, _ := NewTourImageGenerator(core)

		req := testRequest()
		req.Credential = "   "
		req.UserText = "관광객, 리조트, 로버 투어"
		img := gen.Acquire(ctx, req)

		if core.called {
			t.Error("core must not be called without a credential")
		}
		if img.Source != domain.SourcePlaceholder {
			t.Errorf("expected SourcePlaceholder, got %s", img.Source)
		}
		if img.Diagnostic != req.UserText {
			t.Errorf("caption should fall back to the user text: %q", img.Diagnostic)
		}
	})

	t.Run("解像度未指定はデフォルトに補正されるのだ", func(t *testing.T) {
		core := &mockCore{
			generateFunc: func(ctx context.Context, req domain.TourImageRequest) ([]byte, error) {
				if req.Width != DefaultImageWidth || req.Height != DefaultImageHeight {
					t.Errorf("core should receive defaulted size, got %dx%d", req.Width, req.Height)
				}
				return createDummyPNG(t, 4, 4), nil
			},
		}
		gen, _ := NewTourImageGenerator(core)

		req := testRequest()
		req.Width, req.Height = 0, 0
		img := gen.Acquire(ctx, req)

		w, h := img.Size()
		if w != DefaultImageWidth || h != DefaultImageHeight {
			t.Errorf("expected defaults, got %dx%d", w, h)
		}
	})
}

// URLフォールバック経由でも最終的に REMOTE として返ることを実コアとの組み合わせで確認する
func TestTourImageGenerator_URLFallbackEndsRemote(t *testing.T) {
	ctx := context.Background()
	pngData := createDummyPNG(t, 16, 16)

	api := &mockImageAPI{
		createFunc: func(ctx context.Context, req openai.ImageRequest) (openai.ImageResponse, error) {
			return openai.ImageResponse{
				Data: []openai.ImageResponseDataInner{{URL: "http://203.0.113.10/tour.png"}},
			}, nil
		},
	}
	httpMock := &mockHTTPClient{
		fetchFunc: func(ctx context.Context, url string) ([]byte, error) {
			return pngData, nil
		},
	}
	core, err := NewDalleImageCore(func(string) ImageAPI { return api }, httpMock, nil, 0)
	if err != nil {
		t.Fatal(err)
	}
	gen, _ := NewTourImageGenerator(core)

	req := testRequest()
	req.Width, req.Height = 32, 32
	img := gen.Acquire(ctx, req)

	if img.Source != domain.SourceRemote {
		t.Errorf("URL-fallback path should still produce a remote image, got %s", img.Source)
	}
	if w, h := img.Size(); w != 32 || h != 32 {
		t.Errorf("expected 32x32, got %dx%d", w, h)
	}
	if len(httpMock.fetched) != 1 {
		t.Errorf("expected exactly one fallback fetch, got %d", len(httpMock.fetched))
	}
}

func TestNewTourImageGenerator(t *testing.T) {
	t.Run("nilチェック: 依存関係が足りない場合はエラーを返すのだ", func(t *testing.T) {
		_, err := NewTourImageGenerator(nil)
		if err == nil {
			t.Error("expected error for nil core")
		}
	})
}

func TestDiagnosticFromError(t *testing.T) {
	t.Run("APIError はステータスとメッセージを含む短文になる", func(t *testing.T) {
		err := &openai.APIError{HTTPStatusCode: 400, Message: "invalid size"}
		got := diagnosticFromError(err)
		want := "HTTP 400: invalid size"
		if got != want {
			t.Errorf("want %q, got %q", want, got)
		}
	})

	t.Run("RequestError もステータス付きになる", func(t *testing.T) {
		err := &openai.RequestError{HTTPStatusCode: 502, Err: errors.New("bad gateway")}
		got := diagnosticFromError(err)
		if !strings.Contains(got, "502") || !strings.Contains(got, "bad gateway") {
			t.Errorf("unexpected diagnostic: %q", got)
		}
	})

	t.Run("ラップ済みでも errors.As で拾える", func(t *testing.T) {
		inner := &openai.APIError{HTTPStatusCode: 500, Message: "boom"}
		err := fmt.Errorf("outer: %w", inner)
		got := diagnosticFromError(err)
		if got != "HTTP 500: boom" {
			t.Errorf("unexpected diagnostic: %q", got)
		}
	})

	t.Run("その他のエラーは文字列をそのまま使う", func(t *testing.T) {
		got := diagnosticFromError(errors.New("context deadline exceeded"))
		if got != "context deadline exceeded" {
			t.Errorf("unexpected diagnostic: %q", got)
		}
	})
}
