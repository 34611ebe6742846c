package generator

import (
	"context"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/shouni/planet-voyage-kit/pkg/domain"
)

// --- Mocks ---

// mockImageAPI は ImageAPI のテスト用モックなのだ。
type mockImageAPI struct {
	createFunc func(ctx context.Context, req openai.ImageRequest) (openai.ImageResponse, error)
	lastReq    openai.ImageRequest
	callCount  int
}

func (m *mockImageAPI) CreateImage(ctx context.Context, req openai.ImageRequest) (openai.ImageResponse, error) {
	m.callCount++
	m.lastReq = req
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return openai.ImageResponse{}, nil
}

// mockHTTPClient は httpkit.ClientInterface を実装します。
type mockHTTPClient struct {
	fetchFunc func(ctx context.Context, url string) ([]byte, error)
	fetched   []string
}

func (m *mockHTTPClient) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	m.fetched = append(m.fetched, url)
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, url)
	}
	return nil, nil
}

// インターフェースを満たすための空実装群なのだ
func (m *mockHTTPClient) DoRequest(req *http.Request) ([]byte, error) {
	return nil, nil
}

func (m *mockHTTPClient) FetchAndDecodeJSON(ctx context.Context, url string, v any) error {
	return nil
}

func (m *mockHTTPClient) PostJSONAndFetchBytes(ctx context.Context, url string, data any) ([]byte, error) {
	return nil, nil
}

func (m *mockHTTPClient) PostRawBodyAndFetchBytes(ctx context.Context, url string, body []byte, contentType string) ([]byte, error) {
	return nil, nil
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return nil, nil
}

func (m *mockHTTPClient) IsSafeURL(urlStr string) (bool, error) {
	return true, nil
}

func (m *mockHTTPClient) IsSecureServiceURL(serviceURL string) bool {
	return true
}

// mockCache は ImageCacher インターフェースを実装するのだ。
type mockCache struct {
	data map[string]any
}

func (m *mockCache) Get(key string) (any, bool) {
	val, ok := m.data[key]
	return val, ok
}

func (m *mockCache) Set(key string, value any, d time.Duration) {
	if m.data == nil {
		m.data = make(map[string]any)
	}
	m.data[key] = value
}

// mockCore は ImageGeneratorCore のテスト用モックなのだ。
type mockCore struct {
	generateFunc func(ctx context.Context, req domain.TourImageRequest) ([]byte, error)
	called       bool
}

func (m *mockCore) GenerateImageBytes(ctx context.Context, req domain.TourImageRequest) ([]byte, error) {
	m.called = true
	if m.generateFunc != nil {
		return m.generateFunc(ctx, req)
	}
	return nil, nil
}
