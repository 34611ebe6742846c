package export

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"time"

	"github.com/shouni/go-remote-io/pkg/remoteio"

	"github.com/shouni/planet-voyage-kit/pkg/domain"
	"github.com/shouni/planet-voyage-kit/pkg/imgutil"
)

// Exporter はダウンロード成果物（PNG）の書き出しを担います。
// 出力先はローカルパスでもGCSでもよく、選択は注入される OutputWriter に委ねます。
type Exporter struct {
	writer    remoteio.OutputWriter
	outputDir string
}

// NewExporter は依存関係を注入して Exporter を初期化します。outputDir は空でも構いません。
func NewExporter(writer remoteio.OutputWriter, outputDir string) (*Exporter, error) {
	if writer == nil {
		return nil, fmt.Errorf("writer (remoteio.OutputWriter) is required")
	}
	return &Exporter{writer: writer, outputDir: outputDir}, nil
}

// Save は画像をPNGにエンコードし、「<惑星ID>_<unix秒>.png」の名前で書き出します。
// 書き出したパスを返します。
func (e *Exporter) Save(ctx context.Context, img *domain.TourImage, planetID string, now time.Time) (string, error) {
	if img == nil || img.Raster == nil {
		return "", fmt.Errorf("保存対象の画像がありません")
	}

	data, err := imgutil.EncodePNG(img.Raster)
	if err != nil {
		return "", err
	}

	name := domain.DownloadName(planetID, now)
	fullPath := name
	if e.outputDir != "" {
		fullPath = path.Join(e.outputDir, name)
	}

	if err := e.writer.Write(ctx, fullPath, bytes.NewReader(data), domain.DownloadContentType); err != nil {
		return "", fmt.Errorf("成果物の書き出しに失敗しました: %w", err)
	}

	return fullPath, nil
}
