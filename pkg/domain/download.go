package domain

import (
	"fmt"
	"time"
)

// DownloadContentType はダウンロード成果物の固定Content-Typeです。
const DownloadContentType = "image/png"

// DownloadName は惑星の安定IDとタイムスタンプからダウンロード用ファイル名を生成します。
// 例: "mars_1735689600.png"
func DownloadName(planetID string, t time.Time) string {
	return fmt.Sprintf("%s_%d.png", planetID, t.Unix())
}
