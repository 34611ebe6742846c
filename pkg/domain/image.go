package domain

import "image"

// ImageSource は画像がどの経路で得られたかを示します。
type ImageSource string

const (
	// SourceRemote はリモートの画像生成APIから取得した画像です。
	SourceRemote ImageSource = "remote"
	// SourcePlaceholder はフォールバックとしてローカル合成した画像です。
	SourcePlaceholder ImageSource = "placeholder"
)

// TourImageRequest は観光イメージ1枚分の生成要求です。
// Credential は呼び出しごとに受け取り、ログにも永続ストアにも残しません。
type TourImageRequest struct {
	PlanetID    string // カタログ上の安定ID（例: "mars"）
	PlanetLabel string // プレースホルダーのキャプションに使う表示ラベル
	Prompt      string // Composer が組み立て済みの最終プロンプト
	UserText    string // ユーザー入力の原文（ネットワーク未試行時のキャプション用）
	Width       int
	Height      int
	Credential  string
	Model       string
}

// TourImage は生成結果のラスタとそのメタデータです。
// Raster の寸法は常に要求した解像度と一致します。
type TourImage struct {
	Raster     *image.RGBA
	Source     ImageSource
	Diagnostic string // フォールバック時の短い診断メッセージ。成功時は空
}

// Size はラスタの幅と高さを返します。
func (t *TourImage) Size() (int, int) {
	if t == nil || t.Raster == nil {
		return 0, 0
	}
	b := t.Raster.Bounds()
	return b.Dx(), b.Dy()
}
