package imgutil

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"

	xdraw "golang.org/x/image/draw"
)

// EncodePNG はラスタをPNGバイト列にシリアライズします。
// 同じラスタからは常に同じバイト列が得られます。
func EncodePNG(img image.Image) ([]byte, error) {
	if img == nil {
		return nil, fmt.Errorf("encode target image is nil")
	}
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		return nil, fmt.Errorf("PNGエンコードに失敗しました: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode は画像バイト列（PNG, JPEG, GIF）をデコードしてラスタを返します。
func Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("画像デコードに失敗しました: %w", err)
	}
	return img, nil
}

// ScaleTo は画像を指定サイズのRGBAラスタに変換します。
// サイズが一致していても常にRGBAへのコピーを行い、呼び出し側が安全に書き込める状態にします。
func ScaleTo(src image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// CompressToJPEG は画像データをJPEG形式に変換します。
// プレビュー転送量を抑えたいシェル向けの補助で、ダウンロード成果物はPNGのままです。
func CompressToJPEG(data []byte, quality int) ([]byte, error) {
	img, err := Decode(data)
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
