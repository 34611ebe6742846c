package generator

import (
	"image"
	"image/color"
	"image/draw"
	"math/rand"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/shouni/planet-voyage-kit/pkg/domain"
)

const (
	// placeholderStarBase は 1024x1024 時の星の数。面積に比例させて調整する。
	placeholderStarBase = 150
	placeholderStarMin  = 24
	// captionWrapWidth はサブキャプションの折り返し幅（文字数）。
	captionWrapWidth = 38
)

var (
	placeholderBackground = color.RGBA{R: 10, G: 15, B: 30, A: 255}
	placeholderStarColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	captionTitleColor     = color.RGBA{R: 240, G: 240, B: 240, A: 255}
	captionBodyColor      = color.RGBA{R: 200, G: 200, B: 200, A: 255}
)

// renderPlaceholder は要求解像度どおりのフォールバック画像を合成します。
// 暗い背景に星をちりばめ、惑星ラベルと診断メッセージの2つのキャプションを描きます。
// 星の配置は惑星IDから導いたシードで固定しており、同じ要求からは同じ画像が得られます。
func renderPlaceholder(req domain.TourImageRequest, message string) *image.RGBA {
	w, h := req.Width, req.Height
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(placeholderBackground), image.Point{}, draw.Src)

	rng := rand.New(rand.NewSource(seedFromID(req.PlanetID)))
	stars := placeholderStarBase * (w * h) / (DefaultImageWidth * DefaultImageHeight)
	if stars < placeholderStarMin {
		stars = placeholderStarMin
	}
	for i := 0; i < stars; i++ {
		drawStar(img, rng.Intn(w), rng.Intn(h))
	}

	drawCaption(img, 30, 40, req.PlanetLabel, captionTitleColor)

	y := 80
	for _, line := range wrapText(message, captionWrapWidth) {
		if y > h-20 {
			break
		}
		drawCaption(img, 30, y, line, captionBodyColor)
		y += 16
	}

	return img
}

// drawStar は (x, y) を起点に2x2ピクセルの光点を描きます。画像外は切り捨てます。
func drawStar(img *image.RGBA, x, y int) {
	b := img.Bounds()
	for dx := 0; dx < 2; dx++ {
		for dy := 0; dy < 2; dy++ {
			p := image.Pt(x+dx, y+dy)
			if p.In(b) {
				img.SetRGBA(p.X, p.Y, placeholderStarColor)
			}
		}
	}
}

// drawCaption はビットマップフォントで1行のテキストを描きます。
// フォントのグリフ範囲外の文字（ハングル等）は描画されないことがありますが、
// キャプションの存在とラスタサイズのみが契約であり、見た目は実装依存です。
func drawCaption(img *image.RGBA, x, y int, text string, col color.RGBA) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
