package prompt

import (
	"strings"

	"github.com/shouni/planet-voyage-kit/pkg/catalog"
)

// デフォルトの文言。Composer 側で差し替え可能なポリシーであり、固定仕様ではない。
const (
	// DefaultSceneClause は「何の写真か」を画像モデルに伝える共通の場面指定です。
	DefaultSceneClause = "내용: 우주 관광 여행 상품 홍보용 이미지로, 관광객들이 실제로 여행을 즐기고 있는 장면을 표현."
	// DefaultStyleClause は末尾に置く構図・スタイル制約です（文字やロゴの埋め込み禁止など）。
	DefaultStyleClause = "텍스트나 로고 없이, 리플릿(상품 홍보지)에 바로 사용할 수 있는 고해상도 사진 스타일로."
)

// Composer はカタログ情報とユーザー入力から画像生成用プロンプトを組み立てます。
// 同じ入力からは常にバイト単位で同一の出力を返します。
type Composer struct {
	sceneClause string
	styleClause string
}

// NewComposer は Composer を生成します。空文字を渡した句はデフォルト文言になります。
func NewComposer(sceneClause, styleClause string) *Composer {
	if sceneClause == "" {
		sceneClause = DefaultSceneClause
	}
	if styleClause == "" {
		styleClause = DefaultStyleClause
	}
	return &Composer{
		sceneClause: sceneClause,
		styleClause: styleClause,
	}
}

// Compose は固定順で各要素を連結した最終プロンプトを返します。
//  1. 惑星の韓国語名と英語名を含む前置き
//  2. 場面指定
//  3. includeFacts の場合のみ、科学的事実の結合リスト
//  4. userText の原文そのまま（サニタイズ・切り詰めは行わない。必要ならポリシーは呼び出し側の責務）
//  5. スタイル制約句（常に末尾）
//
// userText が空でも前置きと事実だけで有効なプロンプトになります。
func (c *Composer) Compose(planet catalog.PlanetEntry, userText string, includeFacts bool) string {
	var b strings.Builder

	b.WriteString("'")
	b.WriteString(planet.KoreanName)
	b.WriteString(" (")
	b.WriteString(planet.EnglishName)
	b.WriteString(")' 행성의 과학적 사실을 반영한 사실적 사진.\n")

	b.WriteString(c.sceneClause)
	b.WriteString("\n")

	if includeFacts && len(planet.Facts) > 0 {
		b.WriteString("과학적 특징: ")
		b.WriteString(strings.Join(planet.Facts, ", "))
		b.WriteString(".\n")
	}

	b.WriteString("사용자 아이디어: ")
	b.WriteString(userText)
	b.WriteString(".\n")

	b.WriteString(c.styleClause)

	return b.String()
}
