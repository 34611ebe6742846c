package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// PlanetEntry は惑星1件分の静的な参照データです。
// プロセス起動時にリテラルとして読み込まれ、以後変更されません。
type PlanetEntry struct {
	ID          string   // 安定ID（例: "mars"）
	KoreanName  string   // 韓国語名（例: "화성"）
	EnglishName string   // 英語表示名（例: "Mars"）
	Emoji       string   // メニュー表示用のバッジ
	Hint        string   // 選択時に添える短いヒント
	Facts       []string // 科学的事実。プロンプトに注入する
}

// MenuLabel はシェルのメニューに出す「韓国語名 (英語名)」形式のラベルを返します。
func (p PlanetEntry) MenuLabel() string {
	return fmt.Sprintf("%s (%s)", p.KoreanName, p.EnglishName)
}

// ErrPlanetNotFound は未知のキーで検索した場合に返されます。
var ErrPlanetNotFound = errors.New("planet not found in catalog")

// planets は宣言順がそのままメニュー順になります（地球は対象外）。
var planets = []PlanetEntry{
	{
		ID: "mercury", KoreanName: "수성", EnglishName: "Mercury", Emoji: "🪨",
		Hint: "회색 바위 표면, 얇은 대기",
		Facts: []string{
			"암석형 행성, 회색 바위와 충돌 크레이터가 많음",
			"대기가 거의 없음",
			"극지에 얼음 존재 가능성",
		},
	},
	{
		ID: "venus", KoreanName: "금성", EnglishName: "Venus", Emoji: "🌕",
		Hint: "두꺼운 황산 구름, 황금빛",
		Facts: []string{
			"두꺼운 황산 구름층, 표면 직접 관측 불가",
			"온실효과로 표면 온도가 매우 높음",
			"하늘은 황금빛, 지표는 용암평원",
		},
	},
	{
		ID: "mars", KoreanName: "화성", EnglishName: "Mars", Emoji: "🔴",
		Hint: "붉은 사막, 거대한 화산",
		Facts: []string{
			"붉은 산화철 토양, 얇은 대기",
			"올림푸스 산, 거대한 협곡 존재",
			"극지방에 얼음 모자",
		},
	},
	{
		ID: "jupiter", KoreanName: "목성", EnglishName: "Jupiter", Emoji: "🌀",
		Hint: "적반점, 가스 거대 행성",
		Facts: []string{
			"가스형 거대 행성, 적반점 존재",
			"강한 대기 흐름과 띠무늬 구름",
			"고체 표면 없음",
		},
	},
	{
		ID: "saturn", KoreanName: "토성", EnglishName: "Saturn", Emoji: "💍",
		Hint: "아름다운 고리",
		Facts: []string{
			"넓은 얼음 고리",
			"가스형 행성, 연한 황갈색 띠무늬",
			"여러 위성(타이탄 등) 존재",
		},
	},
	{
		ID: "uranus", KoreanName: "천왕성", EnglishName: "Uranus", Emoji: "🧊",
		Hint: "청록빛, 옆으로 누운 자전축",
		Facts: []string{
			"청록빛, 옆으로 누운 자전축",
			"메탄으로 인해 푸른색 계열",
			"차가운 가스/얼음 행성",
		},
	},
	{
		ID: "neptune", KoreanName: "해왕성", EnglishName: "Neptune", Emoji: "🌊",
		Hint: "짙은 파랑, 강한 바람",
		Facts: []string{
			"짙은 파란색, 강한 폭풍과 바람",
			"어두운 반점 존재",
			"가스/얼음 혼합 구조",
		},
	},
}

// All は宣言順の惑星一覧を返します。呼び出し側の変更から守るためコピーを返します。
func All() []PlanetEntry {
	out := make([]PlanetEntry, len(planets))
	copy(out, planets)
	return out
}

// Lookup は安定ID・韓国語名・英語名・メニューラベルのいずれかで惑星を検索します。
// 見つからない場合は ErrPlanetNotFound をラップしたエラーを返します。
func Lookup(key string) (PlanetEntry, error) {
	k := strings.TrimSpace(key)
	for _, p := range planets {
		if k == p.ID || k == p.KoreanName || k == p.MenuLabel() {
			return p, nil
		}
		if strings.EqualFold(k, p.EnglishName) {
			return p, nil
		}
	}
	return PlanetEntry{}, fmt.Errorf("%w: %q", ErrPlanetNotFound, key)
}
