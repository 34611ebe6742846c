package session

import (
	"fmt"
	"strings"

	"github.com/shouni/planet-voyage-kit/pkg/domain"
)

// ValidationError は必須入力の不足を表します。
// ネットワーク呼び出しを試みる前にユーザーへ提示するためのエラーです。
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("입력 확인: %s (%s)", e.Reason, e.Field)
}

// State はシェルが1セッションぶん保持する可変状態です。
// プロセス全体のグローバルにはせず、ハンドラーへ参照渡しすることを想定しています。
// Credential はこの構造体の外に書き出してはいけません。
type State struct {
	PlanetID   string            // 選択中の惑星の安定ID
	UserText   string            // 入力済みの自由記述
	Credential string            // ユーザー持ち込みのAPIクレデンシャル
	LastImage  *domain.TourImage // 直近の生成結果。新しい要求で上書きされる
}

// Validate は生成要求を出す前の必須入力チェックです。
// 不足があれば最初に見つかった項目の ValidationError を返します。
func (s *State) Validate() error {
	if strings.TrimSpace(s.Credential) == "" {
		return &ValidationError{Field: "credential", Reason: "API Key를 입력하세요"}
	}
	if strings.TrimSpace(s.UserText) == "" {
		return &ValidationError{Field: "user_text", Reason: "프롬프트를 입력하세요"}
	}
	return nil
}

// Remember は生成結果でセッションを更新します。前の画像は破棄されます。
func (s *State) Remember(img *domain.TourImage) {
	s.LastImage = img
}
