// Package normalize はストアとクライアントが共有する正規化の契約を実装します。
// 日付の正規化、柔軟な数値表現の解釈、チャート系列の構築を提供します。
package normalize

import "time"

// dateLayouts は受け入れる日付表現の候補です。上から順に試行します。
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	time.RFC1123,
	"Mon Jan 02 2006",
	"Jan 2, 2006",
}

// Date は任意の日付表現をカノニカルな YYYY-MM-DD 形式へ正規化します。
//
// 全域関数です: どのレイアウトでも解釈できない場合は入力文字列をそのまま
// 返します。エラーは返しません。表示経路で落とさないための意図的な
// フォールバックであり、暗黙のデータ損失ではありません。
func Date(s string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return s
}

// ParseDate は Date と同じレイアウト群で文字列を time.Time に解釈します。
// ソート用であり、解釈できない場合は ok=false を返します。
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
