// Package model は、アプリケーションのデータモデル定義を提供します。
package model

// DailyCount は1日分のコマンド実行数の集計結果です。
// Date はタイムゾーン調整済みの YYYY-MM-DD 形式の文字列です。
type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// HourlyCount は時間帯（0〜23時）ごとのコマンド実行数の集計結果です。
type HourlyCount struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}
