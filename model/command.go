// Package model は、アプリケーションのデータモデル定義を提供します。
package model

import (
	"time"

	"github.com/google/uuid"
)

// Command は記録された1件のコマンド実行イベントを表すモデルです。
type Command struct {
	ID        uuid.UUID `json:"id"`
	DeviceID  uuid.UUID `json:"device_id"` // 送信元デバイスID
	Text      string    `json:"command"`   // 実行されたコマンド文字列
	Count     int       `json:"count"`     // 実行回数（同期クライアントがまとめて送る場合に1以上）
	Timestamp time.Time `json:"timestamp"` // 実行日時
}

// NewCommand はCommandの新しいインスタンスを作成します。
func NewCommand(deviceID uuid.UUID, text string, count int, timestamp time.Time) (*Command, error) {
	cmd := &Command{
		ID:        uuid.New(),
		DeviceID:  deviceID,
		Text:      text,
		Count:     count,
		Timestamp: timestamp,
	}
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return cmd, nil
}

// LoadCommand はDBから読み込んだ値で既存のCommandインスタンスを作成します。
func LoadCommand(id, deviceID uuid.UUID, text string, count int, timestamp time.Time) (*Command, error) {
	cmd := &Command{
		ID:        id,
		DeviceID:  deviceID,
		Text:      text,
		Count:     count,
		Timestamp: timestamp,
	}
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return cmd, nil
}

// Validate はコマンドイベントのデータバリデーションを行います。
func (c *Command) Validate() error {
	if c.ID == uuid.Nil {
		return NewValidationError("id is required")
	}
	if c.DeviceID == uuid.Nil {
		return NewValidationError("device_id is required")
	}
	if c.Text == "" {
		return NewValidationError("command is required")
	}
	if c.Count < 1 {
		return NewValidationError("count must be a positive integer")
	}
	if c.Timestamp.IsZero() {
		return NewValidationError("timestamp is required")
	}
	return nil
}
