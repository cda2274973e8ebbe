// Package model は、アプリケーションのデータモデル定義を提供します。
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Device はコマンドログの送信元（同期クライアント）を表すモデルです。
type Device struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`       // デバイス名（ホスト名など、一意）
	CreatedAt time.Time `json:"created_at"` // 登録日時
}

// NewDevice はDeviceの新しいインスタンスを作成します。
func NewDevice(name string) (*Device, error) {
	dev := &Device{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: time.Now(),
	}
	if err := dev.Validate(); err != nil {
		return nil, err
	}
	return dev, nil
}

// LoadDevice はDBから読み込んだ値で既存のDeviceインスタンスを作成します。
func LoadDevice(id uuid.UUID, name string, createdAt time.Time) (*Device, error) {
	dev := &Device{
		ID:        id,
		Name:      name,
		CreatedAt: createdAt,
	}
	if err := dev.Validate(); err != nil {
		return nil, err
	}
	return dev, nil
}

// Validate はデバイスのデータバリデーションを行います。
func (d *Device) Validate() error {
	if d.Name == "" {
		return NewValidationError("device name is required")
	}
	// スペースはクエリパラメータでの指定を考慮して禁止
	if strings.Contains(d.Name, " ") {
		return NewValidationError("device name cannot contain spaces")
	}
	if d.CreatedAt.IsZero() {
		return NewValidationError("created_at is required")
	}
	return nil
}
