package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stsysd/kusa/model"
)

// testMigration はテスト用のシンプルなマイグレーション関数です。
func testMigration(conn *sql.DB) error {
	// 外部キー制約を有効化
	_, err := conn.Exec(`PRAGMA foreign_keys = ON;`)
	if err != nil {
		return err
	}

	// テーブルの作成
	_, err = conn.Exec(`
		-- Devices table
		CREATE TABLE IF NOT EXISTS devices (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			created_at TEXT NOT NULL
		);

		-- Commands table
		CREATE TABLE IF NOT EXISTS commands (
			id TEXT PRIMARY KEY,
			device_id TEXT NOT NULL REFERENCES devices(id),
			text TEXT NOT NULL,
			count INTEGER NOT NULL DEFAULT 1,
			timestamp TEXT NOT NULL
		);

		-- Indexes
		CREATE INDEX IF NOT EXISTS idx_commands_timestamp ON commands(timestamp);
		CREATE INDEX IF NOT EXISTS idx_commands_device_id_timestamp
		ON commands(device_id, timestamp);
	`)
	return err
}

func setupTestStore(t *testing.T) (*SQLiteStore, func()) {
	// テスト用の一時ディレクトリを作成
	tempDir, err := os.MkdirTemp("", "kusa-test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	// テスト用のSQLiteストアを初期化
	store, err := NewSQLiteStore(tempDir, testMigration, time.UTC)
	if err != nil {
		os.RemoveAll(tempDir)
		t.Fatalf("Failed to create test store: %v", err)
	}

	// クリーンアップ関数を返す
	cleanup := func() {
		store.Close()
		os.RemoveAll(tempDir)
	}

	return store, cleanup
}

func mustCreateDevice(t *testing.T, store *SQLiteStore, name string) *model.Device {
	t.Helper()
	dev, err := model.NewDevice(name)
	if err != nil {
		t.Fatalf("Failed to create device model: %v", err)
	}
	if err := store.CreateDevice(context.Background(), dev); err != nil {
		t.Fatalf("Failed to create device: %v", err)
	}
	return dev
}

func TestCreateAndGetCommand(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	device := mustCreateDevice(t, store, "laptop")

	// テストデータ
	timestamp := time.Date(2025, 5, 21, 14, 30, 0, 0, time.UTC)
	cmd, err := model.NewCommand(device.ID, "git status", 1, timestamp)
	if err != nil {
		t.Fatalf("Failed to create command model: %v", err)
	}

	// コマンドイベントを作成
	err = store.CreateCommand(context.Background(), cmd)
	if err != nil {
		t.Fatalf("Failed to create command: %v", err)
	}

	// 作成したコマンドイベントを取得
	retrieved, err := store.GetCommand(context.Background(), cmd.ID)
	if err != nil {
		t.Fatalf("Failed to get command: %v", err)
	}

	// 取得した内容が元の内容と一致することを確認
	if retrieved.ID != cmd.ID {
		t.Errorf("Expected ID %s, got %s", cmd.ID, retrieved.ID)
	}
	if retrieved.DeviceID != cmd.DeviceID {
		t.Errorf("Expected DeviceID %s, got %s", cmd.DeviceID, retrieved.DeviceID)
	}
	if retrieved.Text != cmd.Text {
		t.Errorf("Expected Text %q, got %q", cmd.Text, retrieved.Text)
	}
	if retrieved.Count != cmd.Count {
		t.Errorf("Expected Count %d, got %d", cmd.Count, retrieved.Count)
	}
	if !retrieved.Timestamp.Equal(cmd.Timestamp) {
		t.Errorf("Expected Timestamp %v, got %v", cmd.Timestamp, retrieved.Timestamp)
	}
}

func TestGetNonExistentCommand(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	// 存在しない ID でコマンドイベントを取得
	_, err := store.GetCommand(context.Background(), uuid.New())
	if !errors.Is(err, model.ErrCommandNotFound) {
		t.Errorf("Expected ErrCommandNotFound, got %v", err)
	}
}

func TestCreateInvalidCommand(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	// 無効なコマンドイベント（コマンド文字列なし）
	invalid := &model.Command{
		ID:        uuid.New(),
		DeviceID:  uuid.New(),
		Count:     1,
		Timestamp: time.Now(),
	}

	// 作成が失敗することを確認
	err := store.CreateCommand(context.Background(), invalid)
	if err == nil {
		t.Error("Expected validation error when creating invalid command, got nil")
	}
}

func TestCreateCommandWithUnknownDevice(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	// 登録されていないデバイスIDでコマンドイベントを作成
	cmd, err := model.NewCommand(uuid.New(), "ls -la", 1, time.Now())
	if err != nil {
		t.Fatalf("Failed to create command model: %v", err)
	}

	err = store.CreateCommand(context.Background(), cmd)
	if err == nil {
		t.Error("Expected error when creating command with unknown device, got nil")
	}
}

func TestDeleteCommand(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	device := mustCreateDevice(t, store, "laptop")

	timestamp := time.Date(2025, 5, 21, 14, 30, 0, 0, time.UTC)
	cmd, err := model.NewCommand(device.ID, "make test", 1, timestamp)
	if err != nil {
		t.Fatalf("Failed to create command model: %v", err)
	}
	if err := store.CreateCommand(context.Background(), cmd); err != nil {
		t.Fatalf("Failed to create command: %v", err)
	}

	// コマンドイベントを削除
	if err := store.DeleteCommand(context.Background(), cmd.ID); err != nil {
		t.Fatalf("Failed to delete command: %v", err)
	}

	// 削除したコマンドイベントが存在しないことを確認
	_, err = store.GetCommand(context.Background(), cmd.ID)
	if !errors.Is(err, model.ErrCommandNotFound) {
		t.Errorf("Expected ErrCommandNotFound after deletion, got %v", err)
	}

	// 存在しないコマンドイベントの削除を試みる
	err = store.DeleteCommand(context.Background(), uuid.New())
	if !errors.Is(err, model.ErrCommandNotFound) {
		t.Errorf("Expected ErrCommandNotFound for non-existent command, got %v", err)
	}
}

func TestListCommands(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	laptop := mustCreateDevice(t, store, "laptop")
	desktop := mustCreateDevice(t, store, "desktop")

	baseTime := time.Date(2025, 5, 21, 10, 0, 0, 0, time.UTC)

	// laptop用のコマンドイベントを1日ずつずらして5件作成
	for i := range 5 {
		cmd, err := model.NewCommand(laptop.ID, "git pull", 1, baseTime.AddDate(0, 0, i))
		if err != nil {
			t.Fatalf("Failed to create command model: %v", err)
		}
		if err := store.CreateCommand(context.Background(), cmd); err != nil {
			t.Fatalf("Failed to store command: %v", err)
		}
	}

	// 別のデバイスのコマンドイベントも作成
	other, err := model.NewCommand(desktop.ID, "cargo build", 1, baseTime)
	if err != nil {
		t.Fatalf("Failed to create command model: %v", err)
	}
	if err := store.CreateCommand(context.Background(), other); err != nil {
		t.Fatalf("Failed to store command: %v", err)
	}

	// テストケース
	tests := []struct {
		name     string
		device   string
		from     time.Time
		to       time.Time
		limit    int
		expected int
	}{
		{
			name:     "All commands",
			device:   "",
			from:     baseTime.AddDate(0, 0, -1),
			to:       baseTime.AddDate(0, 0, 7),
			limit:    100,
			expected: 6,
		},
		{
			name:     "Laptop only",
			device:   "laptop",
			from:     baseTime.AddDate(0, 0, -1),
			to:       baseTime.AddDate(0, 0, 7),
			limit:    100,
			expected: 5,
		},
		{
			name:     "Partial range",
			device:   "laptop",
			from:     baseTime,
			to:       baseTime.AddDate(0, 0, 2),
			limit:    100,
			expected: 3,
		},
		{
			name:     "Limited",
			device:   "laptop",
			from:     baseTime.AddDate(0, 0, -1),
			to:       baseTime.AddDate(0, 0, 7),
			limit:    2,
			expected: 2,
		},
		{
			name:     "No commands",
			device:   "laptop",
			from:     baseTime.AddDate(0, -1, 0),
			to:       baseTime.AddDate(0, 0, -1),
			limit:    100,
			expected: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := store.ListCommands(context.Background(), &ListCommandsParams{
				Device: tc.device,
				From:   tc.from,
				To:     tc.to,
				Limit:  tc.limit,
				Offset: 0,
			})
			if err != nil {
				t.Fatalf("Failed to list commands: %v", err)
			}

			if len(result) != tc.expected {
				t.Errorf("Expected %d commands, got %d", tc.expected, len(result))
			}

			// タイムスタンプ昇順で返ることを確認
			for i := 1; i < len(result); i++ {
				if result[i].Timestamp.Before(result[i-1].Timestamp) {
					t.Error("Commands should be sorted by timestamp in ascending order")
				}
			}
		})
	}
}

func TestListCommandsOffset(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	device := mustCreateDevice(t, store, "laptop")
	baseTime := time.Date(2025, 5, 21, 10, 0, 0, 0, time.UTC)

	for i := range 5 {
		cmd, err := model.NewCommand(device.ID, "ls", 1, baseTime.Add(time.Duration(i)*time.Hour))
		if err != nil {
			t.Fatalf("Failed to create command model: %v", err)
		}
		if err := store.CreateCommand(context.Background(), cmd); err != nil {
			t.Fatalf("Failed to store command: %v", err)
		}
	}

	// オフセットを指定して2ページ目を取得
	result, err := store.ListCommands(context.Background(), &ListCommandsParams{
		From:   baseTime.Add(-time.Hour),
		To:     baseTime.Add(10 * time.Hour),
		Limit:  2,
		Offset: 2,
	})
	if err != nil {
		t.Fatalf("Failed to list commands: %v", err)
	}

	if len(result) != 2 {
		t.Fatalf("Expected 2 commands, got %d", len(result))
	}
	if !result[0].Timestamp.Equal(baseTime.Add(2 * time.Hour)) {
		t.Errorf("Expected first command at offset 2, got timestamp %v", result[0].Timestamp)
	}
}

func TestDeleteCommandsUntil(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	laptop := mustCreateDevice(t, store, "laptop")
	desktop := mustCreateDevice(t, store, "desktop")

	baseTime := time.Date(2025, 5, 21, 10, 0, 0, 0, time.UTC)

	// 各デバイスに3件ずつ、1日おきのコマンドイベントを作成
	for _, dev := range []*model.Device{laptop, desktop} {
		for i := range 3 {
			cmd, err := model.NewCommand(dev.ID, "echo hi", 1, baseTime.AddDate(0, 0, i))
			if err != nil {
				t.Fatalf("Failed to create command model: %v", err)
			}
			if err := store.CreateCommand(context.Background(), cmd); err != nil {
				t.Fatalf("Failed to store command: %v", err)
			}
		}
	}

	// laptopのみ、2日目より前を削除
	until := baseTime.AddDate(0, 0, 1)
	deleted, err := store.DeleteCommandsUntil(context.Background(), &laptop.ID, until)
	if err != nil {
		t.Fatalf("Failed to delete commands: %v", err)
	}
	if deleted != 1 {
		t.Errorf("Expected 1 deleted command for laptop, got %d", deleted)
	}

	// 全デバイス対象で、3日目より前を削除
	until = baseTime.AddDate(0, 0, 2)
	deleted, err = store.DeleteCommandsUntil(context.Background(), nil, until)
	if err != nil {
		t.Fatalf("Failed to delete commands: %v", err)
	}
	// laptop: 1件（2日目）、desktop: 2件（1日目・2日目）
	if deleted != 3 {
		t.Errorf("Expected 3 deleted commands, got %d", deleted)
	}

	// 残りを確認
	remaining, err := store.ListCommands(context.Background(), &ListCommandsParams{
		From:  baseTime.AddDate(0, 0, -1),
		To:    baseTime.AddDate(0, 0, 7),
		Limit: 100,
	})
	if err != nil {
		t.Fatalf("Failed to list commands: %v", err)
	}
	if len(remaining) != 2 {
		t.Errorf("Expected 2 remaining commands, got %d", len(remaining))
	}
}

func TestCountCommandsPerDay(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	laptop := mustCreateDevice(t, store, "laptop")
	desktop := mustCreateDevice(t, store, "desktop")

	// 5/21に laptop 2件（count 1 + 3）、desktop 1件（count 2）
	// 5/23に laptop 1件（count 1）
	events := []struct {
		device *model.Device
		count  int
		at     time.Time
	}{
		{laptop, 1, time.Date(2025, 5, 21, 9, 0, 0, 0, time.UTC)},
		{laptop, 3, time.Date(2025, 5, 21, 18, 30, 0, 0, time.UTC)},
		{desktop, 2, time.Date(2025, 5, 21, 12, 0, 0, 0, time.UTC)},
		{laptop, 1, time.Date(2025, 5, 23, 7, 0, 0, 0, time.UTC)},
	}
	for _, e := range events {
		cmd, err := model.NewCommand(e.device.ID, "go test ./...", e.count, e.at)
		if err != nil {
			t.Fatalf("Failed to create command model: %v", err)
		}
		if err := store.CreateCommand(context.Background(), cmd); err != nil {
			t.Fatalf("Failed to store command: %v", err)
		}
	}

	from := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 5, 31, 23, 59, 59, 0, time.UTC)

	// 全デバイスの集計
	counts, err := store.CountCommandsPerDay(context.Background(), &AggregateParams{From: from, To: to})
	if err != nil {
		t.Fatalf("Failed to count commands per day: %v", err)
	}

	expected := []model.DailyCount{
		{Date: "2025-05-21", Count: 6},
		{Date: "2025-05-23", Count: 1},
	}
	if len(counts) != len(expected) {
		t.Fatalf("Expected %d days, got %d", len(expected), len(counts))
	}
	for i, want := range expected {
		if counts[i] != want {
			t.Errorf("Day %d: expected %+v, got %+v", i, want, counts[i])
		}
	}

	// デバイス指定の集計
	counts, err = store.CountCommandsPerDay(context.Background(), &AggregateParams{
		Device: "laptop",
		From:   from,
		To:     to,
	})
	if err != nil {
		t.Fatalf("Failed to count laptop commands per day: %v", err)
	}
	expected = []model.DailyCount{
		{Date: "2025-05-21", Count: 4},
		{Date: "2025-05-23", Count: 1},
	}
	if len(counts) != len(expected) {
		t.Fatalf("Expected %d days, got %d", len(expected), len(counts))
	}
	for i, want := range expected {
		if counts[i] != want {
			t.Errorf("Day %d: expected %+v, got %+v", i, want, counts[i])
		}
	}
}

func TestCountCommandsPerDayTimezone(t *testing.T) {
	// タイムゾーン付きのストアでは、保存時に正規化されるため
	// UTCでの日付ではなくローカルの日付で集計される
	tempDir, err := os.MkdirTemp("", "kusa-test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Fatalf("Failed to load location: %v", err)
	}

	store, err := NewSQLiteStore(tempDir, testMigration, tokyo)
	if err != nil {
		t.Fatalf("Failed to create test store: %v", err)
	}
	defer store.Close()

	device := mustCreateDevice(t, store, "laptop")

	// UTCの5/21 20:00 は東京では 5/22 05:00
	cmd, err := model.NewCommand(device.ID, "date", 1, time.Date(2025, 5, 21, 20, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Failed to create command model: %v", err)
	}
	if err := store.CreateCommand(context.Background(), cmd); err != nil {
		t.Fatalf("Failed to store command: %v", err)
	}

	counts, err := store.CountCommandsPerDay(context.Background(), &AggregateParams{
		From: time.Date(2025, 5, 1, 0, 0, 0, 0, tokyo),
		To:   time.Date(2025, 5, 31, 23, 59, 59, 0, tokyo),
	})
	if err != nil {
		t.Fatalf("Failed to count commands per day: %v", err)
	}

	if len(counts) != 1 {
		t.Fatalf("Expected 1 day, got %d", len(counts))
	}
	if counts[0].Date != "2025-05-22" {
		t.Errorf("Expected date 2025-05-22 (Tokyo), got %s", counts[0].Date)
	}
}

func TestCountCommandsPerHour(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	device := mustCreateDevice(t, store, "laptop")

	// 9時に2件（count 1 + 2）、22時に1件（count 1）、日付は異なる
	events := []struct {
		count int
		at    time.Time
	}{
		{1, time.Date(2025, 5, 21, 9, 15, 0, 0, time.UTC)},
		{2, time.Date(2025, 5, 22, 9, 45, 0, 0, time.UTC)},
		{1, time.Date(2025, 5, 21, 22, 0, 0, 0, time.UTC)},
	}
	for _, e := range events {
		cmd, err := model.NewCommand(device.ID, "vim notes.md", e.count, e.at)
		if err != nil {
			t.Fatalf("Failed to create command model: %v", err)
		}
		if err := store.CreateCommand(context.Background(), cmd); err != nil {
			t.Fatalf("Failed to store command: %v", err)
		}
	}

	counts, err := store.CountCommandsPerHour(context.Background(), &AggregateParams{
		From: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 5, 31, 23, 59, 59, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Failed to count commands per hour: %v", err)
	}

	expected := []model.HourlyCount{
		{Hour: 9, Count: 3},
		{Hour: 22, Count: 1},
	}
	if len(counts) != len(expected) {
		t.Fatalf("Expected %d hours, got %d", len(expected), len(counts))
	}
	for i, want := range expected {
		if counts[i] != want {
			t.Errorf("Hour %d: expected %+v, got %+v", i, want, counts[i])
		}
	}
}

// TestCreateDevice はデバイス登録機能をテストします。
func TestCreateDevice(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	device, err := model.NewDevice("workstation")
	if err != nil {
		t.Fatalf("Failed to create device model: %v", err)
	}
	if err := store.CreateDevice(context.Background(), device); err != nil {
		t.Fatalf("Failed to create device: %v", err)
	}

	// IDで取得して確認
	retrieved, err := store.GetDevice(context.Background(), device.ID)
	if err != nil {
		t.Fatalf("Failed to get device: %v", err)
	}
	if retrieved.Name != device.Name {
		t.Errorf("Expected name %s, got %s", device.Name, retrieved.Name)
	}
	if retrieved.CreatedAt.IsZero() {
		t.Error("CreatedAt should not be zero")
	}

	// 名前で取得して確認
	byName, err := store.GetDeviceByName(context.Background(), "workstation")
	if err != nil {
		t.Fatalf("Failed to get device by name: %v", err)
	}
	if byName.ID != device.ID {
		t.Errorf("Expected ID %s, got %s", device.ID, byName.ID)
	}
}

// TestGetNonExistentDevice は存在しないデバイスの取得をテストします。
func TestGetNonExistentDevice(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	_, err := store.GetDevice(context.Background(), uuid.New())
	if !errors.Is(err, model.ErrDeviceNotFound) {
		t.Errorf("Expected ErrDeviceNotFound, got %v", err)
	}

	_, err = store.GetDeviceByName(context.Background(), "ghost")
	if !errors.Is(err, model.ErrDeviceNotFound) {
		t.Errorf("Expected ErrDeviceNotFound, got %v", err)
	}
}

// TestCreateDuplicateDevice は重複デバイス登録をテストします。
func TestCreateDuplicateDevice(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	mustCreateDevice(t, store, "laptop")

	// 同じ名前のデバイスを登録（失敗するはず）
	dup, err := model.NewDevice("laptop")
	if err != nil {
		t.Fatalf("Failed to create device model: %v", err)
	}
	err = store.CreateDevice(context.Background(), dup)
	if err == nil {
		t.Error("Expected error when creating duplicate device, got nil")
	}
	var vErr *model.ValidationError
	if !errors.As(err, &vErr) {
		t.Errorf("Expected ValidationError, got %v", err)
	}
}

// TestListDevices はデバイス一覧取得機能をテストします。
func TestListDevices(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	names := []string{"alpha", "bravo", "charlie"}
	for _, name := range names {
		mustCreateDevice(t, store, name)
		time.Sleep(1 * time.Millisecond) // created_atの順序を確実にするため
	}

	devices, err := store.ListDevices(context.Background())
	if err != nil {
		t.Fatalf("Failed to list devices: %v", err)
	}
	if len(devices) != len(names) {
		t.Fatalf("Expected %d devices, got %d", len(names), len(devices))
	}

	// 登録順に返ることを確認
	for i, name := range names {
		if devices[i].Name != name {
			t.Errorf("Expected device %s at index %d, got %s", name, i, devices[i].Name)
		}
	}
}

// TestDeleteDevice はデバイス削除時にコマンドイベントも削除されることをテストします。
func TestDeleteDevice(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	laptop := mustCreateDevice(t, store, "laptop")
	desktop := mustCreateDevice(t, store, "desktop")

	baseTime := time.Date(2025, 5, 21, 10, 0, 0, 0, time.UTC)

	// laptop用に3件、desktop用に2件のコマンドイベントを作成
	for i := range 3 {
		cmd, _ := model.NewCommand(laptop.ID, "ssh server", 1, baseTime.AddDate(0, 0, i))
		if err := store.CreateCommand(context.Background(), cmd); err != nil {
			t.Fatalf("Failed to store command: %v", err)
		}
	}
	for i := range 2 {
		cmd, _ := model.NewCommand(desktop.ID, "docker ps", 1, baseTime.AddDate(0, 0, i))
		if err := store.CreateCommand(context.Background(), cmd); err != nil {
			t.Fatalf("Failed to store command: %v", err)
		}
	}

	// laptopを削除
	if err := store.DeleteDevice(context.Background(), laptop.ID); err != nil {
		t.Fatalf("Failed to delete device: %v", err)
	}

	// laptopのエンティティが削除されていることを確認
	_, err := store.GetDevice(context.Background(), laptop.ID)
	if !errors.Is(err, model.ErrDeviceNotFound) {
		t.Errorf("Expected ErrDeviceNotFound after deletion, got %v", err)
	}

	// laptopのコマンドイベントが削除されていることを確認
	remaining, err := store.ListCommands(context.Background(), &ListCommandsParams{
		From:  baseTime.AddDate(0, 0, -1),
		To:    baseTime.AddDate(0, 0, 7),
		Limit: 100,
	})
	if err != nil {
		t.Fatalf("Failed to list commands: %v", err)
	}
	if len(remaining) != 2 {
		t.Errorf("Expected 2 remaining commands (desktop), got %d", len(remaining))
	}
	for _, cmd := range remaining {
		if cmd.DeviceID != desktop.ID {
			t.Errorf("Expected remaining command to belong to desktop, got device %s", cmd.DeviceID)
		}
	}

	// 存在しないデバイスの削除はエラーになる
	err = store.DeleteDevice(context.Background(), uuid.New())
	if !errors.Is(err, model.ErrDeviceNotFound) {
		t.Errorf("Expected ErrDeviceNotFound for non-existent device, got %v", err)
	}
}
