// Package store は、データの永続化機能を提供します。
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stsysd/kusa/db"
	"github.com/stsysd/kusa/model"
)

// ListCommandsParams はコマンド一覧取得の検索条件です。
type ListCommandsParams struct {
	Device string // デバイス名（空文字の場合は全デバイス）
	From   time.Time
	To     time.Time
	Limit  int
	Offset int
}

// AggregateParams は集計クエリの検索条件です。
type AggregateParams struct {
	Device string // デバイス名（空文字の場合は全デバイス）
	From   time.Time
	To     time.Time
}

// CommandStore はコマンドイベントの保存と取得を行うインターフェースです。
type CommandStore interface {
	// CreateCommand は新しいコマンドイベントを作成します。
	CreateCommand(ctx context.Context, cmd *model.Command) error
	// GetCommand は指定されたIDのコマンドイベントを取得します。
	GetCommand(ctx context.Context, id uuid.UUID) (*model.Command, error)
	// DeleteCommand は指定されたIDのコマンドイベントを削除します。
	DeleteCommand(ctx context.Context, id uuid.UUID) error
	// ListCommands は指定した期間内のコマンドイベントを取得します。
	ListCommands(ctx context.Context, params *ListCommandsParams) ([]*model.Command, error)
	// DeleteCommandsUntil は指定日時より前のコマンドイベントを削除します。
	DeleteCommandsUntil(ctx context.Context, deviceID *uuid.UUID, until time.Time) (int, error)
	// CountCommandsPerDay は日ごとの実行数を集計します。
	CountCommandsPerDay(ctx context.Context, params *AggregateParams) ([]model.DailyCount, error)
	// CountCommandsPerHour は時間帯ごとの実行数を集計します。
	CountCommandsPerHour(ctx context.Context, params *AggregateParams) ([]model.HourlyCount, error)
	// Close はストアの接続を閉じます。
	Close() error
}

// DeviceStore はデバイスの保存と取得を行うインターフェースです。
type DeviceStore interface {
	// CreateDevice は新しいデバイスを登録します。
	CreateDevice(ctx context.Context, dev *model.Device) error
	// GetDevice は指定されたIDのデバイスを取得します。
	GetDevice(ctx context.Context, id uuid.UUID) (*model.Device, error)
	// GetDeviceByName は指定された名前のデバイスを取得します。
	GetDeviceByName(ctx context.Context, name string) (*model.Device, error)
	// ListDevices はすべてのデバイスを取得します。
	ListDevices(ctx context.Context) ([]*model.Device, error)
	// DeleteDevice はデバイスとそのコマンドイベントをすべて削除します。
	DeleteDevice(ctx context.Context, id uuid.UUID) error
}

// Store はアプリケーションが必要とする永続化機能の集合です。
type Store interface {
	CommandStore
	DeviceStore
}

// SQLiteStore はSQLiteを使用したStoreの実装です。
type SQLiteStore struct {
	conn    *sql.DB
	queries *db.Queries
	loc     *time.Location
}

// NewSQLiteStore は新しいSQLiteStoreを作成します。
// タイムスタンプは loc に正規化したRFC3339形式で保存されるため、
// SQLでの日付・時間帯の集計はタイムゾーン調整済みになります。
func NewSQLiteStore(dataDir string, migrate func(*sql.DB) error, loc *time.Location) (*SQLiteStore, error) {
	// データディレクトリの作成（存在しない場合）
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	// SQLiteデータベースファイルのパス
	dbPath := filepath.Join(dataDir, "kusa.db")

	// SQLiteデータベースへの接続
	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	// マイグレーションの実行
	if err := migrate(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if loc == nil {
		loc = time.UTC
	}

	return &SQLiteStore{
		conn:    conn,
		queries: db.New(conn),
		loc:     loc,
	}, nil
}

// Close はデータベース接続を閉じます。
func (s *SQLiteStore) Close() error {
	return s.conn.Close()
}

// formatTime は保存用にタイムスタンプを正規化します。
func (s *SQLiteStore) formatTime(t time.Time) string {
	return t.In(s.loc).Format(time.RFC3339)
}

// parseTime は保存されたタイムスタンプを復元します。
func (s *SQLiteStore) parseTime(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse stored timestamp: %w", err)
	}
	return t.In(s.loc), nil
}

// CreateCommand は新しいコマンドイベントをデータベースに保存します。
func (s *SQLiteStore) CreateCommand(ctx context.Context, cmd *model.Command) error {
	// バリデーション
	if err := cmd.Validate(); err != nil {
		return err
	}

	// デバイスの存在確認（アプリケーションレベルでの整合性チェック）
	if _, err := s.GetDevice(ctx, cmd.DeviceID); err != nil {
		return fmt.Errorf("device not found: %s", cmd.DeviceID)
	}

	// sqlcで生成されたクエリを使用
	return s.queries.CreateCommand(ctx, db.CreateCommandParams{
		ID:        cmd.ID.String(),
		DeviceID:  cmd.DeviceID.String(),
		Text:      cmd.Text,
		Count:     int64(cmd.Count),
		Timestamp: s.formatTime(cmd.Timestamp),
	})
}

// GetCommand は指定されたIDのコマンドイベントを取得します。
func (s *SQLiteStore) GetCommand(ctx context.Context, id uuid.UUID) (*model.Command, error) {
	// sqlcで生成されたクエリを使用
	row, err := s.queries.GetCommand(ctx, id.String())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrCommandNotFound
	}
	if err != nil {
		return nil, err
	}
	return s.commandFromRow(row)
}

// DeleteCommand は指定されたIDのコマンドイベントを削除します。
func (s *SQLiteStore) DeleteCommand(ctx context.Context, id uuid.UUID) error {
	result, err := s.queries.DeleteCommand(ctx, id.String())
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return model.ErrCommandNotFound
	}
	return nil
}

// ListCommands は指定した期間内のコマンドイベントを取得します。
func (s *SQLiteStore) ListCommands(ctx context.Context, params *ListCommandsParams) ([]*model.Command, error) {
	var rows []db.Command
	var err error
	if params.Device == "" {
		rows, err = s.queries.ListCommands(ctx, db.ListCommandsParams{
			FromTs:    s.formatTime(params.From),
			ToTs:      s.formatTime(params.To),
			RowLimit:  int64(params.Limit),
			RowOffset: int64(params.Offset),
		})
	} else {
		rows, err = s.queries.ListCommandsByDevice(ctx, db.ListCommandsByDeviceParams{
			Device:    params.Device,
			FromTs:    s.formatTime(params.From),
			ToTs:      s.formatTime(params.To),
			RowLimit:  int64(params.Limit),
			RowOffset: int64(params.Offset),
		})
	}
	if err != nil {
		return nil, err
	}

	commands := make([]*model.Command, 0, len(rows))
	for _, row := range rows {
		cmd, err := s.commandFromRow(row)
		if err != nil {
			return nil, err
		}
		commands = append(commands, cmd)
	}
	return commands, nil
}

// DeleteCommandsUntil は指定日時より前のコマンドイベントを削除し、削除件数を返します。
func (s *SQLiteStore) DeleteCommandsUntil(ctx context.Context, deviceID *uuid.UUID, until time.Time) (int, error) {
	var result sql.Result
	var err error
	if deviceID == nil {
		result, err = s.queries.DeleteCommandsUntil(ctx, s.formatTime(until))
	} else {
		result, err = s.queries.DeleteCommandsUntilByDevice(ctx, db.DeleteCommandsUntilByDeviceParams{
			Until:    s.formatTime(until),
			DeviceID: deviceID.String(),
		})
	}
	if err != nil {
		return 0, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return int(affected), nil
}

// CountCommandsPerDay は日ごとの実行数を集計します。
// 結果は日付の昇順で、実行のあった日だけが含まれます。
func (s *SQLiteStore) CountCommandsPerDay(ctx context.Context, params *AggregateParams) ([]model.DailyCount, error) {
	counts := make([]model.DailyCount, 0)
	if params.Device == "" {
		rows, err := s.queries.CountCommandsPerDay(ctx, db.CountCommandsPerDayParams{
			FromTs: s.formatTime(params.From),
			ToTs:   s.formatTime(params.To),
		})
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			counts = append(counts, model.DailyCount{Date: row.Day, Count: int(row.Total)})
		}
		return counts, nil
	}

	rows, err := s.queries.CountCommandsPerDayByDevice(ctx, db.CountCommandsPerDayByDeviceParams{
		Device: params.Device,
		FromTs: s.formatTime(params.From),
		ToTs:   s.formatTime(params.To),
	})
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts = append(counts, model.DailyCount{Date: row.Day, Count: int(row.Total)})
	}
	return counts, nil
}

// CountCommandsPerHour は時間帯（0〜23時）ごとの実行数を集計します。
func (s *SQLiteStore) CountCommandsPerHour(ctx context.Context, params *AggregateParams) ([]model.HourlyCount, error) {
	counts := make([]model.HourlyCount, 0)
	if params.Device == "" {
		rows, err := s.queries.CountCommandsPerHour(ctx, db.CountCommandsPerHourParams{
			FromTs: s.formatTime(params.From),
			ToTs:   s.formatTime(params.To),
		})
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			counts = append(counts, model.HourlyCount{Hour: int(row.Hour), Count: int(row.Total)})
		}
		return counts, nil
	}

	rows, err := s.queries.CountCommandsPerHourByDevice(ctx, db.CountCommandsPerHourByDeviceParams{
		Device: params.Device,
		FromTs: s.formatTime(params.From),
		ToTs:   s.formatTime(params.To),
	})
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts = append(counts, model.HourlyCount{Hour: int(row.Hour), Count: int(row.Total)})
	}
	return counts, nil
}

// CreateDevice は新しいデバイスをデータベースに登録します。
func (s *SQLiteStore) CreateDevice(ctx context.Context, dev *model.Device) error {
	// バリデーション
	if err := dev.Validate(); err != nil {
		return err
	}

	// 名前の重複確認
	_, err := s.GetDeviceByName(ctx, dev.Name)
	if err == nil {
		return model.NewValidationError(fmt.Sprintf("device name already exists: %s", dev.Name))
	}
	if !errors.Is(err, model.ErrDeviceNotFound) {
		return err
	}

	// sqlcで生成されたクエリを使用
	return s.queries.CreateDevice(ctx, db.CreateDeviceParams{
		ID:        dev.ID.String(),
		Name:      dev.Name,
		CreatedAt: s.formatTime(dev.CreatedAt),
	})
}

// GetDevice は指定されたIDのデバイスを取得します。
func (s *SQLiteStore) GetDevice(ctx context.Context, id uuid.UUID) (*model.Device, error) {
	row, err := s.queries.GetDevice(ctx, id.String())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrDeviceNotFound
	}
	if err != nil {
		return nil, err
	}
	return s.deviceFromRow(row)
}

// GetDeviceByName は指定された名前のデバイスを取得します。
func (s *SQLiteStore) GetDeviceByName(ctx context.Context, name string) (*model.Device, error) {
	row, err := s.queries.GetDeviceByName(ctx, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrDeviceNotFound
	}
	if err != nil {
		return nil, err
	}
	return s.deviceFromRow(row)
}

// ListDevices はすべてのデバイスを取得します。
func (s *SQLiteStore) ListDevices(ctx context.Context) ([]*model.Device, error) {
	rows, err := s.queries.ListDevices(ctx)
	if err != nil {
		return nil, err
	}
	devices := make([]*model.Device, 0, len(rows))
	for _, row := range rows {
		dev, err := s.deviceFromRow(row)
		if err != nil {
			return nil, err
		}
		devices = append(devices, dev)
	}
	return devices, nil
}

// DeleteDevice はデバイスとそのコマンドイベントをトランザクション内で削除します。
func (s *SQLiteStore) DeleteDevice(ctx context.Context, id uuid.UUID) error {
	// トランザクションの開始
	tx, err := s.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// トランザクションをロールバックするための遅延関数
	defer func() {
		if tx != nil {
			tx.Rollback() // 成功した場合は既にnilになっているためエラーは無視
		}
	}()

	// sqlcで生成されたクエリを使用（トランザクション内で）
	queriesWithTx := s.queries.WithTx(tx)

	// デバイスに紐づくコマンドイベントを先に削除
	if err := queriesWithTx.DeleteCommandsByDevice(ctx, id.String()); err != nil {
		return fmt.Errorf("failed to delete device commands: %w", err)
	}

	result, err := queriesWithTx.DeleteDevice(ctx, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete device: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return model.ErrDeviceNotFound
	}

	// トランザクションのコミット
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	tx = nil // コミットが成功したのでnilにして遅延関数でのロールバックを防ぐ

	return nil
}

// commandFromRow はDBの行からCommandモデルを復元します。
func (s *SQLiteStore) commandFromRow(row db.Command) (*model.Command, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse command id: %w", err)
	}
	deviceID, err := uuid.Parse(row.DeviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse device id: %w", err)
	}
	timestamp, err := s.parseTime(row.Timestamp)
	if err != nil {
		return nil, err
	}
	return model.LoadCommand(id, deviceID, row.Text, int(row.Count), timestamp)
}

// deviceFromRow はDBの行からDeviceモデルを復元します。
func (s *SQLiteStore) deviceFromRow(row db.Device) (*model.Device, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse device id: %w", err)
	}
	createdAt, err := s.parseTime(row.CreatedAt)
	if err != nil {
		return nil, err
	}
	return model.LoadDevice(id, row.Name, createdAt)
}
