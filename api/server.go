// Package api はkusaのAPIサーバー実装を提供します。
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/stsysd/kusa/config"
	"github.com/stsysd/kusa/heatmap"
	"github.com/stsysd/kusa/model"
	"github.com/stsysd/kusa/store"
)

// Server はAPIサーバーの構造体です。
type Server struct {
	router *http.ServeMux
	store  store.Store
	config *config.Config
}

// ErrorResponse はエラーレスポンスの構造体です。
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// writeJSONError はJSON形式でエラーレスポンスを返却します。
func writeJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	resp := ErrorResponse{
		Error: message,
		Code:  statusCode,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("Error encoding error response: %v", err)
	}
}

// NewServer は新しいAPIサーバーインスタンスを生成します。
func NewServer(store store.Store, config *config.Config) *Server {
	s := &Server{
		router: http.NewServeMux(),
		store:  store,
		config: config,
	}
	s.routes()
	return s
}

// routes はAPIエンドポイントのルーティングを設定します。
func (s *Server) routes() {
	// ヘルスチェックエンドポイントは認証不要
	s.router.HandleFunc("GET /healthz", s.handleHealthCheck)

	// すべての保護されたエンドポイントをまずセキュアなルータに登録
	securedHandler := http.NewServeMux()

	// Device endpoints
	securedHandler.HandleFunc("GET /api/v0/devices", s.handleListDevices)
	securedHandler.HandleFunc("POST /api/v0/devices", s.handleCreateDevice)
	securedHandler.HandleFunc("GET /api/v0/devices/{device_id}", s.handleGetDevice)
	securedHandler.HandleFunc("DELETE /api/v0/devices/{device_id}", s.handleDeleteDevice)

	// Command endpoints
	securedHandler.HandleFunc("POST /api/v0/commands", s.handleCreateCommand)
	securedHandler.HandleFunc("GET /api/v0/commands", s.handleListCommands)
	securedHandler.HandleFunc("GET /api/v0/commands/{command_id}", s.handleGetCommand)
	securedHandler.HandleFunc("DELETE /api/v0/commands/{command_id}", s.handleDeleteCommand)

	securedHandler.HandleFunc("POST /api/v0/bulk-deletion", s.handleBulkDeleteCommands)

	// Stats endpoints
	securedHandler.HandleFunc("GET /api/v0/stats/daily", s.handleGetDailyStats)
	securedHandler.HandleFunc("GET /api/v0/stats/hourly", s.handleGetHourlyStats)

	// 認証ミドルウェアを適用し、メインルータにマウント
	s.router.Handle("/api/", s.authMiddleware(securedHandler))

	// Graph endpoints - support both with and without .svg extension
	s.router.HandleFunc("GET /graph.svg", s.handleGetGraph)
	s.router.HandleFunc("GET /graph", s.handleGetGraph)
}

// ServeHTTP はServer構造体をhttp.Handlerとして実装します。
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// routesに設定されたルーティングを使用する
	s.router.ServeHTTP(w, r)
}

// handleHealthCheck はヘルスチェックエンドポイントのハンドラーです。
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	resp := map[string]string{"status": "ok"}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// handleCreateDevice はデバイス登録をハンドリングします。
func (s *Server) handleCreateDevice(w http.ResponseWriter, r *http.Request) {
	// リクエストボディの読み取り
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSONError(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	// JSONのパース
	var deviceData struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(body, &deviceData); err != nil {
		writeJSONError(w, "Invalid JSON format", http.StatusBadRequest)
		return
	}

	// デバイスの作成
	device, err := model.NewDevice(deviceData.Name)
	if err != nil {
		writeJSONError(w, fmt.Sprintf("Invalid device data: %v", err), http.StatusBadRequest)
		return
	}

	// データベースに保存
	if err := s.store.CreateDevice(r.Context(), device); err != nil {
		var validationErr *model.ValidationError
		if errors.As(err, &validationErr) {
			writeJSONError(w, err.Error(), http.StatusBadRequest)
		} else {
			log.Printf("Error creating device: %v", err)
			writeJSONError(w, "Failed to create device", http.StatusInternalServerError)
		}
		return
	}

	// 作成されたデバイスをJSONとして返す
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(device); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// handleListDevices はデバイス一覧取得をハンドリングします。
func (s *Server) handleListDevices(w http.ResponseWriter, r *http.Request) {
	devices, err := s.store.ListDevices(r.Context())
	if err != nil {
		log.Printf("Error retrieving devices: %v", err)
		writeJSONError(w, "Failed to retrieve devices", http.StatusInternalServerError)
		return
	}

	// 空配列を返すためにnilチェック
	if devices == nil {
		devices = []*model.Device{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(devices); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// GetDeviceParams represents parameters for getting a device.
type GetDeviceParams struct {
	DeviceID *model.DeviceID
}

// NewGetDeviceParams creates parameters for device retrieval from HTTP request.
func NewGetDeviceParams(r *http.Request) (*GetDeviceParams, error) {
	deviceID, err := model.NewDeviceID(r.PathValue("device_id"))
	if err != nil {
		return nil, err
	}

	return &GetDeviceParams{
		DeviceID: deviceID,
	}, nil
}

// handleGetDevice は特定のIDのデバイスを取得するハンドラーです。
func (s *Server) handleGetDevice(w http.ResponseWriter, r *http.Request) {
	// パラメータを検証
	params, err := NewGetDeviceParams(r)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// デバイスの取得
	device, err := s.store.GetDevice(r.Context(), params.DeviceID.UUID())
	if err != nil {
		if errors.Is(err, model.ErrDeviceNotFound) {
			writeJSONError(w, "Device not found", http.StatusNotFound)
		} else {
			log.Printf("Error retrieving device: %v", err)
			writeJSONError(w, "Failed to retrieve device", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(device); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// handleDeleteDevice はデバイスとそのコマンドイベントを削除するハンドラーです。
func (s *Server) handleDeleteDevice(w http.ResponseWriter, r *http.Request) {
	// パラメータを検証
	params, err := NewGetDeviceParams(r)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// デバイス削除の実行（べき等性：既に存在しない場合もエラーにしない）
	err = s.store.DeleteDevice(r.Context(), params.DeviceID.UUID())
	if err != nil {
		// デバイスが存在しない場合は成功とみなす（べき等性）
		if errors.Is(err, model.ErrDeviceNotFound) {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		log.Printf("Error deleting device: %v", err)
		writeJSONError(w, "Failed to delete device", http.StatusInternalServerError)
		return
	}

	// 成功した場合は204 No Contentを返す
	w.WriteHeader(http.StatusNoContent)
}

// CreateCommandParams represents parameters for recording a command.
type CreateCommandParams struct {
	DeviceID  *model.DeviceID
	Text      string
	Count     *model.CountValue
	Timestamp *model.Timestamp
}

// NewCreateCommandParams creates parameters for command creation from HTTP request.
func NewCreateCommandParams(r *http.Request) (*CreateCommandParams, error) {
	// Parse request body
	var requestBody struct {
		DeviceID  string `json:"device_id"`
		Command   string `json:"command"`
		Count     *int   `json:"count"`
		Timestamp string `json:"timestamp"`
	}

	if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil {
		return nil, fmt.Errorf("invalid request body: %w", err)
	}

	deviceID, err := model.NewDeviceID(requestBody.DeviceID)
	if err != nil {
		return nil, err
	}

	if requestBody.Command == "" {
		return nil, fmt.Errorf("command is required")
	}

	count, err := model.NewCountValue(requestBody.Count)
	if err != nil {
		return nil, err
	}

	timestamp, err := model.NewTimestamp(requestBody.Timestamp)
	if err != nil {
		return nil, err
	}

	return &CreateCommandParams{
		DeviceID:  deviceID,
		Text:      requestBody.Command,
		Count:     count,
		Timestamp: timestamp,
	}, nil
}

// handleCreateCommand はコマンドイベント記録エンドポイントのハンドラーです。
func (s *Server) handleCreateCommand(w http.ResponseWriter, r *http.Request) {
	// パラメータを検証
	params, err := NewCreateCommandParams(r)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// デバイスの存在確認
	_, err = s.store.GetDevice(r.Context(), params.DeviceID.UUID())
	if err != nil {
		log.Printf("Error getting device: %v", err)
		writeJSONError(w, "Device not found", http.StatusNotFound)
		return
	}

	// 新しいコマンドイベントの作成
	cmd, err := model.NewCommand(params.DeviceID.UUID(), params.Text, params.Count.Int(), params.Timestamp.Time())
	if err != nil {
		log.Printf("Error creating command: %v", err)
		writeJSONError(w, "Failed to create command", http.StatusBadRequest)
		return
	}

	// コマンドイベントの保存
	if err := s.store.CreateCommand(r.Context(), cmd); err != nil {
		log.Printf("Error creating command: %v", err)
		writeJSONError(w, "Failed to create command", http.StatusInternalServerError)
		return
	}

	// 成功レスポンスの返却
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(cmd); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// ListCommandsParams represents parameters for listing commands.
type ListCommandsParams struct {
	Device     string
	DateRange  *model.DateRange
	Pagination *model.Pagination
}

// NewListCommandsParams creates parameters for command listing from HTTP request.
func NewListCommandsParams(r *http.Request, loc *time.Location) (*ListCommandsParams, error) {
	query := r.URL.Query()

	dateRange, err := model.NewDateRange(query.Get("from"), query.Get("to"), loc)
	if err != nil {
		return nil, err
	}

	pagination, err := model.NewPagination(query.Get("limit"), query.Get("offset"))
	if err != nil {
		return nil, err
	}

	return &ListCommandsParams{
		Device:     query.Get("device"),
		DateRange:  dateRange,
		Pagination: pagination,
	}, nil
}

// handleListCommands はコマンドイベントの一覧を取得するハンドラーです。
func (s *Server) handleListCommands(w http.ResponseWriter, r *http.Request) {
	// パラメータを検証
	params, err := NewListCommandsParams(r, s.config.Location)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	commands, err := s.store.ListCommands(r.Context(), &store.ListCommandsParams{
		Device: params.Device,
		From:   params.DateRange.From(),
		To:     params.DateRange.To(),
		Limit:  params.Pagination.Limit(),
		Offset: params.Pagination.Offset(),
	})
	if err != nil {
		log.Printf("Error retrieving commands: %v", err)
		writeJSONError(w, "Failed to retrieve commands", http.StatusInternalServerError)
		return
	}

	// 空配列を返すためにnilチェック
	if commands == nil {
		commands = []*model.Command{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(commands); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// GetCommandParams represents parameters for getting a command.
type GetCommandParams struct {
	CommandID *model.CommandID
}

// NewGetCommandParams creates parameters for command retrieval from HTTP request.
func NewGetCommandParams(r *http.Request) (*GetCommandParams, error) {
	commandID, err := model.NewCommandID(r.PathValue("command_id"))
	if err != nil {
		return nil, err
	}

	return &GetCommandParams{
		CommandID: commandID,
	}, nil
}

// handleGetCommand は特定のIDのコマンドイベントを取得するハンドラーです。
func (s *Server) handleGetCommand(w http.ResponseWriter, r *http.Request) {
	// パラメータを検証
	params, err := NewGetCommandParams(r)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// コマンドイベントの取得
	cmd, err := s.store.GetCommand(r.Context(), params.CommandID.UUID())
	if err != nil {
		if errors.Is(err, model.ErrCommandNotFound) {
			writeJSONError(w, "Command not found", http.StatusNotFound)
		} else {
			log.Printf("Error retrieving command: %v", err)
			writeJSONError(w, "Failed to retrieve command", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(cmd); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// handleDeleteCommand は特定のIDのコマンドイベントを削除するハンドラーです。
func (s *Server) handleDeleteCommand(w http.ResponseWriter, r *http.Request) {
	// パラメータを検証
	params, err := NewGetCommandParams(r)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// コマンドイベントの削除
	if err := s.store.DeleteCommand(r.Context(), params.CommandID.UUID()); err != nil {
		if errors.Is(err, model.ErrCommandNotFound) {
			writeJSONError(w, "Command not found", http.StatusNotFound)
		} else {
			log.Printf("Error deleting command: %v", err)
			writeJSONError(w, "Failed to delete command", http.StatusInternalServerError)
		}
		return
	}

	// 削除成功のレスポンスを返す
	w.WriteHeader(http.StatusNoContent)
}

// handleBulkDeleteCommands は条件に一致するコマンドイベントをまとめて削除するハンドラーです。
func (s *Server) handleBulkDeleteCommands(w http.ResponseWriter, r *http.Request) {
	// リクエストボディの読み取り
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSONError(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	// JSONのパース
	var deletionData struct {
		DeviceID string `json:"device_id"`
		Until    string `json:"until"`
	}
	if err := json.Unmarshal(body, &deletionData); err != nil {
		writeJSONError(w, "Invalid JSON format", http.StatusBadRequest)
		return
	}

	// untilパラメータの検証
	if deletionData.Until == "" {
		writeJSONError(w, "until parameter is required", http.StatusBadRequest)
		return
	}

	// タイムスタンプのパース
	timestamp, err := model.NewTimestamp(deletionData.Until)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// device_idは省略可能（省略時は全デバイスが対象）
	var deviceID *model.DeviceID
	if deletionData.DeviceID != "" {
		deviceID, err = model.NewDeviceID(deletionData.DeviceID)
		if err != nil {
			writeJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	// コマンドイベントの一括削除を実行
	var target *uuid.UUID
	if deviceID != nil {
		id := deviceID.UUID()
		target = &id
	}
	count, err := s.store.DeleteCommandsUntil(r.Context(), target, timestamp.Time())
	if err != nil {
		log.Printf("Error deleting commands until specified date: %v", err)
		writeJSONError(w, "Failed to delete commands", http.StatusInternalServerError)
		return
	}

	// 削除結果をJSONで返す
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	response := map[string]int{
		"deleted_count": count,
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// StatsParams represents parameters for aggregation endpoints.
type StatsParams struct {
	Device    string
	DateRange *model.DateRange
}

// NewStatsParams creates parameters for aggregation from HTTP request.
func NewStatsParams(r *http.Request, defaultPeriod string, loc *time.Location) (*StatsParams, error) {
	query := r.URL.Query()

	period := query.Get("period")
	if period == "" {
		period = defaultPeriod
	}

	dateRange, err := model.ParsePeriod(period, loc)
	if err != nil {
		return nil, err
	}

	return &StatsParams{
		Device:    query.Get("device"),
		DateRange: dateRange,
	}, nil
}

// handleGetDailyStats は日ごとの実行数の集計を返すハンドラーです。
func (s *Server) handleGetDailyStats(w http.ResponseWriter, r *http.Request) {
	// パラメータを検証
	params, err := NewStatsParams(r, "1y", s.config.Location)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	counts, err := s.store.CountCommandsPerDay(r.Context(), &store.AggregateParams{
		Device: params.Device,
		From:   params.DateRange.From(),
		To:     params.DateRange.To(),
	})
	if err != nil {
		log.Printf("Error counting commands per day: %v", err)
		writeJSONError(w, "Failed to aggregate commands", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(counts); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// handleGetHourlyStats は時間帯ごとの実行数の集計を返すハンドラーです。
func (s *Server) handleGetHourlyStats(w http.ResponseWriter, r *http.Request) {
	// パラメータを検証
	params, err := NewStatsParams(r, "30d", s.config.Location)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	counts, err := s.store.CountCommandsPerHour(r.Context(), &store.AggregateParams{
		Device: params.Device,
		From:   params.DateRange.From(),
		To:     params.DateRange.To(),
	})
	if err != nil {
		log.Printf("Error counting commands per hour: %v", err)
		writeJSONError(w, "Failed to aggregate commands", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(counts); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// GetGraphParams represents parameters for getting a graph.
type GetGraphParams struct {
	Device    string
	DateRange *model.DateRange
	Options   *heatmap.Options
}

// parseBoolParam interprets "true" and "1" as true, anything else as false.
func parseBoolParam(v string) bool {
	return v == "true" || v == "1"
}

// NewGetGraphParams creates parameters for graph generation from HTTP request.
func NewGetGraphParams(r *http.Request, loc *time.Location) (*GetGraphParams, error) {
	query := r.URL.Query()

	period := query.Get("period")
	if period == "" {
		period = "1y"
	}
	dateRange, err := model.ParsePeriod(period, loc)
	if err != nil {
		return nil, err
	}

	opts := heatmap.DefaultOptions()

	// baseColorが優先、colorは別名
	if v := query.Get("baseColor"); v != "" {
		opts.BaseColor = v
	} else if v := query.Get("color"); v != "" {
		opts.BaseColor = v
	}
	if v := query.Get("textColor"); v != "" {
		opts.TextColor = v
	}
	if v := query.Get("cellBackground"); v != "" {
		opts.CellBackground = v
	}

	if v := query.Get("cellSize"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil || size <= 0 {
			return nil, model.NewValidationError("cellSize must be a positive integer")
		}
		opts.CellSize = size
	}
	if v := query.Get("cellGap"); v != "" {
		gap, err := strconv.Atoi(v)
		if err != nil || gap < 0 {
			return nil, model.NewValidationError("cellGap must be a non-negative integer")
		}
		opts.CellGap = gap
	}

	if query.Has("showMonthLabels") {
		opts.ShowMonthLabels = parseBoolParam(query.Get("showMonthLabels"))
	}
	if query.Has("showDayLabels") {
		opts.ShowDayLabels = parseBoolParam(query.Get("showDayLabels"))
	}
	if query.Has("showFooter") {
		opts.ShowFooter = parseBoolParam(query.Get("showFooter"))
	}

	return &GetGraphParams{
		Device:    query.Get("device"),
		DateRange: dateRange,
		Options:   opts,
	}, nil
}

// handleGetGraph はコマンド実行のヒートマップグラフを生成・返却するハンドラーです。
func (s *Server) handleGetGraph(w http.ResponseWriter, r *http.Request) {
	// パラメータを検証
	params, err := NewGetGraphParams(r, s.config.Location)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// 日ごとの集計を取得
	counts, err := s.store.CountCommandsPerDay(r.Context(), &store.AggregateParams{
		Device: params.Device,
		From:   params.DateRange.From(),
		To:     params.DateRange.To(),
	})
	if err != nil {
		log.Printf("Error counting commands per day: %v", err)
		http.Error(w, "Failed to aggregate commands", http.StatusInternalServerError)
		return
	}

	dateMap := make(map[string]int, len(counts))
	for _, c := range counts {
		dateMap[c.Date] = c.Count
	}

	// ヒートマップ用データの作成（範囲内のすべての日を含む）
	var data []heatmap.Data
	currentDate := params.DateRange.From()
	toDate := params.DateRange.To()
	for !currentDate.After(toDate) {
		dateString := currentDate.Format("2006-01-02")
		count := dateMap[dateString] // マップに存在しない場合は0を返す
		data = append(data, heatmap.Data{
			Date:  currentDate,
			Count: count,
		})
		currentDate = currentDate.AddDate(0, 0, 1) // 次の日に移動
	}

	// SVGの生成
	svg := heatmap.Generate(data, params.Options)

	// レスポンスの返却
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write([]byte(svg))
}

// Run はサーバーを指定されたアドレスで起動します。
func (s *Server) Run(addr string) error {
	log.Printf("Server starting on %s", addr)
	return http.ListenAndServe(addr, s)
}
