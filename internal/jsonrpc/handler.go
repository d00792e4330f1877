// Package jsonrpc implements JSON-RPC 2.0 handlers for the GitHub inspector.
package jsonrpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/brbranch/repo_inspector_mcp/internal/github"
	"github.com/brbranch/repo_inspector_mcp/internal/model"
	"github.com/brbranch/repo_inspector_mcp/internal/service"
)

// Handler はJSON-RPCリクエストを処理する
type Handler struct {
	inspector service.InspectorService
}

// New は新しいHandlerを生成
func New(inspector service.InspectorService) *Handler {
	return &Handler{
		inspector: inspector,
	}
}

// Handle はJSON-RPCリクエストをパースしてディスパッチ
// 戻り値は *model.Response または *model.ErrorResponse のJSON bytes
func (h *Handler) Handle(ctx context.Context, requestBytes []byte) []byte {
	// 1. パース
	var req model.Request
	if err := json.Unmarshal(requestBytes, &req); err != nil {
		return h.encodeError(model.NewParseError(err.Error()))
	}

	// 2. バージョン確認
	if req.JSONRPC != "2.0" {
		return h.encodeError(model.NewInvalidRequest(req.ID, "jsonrpc must be 2.0"))
	}

	// 3. method確認
	if req.Method == "" {
		return h.encodeError(model.NewInvalidRequest(req.ID, "method is required"))
	}

	// 4. ディスパッチ
	result, err := h.dispatch(ctx, req.Method, req.Params)
	if err != nil {
		return h.encodeError(h.mapError(req.ID, err))
	}

	// 5. 成功レスポンス
	return h.encodeResponse(model.NewResponse(req.ID, result))
}

// dispatch はメソッドに応じて適切なハンドラーを呼び出す
// ハンドラー内のpanicはここで回収し、内部エラーとして返す
// （ツール呼び出しの失敗でサーバーを落とさない）
func (h *Handler) dispatch(ctx context.Context, method string, params any) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("panic in handler %s: %v", method, r)
			err = &internalPanicError{method: method, value: r}
		}
	}()

	switch method {
	case "initialize":
		return h.handleInitialize(ctx, params)
	case "notifications/initialized":
		// 通知は受理するだけ
		return map[string]any{}, nil
	case "tools/list":
		return h.handleToolsList(ctx, params)
	case "tools/call":
		return h.handleToolsCall(ctx, params)
	case "inspector.configure_repository":
		return h.wrapText(h.handleConfigure(ctx, params))
	case "inspector.status":
		return h.wrapText(h.handleStatus(ctx, params))
	case "inspector.recent_commits":
		return h.wrapText(h.handleRecentCommits(ctx, params))
	case "inspector.remote_issues":
		return h.wrapText(h.handleIssues(ctx, params))
	case "inspector.remote_pull_requests":
		return h.wrapText(h.handlePullRequests(ctx, params))
	case "inspector.export_note":
		return h.wrapText(h.handleExportNote(ctx, params))
	default:
		return nil, &methodNotFoundError{method: method}
	}
}

// wrapText はレンダリング済みテキストを直接メソッド用の結果に包む
func (h *Handler) wrapText(text string, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return map[string]any{"text": text}, nil
}

// mapError はサービスエラーをJSON-RPCエラーに変換
func (h *Handler) mapError(id any, err error) *model.ErrorResponse {
	// method not found
	var mnfErr *methodNotFoundError
	if errors.As(err, &mnfErr) {
		return model.NewMethodNotFound(id, mnfErr.method)
	}

	// invalid params
	if errors.Is(err, service.ErrURLRequired) ||
		errors.Is(err, service.ErrContentRequired) ||
		errors.Is(err, service.ErrNoteNameRequired) {
		return model.NewInvalidParams(id, err.Error())
	}

	// 前提条件未達
	if errors.Is(err, service.ErrRepoNotConfigured) {
		return model.NewErrorResponse(id, model.ErrCodeRepoNotConfigured, err.Error(), nil)
	}
	if errors.Is(err, service.ErrRemoteNotConfigured) {
		return model.NewErrorResponse(id, model.ErrCodeRemoteNotConfigured, err.Error(), nil)
	}
	if errors.Is(err, service.ErrVaultNotConfigured) {
		return model.NewErrorResponse(id, model.ErrCodeVaultNotConfigured, err.Error(), nil)
	}

	// URL不正
	if errors.Is(err, service.ErrUnsupportedHost) || errors.Is(err, service.ErrInvalidRepoURL) {
		return model.NewErrorResponse(id, model.ErrCodeInvalidRepoURL, err.Error(), nil)
	}

	// GitHub APIエラー（ステータスとボディをdataに載せる）
	var apiErr *github.APIError
	if errors.As(err, &apiErr) {
		return model.NewErrorResponse(id, model.ErrCodeRemoteAPIError, "GitHub API error", map[string]any{
			"status": apiErr.StatusCode,
			"body":   apiErr.Body,
		})
	}

	// internal error
	return model.NewInternalError(id, err.Error())
}

func (h *Handler) encodeResponse(resp *model.Response) []byte {
	b, _ := json.Marshal(resp)
	return b
}

func (h *Handler) encodeError(resp *model.ErrorResponse) []byte {
	b, _ := json.Marshal(resp)
	return b
}

// methodNotFoundError はメソッド未検出エラー
type methodNotFoundError struct {
	method string
}

func (e *methodNotFoundError) Error() string {
	return "method not found: " + e.method
}

// internalPanicError はハンドラー内のpanicを表す
type internalPanicError struct {
	method string
	value  any
}

func (e *internalPanicError) Error() string {
	return fmt.Sprintf("internal error in %s: %v", e.method, e.value)
}
