package jsonrpc

import (
	"context"
	"errors"
	"fmt"

	"github.com/brbranch/repo_inspector_mcp/internal/github"
	"github.com/brbranch/repo_inspector_mcp/internal/model"
	"github.com/brbranch/repo_inspector_mcp/internal/service"
)

// ServerName はMCPサーバー名
const ServerName = "github-inspector"

// ServerVersion はサーバーのバージョン（ビルド時に設定可能）
var ServerVersion = "0.1.0"

// handleInitialize は initialize メソッドを処理
func (h *Handler) handleInitialize(ctx context.Context, params any) (any, error) {
	// パラメータをパース（検証は最小限）
	var p model.InitializeParams
	if err := mapParams(params, &p); err != nil {
		return nil, err
	}

	return &model.InitializeResult{
		ProtocolVersion: "2024-11-05",
		ServerInfo: model.ServerInfo{
			Name:    ServerName,
			Version: ServerVersion,
		},
		Capabilities: model.Capabilities{
			Tools: &model.ToolsCapability{},
		},
	}, nil
}

// handleToolsList は tools/list メソッドを処理
func (h *Handler) handleToolsList(ctx context.Context, params any) (any, error) {
	return &model.ToolsListResult{
		Tools: mcpTools,
	}, nil
}

// handleToolsCall は tools/call メソッドを処理
// ツールの失敗はJSON-RPCエラーにせず、isError付きテキストとして返す
// （成功・失敗にかかわらずクライアントは常にレンダリング可能なテキストを受け取る）
func (h *Handler) handleToolsCall(ctx context.Context, params any) (any, error) {
	var p model.ToolsCallParams
	if err := mapParams(params, &p); err != nil {
		return nil, err
	}

	// ツール名必須チェック
	if p.Name == "" {
		return &model.ToolsCallResult{
			Content: []model.ContentItem{
				model.NewTextContent("Error: tool name is required"),
			},
			IsError: true,
		}, nil
	}

	// ツール名から内部メソッド名を取得
	internalMethod, ok := toolNameToMethod[p.Name]
	if !ok {
		// ツールが見つからない場合はエラーをcontentに含める
		return &model.ToolsCallResult{
			Content: []model.ContentItem{
				model.NewTextContent(fmt.Sprintf("❌ Unknown tool: %s", p.Name)),
			},
			IsError: true,
		}, nil
	}

	// 内部ハンドラーを呼び出す
	text, err := h.callTool(ctx, internalMethod, p.Arguments)
	if err != nil {
		// エラーをcontentに含める（MCP仕様）
		return &model.ToolsCallResult{
			Content: []model.ContentItem{
				model.NewTextContent(failureText(err)),
			},
			IsError: true,
		}, nil
	}

	return &model.ToolsCallResult{
		Content: []model.ContentItem{
			model.NewTextContent(text),
		},
	}, nil
}

// callTool は内部メソッドを直接呼び出す（tools/call用）
// ハンドラー内のpanicはここで回収してエラーに変換する
func (h *Handler) callTool(ctx context.Context, method string, params any) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &internalPanicError{method: method, value: r}
		}
	}()

	switch method {
	case "inspector.configure_repository":
		return h.handleConfigure(ctx, params)
	case "inspector.status":
		return h.handleStatus(ctx, params)
	case "inspector.recent_commits":
		return h.handleRecentCommits(ctx, params)
	case "inspector.remote_issues":
		return h.handleIssues(ctx, params)
	case "inspector.remote_pull_requests":
		return h.handlePullRequests(ctx, params)
	case "inspector.export_note":
		return h.handleExportNote(ctx, params)
	default:
		return "", &methodNotFoundError{method: method}
	}
}

// failureText はツールの失敗をクライアント向けテキストに変換する
func failureText(err error) string {
	switch {
	case errors.Is(err, service.ErrRepoNotConfigured):
		return "❌ No repo setup. Use configure_repository first."
	case errors.Is(err, service.ErrRemoteNotConfigured):
		return "❌ No GitHub repo setup."
	case errors.Is(err, service.ErrVaultNotConfigured):
		return "❌ No Obsidian vault configured."
	case errors.Is(err, service.ErrUnsupportedHost):
		return "❌ Only GitHub URLs supported"
	case errors.Is(err, service.ErrInvalidRepoURL):
		return "❌ Invalid GitHub URL format"
	}

	var cloneErr *service.CloneError
	if errors.As(err, &cloneErr) {
		return fmt.Sprintf("❌ Clone failed: %s", cloneErr.Stderr)
	}

	var apiErr *github.APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("❌ GitHub API error: %d\n%s", apiErr.StatusCode, apiErr.Body)
	}

	return fmt.Sprintf("❌ Error: %s", err.Error())
}
