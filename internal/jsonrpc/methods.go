package jsonrpc

import (
	"context"
)

// handleConfigure は configure_repository を処理
func (h *Handler) handleConfigure(ctx context.Context, params any) (string, error) {
	var p ConfigureParams
	if err := mapParams(params, &p); err != nil {
		return "", err
	}

	resp, err := h.inspector.Configure(ctx, p.ToRequest())
	if err != nil {
		return "", err
	}

	return resp.Message, nil
}

// handleStatus は status を処理
func (h *Handler) handleStatus(ctx context.Context, params any) (string, error) {
	return h.inspector.Status(ctx)
}

// handleRecentCommits は recent_commits を処理
func (h *Handler) handleRecentCommits(ctx context.Context, params any) (string, error) {
	var p CommitsParams
	if err := mapParams(params, &p); err != nil {
		return "", err
	}

	return h.inspector.RecentCommits(ctx, p.LimitOrDefault())
}

// handleIssues は remote_issues を処理
func (h *Handler) handleIssues(ctx context.Context, params any) (string, error) {
	var p ListParams
	if err := mapParams(params, &p); err != nil {
		return "", err
	}

	return h.inspector.Issues(ctx, p.StateOrDefault(), p.LimitOrDefault())
}

// handlePullRequests は remote_pull_requests を処理
func (h *Handler) handlePullRequests(ctx context.Context, params any) (string, error) {
	var p ListParams
	if err := mapParams(params, &p); err != nil {
		return "", err
	}

	return h.inspector.PullRequests(ctx, p.StateOrDefault(), p.LimitOrDefault())
}

// handleExportNote は export_note を処理
func (h *Handler) handleExportNote(ctx context.Context, params any) (string, error) {
	var p ExportParams
	if err := mapParams(params, &p); err != nil {
		return "", err
	}

	resp, err := h.inspector.ExportNote(ctx, p.ToRequest())
	if err != nil {
		return "", err
	}

	return resp.Message, nil
}
