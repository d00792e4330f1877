package github

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/brbranch/repo_inspector_mcp/internal/model"
)

// ListIssues はリポジトリのissue一覧を取得する
// issuesエンドポイントはpull requestも返すため、pull_request参照を持つ
// レコードは除外して返す（pullsエンドポイントとの重複を避ける）
func (c *Client) ListIssues(ctx context.Context, owner, repo, state string, limit int) ([]model.Issue, error) {
	body, err := c.get(ctx, fmt.Sprintf("/repos/%s/%s/issues", owner, repo), state, limit)
	if err != nil {
		return nil, err
	}

	var records []model.Issue
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("decode issues: %w", err)
	}

	// pull requestを除外
	issues := make([]model.Issue, 0, len(records))
	for _, rec := range records {
		if rec.IsPullRequest() {
			continue
		}
		issues = append(issues, rec)
	}

	return issues, nil
}

// ListPullRequests はリポジトリのpull request一覧を取得する
func (c *Client) ListPullRequests(ctx context.Context, owner, repo, state string, limit int) ([]model.PullRequest, error) {
	body, err := c.get(ctx, fmt.Sprintf("/repos/%s/%s/pulls", owner, repo), state, limit)
	if err != nil {
		return nil, err
	}

	var prs []model.PullRequest
	if err := json.Unmarshal(body, &prs); err != nil {
		return nil, fmt.Errorf("decode pull requests: %w", err)
	}

	return prs, nil
}
