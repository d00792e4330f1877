package jsonrpc

import (
	"encoding/json"

	"github.com/brbranch/repo_inspector_mcp/internal/service"
)

// ConfigureParams は configure_repository のパラメータ
type ConfigureParams struct {
	GitHubURL     string `json:"github_url"`
	LocalPath     string `json:"local_path"`
	ObsidianVault string `json:"obsidian_vault"`
}

// ToRequest はサービスリクエストに変換
func (p *ConfigureParams) ToRequest() *service.ConfigureRequest {
	return &service.ConfigureRequest{
		GitHubURL:     p.GitHubURL,
		LocalPath:     p.LocalPath,
		ObsidianVault: p.ObsidianVault,
	}
}

// CommitsParams は recent_commits のパラメータ
type CommitsParams struct {
	Limit *int `json:"limit"`
}

// LimitOrDefault はlimit（省略時はDefaultLimit）を返す
func (p *CommitsParams) LimitOrDefault() int {
	if p.Limit == nil {
		return service.DefaultLimit
	}
	return *p.Limit
}

// ListParams は remote_issues / remote_pull_requests のパラメータ
type ListParams struct {
	State *string `json:"state"`
	Limit *int    `json:"limit"`
}

// StateOrDefault はstate（省略時はDefaultState）を返す
func (p *ListParams) StateOrDefault() string {
	if p.State == nil {
		return service.DefaultState
	}
	return *p.State
}

// LimitOrDefault はlimit（省略時はDefaultLimit）を返す
func (p *ListParams) LimitOrDefault() int {
	if p.Limit == nil {
		return service.DefaultLimit
	}
	return *p.Limit
}

// ExportParams は export_note のパラメータ
type ExportParams struct {
	Content  string `json:"content"`
	NoteName string `json:"note_name"`
	Category string `json:"category"`
}

// ToRequest はサービスリクエストに変換
func (p *ExportParams) ToRequest() *service.ExportNoteRequest {
	return &service.ExportNoteRequest{
		Content:  p.Content,
		NoteName: p.NoteName,
		Category: p.Category,
	}
}

// mapParams はanyをターゲット構造体にマッピング
func mapParams(params any, target any) error {
	if params == nil {
		return nil
	}

	// anyをJSONに変換してから構造体にアンマーシャル
	b, err := json.Marshal(params)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, target)
}
