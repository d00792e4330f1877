package jsonrpc

import (
	"github.com/brbranch/repo_inspector_mcp/internal/model"
)

// mcpTools はクライアントに公開するツールカタログ（順序固定）
// tools/list が返す内容とディスパッチ対象は1対1で一致する
var mcpTools = []model.Tool{
	{
		Name:        "configure_repository",
		Description: "Setup GitHub repository for analysis",
		InputSchema: model.InputSchema{
			Type: "object",
			Properties: map[string]model.PropertySchema{
				"github_url":     {Type: "string", Description: "GitHub repository URL"},
				"local_path":     {Type: "string", Description: "Local path (optional)"},
				"obsidian_vault": {Type: "string", Description: "Obsidian vault path (optional)"},
			},
			Required: []string{"github_url"},
		},
	},
	{
		Name:        "status",
		Description: "Get current repository status",
		InputSchema: model.InputSchema{
			Type:       "object",
			Properties: map[string]model.PropertySchema{},
			Required:   []string{},
		},
	},
	{
		Name:        "recent_commits",
		Description: "Get recent commits",
		InputSchema: model.InputSchema{
			Type: "object",
			Properties: map[string]model.PropertySchema{
				"limit": {Type: "integer", Default: 10},
			},
			Required: []string{},
		},
	},
	{
		Name:        "remote_issues",
		Description: "Get GitHub issues",
		InputSchema: model.InputSchema{
			Type: "object",
			Properties: map[string]model.PropertySchema{
				"state": {Type: "string", Enum: []string{"open", "closed", "all"}, Default: "open"},
				"limit": {Type: "integer", Default: 10},
			},
			Required: []string{},
		},
	},
	{
		Name:        "remote_pull_requests",
		Description: "Get GitHub pull requests",
		InputSchema: model.InputSchema{
			Type: "object",
			Properties: map[string]model.PropertySchema{
				"state": {Type: "string", Enum: []string{"open", "closed", "all"}, Default: "open"},
				"limit": {Type: "integer", Default: 10},
			},
			Required: []string{},
		},
	},
	{
		Name:        "export_note",
		Description: "Export analysis to Obsidian",
		InputSchema: model.InputSchema{
			Type: "object",
			Properties: map[string]model.PropertySchema{
				"content":   {Type: "string"},
				"note_name": {Type: "string"},
				"category":  {Type: "string", Default: "GitHub Analysis"},
			},
			Required: []string{"content", "note_name"},
		},
	},
}

// toolNameToMethod はMCPツール名から内部メソッド名への対応
var toolNameToMethod = map[string]string{
	"configure_repository": "inspector.configure_repository",
	"status":               "inspector.status",
	"recent_commits":       "inspector.recent_commits",
	"remote_issues":        "inspector.remote_issues",
	"remote_pull_requests": "inspector.remote_pull_requests",
	"export_note":          "inspector.export_note",
}
