// Package bootstrap provides common initialization logic for the GitHub inspector.
package bootstrap

import (
	"github.com/brbranch/repo_inspector_mcp/internal/config"
	"github.com/brbranch/repo_inspector_mcp/internal/github"
	"github.com/brbranch/repo_inspector_mcp/internal/gitcmd"
	"github.com/brbranch/repo_inspector_mcp/internal/service"
	"github.com/brbranch/repo_inspector_mcp/internal/vault"
)

// Services は初期化されたサービス群を保持
type Services struct {
	Inspector service.InspectorService
	GitHub    *github.Client
	HasToken  bool // GITHUB_TOKENが設定されていたか
}

// Initialize は環境変数を読み、必要なコラボレーターとサービスを初期化する
// トークンは起動時に一度だけ読む
func Initialize() *Services {
	token := config.GetGitHubToken()

	// 1. コラボレーター初期化
	runner := gitcmd.NewExecRunner()
	client := github.NewClient(token)
	exporter := vault.NewExporter()

	// 2. インスペクターサービス初期化（セッションは空で開始）
	inspector := service.NewInspectorService(runner, client, exporter)

	return &Services{
		Inspector: inspector,
		GitHub:    client,
		HasToken:  token != "",
	}
}
