package service

import (
	"context"
	"errors"

	"github.com/brbranch/repo_inspector_mcp/internal/model"
	"github.com/brbranch/repo_inspector_mcp/internal/vault"
)

// デフォルト値
const (
	DefaultState = "open" // issue/PR一覧のデフォルトstate
	DefaultLimit = 10     // 一覧系ツールのデフォルト件数
)

// バリデーション・前提条件エラー
var (
	ErrURLRequired         = errors.New("github_url is required")
	ErrContentRequired     = errors.New("content is required")
	ErrNoteNameRequired    = errors.New("note_name is required")
	ErrUnsupportedHost     = errors.New("only GitHub URLs are supported")
	ErrInvalidRepoURL      = errors.New("invalid GitHub URL format")
	ErrRepoNotConfigured   = errors.New("no repository configured")
	ErrRemoteNotConfigured = errors.New("no GitHub repository configured")
	ErrVaultNotConfigured  = errors.New("no Obsidian vault configured")
)

// CloneError はgit cloneの非ゼロ終了を表す
type CloneError struct {
	Stderr string // cloneコマンドの標準エラー出力
}

func (e *CloneError) Error() string {
	return "clone failed: " + e.Stderr
}

// ConfigureRequest はリポジトリ設定リクエスト
type ConfigureRequest struct {
	GitHubURL     string // 必須。https://github.com/<owner>/<name>[.git]
	LocalPath     string // 省略時は <cwd>/<name>
	ObsidianVault string // 省略可。存在するディレクトリのみ受け付ける
}

// ConfigureResponse はリポジトリ設定レスポンス
type ConfigureResponse struct {
	RepoPath  string // 解決済みローカルパス（絶対パス）
	Owner     string
	Name      string
	VaultPath string // 設定されなかった場合は空
	Cloned    bool   // 新規cloneしたらtrue、既存リポジトリへの接続ならfalse
	Message   string // レンダリング済みテキスト
}

// ExportNoteRequest はノート書き出しリクエスト
type ExportNoteRequest struct {
	Content  string // 必須
	NoteName string // 必須
	Category string // 省略時は "GitHub Analysis"
}

// ExportNoteResponse はノート書き出しレスポンス
type ExportNoteResponse struct {
	Path    string // 書き込んだファイルのパス
	Message string // レンダリング済みテキスト
}

// GitHubClient はリモートAPIクライアントのインターフェース
type GitHubClient interface {
	ListIssues(ctx context.Context, owner, repo, state string, limit int) ([]model.Issue, error)
	ListPullRequests(ctx context.Context, owner, repo, state string, limit int) ([]model.PullRequest, error)
}

// NoteExporter はノート書き出しのインターフェース
type NoteExporter interface {
	Export(req vault.ExportRequest) (string, error)
}

// InspectorService はインスペクターの6ツールを提供する
// Configureのみがセッションを書き換え、他はセッションを読むだけ。
// 呼び出しは1リクエストずつ直列に処理される前提で、排他制御はしない
type InspectorService interface {
	// Configure はGitHub URLをパースし、ローカルリポジトリをclone
	// または既存のものに接続してセッションを設定する
	Configure(ctx context.Context, req *ConfigureRequest) (*ConfigureResponse, error)
	// Status はgit statusの短縮形と完全形を整形して返す
	Status(ctx context.Context) (string, error)
	// RecentCommits は直近limit件のコミットを整形して返す
	RecentCommits(ctx context.Context, limit int) (string, error)
	// Issues はGitHub issue一覧を整形して返す
	Issues(ctx context.Context, state string, limit int) (string, error)
	// PullRequests はGitHub pull request一覧を整形して返す
	PullRequests(ctx context.Context, state string, limit int) (string, error)
	// ExportNote はObsidian vaultにノートを書き出す
	ExportNote(ctx context.Context, req *ExportNoteRequest) (*ExportNoteResponse, error)
	// Session は現在のセッションのコピーを返す
	Session() model.Session
}
