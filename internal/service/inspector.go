// Package service implements the tool behaviors of the GitHub inspector.
package service

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/brbranch/repo_inspector_mcp/internal/config"
	"github.com/brbranch/repo_inspector_mcp/internal/gitcmd"
	"github.com/brbranch/repo_inspector_mcp/internal/model"
	"github.com/brbranch/repo_inspector_mcp/internal/vault"
)

// githubHost はGitHubの正規ホスト名
const githubHost = "github.com"

// inspectorService はInspectorServiceの実装
type inspectorService struct {
	session  model.Session
	runner   gitcmd.Runner
	github   GitHubClient
	exporter NoteExporter
	getwd    func() (string, error)
}

// Option はinspectorServiceのオプション
type Option func(*inspectorService)

// WithGetwd はカレントディレクトリの取得関数を差し替える（テスト用）
func WithGetwd(getwd func() (string, error)) Option {
	return func(s *inspectorService) {
		s.getwd = getwd
	}
}

// NewInspectorService はInspectorServiceの新しいインスタンスを作成
// セッションは空の状態で生成され、Configureでのみ書き換えられる
func NewInspectorService(runner gitcmd.Runner, client GitHubClient, exporter NoteExporter, opts ...Option) InspectorService {
	s := &inspectorService{
		runner:   runner,
		github:   client,
		exporter: exporter,
		getwd:    os.Getwd,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Session は現在のセッションのコピーを返す
func (s *inspectorService) Session() model.Session {
	return s.session
}

// Configure はリポジトリを設定する
// clone失敗時はセッションを書き換えない
func (s *inspectorService) Configure(ctx context.Context, req *ConfigureRequest) (*ConfigureResponse, error) {
	if req.GitHubURL == "" {
		return nil, ErrURLRequired
	}

	// URLのパースとホスト検証
	parsed, err := url.Parse(req.GitHubURL)
	if err != nil || !strings.EqualFold(parsed.Hostname(), githubHost) {
		return nil, ErrUnsupportedHost
	}

	// パスからowner/nameを抽出（先頭2つの非空セグメント）
	var parts []string
	for _, p := range strings.Split(parsed.Path, "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) < 2 {
		return nil, ErrInvalidRepoURL
	}
	owner := parts[0]
	name := strings.TrimSuffix(parts[1], ".git")

	// ローカルパスの決定（省略時は <cwd>/<name>）と正規化
	// チルダ展開と絶対パス化をclone前に行う
	localPath := req.LocalPath
	if localPath == "" {
		cwd, err := s.getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		localPath = filepath.Join(cwd, name)
	}
	localPath, err = config.CanonicalizePath(localPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve local path: %w", err)
	}

	// 既存リポジトリへの接続、またはclone
	cloned := false
	if !config.DirExists(filepath.Join(localPath, ".git")) {
		result, err := s.runner.Run(ctx, "", "clone", req.GitHubURL, localPath)
		if err != nil {
			return nil, fmt.Errorf("failed to run git clone: %w", err)
		}
		if result.ExitCode != 0 {
			// セッションは書き換えない
			return nil, &CloneError{Stderr: result.Stderr}
		}
		cloned = true
	}

	// セッション更新（ここまでエラーなしの場合のみ）
	s.session.LocalRepoPath = localPath
	s.session.RemoteOwner = owner
	s.session.RemoteName = name

	// vaultは正規化後に存在するディレクトリのみ受け付ける（なければ黙って無視）
	vaultPath := ""
	if req.ObsidianVault != "" {
		if p, err := config.CanonicalizePath(req.ObsidianVault); err == nil && config.DirExists(p) {
			s.session.VaultPath = p
			vaultPath = p
		}
	}

	var b strings.Builder
	if cloned {
		fmt.Fprintf(&b, "✅ Cloned repo to: %s", localPath)
	} else {
		fmt.Fprintf(&b, "✅ Connected to existing repo: %s", localPath)
	}
	if vaultPath != "" {
		fmt.Fprintf(&b, "\n📝 Obsidian vault: %s", vaultPath)
	}
	fmt.Fprintf(&b, "\n🐙 GitHub: %s/%s", owner, name)

	return &ConfigureResponse{
		RepoPath:  localPath,
		Owner:     owner,
		Name:      name,
		VaultPath: vaultPath,
		Cloned:    cloned,
		Message:   b.String(),
	}, nil
}

// Status はgit statusを整形して返す
func (s *inspectorService) Status(ctx context.Context) (string, error) {
	if !s.session.HasLocalRepo() {
		return "", ErrRepoNotConfigured
	}

	short, err := s.runner.Run(ctx, s.session.LocalRepoPath, "status", "--short")
	if err != nil {
		return "", fmt.Errorf("git status failed: %w", err)
	}
	full, err := s.runner.Run(ctx, s.session.LocalRepoPath, "status")
	if err != nil {
		return "", fmt.Errorf("git status failed: %w", err)
	}

	var b strings.Builder
	b.WriteString("## Git Status\n\n")
	if changes := strings.TrimSpace(short.Stdout); changes != "" {
		fmt.Fprintf(&b, "**Changes:**\n```\n%s\n```\n\n", changes)
	}
	fmt.Fprintf(&b, "**Full Status:**\n```\n%s\n```", strings.TrimSpace(full.Stdout))

	return b.String(), nil
}

// RecentCommits は直近limit件のコミットを整形して返す
// パースできない行は黙ってスキップする
func (s *inspectorService) RecentCommits(ctx context.Context, limit int) (string, error) {
	if !s.session.HasLocalRepo() {
		return "", ErrRepoNotConfigured
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	result, err := s.runner.Run(ctx, s.session.LocalRepoPath,
		"log", fmt.Sprintf("-%d", limit),
		"--pretty=format:"+model.CommitLogFormat, "--date=short")
	if err != nil {
		return "", fmt.Errorf("git log failed: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## Recent Commits (Last %d)\n\n", limit)

	for _, line := range strings.Split(strings.TrimSpace(result.Stdout), "\n") {
		commit, err := model.ParseCommitLine(line)
		if err != nil {
			continue
		}
		fmt.Fprintf(&b, "- **%s** (%s) %s: %s\n", commit.Hash, commit.Date, commit.Author, commit.Subject)
	}

	return b.String(), nil
}

// Issues はGitHub issue一覧を整形して返す
func (s *inspectorService) Issues(ctx context.Context, state string, limit int) (string, error) {
	if !s.session.HasRemote() {
		return "", ErrRemoteNotConfigured
	}
	state, limit = listDefaults(state, limit)

	issues, err := s.github.ListIssues(ctx, s.session.RemoteOwner, s.session.RemoteName, state, limit)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## GitHub Issues (%s) - %s\n\n", state, s.session.RemoteSlug())

	if len(issues) == 0 {
		b.WriteString("No issues found.\n")
		return b.String(), nil
	}

	for i := range issues {
		issue := &issues[i]
		fmt.Fprintf(&b, "**#%d** %s\n", issue.Number, issue.Title)
		fmt.Fprintf(&b, "👤 %s • 📅 %s", issue.User.Login, issue.CreatedDate())
		if labels := issue.LabelNames(); len(labels) > 0 {
			fmt.Fprintf(&b, " • 🏷️ %s", strings.Join(labels, ", "))
		}
		fmt.Fprintf(&b, "\n🔗 %s\n\n", issue.HTMLURL)
	}

	return b.String(), nil
}

// PullRequests はGitHub pull request一覧を整形して返す
func (s *inspectorService) PullRequests(ctx context.Context, state string, limit int) (string, error) {
	if !s.session.HasRemote() {
		return "", ErrRemoteNotConfigured
	}
	state, limit = listDefaults(state, limit)

	prs, err := s.github.ListPullRequests(ctx, s.session.RemoteOwner, s.session.RemoteName, state, limit)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## GitHub Pull Requests (%s) - %s\n\n", state, s.session.RemoteSlug())

	if len(prs) == 0 {
		b.WriteString("No pull requests found.\n")
		return b.String(), nil
	}

	for i := range prs {
		pr := &prs[i]
		fmt.Fprintf(&b, "**#%d** %s\n", pr.Number, pr.Title)
		fmt.Fprintf(&b, "👤 %s • 📅 %s", pr.User.Login, pr.CreatedDate())
		fmt.Fprintf(&b, " • %s → %s", pr.Head.Ref, pr.Base.Ref)
		if pr.Draft {
			b.WriteString(" • 📝 Draft")
		}
		fmt.Fprintf(&b, "\n🔗 %s\n\n", pr.HTMLURL)
	}

	return b.String(), nil
}

// ExportNote はObsidian vaultにノートを書き出す
func (s *inspectorService) ExportNote(ctx context.Context, req *ExportNoteRequest) (*ExportNoteResponse, error) {
	if !s.session.HasVault() {
		return nil, ErrVaultNotConfigured
	}
	if req.Content == "" {
		return nil, ErrContentRequired
	}
	if req.NoteName == "" {
		return nil, ErrNoteNameRequired
	}

	path, err := s.exporter.Export(vault.ExportRequest{
		VaultPath:  s.session.VaultPath,
		Category:   req.Category,
		NoteName:   req.NoteName,
		Content:    req.Content,
		RepoPath:   s.session.LocalRepoPath,
		RemoteSlug: s.session.RemoteSlug(),
	})
	if err != nil {
		return nil, err
	}

	return &ExportNoteResponse{
		Path:    path,
		Message: fmt.Sprintf("✅ Exported to: %s", path),
	}, nil
}

// listDefaults はstate/limitのデフォルト値を適用する
func listDefaults(state string, limit int) (string, int) {
	if state == "" {
		state = DefaultState
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	return state, limit
}
