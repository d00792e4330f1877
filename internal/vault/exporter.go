// Package vault exports analysis notes into an Obsidian vault.
package vault

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/brbranch/repo_inspector_mcp/internal/config"
	"github.com/google/uuid"
)

// DefaultCategory はカテゴリ未指定時のフォルダ名
const DefaultCategory = "GitHub Analysis"

// ExportRequest はノート書き出しリクエスト
type ExportRequest struct {
	VaultPath  string // vaultの絶対パス
	Category   string // vault内のフォルダ名（空ならDefaultCategory）
	NoteName   string // ノート名（ファイル名とh1見出しに使用）
	Content    string // 本文（そのまま書き込む）
	RepoPath   string // ローカルリポジトリパス、未設定なら空
	RemoteSlug string // "owner/name"、未設定なら空
}

// Exporter はノートをMarkdownファイルとして書き出す
// 1呼び出しにつき1ファイルを書き込むのみで、読み戻しやロックはしない。
// ファイル名のタイムスタンプは秒精度のため、同名ノートの同秒書き出しは
// 衝突しうる（許容する制限）
type Exporter struct {
	now   func() time.Time
	newID func() string
}

// Option はExporterのオプション
type Option func(*Exporter)

// WithClock は現在時刻の取得関数を差し替える（テスト用）
func WithClock(now func() time.Time) Option {
	return func(e *Exporter) {
		e.now = now
	}
}

// WithIDGenerator はノートID生成関数を差し替える（テスト用）
func WithIDGenerator(newID func() string) Option {
	return func(e *Exporter) {
		e.newID = newID
	}
}

// NewExporter は新しいExporterを生成
func NewExporter(opts ...Option) *Exporter {
	e := &Exporter{
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export はノートを書き出し、書き込んだファイルのパスを返す
func (e *Exporter) Export(req ExportRequest) (string, error) {
	category := req.Category
	if category == "" {
		category = DefaultCategory
	}

	// カテゴリフォルダを作成（中間ディレクトリ含む）
	folder := filepath.Join(req.VaultPath, category)
	if err := config.EnsureDir(folder); err != nil {
		return "", err
	}

	// ファイル名: <日付>-<時刻>-<ノート名のスペースをハイフンに>.md
	now := e.now()
	filename := fmt.Sprintf("%s-%s.md",
		now.Format("2006-01-02-150405"),
		strings.ReplaceAll(req.NoteName, " ", "-"))
	path := filepath.Join(folder, filename)

	doc := e.render(req, category, now)

	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		return "", fmt.Errorf("failed to write note: %w", err)
	}

	return path, nil
}

// render はフロントマター付きのノート本文を生成する
func (e *Exporter) render(req ExportRequest, category string, now time.Time) string {
	repoPath := req.RepoPath
	if repoPath == "" {
		repoPath = "N/A"
	}
	slug := req.RemoteSlug
	if slug == "" {
		slug = "N/A"
	}

	// カテゴリからタグを導出（小文字化してスペースをハイフンに）
	categoryTag := strings.ReplaceAll(strings.ToLower(category), " ", "-")

	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "created: %s\n", now.Format(time.RFC3339))
	fmt.Fprintf(&b, "id: %s\n", e.newID())
	fmt.Fprintf(&b, "tags: [github, git, analysis, %s]\n", categoryTag)
	fmt.Fprintf(&b, "repository: %s\n", repoPath)
	fmt.Fprintf(&b, "github_repo: %s\n", slug)
	b.WriteString("---\n\n")

	fmt.Fprintf(&b, "# %s\n\n", req.NoteName)
	fmt.Fprintf(&b, "Generated: %s\n", now.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Repository: `%s`\n", repoPath)
	if req.RemoteSlug != "" {
		fmt.Fprintf(&b, "GitHub: [%s](https://github.com/%s)\n", req.RemoteSlug, req.RemoteSlug)
	}
	b.WriteString("\n---\n\n")
	b.WriteString(req.Content)
	b.WriteString("\n")

	return b.String()
}
