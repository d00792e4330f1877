package vault

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// fixedClock はテスト用の固定時刻を返す
func fixedClock() func() time.Time {
	ts := time.Date(2024, 1, 15, 10, 30, 45, 0, time.UTC)
	return func() time.Time { return ts }
}

func newTestExporter() *Exporter {
	return NewExporter(
		WithClock(fixedClock()),
		WithIDGenerator(func() string { return "test-note-id" }),
	)
}

// TestExport_CreatesFile はタイムスタンプ付きファイルが1つ作成されることをテスト
func TestExport_CreatesFile(t *testing.T) {
	vaultDir := t.TempDir()
	exporter := newTestExporter()

	path, err := exporter.Export(ExportRequest{
		VaultPath: vaultDir,
		Category:  "Notes",
		NoteName:  "My Note",
		Content:   "X",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := filepath.Join(vaultDir, "Notes", "2024-01-15-103045-My-Note.md")
	if path != want {
		t.Errorf("expected path %s, got %s", want, path)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file to exist: %v", err)
	}

	// カテゴリフォルダに作成されたファイルは1つだけ
	entries, err := os.ReadDir(filepath.Join(vaultDir, "Notes"))
	if err != nil {
		t.Fatalf("failed to read category dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected exactly 1 file, got %d", len(entries))
	}
}

// TestExport_Content は本文とフロントマターの内容をテスト
func TestExport_Content(t *testing.T) {
	vaultDir := t.TempDir()
	exporter := newTestExporter()

	path, err := exporter.Export(ExportRequest{
		VaultPath:  vaultDir,
		Category:   "GitHub Analysis",
		NoteName:   "Findings",
		Content:    "literal content here",
		RepoPath:   "/work/widgets",
		RemoteSlug: "acme/widgets",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read note: %v", err)
	}
	doc := string(data)

	// 本文がそのまま含まれる
	if !strings.Contains(doc, "literal content here") {
		t.Error("expected literal content in note")
	}
	// フロントマター
	if !strings.HasPrefix(doc, "---\n") {
		t.Error("expected note to start with front matter")
	}
	if !strings.Contains(doc, "created: 2024-01-15T10:30:45Z") {
		t.Errorf("expected created timestamp, got:\n%s", doc)
	}
	if !strings.Contains(doc, "id: test-note-id") {
		t.Error("expected note id in front matter")
	}
	// カテゴリ由来のタグ（小文字・ハイフン化）
	if !strings.Contains(doc, "tags: [github, git, analysis, github-analysis]") {
		t.Errorf("expected derived tag list, got:\n%s", doc)
	}
	if !strings.Contains(doc, "repository: /work/widgets") {
		t.Error("expected repository in front matter")
	}
	if !strings.Contains(doc, "github_repo: acme/widgets") {
		t.Error("expected github_repo in front matter")
	}
	// 見出しと参照行
	if !strings.Contains(doc, "# Findings\n") {
		t.Error("expected h1 heading with note name")
	}
	if !strings.Contains(doc, "Generated: 2024-01-15 10:30:45") {
		t.Error("expected generated line")
	}
	if !strings.Contains(doc, "GitHub: [acme/widgets](https://github.com/acme/widgets)") {
		t.Error("expected GitHub reference link")
	}
}

// TestExport_WithoutRepoAndRemote はリポジトリ未設定時にN/Aが書かれることをテスト
func TestExport_WithoutRepoAndRemote(t *testing.T) {
	vaultDir := t.TempDir()
	exporter := newTestExporter()

	path, err := exporter.Export(ExportRequest{
		VaultPath: vaultDir,
		Category:  "Notes",
		NoteName:  "Standalone",
		Content:   "X",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read note: %v", err)
	}
	doc := string(data)

	if !strings.Contains(doc, "repository: N/A") {
		t.Error("expected repository N/A")
	}
	if !strings.Contains(doc, "github_repo: N/A") {
		t.Error("expected github_repo N/A")
	}
	// リモート未設定ならGitHub参照行は出力しない
	if strings.Contains(doc, "GitHub: [") {
		t.Error("expected no GitHub reference link")
	}
}

// TestExport_DefaultCategory はカテゴリ省略時のデフォルトをテスト
func TestExport_DefaultCategory(t *testing.T) {
	vaultDir := t.TempDir()
	exporter := newTestExporter()

	path, err := exporter.Export(ExportRequest{
		VaultPath: vaultDir,
		NoteName:  "Note",
		Content:   "X",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(path, filepath.Join(vaultDir, "GitHub Analysis")) {
		t.Errorf("expected default category folder, got %s", path)
	}
}

// TestExport_NestedCategory は中間ディレクトリも作成されることをテスト
func TestExport_NestedCategory(t *testing.T) {
	vaultDir := t.TempDir()
	exporter := newTestExporter()

	path, err := exporter.Export(ExportRequest{
		VaultPath: vaultDir,
		Category:  filepath.Join("Projects", "Widgets"),
		NoteName:  "Note",
		Content:   "X",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file to exist: %v", err)
	}
}
