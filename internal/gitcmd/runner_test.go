package gitcmd

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
)

// TestExecRunner_Stdout は標準出力が取得できることをテスト
// gitの代わりにshを使ってRunnerの挙動のみを検証する
func TestExecRunner_Stdout(t *testing.T) {
	runner := NewExecRunner(WithBinary("sh"))

	result, err := runner.Run(context.Background(), "", "-c", "echo hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.TrimSpace(result.Stdout) != "hello" {
		t.Errorf("expected stdout hello, got %q", result.Stdout)
	}
	if result.ExitCode != 0 {
		t.Errorf("expected exit code 0, got %d", result.ExitCode)
	}
}

// TestExecRunner_NonZeroExit は非ゼロ終了がエラーにならず結果として返ることをテスト
func TestExecRunner_NonZeroExit(t *testing.T) {
	runner := NewExecRunner(WithBinary("sh"))

	result, err := runner.Run(context.Background(), "", "-c", "echo oops >&2; exit 3")
	if err != nil {
		t.Fatalf("expected no error for non-zero exit, got %v", err)
	}

	if result.ExitCode != 3 {
		t.Errorf("expected exit code 3, got %d", result.ExitCode)
	}
	if strings.TrimSpace(result.Stderr) != "oops" {
		t.Errorf("expected stderr oops, got %q", result.Stderr)
	}
}

// TestExecRunner_WorkingDirectory は作業ディレクトリが適用されることをテスト
func TestExecRunner_WorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	runner := NewExecRunner(WithBinary("sh"))

	result, err := runner.Run(context.Background(), dir, "-c", "pwd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// /tmpがシンボリックリンクの環境があるため解決してから比較
	want, err := filepath.EvalSymlinks(dir)
	if err != nil {
		want = dir
	}
	if strings.TrimSpace(result.Stdout) != want {
		t.Errorf("expected pwd %s, got %q", want, result.Stdout)
	}
}

// TestExecRunner_BinaryNotFound はバイナリが見つからない場合にエラーを返すことをテスト
func TestExecRunner_BinaryNotFound(t *testing.T) {
	runner := NewExecRunner(WithBinary("definitely-not-a-real-binary-12345"))

	if _, err := runner.Run(context.Background(), "", "status"); err == nil {
		t.Error("expected error for missing binary, got nil")
	}
}

// TestExecRunner_ContextCancel はキャンセル済みcontextで起動が失敗することをテスト
func TestExecRunner_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := NewExecRunner(WithBinary("sh"))

	result, err := runner.Run(ctx, "", "-c", "sleep 10")
	// キャンセル済みなら起動失敗、またはkillされて非ゼロ終了のどちらか
	if err == nil && result.ExitCode == 0 {
		t.Error("expected failure for cancelled context")
	}
}
