package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestExpandTilde_TildeOnly は"~"のみがホームに展開されることをテスト
func TestExpandTilde_TildeOnly(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("cannot get home directory: %v", err)
	}

	got, err := ExpandTilde("~")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != home {
		t.Errorf("expected %s, got %s", home, got)
	}
}

// TestExpandTilde_TildeSlash は"~/"プレフィックスが展開されることをテスト
func TestExpandTilde_TildeSlash(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("cannot get home directory: %v", err)
	}

	got, err := ExpandTilde("~/vault")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != filepath.Join(home, "vault") {
		t.Errorf("expected %s, got %s", filepath.Join(home, "vault"), got)
	}
}

// TestExpandTilde_NoTilde はチルダなしのパスがそのまま返ることをテスト
func TestExpandTilde_NoTilde(t *testing.T) {
	got, err := ExpandTilde("/tmp/vault")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "/tmp/vault" {
		t.Errorf("expected /tmp/vault, got %s", got)
	}
}

// TestExpandTilde_TildeUser は"~user"形式がそのまま返ることをテスト
func TestExpandTilde_TildeUser(t *testing.T) {
	got, err := ExpandTilde("~alice/vault")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "~alice/vault" {
		t.Errorf("expected ~alice/vault, got %s", got)
	}
}

// TestCanonicalizePath_Relative は相対パスが絶対パス化されることをテスト
func TestCanonicalizePath_Relative(t *testing.T) {
	got, err := CanonicalizePath("some/relative/path")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("expected absolute path, got %s", got)
	}
	if !strings.HasSuffix(got, filepath.Join("some", "relative", "path")) {
		t.Errorf("expected path to end with some/relative/path, got %s", got)
	}
}

// TestEnsureDir_Creates はディレクトリが作成されることをテスト
func TestEnsureDir_Creates(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	if err := EnsureDir(dir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("expected directory to exist: %v", err)
	}
	if !info.IsDir() {
		t.Error("expected a directory")
	}
}

// TestEnsureDir_Existing は既存ディレクトリでエラーにならないことをテスト
func TestEnsureDir_Existing(t *testing.T) {
	dir := t.TempDir()

	if err := EnsureDir(dir); err != nil {
		t.Errorf("unexpected error for existing directory: %v", err)
	}
}

// TestDirExists はディレクトリ存在チェックをテスト
func TestDirExists(t *testing.T) {
	dir := t.TempDir()

	if !DirExists(dir) {
		t.Error("expected DirExists to be true for temp dir")
	}
	if DirExists(filepath.Join(dir, "missing")) {
		t.Error("expected DirExists to be false for missing path")
	}

	// ファイルはディレクトリではない
	file := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if DirExists(file) {
		t.Error("expected DirExists to be false for a file")
	}
}
