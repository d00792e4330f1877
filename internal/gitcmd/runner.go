// Package gitcmd executes the git binary as an external collaborator.
package gitcmd

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// DefaultBinary は実行するバイナリ名
const DefaultBinary = "git"

// Result はコマンド実行結果
// 非ゼロ終了コードもエラーではなく通常の結果として扱う
type Result struct {
	Stdout   string // 標準出力
	Stderr   string // 標準エラー出力
	ExitCode int    // 終了コード
}

// Runner はgitコマンドを実行するインターフェース
type Runner interface {
	// Run はargsでgitを起動し、完了まで待つ
	// dirが空でなければ作業ディレクトリとして使用する
	// エラーを返すのは起動自体の失敗のみ（バイナリなし、dir不正など）
	// タイムアウトは設けない（外部バイナリが固まるとその呼び出しも固まる）
	Run(ctx context.Context, dir string, args ...string) (*Result, error)
}

// ExecRunner はos/execによるRunnerの実装
type ExecRunner struct {
	binary string
}

// Option はExecRunnerのオプション
type Option func(*ExecRunner)

// WithBinary は実行するバイナリを変更する（テスト用）
func WithBinary(binary string) Option {
	return func(r *ExecRunner) {
		r.binary = binary
	}
}

// NewExecRunner は新しいExecRunnerを生成
func NewExecRunner(opts ...Option) *ExecRunner {
	r := &ExecRunner{
		binary: DefaultBinary,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run はRunnerを実装する
func (r *ExecRunner) Run(ctx context.Context, dir string, args ...string) (*Result, error) {
	cmd := exec.CommandContext(ctx, r.binary, args...)
	if dir != "" {
		cmd.Dir = dir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := &Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		// 非ゼロ終了は通常の結果として返す
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		// 起動失敗（バイナリなし、dir不正など）
		return nil, err
	}

	return result, nil
}
