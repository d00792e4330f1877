// Package config provides environment and path helpers for the inspector.
package config

import "os"

// 環境変数名の定数
const (
	// EnvGitHubToken はGitHub APIアクセストークンの環境変数名
	// 未設定なら未認証（レート制限あり）でリクエストする
	EnvGitHubToken = "GITHUB_TOKEN"
)

// GetGitHubToken は環境変数からGitHubトークンを取得する
// 未設定なら空文字列を返す
func GetGitHubToken() string {
	return os.Getenv(EnvGitHubToken)
}
