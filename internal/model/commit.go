package model

import (
	"fmt"
	"strings"
)

// CommitLogFormat はgit logの1行フォーマット（ハッシュ|著者|日付|サブジェクト）
const CommitLogFormat = "%h|%an|%ad|%s"

// CommitFieldCount はCommitLogFormatのフィールド数
const CommitFieldCount = 4

// Commit はgit logの1行をパースしたコミット情報
type Commit struct {
	Hash    string // 短縮ハッシュ
	Author  string // 著者名
	Date    string // --date=short形式（YYYY-MM-DD）
	Subject string // コミットメッセージの1行目
}

// ParseCommitLine はCommitLogFormat形式の1行をパースする
// 区切り文字がない、またはフィールドが不足している行はエラーを返す
// （呼び出し側はエラー行を黙ってスキップする）
func ParseCommitLine(line string) (*Commit, error) {
	if !strings.Contains(line, "|") {
		return nil, fmt.Errorf("commit line has no delimiter: %q", line)
	}

	parts := strings.SplitN(line, "|", CommitFieldCount)
	if len(parts) < CommitFieldCount {
		return nil, fmt.Errorf("commit line has %d fields, want %d: %q", len(parts), CommitFieldCount, line)
	}

	return &Commit{
		Hash:    parts[0],
		Author:  parts[1],
		Date:    parts[2],
		Subject: parts[3],
	}, nil
}
