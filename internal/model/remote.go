package model

import "encoding/json"

// Author はGitHub APIレスポンスのユーザー情報（消費するのはloginのみ）
type Author struct {
	Login string `json:"login"`
}

// Label はissueに付与されたラベル
type Label struct {
	Name string `json:"name"`
}

// Issue はGitHub issues APIレスポンスの読み取り専用プロジェクション
// issuesエンドポイントはpull requestも返すため、pull_requestフィールドの
// 有無で判別できるように生のまま保持する
type Issue struct {
	Number      int             `json:"number"`
	Title       string          `json:"title"`
	User        Author          `json:"user"`
	CreatedAt   string          `json:"created_at"` // ISO8601
	Labels      []Label         `json:"labels"`
	HTMLURL     string          `json:"html_url"`
	PullRequest json.RawMessage `json:"pull_request,omitempty"`
}

// IsPullRequest はこのレコードがpull requestの裏返し参照を持つかを返す
func (i *Issue) IsPullRequest() bool {
	return len(i.PullRequest) > 0 && string(i.PullRequest) != "null"
}

// CreatedDate はcreated_atの日付部分（YYYY-MM-DD）を返す
func (i *Issue) CreatedDate() string {
	return datePart(i.CreatedAt)
}

// LabelNames はラベル名のスライスを返す
func (i *Issue) LabelNames() []string {
	names := make([]string, 0, len(i.Labels))
	for _, l := range i.Labels {
		names = append(names, l.Name)
	}
	return names
}

// Branch はpull requestのhead/base参照
type Branch struct {
	Ref string `json:"ref"`
}

// PullRequest はGitHub pulls APIレスポンスの読み取り専用プロジェクション
type PullRequest struct {
	Number    int    `json:"number"`
	Title     string `json:"title"`
	User      Author `json:"user"`
	CreatedAt string `json:"created_at"` // ISO8601
	Draft     bool   `json:"draft"`
	HTMLURL   string `json:"html_url"`
	Head      Branch `json:"head"`
	Base      Branch `json:"base"`
}

// CreatedDate はcreated_atの日付部分（YYYY-MM-DD）を返す
func (p *PullRequest) CreatedDate() string {
	return datePart(p.CreatedAt)
}

// datePart はISO8601文字列の先頭10文字（日付部分）を返す
// 10文字未満ならそのまま返す
func datePart(ts string) string {
	if len(ts) < 10 {
		return ts
	}
	return ts[:10]
}
