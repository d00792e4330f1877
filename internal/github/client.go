// Package github implements a minimal GitHub REST API client.
//
// 消費するのはissues/pullsの一覧エンドポイントのみ。1ページのみ取得し、
// リトライもページネーションの追跡もしない。
package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DefaultBaseURL はGitHub REST APIのベースURL
const DefaultBaseURL = "https://api.github.com"

// acceptHeader はバージョン付きJSONメディアタイプ
const acceptHeader = "application/vnd.github.v3+json"

// APIError は非2xxレスポンスを表す
type APIError struct {
	StatusCode int    // HTTPステータスコード
	Body       string // レスポンスボディ（生テキスト）
}

func (e *APIError) Error() string {
	return fmt.Sprintf("GitHub API error: %d\n%s", e.StatusCode, e.Body)
}

// Client はGitHub REST APIクライアント
type Client struct {
	baseURL    string
	token      string // 空なら未認証
	httpClient *http.Client
}

// Option はClientのオプション
type Option func(*Client)

// WithBaseURL はベースURLを変更する（テスト用）
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient はHTTPクライアントを差し替える
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient は新しいClientを生成
// tokenが空なら未認証（レート制限あり）でリクエストする
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// get は一覧エンドポイントにGETリクエストを発行し、ボディを返す
func (c *Client) get(ctx context.Context, path, state string, limit int) ([]byte, error) {
	q := url.Values{}
	q.Set("state", state)
	q.Set("per_page", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", acceptHeader)
	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}
