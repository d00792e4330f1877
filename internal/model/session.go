package model

// Session はプロセス内のインスペクター設定状態を表す
// configure_repository ツールのみが書き込み、他のツールは読み取り専用。
// 再起動をまたぐ永続化はしない
type Session struct {
	LocalRepoPath string // ローカルリポジトリの絶対パス、未設定なら空
	VaultPath     string // Obsidian vaultの絶対パス、未設定なら空
	RemoteOwner   string // GitHubオーナー名、未設定なら空
	RemoteName    string // GitHubリポジトリ名、未設定なら空
}

// HasLocalRepo はローカルリポジトリが設定済みかを返す
func (s *Session) HasLocalRepo() bool {
	return s.LocalRepoPath != ""
}

// HasRemote はGitHubリポジトリ（owner/name）が設定済みかを返す
func (s *Session) HasRemote() bool {
	return s.RemoteOwner != "" && s.RemoteName != ""
}

// HasVault はObsidian vaultが設定済みかを返す
func (s *Session) HasVault() bool {
	return s.VaultPath != ""
}

// RemoteSlug は "owner/name" 形式の識別子を返す（未設定なら空文字列）
func (s *Session) RemoteSlug() string {
	if !s.HasRemote() {
		return ""
	}
	return s.RemoteOwner + "/" + s.RemoteName
}
