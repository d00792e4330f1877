package main

import (
	"testing"
)

// TestParseFlags_Defaults はデフォルト値をテスト
func TestParseFlags_Defaults(t *testing.T) {
	opts, err := parseFlags([]string{"serve"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if opts.Transport != "stdio" {
		t.Errorf("expected default transport stdio, got %s", opts.Transport)
	}
	if opts.Host != "127.0.0.1" {
		t.Errorf("expected default host 127.0.0.1, got %s", opts.Host)
	}
	if opts.Port != 8765 {
		t.Errorf("expected default port 8765, got %d", opts.Port)
	}
}

// TestParseFlags_NoArgs は引数なしでserve相当になることをテスト
func TestParseFlags_NoArgs(t *testing.T) {
	opts, err := parseFlags([]string{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if opts.Transport != "stdio" {
		t.Errorf("expected default transport stdio, got %s", opts.Transport)
	}
}

// TestParseFlags_HTTPTransport はHTTP transportの指定をテスト
func TestParseFlags_HTTPTransport(t *testing.T) {
	opts, err := parseFlags([]string{"serve", "-t", "http", "-p", "8080"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if opts.Transport != "http" {
		t.Errorf("expected transport http, got %s", opts.Transport)
	}
	if opts.Port != 8080 {
		t.Errorf("expected port 8080, got %d", opts.Port)
	}
}

// TestParseFlags_LongFlags はロングフラグをテスト
func TestParseFlags_LongFlags(t *testing.T) {
	opts, err := parseFlags([]string{"serve", "--transport", "http", "--host", "0.0.0.0", "--port", "9000"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if opts.Transport != "http" {
		t.Errorf("expected transport http, got %s", opts.Transport)
	}
	if opts.Host != "0.0.0.0" {
		t.Errorf("expected host 0.0.0.0, got %s", opts.Host)
	}
	if opts.Port != 9000 {
		t.Errorf("expected port 9000, got %d", opts.Port)
	}
}

// TestParseFlags_InvalidTransport は不正なtransportがエラーになることをテスト
func TestParseFlags_InvalidTransport(t *testing.T) {
	if _, err := parseFlags([]string{"serve", "-t", "websocket"}); err == nil {
		t.Error("expected error for invalid transport, got nil")
	}
}

// TestParseFlags_InvalidPort は範囲外のポートがエラーになることをテスト
func TestParseFlags_InvalidPort(t *testing.T) {
	tests := []struct {
		name string
		port string
	}{
		{"zero", "0"},
		{"negative", "-1"},
		{"too large", "70000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseFlags([]string{"serve", "-p", tt.port}); err == nil {
				t.Errorf("expected error for port %s, got nil", tt.port)
			}
		})
	}
}

// TestParseFlags_UnknownSubcommand は未知のサブコマンドがエラーになることをテスト
func TestParseFlags_UnknownSubcommand(t *testing.T) {
	if _, err := parseFlags([]string{"unknown"}); err == nil {
		t.Error("expected error for unknown subcommand, got nil")
	}
}
