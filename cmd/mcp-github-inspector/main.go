package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/brbranch/repo_inspector_mcp/internal/bootstrap"
	"github.com/brbranch/repo_inspector_mcp/internal/jsonrpc"
	"github.com/brbranch/repo_inspector_mcp/internal/transport/http"
	"github.com/brbranch/repo_inspector_mcp/internal/transport/stdio"
)

// ビルド時変数（-ldflags で変更可能）
var (
	defaultTransport = "stdio"
	version          = "dev"
)

// Options はCLI引数オプション
type Options struct {
	Transport string
	Host      string
	Port      int
}

func main() {
	var err error

	// 引数なしの場合はserveをデフォルト実行
	if len(os.Args) < 2 {
		err = run([]string{})
	} else {
		switch os.Args[1] {
		case "serve":
			err = run(os.Args[1:])
		case "issues":
			err = runIssuesCmd(os.Args[2:])
		case "version", "-v", "--version":
			printVersion()
			return
		case "help", "-h", "--help":
			printUsage()
			return
		default:
			fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", os.Args[1])
			printUsage()
			os.Exit(1)
		}
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// printUsage prints the usage information
func printUsage() {
	fmt.Println(`mcp-github-inspector - GitHub Repository Inspector MCP Server

Usage:
  mcp-github-inspector <command> [options]

Commands:
  serve     Start the MCP server (stdio or HTTP)
  issues    List GitHub issues (oneshot command)
  version   Print version information
  help      Print this help message

Serve Options:
  -t, --transport string   Transport type: stdio, http (default: stdio)
  --host string            HTTP host (default: 127.0.0.1)
  -p, --port int           HTTP port (default: 8765)

Issues Options:
  -o, --owner string       Repository owner (required)
  -r, --repo string        Repository name (required)
  -s, --state string       Issue state: open, closed, all (default: open)
  -n, --limit int          Number of issues (default: 10)
  -f, --format string      Output format: text, json (default: text)

Environment:
  GITHUB_TOKEN             GitHub API token (optional, unauthenticated if unset)

Examples:
  mcp-github-inspector serve
  mcp-github-inspector serve -t http -p 8080
  mcp-github-inspector issues -o golang -r go
  mcp-github-inspector issues -o golang -r go -s closed -n 5 -f json`)
}

// printVersion prints the version information
func printVersion() {
	fmt.Printf("mcp-github-inspector version %s\n", version)
}

// run は実際の処理を行う（テスト容易性のため分離）
func run(args []string) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	ctx, cancel := setupSignalHandler()
	defer cancel()

	return runServe(ctx, opts)
}

// parseFlags は引数をパースしてOptionsを返す
func parseFlags(args []string) (*Options, error) {
	fs := flag.NewFlagSet("mcp-github-inspector", flag.ContinueOnError)

	opts := &Options{}
	fs.StringVar(&opts.Transport, "transport", defaultTransport, "Transport type: stdio, http")
	fs.StringVar(&opts.Transport, "t", defaultTransport, "Transport type (shorthand)")
	fs.StringVar(&opts.Host, "host", "127.0.0.1", "HTTP host")
	fs.IntVar(&opts.Port, "port", 8765, "HTTP port")
	fs.IntVar(&opts.Port, "p", 8765, "HTTP port (shorthand)")

	// serveサブコマンド確認（引数なしまたは"serve"で始まる場合のみ許可）
	var flagArgs []string
	if len(args) == 0 {
		// 引数なし: デフォルトでserve
		flagArgs = []string{}
	} else if args[0] == "serve" {
		flagArgs = args[1:]
	} else {
		return nil, fmt.Errorf("usage: mcp-github-inspector serve [options]")
	}

	if err := fs.Parse(flagArgs); err != nil {
		return nil, err
	}

	// バリデーション
	if opts.Transport != "stdio" && opts.Transport != "http" {
		return nil, fmt.Errorf("invalid transport: %s (must be stdio or http)", opts.Transport)
	}
	if opts.Port < 1 || opts.Port > 65535 {
		return nil, fmt.Errorf("invalid port: %d (must be 1-65535)", opts.Port)
	}

	return opts, nil
}

// setupSignalHandler はSIGINT/SIGTERMを受けてcontextをキャンセルする
func setupSignalHandler() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		cancel()
	}()

	return ctx, cancel
}

// runServe はserveコマンドを実行
func runServe(ctx context.Context, opts *Options) error {
	// 環境変数とコラボレーターの共通初期化
	services := bootstrap.Initialize()

	// JSON-RPC Handler初期化
	handler := jsonrpc.New(services.Inspector)

	// transport起動
	switch opts.Transport {
	case "stdio":
		server := stdio.New(handler)
		return server.Run(ctx)
	case "http":
		httpConfig := http.Config{
			Addr: fmt.Sprintf("%s:%d", opts.Host, opts.Port),
		}
		server := http.New(handler, httpConfig)
		return server.Run(ctx)
	default:
		return fmt.Errorf("unknown transport: %s", opts.Transport)
	}
}
