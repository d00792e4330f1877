package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/brbranch/repo_inspector_mcp/internal/config"
	"github.com/brbranch/repo_inspector_mcp/internal/github"
	"github.com/brbranch/repo_inspector_mcp/internal/model"
)

// IssuesOptions holds parsed issues command options
type IssuesOptions struct {
	Owner  string
	Repo   string
	State  string
	Limit  int
	Format string
}

// JSONOutput represents the JSON output format
type JSONOutput struct {
	Issues []JSONIssue `json:"issues"`
}

// JSONIssue represents a single issue in JSON output
type JSONIssue struct {
	Number    int      `json:"number"`
	Title     string   `json:"title"`
	Author    string   `json:"author"`
	CreatedAt string   `json:"created_at"`
	Labels    []string `json:"labels,omitempty"`
	URL       string   `json:"url"`
}

// parseIssuesFlags parses command line arguments for the issues command
func parseIssuesFlags(args []string) (*IssuesOptions, error) {
	fs := flag.NewFlagSet("issues", flag.ContinueOnError)
	fs.SetOutput(io.Discard) // suppress default error output

	opts := &IssuesOptions{}

	// Long flags
	fs.StringVar(&opts.Owner, "owner", "", "Repository owner (required)")
	fs.StringVar(&opts.Repo, "repo", "", "Repository name (required)")
	fs.StringVar(&opts.State, "state", "open", "Issue state: open|closed|all")
	fs.IntVar(&opts.Limit, "limit", 10, "Number of issues")
	fs.StringVar(&opts.Format, "format", "text", "Output format: text|json")

	// Short flags
	fs.StringVar(&opts.Owner, "o", "", "Repository owner (required)")
	fs.StringVar(&opts.Repo, "r", "", "Repository name (required)")
	fs.StringVar(&opts.State, "s", "open", "Issue state: open|closed|all")
	fs.IntVar(&opts.Limit, "n", 10, "Number of issues")
	fs.StringVar(&opts.Format, "f", "text", "Output format: text|json")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Validation
	if opts.Owner == "" {
		return nil, fmt.Errorf("owner is required (-o or --owner)")
	}
	if opts.Repo == "" {
		return nil, fmt.Errorf("repo is required (-r or --repo)")
	}
	if opts.State != "open" && opts.State != "closed" && opts.State != "all" {
		return nil, fmt.Errorf("invalid state: %s (must be open, closed or all)", opts.State)
	}
	if opts.Limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than 0")
	}
	if opts.Format != "text" && opts.Format != "json" {
		return nil, fmt.Errorf("invalid format: %s (must be text or json)", opts.Format)
	}

	return opts, nil
}

// runIssuesCmd is the entry point for the issues command
func runIssuesCmd(args []string) error {
	opts, err := parseIssuesFlags(args)
	if err != nil {
		return err
	}

	ctx := context.Background()
	client := github.NewClient(config.GetGitHubToken())

	issues, err := client.ListIssues(ctx, opts.Owner, opts.Repo, opts.State, opts.Limit)
	if err != nil {
		return fmt.Errorf("list issues failed: %w", err)
	}

	switch opts.Format {
	case "json":
		if err := formatJSONOutput(os.Stdout, issues); err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}
	default:
		formatTextOutput(os.Stdout, issues)
	}

	return nil
}

// formatTextOutput outputs issues in human-readable text format
func formatTextOutput(w io.Writer, issues []model.Issue) {
	if len(issues) == 0 {
		fmt.Fprintln(w, "No issues found.")
		return
	}

	for i := range issues {
		issue := &issues[i]
		fmt.Fprintf(w, "#%d %s\n", issue.Number, issue.Title)
		fmt.Fprintf(w, "    %s • %s\n", issue.User.Login, issue.CreatedDate())
		if labels := issue.LabelNames(); len(labels) > 0 {
			fmt.Fprintf(w, "    labels: %s\n", strings.Join(labels, ", "))
		}
		fmt.Fprintf(w, "    %s\n\n", issue.HTMLURL)
	}
}

// formatJSONOutput outputs issues in JSON format
func formatJSONOutput(w io.Writer, issues []model.Issue) error {
	output := JSONOutput{
		Issues: make([]JSONIssue, 0, len(issues)),
	}

	for i := range issues {
		issue := &issues[i]
		output.Issues = append(output.Issues, JSONIssue{
			Number:    issue.Number,
			Title:     issue.Title,
			Author:    issue.User.Login,
			CreatedAt: issue.CreatedAt,
			Labels:    issue.LabelNames(),
			URL:       issue.HTMLURL,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
