package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/docforge/sveltedocs"
	"github.com/docforge/sveltedocs/fs"
	sdhttp "github.com/docforge/sveltedocs/http"
	"github.com/docforge/sveltedocs/htmltomarkdown"
	"github.com/docforge/sveltedocs/indexer"
	sdslog "github.com/docforge/sveltedocs/slog"
	"github.com/docforge/sveltedocs/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	DocumentService sveltedocs.DocumentService
	SearchService   sveltedocs.SearchService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("sveltedocs"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'sveltedocs --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	// The suggest command works off the static vocabulary alone.
	if cmd == "suggest" {
		return kongCtx.Run(deps)
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set SVELTEDOCS_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.DocumentService = sqlite.NewDocumentService(m.DB)
	m.SearchService = sqlite.NewSearchService(m.DB)
	deps.DB = m.DB
	deps.Documents = m.DocumentService
	deps.Search = m.SearchService

	// The serve command always logs; other commands log with --verbose.
	logger := slog.New(slog.NewTextHandler(stderr, nil))
	logging := cli.Verbose || cmd == "serve"
	if logging {
		deps.Search = sdslog.NewLoggingSearchService(deps.Search, logger)
	}

	// Wire command-specific dependencies based on command
	if cmd == "index" || cmd == "serve" {
		var fetcher sveltedocs.Fetcher
		var limiter sveltedocs.HostLimiter
		if cmd == "index" && cli.Index.Dir != "" {
			fetcher = fs.NewFetcher(cli.Index.Dir)
		} else {
			fetcher = sdhttp.NewFetcher()
			limiter = indexer.NewHostLimiter(indexer.DefaultRequestsPerSecond)
		}
		if logging {
			fetcher = sdslog.NewLoggingFetcher(fetcher, logger)
		}

		deps.Indexer = &indexer.Indexer{
			Fetcher:     fetcher,
			Converter:   htmltomarkdown.NewConverter(),
			Documents:   m.DocumentService,
			RateLimiter: limiter,
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("SVELTEDOCS_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "sveltedocs.db"
	}
	dir := filepath.Join(home, ".sveltedocs")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "sveltedocs.db")
}
