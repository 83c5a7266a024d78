package main

import (
	"context"
	"io"

	"github.com/docforge/sveltedocs"
	"github.com/docforge/sveltedocs/indexer"
	"github.com/docforge/sveltedocs/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Documents sveltedocs.DocumentService
	Search    sveltedocs.SearchService
	Indexer   *indexer.Indexer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log service calls to stderr"`

	Index   IndexCmd   `cmd:"" help:"Fetch and index the documentation sources"`
	Search  SearchCmd  `cmd:"" help:"Search the documentation index"`
	Suggest SuggestCmd `cmd:"" help:"Show related-term suggestions for query terms"`
	Docs    DocsCmd    `cmd:"" help:"List or show indexed documents"`
	Serve   ServeCmd   `cmd:"" help:"Serve the index over the Model Context Protocol"`
}

// IndexCmd is the "index" subcommand.
type IndexCmd struct {
	Package     string `arg:"" optional:"" help:"Index only this package (svelte, kit, or cli)"`
	Concurrency int    `short:"c" default:"4" help:"Concurrent fetch limit"`
	Dir         string `short:"d" help:"Index from a local documentation snapshot instead of the network"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query   []string `arg:"" help:"Keywords or quoted phrases"`
	Type    string   `short:"t" help:"Restrict to a document type (api, tutorial, example, error)"`
	Package string   `short:"p" help:"Restrict to a package (svelte, kit, cli)"`
	Full    bool     `help:"Show full result content"`
}

// SuggestCmd is the "suggest" subcommand.
type SuggestCmd struct {
	Terms []string `arg:"" help:"Query terms to suggest related terms for"`
}

// DocsCmd is the "docs" subcommand.
type DocsCmd struct {
	Package string `arg:"" optional:"" help:"Package to list documents for"`
	ID      string `help:"Show the full content of one document"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	HTTP string `help:"Serve over HTTP on this address instead of stdio"`
}
