package main

import (
	"fmt"

	"github.com/docforge/sveltedocs/mcp"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	ports := &mcp.Ports{
		Search:    deps.Search,
		Documents: deps.Documents,
	}
	// A nil *Indexer inside the interface would pass the nil check downstream.
	if deps.Indexer != nil {
		ports.Refresher = deps.Indexer
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	if c.HTTP != "" {
		fmt.Fprintf(deps.Stderr, "serving MCP over HTTP on %s\n", c.HTTP)
		return server.RunHTTP(deps.Ctx, c.HTTP)
	}

	return server.Run(deps.Ctx)
}
