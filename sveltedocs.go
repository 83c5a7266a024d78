// Package sveltedocs indexes the Svelte documentation corpus into a
// term-frequency index and answers ranked keyword/phrase queries against it,
// filtered by document type and package. It powers a CLI and an MCP server
// that expose the search surface to coding agents.
//
// This package contains domain types, interfaces, and the pure parts of the
// engine (tokenization, section parsing, weighting, categorization,
// suggestion expansion), following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., sqlite/, http/, mcp/).
package sveltedocs
