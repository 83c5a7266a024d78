package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/docforge/sveltedocs"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// uriScheme is the custom URI scheme for documentation resources.
const uriScheme = "svelte-docs://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing packages.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "packages",
		Name:        "packages",
		Description: "List of indexed documentation packages",
		MIMEType:    "application/json",
	}, s.handlePackagesResource)

	// Template for per-package document listings.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "packages/{package}",
		Name:        "package-documents",
		Description: "Documents indexed for a specific package",
		MIMEType:    "application/json",
	}, s.handlePackageResource)

	// Template for document content.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "documents/{documentId}",
		Name:        "document-content",
		Description: "Content of a specific documentation section",
		MIMEType:    "text/markdown",
	}, s.handleDocumentResource)
}

// handlePackagesResource returns the list of valid packages.
func (s *Server) handlePackagesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	packages := []sveltedocs.Package{
		sveltedocs.PackageSvelte,
		sveltedocs.PackageKit,
		sveltedocs.PackageCLI,
	}

	data, err := json.MarshalIndent(packages, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling packages: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handlePackageResource returns the documents indexed for one package.
func (s *Server) handlePackageResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	pkg := sveltedocs.Package(extractPackage(req.Params.URI))
	if !pkg.Valid() {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	docs, err := s.ports.Documents.FindDocuments(ctx, sveltedocs.DocumentFilter{Package: &pkg})
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}

	type docInfo struct {
		ID        string   `json:"id"`
		DocType   string   `json:"doc_type"`
		Hierarchy []string `json:"hierarchy,omitempty"`
	}

	infos := make([]docInfo, len(docs))
	for i := range docs {
		infos[i] = docInfo{
			ID:        docs[i].ID,
			DocType:   string(docs[i].Type),
			Hierarchy: docs[i].Hierarchy,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling documents: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleDocumentResource returns the content of one documentation section.
func (s *Server) handleDocumentResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	docID := extractDocumentID(req.Params.URI)
	if docID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	doc, err := s.ports.Documents.FindDocumentByID(ctx, docID)
	if err != nil {
		if sveltedocs.ErrorCode(err) == sveltedocs.ENOTFOUND {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		return nil, fmt.Errorf("getting document: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/markdown",
			Text:     doc.Content,
		}},
	}, nil
}

// extractPackage extracts the package from a URI like svelte-docs://packages/{package}.
func extractPackage(uri string) string {
	const prefix = uriScheme + "packages/"
	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	return strings.TrimPrefix(uri, prefix)
}

// extractDocumentID extracts the document ID from a URI like svelte-docs://documents/{documentId}.
func extractDocumentID(uri string) string {
	const prefix = uriScheme + "documents/"
	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	return strings.TrimPrefix(uri, prefix)
}
