package sveltedocs

import (
	"context"
	"strings"
	"time"
	"unicode"
)

// DocType classifies a documentation section.
type DocType string

// Document types. DocTypeAll is only valid as a search filter.
const (
	DocTypeAPI      DocType = "api"
	DocTypeTutorial DocType = "tutorial"
	DocTypeExample  DocType = "example"
	DocTypeError    DocType = "error"
	DocTypeAll      DocType = "all"
)

// Valid reports whether t names a storable document type.
func (t DocType) Valid() bool {
	switch t {
	case DocTypeAPI, DocTypeTutorial, DocTypeExample, DocTypeError:
		return true
	}
	return false
}

// Package identifies the documentation package a section belongs to.
type Package string

// Documentation packages.
const (
	PackageSvelte Package = "svelte"
	PackageKit    Package = "kit"
	PackageCLI    Package = "cli"
)

// Valid reports whether p names a known package.
func (p Package) Valid() bool {
	switch p {
	case PackageSvelte, PackageKit, PackageCLI:
		return true
	}
	return false
}

// Variant names a compression tier of the documentation distribution.
// Per-package sources carry no variant.
type Variant string

// Documentation variants.
const (
	VariantFull  Variant = "full"
	VariantSmall Variant = "small"
)

// Document represents one indexed documentation section.
// A document is immutable per version: re-indexing the same logical section
// overwrites it in place, never duplicates it.
type Document struct {
	ID          string    `json:"id"`
	Type        DocType   `json:"type"`
	Package     Package   `json:"package,omitempty"`
	Variant     Variant   `json:"variant,omitempty"`
	Content     string    `json:"content"`
	Hierarchy   []string  `json:"hierarchy,omitempty"` // outermost to innermost, at most two levels
	ContentHash string    `json:"contentHash,omitempty"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.ID == "" {
		return Errorf(EINVALID, "document ID required")
	}
	if !d.Type.Valid() {
		return Errorf(EINVALID, "invalid document type %q", d.Type)
	}
	if d.Package != "" && !d.Package.Valid() {
		return Errorf(EINVALID, "invalid package %q", d.Package)
	}
	if len(d.Hierarchy) > 2 {
		return Errorf(EINVALID, "hierarchy is limited to two levels")
	}
	return nil
}

// Importance returns the section-importance weight of the document:
// 2.0 for a top-level section with no subsection, 1.0 otherwise.
func (d *Document) Importance() float64 {
	if len(d.Hierarchy) == 1 {
		return 2.0
	}
	return 1.0
}

// DocumentID derives the unique identifier for a section from its package,
// variant, and hierarchy path. Segments are lower-cased, slugified, and
// joined by hyphens.
func DocumentID(pkg Package, variant Variant, hierarchy []string) string {
	parts := make([]string, 0, len(hierarchy)+2)
	if pkg != "" {
		parts = append(parts, string(pkg))
	}
	if variant != "" {
		parts = append(parts, string(variant))
	}
	for _, h := range hierarchy {
		if s := slugify(h); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "-")
}

// slugify lower-cases a hierarchy segment and collapses runs of
// non-alphanumeric characters into single hyphens.
func slugify(s string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			prevHyphen = false
		} else if !prevHyphen && sb.Len() > 0 {
			sb.WriteRune('-')
			prevHyphen = true
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}

// IndexEntry is one row of the term-frequency index: the number of times a
// term occurs within a document's section, weighted by the section's
// structural prominence. (DocID, Term) is unique; re-indexing overwrites.
type IndexEntry struct {
	DocID             string  `json:"docId"`
	Term              string  `json:"term"`
	Frequency         int     `json:"frequency"`
	SectionImportance float64 `json:"sectionImportance"`
}

// DocumentService manages documents and their term index.
type DocumentService interface {
	// UpsertDocuments stores documents and their term indexes in batches.
	// Each batch is written in a single transaction; a mid-batch failure
	// rolls back only that batch and is returned. Batches already committed
	// stay committed.
	UpsertDocuments(ctx context.Context, docs []*Document) error

	// IndexDocument rebuilds the term index for a single document from the
	// given content. Idempotent: indexing identical content twice yields
	// the same index-entry set.
	IndexDocument(ctx context.Context, id, content string, importance float64) error

	// FindDocumentByID retrieves a document by ID.
	// Returns ENOTFOUND if the document does not exist.
	FindDocumentByID(ctx context.Context, id string) (*Document, error)

	// FindDocuments retrieves documents matching the filter.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)

	// DeleteDocumentsByPackage removes all documents (and, via ownership,
	// their index entries) for a package.
	DeleteDocumentsByPackage(ctx context.Context, pkg Package) error
}

// DocumentFilter represents a filter for FindDocuments.
type DocumentFilter struct {
	ID      *string  `json:"id"`
	Type    *DocType `json:"type"`
	Package *Package `json:"package"`
	Variant *Variant `json:"variant"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
