package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/docforge/sveltedocs"
)

// Compile-time interface verification.
var _ sveltedocs.DocumentService = (*DocumentService)(nil)

// Batch sizing for bulk indexing. Documents are upserted in outer batches,
// one transaction each; index entries are written in smaller sub-batches
// inside that transaction. A mid-batch failure rolls back only the in-flight
// batch; earlier batches stay committed. Cross-batch atomicity is traded
// away for throughput over a large corpus.
const (
	documentBatchSize = 500
	entryBatchSize    = 100
)

// DocumentService implements sveltedocs.DocumentService using SQLite.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// UpsertDocuments stores documents and rebuilds their term indexes in
// batches. Documents whose content hash is unchanged keep their existing
// rows and index entries untouched. Documents are validated as their batch
// is written, so an invalid document fails only its own batch.
func (s *DocumentService) UpsertDocuments(ctx context.Context, docs []*sveltedocs.Document) error {
	for start := 0; start < len(docs); start += documentBatchSize {
		end := start + documentBatchSize
		if end > len(docs) {
			end = len(docs)
		}
		if err := s.upsertBatch(ctx, docs[start:end]); err != nil {
			return fmt.Errorf("upserting batch at %d: %w", start, err)
		}
	}

	return nil
}

// upsertBatch writes one batch of documents and their index entries inside
// a single transaction.
func (s *DocumentService) upsertBatch(ctx context.Context, docs []*sveltedocs.Document) error {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, doc := range docs {
		if err := doc.Validate(); err != nil {
			return err
		}

		doc.ContentHash = hashContent(doc.Content)
		if doc.LastUpdated.IsZero() {
			doc.LastUpdated = time.Now().UTC()
		}

		var existing string
		err := tx.QueryRowContext(ctx,
			"SELECT content_hash FROM documents WHERE id = ?", doc.ID).Scan(&existing)
		if err != nil && err != sql.ErrNoRows {
			return err
		}
		if err == nil && existing == doc.ContentHash {
			continue
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO documents (id, doc_type, package, variant, content, hierarchy, content_hash, last_updated)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				doc_type = excluded.doc_type,
				package = excluded.package,
				variant = excluded.variant,
				content = excluded.content,
				hierarchy = excluded.hierarchy,
				content_hash = excluded.content_hash,
				last_updated = excluded.last_updated
		`, doc.ID, string(doc.Type), nullString(string(doc.Package)), nullString(string(doc.Variant)),
			doc.Content, joinHierarchy(doc.Hierarchy), doc.ContentHash,
			doc.LastUpdated.Format(time.RFC3339)); err != nil {
			return err
		}

		if err := writeIndexEntries(ctx, tx, doc.ID, doc.Content, doc.Importance()); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// writeIndexEntries replaces the term index of one document inside tx.
func writeIndexEntries(ctx context.Context, tx *sql.Tx, docID, content string, importance float64) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM doc_index WHERE doc_id = ?", docID); err != nil {
		return err
	}

	entries := make([]sveltedocs.IndexEntry, 0)
	for term, freq := range sveltedocs.ExtractTerms(content) {
		entries = append(entries, sveltedocs.IndexEntry{
			DocID:             docID,
			Term:              term,
			Frequency:         freq,
			SectionImportance: importance,
		})
	}

	for start := 0; start < len(entries); start += entryBatchSize {
		end := start + entryBatchSize
		if end > len(entries) {
			end = len(entries)
		}

		var (
			query = "INSERT INTO doc_index (doc_id, term, frequency, section_importance) VALUES "
			args  []any
		)
		for i, e := range entries[start:end] {
			if i > 0 {
				query += ", "
			}
			query += "(?, ?, ?, ?)"
			args = append(args, e.DocID, e.Term, e.Frequency, e.SectionImportance)
		}
		query += ` ON CONFLICT(doc_id, term) DO UPDATE SET
			frequency = excluded.frequency,
			section_importance = excluded.section_importance`

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return err
		}
	}

	return nil
}

// IndexDocument rebuilds the term index for a single existing document.
// The zero importance defaults to 1.0.
func (s *DocumentService) IndexDocument(ctx context.Context, id, content string, importance float64) error {
	if id == "" {
		return sveltedocs.Errorf(sveltedocs.EINVALID, "document ID required")
	}
	if importance == 0 {
		importance = 1.0
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var exists int
	if err := tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM documents WHERE id = ?", id).Scan(&exists); err != nil {
		return err
	}
	if exists == 0 {
		return sveltedocs.Errorf(sveltedocs.ENOTFOUND, "document not found")
	}

	if err := writeIndexEntries(ctx, tx, id, content, importance); err != nil {
		return err
	}

	return tx.Commit()
}

// FindDocumentByID retrieves a document by ID.
func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*sveltedocs.Document, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, doc_type, package, variant, content, hierarchy, content_hash, last_updated
		FROM documents
		WHERE id = ?
	`, id)

	doc, err := scanDocument(row)
	if err == sql.ErrNoRows {
		return nil, sveltedocs.Errorf(sveltedocs.ENOTFOUND, "document not found")
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// FindDocuments retrieves documents matching the filter.
func (s *DocumentService) FindDocuments(ctx context.Context, filter sveltedocs.DocumentFilter) ([]*sveltedocs.Document, error) {
	var (
		query strings.Builder
		args  []any
	)
	query.WriteString("SELECT id, doc_type, package, variant, content, hierarchy, content_hash, last_updated FROM documents WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Type != nil {
		query.WriteString(" AND doc_type = ?")
		args = append(args, string(*filter.Type))
	}
	if filter.Package != nil {
		query.WriteString(" AND package = ?")
		args = append(args, string(*filter.Package))
	}
	if filter.Variant != nil {
		query.WriteString(" AND variant = ?")
		args = append(args, string(*filter.Variant))
	}

	query.WriteString(" ORDER BY id ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*sveltedocs.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

// DeleteDocumentsByPackage removes all documents for a package. Index
// entries follow through the foreign-key cascade.
func (s *DocumentService) DeleteDocumentsByPackage(ctx context.Context, pkg sveltedocs.Package) error {
	if !pkg.Valid() {
		return sveltedocs.Errorf(sveltedocs.EINVALID, "invalid package %q", pkg)
	}
	_, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE package = ?", string(pkg))
	return err
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanDocument scans one documents row.
func scanDocument(row rowScanner) (*sveltedocs.Document, error) {
	var (
		doc         sveltedocs.Document
		pkg         sql.NullString
		variant     sql.NullString
		hierarchy   sql.NullString
		lastUpdated string
	)

	if err := row.Scan(&doc.ID, (*string)(&doc.Type), &pkg, &variant,
		&doc.Content, &hierarchy, &doc.ContentHash, &lastUpdated); err != nil {
		return nil, err
	}

	doc.Package = sveltedocs.Package(pkg.String)
	doc.Variant = sveltedocs.Variant(variant.String)
	doc.Hierarchy = splitHierarchy(hierarchy)

	var err error
	doc.LastUpdated, err = parseRFC3339(lastUpdated, "last_updated")
	if err != nil {
		return nil, err
	}

	return &doc, nil
}
