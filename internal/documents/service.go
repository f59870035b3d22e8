package documents

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"strings"
	"time"

	"github.com/google/uuid"

	"summarizer-backend/internal/shared/metrics"
	"summarizer-backend/internal/shared/storage/blob"
	"summarizer-backend/internal/shared/telemetry"
	"summarizer-backend/internal/shared/util"
	"summarizer-backend/internal/summary"
)

// Extractor converts the stored blob for a document to plain UTF-8 text.
// The production implementation is extract.ExtractText; tests substitute
// failing ones.
type Extractor func(ctx context.Context, blobs blob.Store, id string) (string, error)

// Service orchestrates ingestion, retrieval and deletion of documents. The
// blob on disk and the store record are kept consistent: one exists exactly
// when the other does.
type Service struct {
	Blobs   blob.Store
	Store   *Store
	Extract Extractor
}

// NewService constructs a Service.
func NewService(blobs blob.Store, store *Store, extract Extractor) *Service {
	return &Service{Blobs: blobs, Store: store, Extract: extract}
}

// SummaryResult is the outcome of Retrieve: the stored record plus a summary
// and word count freshly computed from the blob.
type SummaryResult struct {
	Document  Document
	WordCount int
	Summary   string
}

// FullText is the outcome of ViewFullText. Paragraphs is a restartable
// sequence of the non-blank paragraphs of the extracted text.
type FullText struct {
	Document   Document
	WordCount  int
	Paragraphs iter.Seq[string]
}

// Ingest validates and persists an uploaded PDF, extracts its text, computes
// the cached summary and records the document. The blob file and the store
// entry are created together or not at all: a failed extraction removes the
// already-written blob before the error is returned.
func (s *Service) Ingest(ctx context.Context, fileName string, content []byte) (Document, error) {
	metrics.IncIngestStarted()
	start := metrics.NowMillis()

	doc, err := s.ingest(ctx, fileName, content)
	metrics.ObserveIngestDurationMs(metrics.NowMillis() - start)
	if err != nil {
		metrics.IncIngestFailed()
		return Document{}, err
	}
	metrics.IncIngestCompleted()
	return doc, nil
}

func (s *Service) ingest(ctx context.Context, fileName string, content []byte) (Document, error) {
	if !strings.HasSuffix(strings.ToLower(fileName), ".pdf") {
		return Document{}, fmt.Errorf("%w: only PDF files are accepted", ErrInvalidInput)
	}
	if len(content) == 0 {
		return Document{}, fmt.Errorf("%w: empty file", ErrInvalidInput)
	}
	sanitized, err := util.SanitizeFileName(fileName)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	id := uuid.NewString()

	if err := s.Blobs.Write(ctx, id, content); err != nil {
		return Document{}, fmt.Errorf("%w: %s", ErrStorageFailed, err)
	}

	text, err := s.Extract(ctx, s.Blobs, id)
	if err != nil {
		s.cleanupBlob(ctx, id)
		return Document{}, fmt.Errorf("%w: %s", ErrExtractionFailed, err)
	}

	opts := summary.DefaultOptions()
	opts.ExcludeCommon = true

	doc := Document{
		ID:         id,
		FileName:   sanitized,
		UploadedAt: time.Now(),
		WordCount:  summary.WordCount(text),
		Summary:    summary.Summarize(text, opts),
	}

	if err := s.Store.Insert(ctx, doc); err != nil {
		s.cleanupBlob(ctx, id)
		return Document{}, err
	}
	return doc, nil
}

// List returns all documents in upload order.
func (s *Service) List(ctx context.Context) ([]Document, error) {
	return s.Store.List(ctx)
}

// Retrieve re-extracts the document text and computes a summary with the
// caller's options, independent of the cached ingestion-time summary. A
// missing blob for a known record is surfaced as ErrNotFound.
func (s *Service) Retrieve(ctx context.Context, id string, opts summary.Options) (SummaryResult, error) {
	doc, text, err := s.load(ctx, id)
	if err != nil {
		return SummaryResult{}, err
	}
	return SummaryResult{
		Document:  doc,
		WordCount: summary.WordCount(text),
		Summary:   summary.Summarize(text, opts),
	}, nil
}

// ViewFullText re-extracts the document text and returns it split into
// paragraphs along with the stored record.
func (s *Service) ViewFullText(ctx context.Context, id string) (FullText, error) {
	doc, text, err := s.load(ctx, id)
	if err != nil {
		return FullText{}, err
	}
	return FullText{
		Document:   doc,
		WordCount:  summary.WordCount(text),
		Paragraphs: summary.Paragraphs(text),
	}, nil
}

// Delete removes the store entry and the blob as one logical operation. A
// blob already gone from disk does not block deletion: the record is dropped
// and the operation succeeds. If the blob exists but cannot be deleted the
// record is restored so the store never refers to state the disk does not
// have, and ErrStorageFailed is returned.
func (s *Service) Delete(ctx context.Context, id string) error {
	doc, err := s.Store.Remove(ctx, id)
	if err != nil {
		return err
	}

	if err := s.Blobs.Remove(ctx, id); err != nil && !errors.Is(err, fs.ErrNotExist) {
		if restoreErr := s.Store.Insert(ctx, doc); restoreErr != nil {
			telemetry.Error("documents.delete.restore_failed", map[string]any{
				"document_id": id,
				"err":         restoreErr.Error(),
			})
		}
		return fmt.Errorf("%w: delete blob: %s", ErrStorageFailed, err)
	}

	metrics.IncDocumentsDeleted()
	return nil
}

// load fetches the record and re-extracts the blob text for read operations.
func (s *Service) load(ctx context.Context, id string) (Document, string, error) {
	doc, err := s.Store.Get(ctx, id)
	if err != nil {
		return Document{}, "", err
	}
	if !s.Blobs.Exists(ctx, id) {
		return Document{}, "", fmt.Errorf("%w: blob missing for document %s", ErrNotFound, id)
	}

	text, err := s.Extract(ctx, s.Blobs, id)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Document{}, "", ctxErr
		}
		// A concurrent delete may have removed the blob after the Exists
		// check; report that as not found rather than an extraction fault.
		if !s.Blobs.Exists(ctx, id) {
			return Document{}, "", fmt.Errorf("%w: blob missing for document %s", ErrNotFound, id)
		}
		return Document{}, "", fmt.Errorf("%w: %s", ErrExtractionFailed, err)
	}
	return doc, text, nil
}

// cleanupBlob removes a blob written by a failed ingestion. Its own failure
// is logged and never masks the original error.
func (s *Service) cleanupBlob(ctx context.Context, id string) {
	if err := s.Blobs.Remove(ctx, id); err != nil {
		telemetry.Error("documents.ingest.cleanup_failed", map[string]any{
			"document_id": id,
			"err":         err.Error(),
		})
	}
}
