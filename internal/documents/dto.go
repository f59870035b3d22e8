package documents

import "slices"

// timestampLayout is the wire format for upload timestamps.
const timestampLayout = "2006-01-02 15:04:05"

// DocumentResponse is the outward-facing representation of a document record.
type DocumentResponse struct {
	DocumentID string `json:"documentId"`
	FileName   string `json:"fileName"`
	UploadedAt string `json:"uploadedAt"`
	WordCount  int    `json:"wordCount"`
	Summary    string `json:"summary"`
}

// SummaryResponse carries a freshly computed summary for a document.
type SummaryResponse struct {
	DocumentID string `json:"documentId"`
	FileName   string `json:"fileName"`
	UploadedAt string `json:"uploadedAt"`
	WordCount  int    `json:"wordCount"`
	Summary    string `json:"summary"`
}

// ContentResponse carries the full extracted text of a document split into
// paragraphs, alongside its record metadata and cached summary.
type ContentResponse struct {
	DocumentID string   `json:"documentId"`
	FileName   string   `json:"fileName"`
	UploadedAt string   `json:"uploadedAt"`
	WordCount  int      `json:"wordCount"`
	Summary    string   `json:"summary"`
	Paragraphs []string `json:"paragraphs"`
}

func toResponse(doc Document) DocumentResponse {
	return DocumentResponse{
		DocumentID: doc.ID,
		FileName:   doc.FileName,
		UploadedAt: doc.UploadedAt.Format(timestampLayout),
		WordCount:  doc.WordCount,
		Summary:    doc.Summary,
	}
}

func toSummaryResponse(res SummaryResult) SummaryResponse {
	return SummaryResponse{
		DocumentID: res.Document.ID,
		FileName:   res.Document.FileName,
		UploadedAt: res.Document.UploadedAt.Format(timestampLayout),
		WordCount:  res.WordCount,
		Summary:    res.Summary,
	}
}

func toContentResponse(full FullText) ContentResponse {
	paragraphs := slices.Collect(full.Paragraphs)
	if paragraphs == nil {
		paragraphs = []string{}
	}
	return ContentResponse{
		DocumentID: full.Document.ID,
		FileName:   full.Document.FileName,
		UploadedAt: full.Document.UploadedAt.Format(timestampLayout),
		WordCount:  full.WordCount,
		Summary:    full.Document.Summary,
		Paragraphs: paragraphs,
	}
}
