package documents

import "time"

// Document is one ingested PDF tracked by the in-memory history. Records are
// immutable after creation; Summary is the summary computed at ingestion time
// with default options.
type Document struct {
	ID         string
	FileName   string
	UploadedAt time.Time
	WordCount  int
	Summary    string
}
