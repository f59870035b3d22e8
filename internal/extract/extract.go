// Package extract converts stored PDF blobs to plain UTF-8 text using
// github.com/ledongthuc/pdf.
package extract

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"

	"summarizer-backend/internal/shared/storage/blob"
)

// ExtractText reads the blob for id and extracts its text.
func ExtractText(ctx context.Context, blobs blob.Store, id string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	body, err := blobs.Open(ctx, id)
	if err != nil {
		return "", fmt.Errorf("extract text id=%s: %w", id, err)
	}
	defer body.Close()

	raw, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("extract text id=%s: read: %w", id, err)
	}

	text, err := ExtractTextFromBytes(ctx, raw)
	if err != nil {
		return "", fmt.Errorf("extract text id=%s: %w", id, err)
	}
	return text, nil
}

// ExtractTextFromBytes extracts text from an in-memory PDF payload.
func ExtractTextFromBytes(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}
