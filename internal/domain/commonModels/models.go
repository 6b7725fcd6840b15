package commonModels

import (
	"context"
	"time"
)

// Document is an extracted upload kept around so a later summarize request
// can reference it by id instead of resending the text.
type Document struct {
	Id          string    `json:"document_id"`
	Name        string    `json:"doc_name"`
	ExtractedAt time.Time `json:"extracted_at"`
	ContentType DocType   `json:"contentType"`
	Text        string    `json:"text"`
}

type DocType string

var (
	PDF   DocType = "PDF"
	DOCX  DocType = "DOCX"
	IMAGE DocType = "IMAGE"
	TXT   DocType = "TXT"
	ERR   DocType = "ERROR"
)

type DocumentStore interface {
	GetDocument(ctx context.Context, id string) (Document, bool)
	SaveDocument(ctx context.Context, doc Document) error
	DeleteDocument(ctx context.Context, id string)
}
