package service

import (
	"context"

	"subhub-backend/internal/features/proof/models"
)

// ProofService manages one pipeline per (owner, invoice) pair and advances it
// as discrete dashboard actions arrive.
type ProofService interface {
	Select(ctx context.Context, ownerID int64, invoiceID, fileName, contentType string, data []byte) (models.ProofStatus, error)
	Upload(ctx context.Context, ownerID int64, invoiceID string) (models.ProofStatus, error)
	Confirm(ctx context.Context, ownerID int64, invoiceID string) (models.ProofStatus, error)
	Clear(ctx context.Context, ownerID int64, invoiceID string) error
	Status(ctx context.Context, ownerID int64, invoiceID string) models.ProofStatus
}

// InvoiceAcknowledger is the boundary where the externally-owned invoice
// record takes over: the pipeline hands it the retrieval URL and observes the
// acknowledgement. It exposes no other mutation surface.
type InvoiceAcknowledger interface {
	OnProofReady(ctx context.Context, record models.ProofRecord) error
}
