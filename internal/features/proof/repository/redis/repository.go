package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"subhub-backend/internal/features/proof/models"
	rplatform "subhub-backend/internal/platform/redis"
)

// ProofRecordRepository writes confirmed proof records to Redis, where the
// invoice-owning backend consumes them. A write that returns nil is the
// acknowledgement the pipeline waits for.
type ProofRecordRepository struct {
	client *rplatform.Client
}

func NewProofRecordRepository(client *rplatform.Client) *ProofRecordRepository {
	return &ProofRecordRepository{client: client}
}

func (r *ProofRecordRepository) key(invoiceID string) string {
	return fmt.Sprintf("invoice:%s:proof", invoiceID)
}

func (r *ProofRecordRepository) OnProofReady(ctx context.Context, record models.ProofRecord) error {
	b, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.key(record.InvoiceID), b, 0).Err()
}
