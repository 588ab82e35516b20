package service

import (
	"context"
	"sync"
	"time"

	"subhub-backend/internal/features/proof/models"
	"subhub-backend/internal/platform/storage"
)

type pipelineKey struct {
	ownerID   int64
	invoiceID string
}

// proofService keeps the live pipelines. Each pipeline has its own lock, so a
// hung external call on one invoice never blocks another invoice's pipeline.
type proofService struct {
	mu        sync.Mutex
	pipelines map[pipelineKey]*Pipeline

	store  storage.Store
	signer *storage.URLSigner
	ack    InvoiceAcknowledger
	urlTTL time.Duration
}

func NewProofService(store storage.Store, signer *storage.URLSigner, ack InvoiceAcknowledger, urlTTL time.Duration) ProofService {
	return &proofService{
		pipelines: make(map[pipelineKey]*Pipeline),
		store:     store,
		signer:    signer,
		ack:       ack,
		urlTTL:    urlTTL,
	}
}

// pipeline returns the live pipeline for the pair, creating an empty one when
// none exists.
func (s *proofService) pipeline(ownerID int64, invoiceID string) *Pipeline {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := pipelineKey{ownerID: ownerID, invoiceID: invoiceID}
	p, ok := s.pipelines[k]
	if !ok {
		p = NewPipeline(ownerID, invoiceID, s.store, s.signer, s.ack, s.urlTTL)
		s.pipelines[k] = p
	}
	return p
}

// drop discards the in-memory pipeline handle. Stored objects are never
// deleted here.
func (s *proofService) drop(ownerID int64, invoiceID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pipelines, pipelineKey{ownerID: ownerID, invoiceID: invoiceID})
}

func (s *proofService) Select(ctx context.Context, ownerID int64, invoiceID, fileName, contentType string, data []byte) (models.ProofStatus, error) {
	p := s.pipeline(ownerID, invoiceID)
	if err := p.Select(fileName, contentType, data); err != nil {
		return p.Status(), err
	}
	return p.Status(), nil
}

func (s *proofService) Upload(ctx context.Context, ownerID int64, invoiceID string) (models.ProofStatus, error) {
	p := s.pipeline(ownerID, invoiceID)
	if err := p.Upload(ctx); err != nil {
		return p.Status(), err
	}
	return p.Status(), nil
}

func (s *proofService) Confirm(ctx context.Context, ownerID int64, invoiceID string) (models.ProofStatus, error) {
	p := s.pipeline(ownerID, invoiceID)
	if err := p.Confirm(ctx); err != nil {
		return p.Status(), err
	}
	// Confirmed is terminal; the handle is discarded and a later action for
	// the same invoice starts a fresh, empty pipeline.
	status := p.Status()
	s.drop(ownerID, invoiceID)
	return status, nil
}

func (s *proofService) Clear(ctx context.Context, ownerID int64, invoiceID string) error {
	p := s.pipeline(ownerID, invoiceID)
	if err := p.Clear(); err != nil {
		return err
	}
	s.drop(ownerID, invoiceID)
	return nil
}

func (s *proofService) Status(ctx context.Context, ownerID int64, invoiceID string) models.ProofStatus {
	s.mu.Lock()
	p, ok := s.pipelines[pipelineKey{ownerID: ownerID, invoiceID: invoiceID}]
	s.mu.Unlock()

	if !ok {
		// No live pipeline means nothing is selected or pending.
		return models.ProofStatus{InvoiceID: invoiceID, State: models.StateEmpty}
	}
	return p.Status()
}
