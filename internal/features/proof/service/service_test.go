package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "subhub-backend/internal/common/errors"
	"subhub-backend/internal/features/proof/models"
)

func newTestService(store *fakeStore, ack *fakeAck) ProofService {
	return NewProofService(store, testSigner(), ack, 365*24*time.Hour)
}

func TestEndToEndSubmission(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := newTestService(store, &fakeAck{})

	status, err := svc.Select(ctx, 42, "inv_001", "receipt.png", "image/png", pngOfSize(2<<20))
	require.NoError(t, err)
	assert.Equal(t, models.StatePreviewing, status.State)

	status, err = svc.Upload(ctx, 42, "inv_001")
	require.NoError(t, err)
	assert.Equal(t, models.StateUploaded, status.State)
	assert.NotEmpty(t, status.RetrievalURL)
	assert.False(t, status.Confirmed)

	status, err = svc.Confirm(ctx, 42, "inv_001")
	require.NoError(t, err)
	assert.Equal(t, models.StateConfirmed, status.State)
	assert.True(t, status.Confirmed)

	// Confirmed is terminal: a second confirm finds no pending upload.
	_, err = svc.Confirm(ctx, 42, "inv_001")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInvalidTransition, apperrors.CodeOf(err))
}

func TestStatusOfUnknownInvoiceIsEmpty(t *testing.T) {
	svc := newTestService(newFakeStore(), &fakeAck{})

	status := svc.Status(context.Background(), 42, "inv_unknown")

	assert.Equal(t, models.StateEmpty, status.State)
	assert.Equal(t, "inv_unknown", status.InvoiceID)
	assert.False(t, status.Confirmed)
}

func TestPipelinesAreIsolatedPerInvoiceAndOwner(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeStore(), &fakeAck{})

	_, err := svc.Select(ctx, 42, "inv_001", "a.png", "image/png", pngOfSize(64))
	require.NoError(t, err)

	// Another invoice of the same owner and the same invoice of another owner
	// both stay empty.
	assert.Equal(t, models.StateEmpty, svc.Status(ctx, 42, "inv_002").State)
	assert.Equal(t, models.StateEmpty, svc.Status(ctx, 7, "inv_001").State)
	assert.Equal(t, models.StatePreviewing, svc.Status(ctx, 42, "inv_001").State)
}

func TestClearDropsPipeline(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeStore(), &fakeAck{})

	_, err := svc.Select(ctx, 42, "inv_001", "a.png", "image/png", pngOfSize(64))
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx, 42, "inv_001"))
	assert.Equal(t, models.StateEmpty, svc.Status(ctx, 42, "inv_001").State)

	_, err = svc.Upload(ctx, 42, "inv_001")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInvalidTransition, apperrors.CodeOf(err))
}
