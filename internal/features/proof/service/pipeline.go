package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"sync"
	"time"

	"subhub-backend/internal/common/logger"
	"subhub-backend/internal/features/proof/models"
	"subhub-backend/internal/platform/storage"
)

const (
	// Hard ceiling on a proof artifact. Exactly MaxProofSize is accepted.
	MaxProofSize = 5 << 20

	pathPrefix = "payment-proofs"
)

// allowedTypes maps the four recognized image formats to their storage-path
// extension.
var allowedTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

type stagedFile struct {
	name        string
	contentType string
	data        []byte
}

// Pipeline governs one payment-proof artifact for one invoice: selection,
// constraint check, durable upload, signed-URL issuance, and the explicit
// irreversible confirmation. All mutation goes through the pipeline itself.
//
// At most one artifact is pending (uploaded but unconfirmed) per invoice from
// this pipeline's perspective. Selecting a new file while one is pending
// discards the previous in-memory handle; the stored object stays in storage,
// orphaned. That is documented, accepted behavior, not a bug.
type Pipeline struct {
	mu sync.Mutex

	ownerID   int64
	invoiceID string

	state        models.State
	file         *stagedFile
	localPreview string
	storagePath  string
	retrievalURL string

	store  storage.Store
	signer *storage.URLSigner
	ack    InvoiceAcknowledger
	urlTTL time.Duration

	nowFunc func() time.Time
}

// NewPipeline creates an empty pipeline for the acting owner and one invoice.
func NewPipeline(ownerID int64, invoiceID string, store storage.Store, signer *storage.URLSigner, ack InvoiceAcknowledger, urlTTL time.Duration) *Pipeline {
	return &Pipeline{
		ownerID:   ownerID,
		invoiceID: invoiceID,
		state:     models.StateEmpty,
		store:     store,
		signer:    signer,
		ack:       ack,
		urlTTL:    urlTTL,
		nowFunc:   time.Now,
	}
}

// WithNowFunc overrides the clock, for tests.
func (p *Pipeline) WithNowFunc(now func() time.Time) *Pipeline {
	p.nowFunc = now
	return p
}

// Select stages a candidate file after checking the type allow-list and size
// ceiling. A violation leaves the pipeline state untouched. Selecting while a
// previous upload is pending replaces it and starts a fresh cycle.
func (p *Pipeline) Select(fileName, contentType string, data []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch p.state {
	case models.StateEmpty, models.StatePreviewing, models.StateUploaded:
	default:
		return errTransition("select", p.state)
	}

	// Browsers may send parameters or case variants ("image/jpeg; charset=utf-8");
	// only the normalized media type is matched against the allow-list.
	if mt, _, err := mime.ParseMediaType(contentType); err == nil {
		contentType = mt
	}
	if _, ok := allowedTypes[contentType]; !ok {
		return errConstraint(fmt.Sprintf("unsupported file type %q: expected jpeg, png, webp or gif", contentType))
	}
	if int64(len(data)) > MaxProofSize {
		return errConstraint(fmt.Sprintf("file exceeds the %d MiB limit", MaxProofSize>>20))
	}

	if p.state == models.StateUploaded {
		logger.Info().
			Str("invoice_id", p.invoiceID).
			Str("orphaned_path", p.storagePath).
			Msg("Pending proof replaced by a new selection; stored object is orphaned")
	}

	p.file = &stagedFile{name: fileName, contentType: contentType, data: data}
	p.localPreview = fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data))
	p.storagePath = ""
	p.retrievalURL = ""
	p.state = models.StatePreviewing

	return nil
}

// Upload writes the staged file to durable storage and issues the signed
// retrieval URL. On storage failure the staged file and preview are discarded,
// forcing re-selection.
func (p *Pipeline) Upload(ctx context.Context) error {
	p.mu.Lock()
	if p.state != models.StatePreviewing {
		defer p.mu.Unlock()
		if p.state == models.StateEmpty {
			return errNoFileStaged()
		}
		return errTransition("upload", p.state)
	}

	file := p.file
	p.state = models.StateUploading
	// Path is unique per owner, invoice and attempt time; overwrite-allowed
	// put means a retried upload at the same second is not rejected.
	path := fmt.Sprintf("%s/%d/%s/%d%s", pathPrefix, p.ownerID, p.invoiceID, p.nowFunc().Unix(), allowedTypes[file.contentType])
	p.mu.Unlock()

	err := p.store.Put(ctx, path, storage.Object{Data: file.data, ContentType: file.contentType})

	var url string
	if err == nil {
		url, err = p.signer.SignedURL(path, p.urlTTL)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err != nil {
		p.file = nil
		p.localPreview = ""
		p.state = models.StateEmpty
		return errStorage("failed to store payment proof", err)
	}

	p.storagePath = path
	p.retrievalURL = url
	p.state = models.StateUploaded

	logger.Info().
		Str("invoice_id", p.invoiceID).
		Str("path", path).
		Int("size", len(file.data)).
		Msg("Payment proof uploaded")

	return nil
}

// Confirm hands the retrieval URL to the invoice record owner and, once
// acknowledged, moves to the terminal Confirmed state. A submission in flight
// is not discardable: once Confirming starts, neither Select nor Clear is
// permitted. Calling Confirm anywhere but Uploaded is a programming error.
func (p *Pipeline) Confirm(ctx context.Context) error {
	p.mu.Lock()
	if p.state != models.StateUploaded {
		p.mu.Unlock()
		return errNoPendingUpload()
	}

	p.state = models.StateConfirming
	invoiceID, ownerID, url := p.invoiceID, p.ownerID, p.retrievalURL
	submittedAt := p.nowFunc().UTC()
	p.mu.Unlock()

	err := p.ack.OnProofReady(ctx, models.ProofRecord{
		InvoiceID:    invoiceID,
		OwnerID:      ownerID,
		RetrievalURL: url,
		SubmittedAt:  submittedAt.Format(time.RFC3339),
	})

	p.mu.Lock()
	defer p.mu.Unlock()

	if err != nil {
		// Retriable without re-upload: the artifact stays pending.
		p.state = models.StateUploaded
		return errAcknowledge(err)
	}

	p.state = models.StateConfirmed
	p.file = nil
	p.localPreview = ""

	logger.Info().
		Str("invoice_id", invoiceID).
		Int64("owner_id", ownerID).
		Msg("Payment proof confirmed")

	return nil
}

// Clear resets an unconfirmed selection back to Empty. It is rejected while an
// upload or confirmation is in flight and after confirmation.
func (p *Pipeline) Clear() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch p.state {
	case models.StateEmpty, models.StatePreviewing, models.StateUploaded:
	default:
		return errTransition("clear", p.state)
	}

	p.file = nil
	p.localPreview = ""
	p.storagePath = ""
	p.retrievalURL = ""
	p.state = models.StateEmpty

	return nil
}

// Status returns a snapshot of the pipeline.
func (p *Pipeline) Status() models.ProofStatus {
	p.mu.Lock()
	defer p.mu.Unlock()

	status := models.ProofStatus{
		InvoiceID:    p.invoiceID,
		State:        p.state,
		LocalPreview: p.localPreview,
		StoragePath:  p.storagePath,
		RetrievalURL: p.retrievalURL,
		Confirmed:    p.state == models.StateConfirmed,
	}
	if p.file != nil {
		status.FileName = p.file.name
		status.ContentType = p.file.contentType
		status.SizeBytes = int64(len(p.file.data))
	}
	return status
}
