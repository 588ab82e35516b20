package models

// State is the explicit pipeline state. Keeping it a single tagged value makes
// illegal flag combinations (e.g. confirming without an uploaded URL)
// unrepresentable.
type State string

const (
	StateEmpty      State = "empty"
	StatePreviewing State = "previewing"
	StateUploading  State = "uploading"
	StateUploaded   State = "uploaded"
	StateConfirming State = "confirming"
	StateConfirmed  State = "confirmed"
)

// ProofStatus is a snapshot of one payment-proof pipeline, as rendered to the
// dashboard. RetrievalURL is set only once StoragePath is; Confirmed becomes
// true only once RetrievalURL is set, and never resets.
type ProofStatus struct {
	InvoiceID    string `json:"invoice_id"`
	State        State  `json:"state"`
	FileName     string `json:"file_name,omitempty"`
	ContentType  string `json:"content_type,omitempty"`
	SizeBytes    int64  `json:"size_bytes,omitempty"`
	LocalPreview string `json:"local_preview,omitempty"`
	StoragePath  string `json:"storage_path,omitempty"`
	RetrievalURL string `json:"retrieval_url,omitempty"`
	Confirmed    bool   `json:"confirmed"`
}

// ProofRecord is what gets handed to the invoice record owner on confirmation.
type ProofRecord struct {
	InvoiceID    string `json:"invoice_id"`
	OwnerID      int64  `json:"owner_id"`
	RetrievalURL string `json:"retrieval_url"`
	SubmittedAt  string `json:"submitted_at"`
}
