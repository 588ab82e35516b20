// Package storage provides the durable object-storage capability the proof
// pipeline writes to: overwrite-allowed puts addressed by path, reads for the
// signed-URL serving endpoint, and HMAC-signed time-bounded retrieval URLs.
package storage

import "context"

// Object is a stored artifact payload with its content type.
type Object struct {
	Data        []byte
	ContentType string
}

// Store is the durable object storage consumed by the proof pipeline. Put has
// overwrite semantics: writing an existing path replaces the object instead of
// failing, so a retried upload for the same invoice and timestamp is accepted.
type Store interface {
	Put(ctx context.Context, path string, obj Object) error
	Get(ctx context.Context, path string) (Object, error)
}
