// Package storage persists uploaded files (gallery images, ad creatives,
// KYC documents, lead attachments) behind a small interface so handlers
// never know which backend holds the bytes.
package storage

import (
	"context"
	"io"
)

type PutInput struct {
	Filename    string
	ContentType string
	Size        int64
}

type PutResult struct {
	Key string
	URL string
}

type Storage interface {
	Put(ctx context.Context, r io.Reader, in PutInput) (PutResult, error)
	Delete(ctx context.Context, key string) error
}
