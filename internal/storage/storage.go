package storage

import (
	"context"
	"errors"
	"io"
)

var ErrUnsupportedType = errors.New("storage: unsupported file type")

type PutInput struct {
	Filename    string
	ContentType string
	Size        int64
}

type PutResult struct {
	Key string
	URL string // public URL, handed to the catalog as an image
}

type Storage interface {
	Put(ctx context.Context, r io.Reader, in PutInput) (PutResult, error)
	Delete(ctx context.Context, key string) error
}
