// Package blob implementa los medios del store de documentos: un blob con nombre por colección.
//
// Un blob ausente equivale a una colección vacía: Get devuelve (nil, nil).
// Put reemplaza el blob entero; no hay escrituras parciales.
package blob

import (
	"context"
	"errors"
)

// ErrClosed se devuelve al usar un medio ya cerrado.
var ErrClosed = errors.New("blob store closed")

type Store interface {
	Get(ctx context.Context, name string) ([]byte, error)
	Put(ctx context.Context, name string, data []byte) error
	Close() error
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
