package petcare

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument: id vacío, campos requeridos ausentes, rango de fechas inválido.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrStorageUnavailable: el medio no se pudo abrir, leer o escribir.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// InvalidArgument construye un error que matchea ErrInvalidArgument con errors.Is.
func InvalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// StorageError envuelve una falla del medio de almacenamiento.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, ErrStorageUnavailable)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, ErrStorageUnavailable, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func (e *StorageError) Is(target error) bool { return target == ErrStorageUnavailable }

// Unavailable envuelve err como StorageError. Los errores ya tipados se devuelven tal cual.
func Unavailable(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrInvalidArgument) || errors.Is(err, ErrStorageUnavailable) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}
