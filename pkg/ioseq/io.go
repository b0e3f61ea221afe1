package ioseq

import (
	"time"

	"github.com/google/uuid"
)

// Unit is carried as the data slot of wrappers whose last operation
// produced no value.
type Unit = struct{}

// Io pairs the data returned by the most recent I/O call with the handle it
// was performed on, or records the error of the call that failed. The handle
// of a bad wrapper is gone; no further I/O can happen through it.
type Io[A, T any] struct {
	id        uuid.UUID
	createdAt time.Time
	data      A
	handle    T
	err       error
	good      bool
}

// Good wraps data and a live handle.
func Good[A, T any](data A, handle T) Io[A, T] {
	return Io[A, T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		data:      data,
		handle:    handle,
		good:      true,
	}
}

// Bad wraps an error. The type arguments fix what the wrapper would have
// carried had the operation succeeded.
func Bad[A, T any](err error) Io[A, T] {
	return Io[A, T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		err:       err,
		good:      false,
	}
}

// BadFrom re-types a failed wrapper, preserving its error, id and creation
// time. Calling it on a good wrapper discards the data and handle; it is
// meant for propagating an already captured failure into a new shape.
func BadFrom[B, U, A, T any](from Io[A, T]) Io[B, U] {
	return Io[B, U]{
		id:        from.id,
		createdAt: from.createdAt,
		err:       from.err,
		good:      false,
	}
}

// Wrap turns the result of constructing a handle into an initial wrapper.
// It accepts the two-value return of a constructor call directly:
//
//	w := ioseq.Wrap(os.Open("notes.txt"))
func Wrap[T any](handle T, err error) Io[Unit, T] {
	if err != nil {
		return Bad[Unit, T](err)
	}
	return Good(Unit{}, handle)
}

// WrapFunc invokes a handle constructor and wraps its result. Unlike Wrap,
// the construction runs inside this call.
func WrapFunc[T any](f func() (T, error)) Io[Unit, T] {
	return Wrap(f())
}

// Data returns the data produced by the most recent call. Zero for bad
// wrappers.
func (w Io[A, T]) Data() A {
	return w.data
}

// Err returns the captured error, nil for good wrappers.
func (w Io[A, T]) Err() error {
	return w.err
}

// IsGood reports whether the wrapper has not failed.
func (w Io[A, T]) IsGood() bool {
	return w.good
}

// IsBad reports whether the wrapper has failed.
func (w Io[A, T]) IsBad() bool {
	return !w.good
}

// Id identifies this wrapper instance. Propagated failures keep the id of
// the wrapper that captured the error.
func (w Io[A, T]) Id() uuid.UUID {
	return w.id
}

// CreatedAt is the wrapper creation time (UTC).
func (w Io[A, T]) CreatedAt() time.Time {
	return w.createdAt
}
