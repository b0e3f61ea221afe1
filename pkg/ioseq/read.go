package ioseq

import (
	"errors"
	"io"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned by ReadToString and Lines when the bytes read
// do not form valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("ioseq: stream did not contain valid UTF-8")

// Read performs one read of at most n bytes on the handle. The returned
// slice holds exactly the bytes read; a short read, including zero bytes at
// end of input, is success.
func Read[A any, T io.Reader](w Io[A, T], n int) Io[[]byte, T] {
	if w.IsBad() {
		return BadFrom[[]byte, T](w)
	}
	r := w.handle
	buf := make([]byte, n)
	m, err := r.Read(buf)
	if m == 0 && err != nil && !errors.Is(err, io.EOF) {
		return Bad[[]byte, T](err)
	}
	return Good(buf[:m], r)
}

// ReadToEnd reads the handle until exhaustion and wraps all accumulated
// bytes.
func ReadToEnd[A any, T io.Reader](w Io[A, T]) Io[[]byte, T] {
	if w.IsBad() {
		return BadFrom[[]byte, T](w)
	}
	r := w.handle
	buf, err := io.ReadAll(r)
	if err != nil {
		return Bad[[]byte, T](err)
	}
	return Good(buf, r)
}

// ReadToString reads the handle until exhaustion and wraps the bytes as
// text. Invalid UTF-8 is a failure.
func ReadToString[A any, T io.Reader](w Io[A, T]) Io[string, T] {
	if w.IsBad() {
		return BadFrom[string, T](w)
	}
	r := w.handle
	buf, err := io.ReadAll(r)
	if err != nil {
		return Bad[string, T](err)
	}
	if !utf8.Valid(buf) {
		return Bad[string, T](ErrInvalidUTF8)
	}
	return Good(string(buf), r)
}
