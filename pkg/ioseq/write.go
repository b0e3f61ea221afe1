package ioseq

import (
	"fmt"
	"io"
)

// Write performs one write call and wraps the number of bytes the handle
// accepted.
func Write[A any, T io.Writer](w Io[A, T], buf []byte) Io[int, T] {
	if w.IsBad() {
		return BadFrom[int, T](w)
	}
	h := w.handle
	n, err := h.Write(buf)
	if err != nil {
		return Bad[int, T](err)
	}
	return Good(n, h)
}

// WriteAll writes the whole of buf or fails. A handle that accepts fewer
// bytes without reporting an error surfaces as io.ErrShortWrite; bytes the
// handle already accepted before a failure stay written.
func WriteAll[A any, T io.Writer](w Io[A, T], buf []byte) Io[Unit, T] {
	if w.IsBad() {
		return BadFrom[Unit, T](w)
	}
	h := w.handle
	n, err := h.Write(buf)
	if err != nil {
		return Bad[Unit, T](err)
	}
	if n < len(buf) {
		return Bad[Unit, T](io.ErrShortWrite)
	}
	return Good(Unit{}, h)
}

// WriteFmt formats per fmt.Fprintf and writes the result to the handle.
func WriteFmt[A any, T io.Writer](w Io[A, T], format string, args ...any) Io[Unit, T] {
	if w.IsBad() {
		return BadFrom[Unit, T](w)
	}
	h := w.handle
	if _, err := fmt.Fprintf(h, format, args...); err != nil {
		return Bad[Unit, T](err)
	}
	return Good(Unit{}, h)
}
