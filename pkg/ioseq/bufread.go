package ioseq

import (
	"errors"
	"io"
	"iter"
	"strings"
	"unicode/utf8"
)

// BufReader is the buffered-read capability. *bufio.Reader satisfies it.
type BufReader interface {
	io.Reader
	Buffered() int
	Peek(n int) ([]byte, error)
	Discard(n int) (int, error)
	ReadBytes(delim byte) ([]byte, error)
	ReadString(delim byte) (string, error)
}

// FillBuf ensures the handle's internal buffer holds at least one byte or
// the input is exhausted. End of input is success. The buffered bytes are
// not exposed; use ReadUntil or Consume to work with them.
func FillBuf[A any, T BufReader](w Io[A, T]) Io[Unit, T] {
	if w.IsBad() {
		return BadFrom[Unit, T](w)
	}
	r := w.handle
	if _, err := r.Peek(1); err != nil && !errors.Is(err, io.EOF) {
		return Bad[Unit, T](err)
	}
	return Good(Unit{}, r)
}

// Consume marks up to amt bytes of the internal buffer as consumed. It
// never touches the underlying handle and never fails: amt is capped at the
// byte count currently buffered.
func Consume[A any, T BufReader](w Io[A, T], amt int) Io[Unit, T] {
	if w.IsBad() {
		return BadFrom[Unit, T](w)
	}
	r := w.handle
	if n := r.Buffered(); amt > n {
		amt = n
	}
	r.Discard(amt)
	return Good(Unit{}, r)
}

// ReadUntil reads bytes up to and including the first occurrence of delim.
// Hitting end of input before the delimiter is success; the wrapper then
// carries whatever bytes remained, without a trailing delimiter.
func ReadUntil[A any, T BufReader](w Io[A, T], delim byte) Io[[]byte, T] {
	if w.IsBad() {
		return BadFrom[[]byte, T](w)
	}
	r := w.handle
	buf, err := r.ReadBytes(delim)
	if err != nil && !errors.Is(err, io.EOF) {
		return Bad[[]byte, T](err)
	}
	return Good(buf, r)
}

// ReadLine reads text up to and including the next line feed, with the same
// end-of-input behavior as ReadUntil.
func ReadLine[A any, T BufReader](w Io[A, T]) Io[string, T] {
	if w.IsBad() {
		return BadFrom[string, T](w)
	}
	r := w.handle
	line, err := r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return Bad[string, T](err)
	}
	return Good(line, r)
}

// Split consumes the wrapper and returns a lazy, forward-only, single-pass
// sequence of the remaining input split on delim. Delimiters are stripped
// from the segments. A read failure is yielded as the final element; a
// wrapper that had already failed returns its error instead of a sequence.
func Split[A any, T BufReader](w Io[A, T], delim byte) (iter.Seq2[[]byte, error], error) {
	if w.IsBad() {
		return nil, w.err
	}
	r := w.handle
	seq := func(yield func([]byte, error) bool) {
		for {
			seg, err := r.ReadBytes(delim)
			if err != nil && !errors.Is(err, io.EOF) {
				yield(nil, err)
				return
			}
			eof := err != nil
			if eof && len(seg) == 0 {
				return
			}
			if !eof {
				seg = seg[:len(seg)-1]
			}
			if !yield(seg, nil) {
				return
			}
			if eof {
				return
			}
		}
	}
	return seq, nil
}

// Lines consumes the wrapper and returns a lazy, forward-only, single-pass
// sequence of the remaining lines as text, line endings (both "\n" and
// "\r\n") stripped. Invalid UTF-8 in a line is yielded as ErrInvalidUTF8.
func Lines[A any, T BufReader](w Io[A, T]) (iter.Seq2[string, error], error) {
	if w.IsBad() {
		return nil, w.err
	}
	r := w.handle
	seq := func(yield func(string, error) bool) {
		for {
			line, err := r.ReadString('\n')
			if err != nil && !errors.Is(err, io.EOF) {
				yield("", err)
				return
			}
			eof := err != nil
			if eof && line == "" {
				return
			}
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			if !utf8.ValidString(line) {
				yield("", ErrInvalidUTF8)
				return
			}
			if !yield(line, nil) {
				return
			}
			if eof {
				return
			}
		}
	}
	return seq, nil
}
