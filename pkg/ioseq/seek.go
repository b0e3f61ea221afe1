package ioseq

import "io"

// Seek repositions the handle and wraps the resulting absolute offset.
// Whence is one of io.SeekStart, io.SeekCurrent, io.SeekEnd.
func Seek[A any, T io.Seeker](w Io[A, T], offset int64, whence int) Io[int64, T] {
	if w.IsBad() {
		return BadFrom[int64, T](w)
	}
	s := w.handle
	pos, err := s.Seek(offset, whence)
	if err != nil {
		return Bad[int64, T](err)
	}
	return Good(pos, s)
}
