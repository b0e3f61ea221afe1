package ioseq

import (
	"bytes"
	"errors"
	"io"
)

// Test doubles. They count underlying calls so tests can prove that bad
// wrappers perform no I/O.

var errBroken = errors.New("broken pipe")

// memHandle serves reads from a fixed byte slice and collects writes,
// counting every underlying call.
type memHandle struct {
	in     []byte
	pos    int
	out    bytes.Buffer
	reads  int
	writes int
	seeks  int
}

func (h *memHandle) Read(p []byte) (int, error) {
	h.reads++
	if h.pos >= len(h.in) {
		return 0, io.EOF
	}
	n := copy(p, h.in[h.pos:])
	h.pos += n
	return n, nil
}

func (h *memHandle) Write(p []byte) (int, error) {
	h.writes++
	return h.out.Write(p)
}

func (h *memHandle) Seek(offset int64, whence int) (int64, error) {
	h.seeks++
	if whence != io.SeekStart {
		return 0, errors.New("memHandle: unsupported whence")
	}
	h.pos = int(offset)
	return offset, nil
}

// brokenHandle fails every call with errBroken.
type brokenHandle struct {
	reads  int
	writes int
	seeks  int
}

func (h *brokenHandle) Read(p []byte) (int, error) {
	h.reads++
	return 0, errBroken
}

func (h *brokenHandle) Write(p []byte) (int, error) {
	h.writes++
	return 0, errBroken
}

func (h *brokenHandle) Seek(offset int64, whence int) (int64, error) {
	h.seeks++
	return 0, errBroken
}

// capWriter accepts at most cap bytes in total, then fails. When quiet is
// set it reports the short count without an error instead.
type capWriter struct {
	cap      int
	quiet    bool
	accepted bytes.Buffer
}

func (w *capWriter) Write(p []byte) (int, error) {
	room := w.cap - w.accepted.Len()
	if room >= len(p) {
		return w.accepted.Write(p)
	}
	if room > 0 {
		w.accepted.Write(p[:room])
	}
	if w.quiet {
		return room, nil
	}
	return room, errBroken
}
