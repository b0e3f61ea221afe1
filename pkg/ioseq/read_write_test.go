package ioseq

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestRead_ShortReadIsSuccess(t *testing.T) {
	t.Parallel()
	h := &memHandle{in: []byte("abc")}

	w := Read(Wrap(h, nil), 10)
	if !w.IsGood() {
		t.Fatalf("short read must succeed, got err=%v", w.Err())
	}
	if string(w.Data()) != "abc" {
		t.Fatalf("expected exactly the available bytes, got %q", w.Data())
	}
}

func TestRead_EndOfInputIsSuccess(t *testing.T) {
	t.Parallel()
	h := &memHandle{}

	w := Read(Wrap(h, nil), 4)
	if !w.IsGood() || len(w.Data()) != 0 {
		t.Fatalf("expected good wrapper with no bytes, got data=%q err=%v", w.Data(), w.Err())
	}
}

func TestRead_Failure(t *testing.T) {
	t.Parallel()
	w := Read(Wrap(&brokenHandle{}, nil), 4)
	if !errors.Is(w.Err(), errBroken) {
		t.Fatalf("expected errBroken, got %v", w.Err())
	}
}

func TestReadToEnd(t *testing.T) {
	t.Parallel()
	h := &memHandle{in: []byte("all of it")}

	w := ReadToEnd(Wrap(h, nil))
	if string(w.Data()) != "all of it" {
		t.Fatalf("expected all bytes, got %q", w.Data())
	}
}

func TestReadToString(t *testing.T) {
	t.Parallel()
	h := &memHandle{in: []byte("héllo")}

	w := ReadToString(Wrap(h, nil))
	if w.Data() != "héllo" {
		t.Fatalf("expected decoded text, got %q", w.Data())
	}
}

func TestReadToString_InvalidUTF8(t *testing.T) {
	t.Parallel()
	h := &memHandle{in: []byte{0xff, 0xfe}}

	w := ReadToString(Wrap(h, nil))
	if !errors.Is(w.Err(), ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", w.Err())
	}
}

func TestWrite_ReportsAcceptedBytes(t *testing.T) {
	t.Parallel()
	h := &memHandle{}

	w := Write(Wrap(h, nil), []byte("hello"))
	if w.Data() != 5 {
		t.Fatalf("expected 5 bytes written, got %d", w.Data())
	}
	if h.out.String() != "hello" {
		t.Fatalf("expected handle to hold %q, got %q", "hello", h.out.String())
	}
}

func TestWriteAll(t *testing.T) {
	t.Parallel()
	h := &memHandle{}

	w := WriteAll(Wrap(h, nil), []byte("hello"))
	if !w.IsGood() || h.out.String() != "hello" {
		t.Fatalf("expected full write, got err=%v out=%q", w.Err(), h.out.String())
	}
}

func TestWriteAll_PartialThenFailure(t *testing.T) {
	t.Parallel()
	h := &capWriter{cap: 3}

	w := WriteAll(Wrap(h, nil), []byte("hello"))
	if !errors.Is(w.Err(), errBroken) {
		t.Fatalf("expected the underlying error, got %v", w.Err())
	}
	if h.accepted.String() != "hel" {
		t.Fatalf("only the bytes the handle accepted may be written, got %q", h.accepted.String())
	}
}

func TestWriteAll_SilentShortWrite(t *testing.T) {
	t.Parallel()
	h := &capWriter{cap: 3, quiet: true}

	w := WriteAll(Wrap(h, nil), []byte("hello"))
	if !errors.Is(w.Err(), io.ErrShortWrite) {
		t.Fatalf("expected io.ErrShortWrite, got %v", w.Err())
	}
}

func TestWriteFmt(t *testing.T) {
	t.Parallel()
	h := &memHandle{}

	w := WriteFmt(Wrap(h, nil), "%d + %d = %d", 2, 2, 4)
	if !w.IsGood() || h.out.String() != "2 + 2 = 4" {
		t.Fatalf("expected formatted text, got err=%v out=%q", w.Err(), h.out.String())
	}
}

func TestSeek(t *testing.T) {
	t.Parallel()
	r := strings.NewReader("abcdef")

	w := Read(Seek(Wrap(r, nil), 3, io.SeekStart), 10)
	if string(w.Data()) != "def" {
		t.Fatalf("expected read after seek to yield %q, got %q", "def", w.Data())
	}
}

func TestSeek_ReportsPosition(t *testing.T) {
	t.Parallel()
	r := strings.NewReader("abcdef")

	w := Seek(Wrap(r, nil), -2, io.SeekEnd)
	if w.Data() != 4 {
		t.Fatalf("expected absolute offset 4, got %d", w.Data())
	}
}

// Write then ignore then read on a handle that supports both: the data slot
// resets to unit after ignore, and the read result is independent of what
// was written.
func TestWriteIgnoreRead(t *testing.T) {
	t.Parallel()
	h := &memHandle{in: []byte("incoming")}

	united := WriteAll(Wrap(h, nil), []byte("hello")).Ignore()
	if !united.IsGood() {
		t.Fatalf("expected good wrapper after ignore, got err=%v", united.Err())
	}

	w := Read(united, 5)
	if string(w.Data()) != "incom" {
		t.Fatalf("read must return the handle's available bytes, got %q", w.Data())
	}
	if h.out.String() != "hello" {
		t.Fatalf("write must have reached the handle, got %q", h.out.String())
	}
}
