package stdio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/ib-77/ioseq/pkg/ioseq"
)

// Stdio bundles an input, output and error stream into one handle. Each
// stream has its own lock, held only for the span of a single call.
type Stdio struct {
	inMu  sync.Mutex
	outMu sync.Mutex
	errMu sync.Mutex

	in  *bufio.Reader
	out io.Writer
	err io.Writer
}

// Default wraps the process standard streams.
func Default() ioseq.Io[ioseq.Unit, *Stdio] {
	return New(os.Stdin, os.Stdout, os.Stderr)
}

// New wraps arbitrary streams. The input stream is buffered internally for
// line reads.
func New(in io.Reader, out, errw io.Writer) ioseq.Io[ioseq.Unit, *Stdio] {
	return ioseq.Good(ioseq.Unit{}, &Stdio{
		in:  bufio.NewReader(in),
		out: out,
		err: errw,
	})
}

// Read reads from the input stream, making Stdio usable with the generic
// read operations.
func (s *Stdio) Read(p []byte) (int, error) {
	s.inMu.Lock()
	defer s.inMu.Unlock()
	return s.in.Read(p)
}

// Write writes to the output stream, making Stdio usable with the generic
// write operations.
func (s *Stdio) Write(p []byte) (int, error) {
	s.outMu.Lock()
	defer s.outMu.Unlock()
	return s.out.Write(p)
}

// PrintLine writes line followed by a line feed to the output stream.
func PrintLine[A any](w ioseq.Io[A, *Stdio], line string) ioseq.Io[ioseq.Unit, *Stdio] {
	if w.IsBad() {
		return ioseq.BadFrom[ioseq.Unit, *Stdio](w)
	}
	_, s, _ := w.Ok()
	if err := s.printLine(line); err != nil {
		return ioseq.Bad[ioseq.Unit, *Stdio](err)
	}
	return ioseq.Good(ioseq.Unit{}, s)
}

// ReadLine reads text from the input stream up to and including the next
// line feed. End of input is success: the wrapper carries whatever text
// remained.
func ReadLine[A any](w ioseq.Io[A, *Stdio]) ioseq.Io[string, *Stdio] {
	if w.IsBad() {
		return ioseq.BadFrom[string, *Stdio](w)
	}
	_, s, _ := w.Ok()
	line, err := s.readLine()
	if err != nil {
		return ioseq.Bad[string, *Stdio](err)
	}
	return ioseq.Good(line, s)
}

// WriteToErr performs one write on the error stream and wraps the byte
// count the stream accepted.
func WriteToErr[A any](w ioseq.Io[A, *Stdio], buf []byte) ioseq.Io[int, *Stdio] {
	if w.IsBad() {
		return ioseq.BadFrom[int, *Stdio](w)
	}
	_, s, _ := w.Ok()
	n, err := s.writeErr(buf)
	if err != nil {
		return ioseq.Bad[int, *Stdio](err)
	}
	return ioseq.Good(n, s)
}

// WriteAllToErr writes the whole of buf to the error stream.
func WriteAllToErr[A any](w ioseq.Io[A, *Stdio], buf []byte) ioseq.Io[ioseq.Unit, *Stdio] {
	if w.IsBad() {
		return ioseq.BadFrom[ioseq.Unit, *Stdio](w)
	}
	_, s, _ := w.Ok()
	n, err := s.writeErr(buf)
	if err == nil && n < len(buf) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return ioseq.Bad[ioseq.Unit, *Stdio](err)
	}
	return ioseq.Good(ioseq.Unit{}, s)
}

// WriteFmtToErr formats per fmt.Fprintf and writes the result to the error
// stream.
func WriteFmtToErr[A any](w ioseq.Io[A, *Stdio], format string, args ...any) ioseq.Io[ioseq.Unit, *Stdio] {
	if w.IsBad() {
		return ioseq.BadFrom[ioseq.Unit, *Stdio](w)
	}
	_, s, _ := w.Ok()
	s.errMu.Lock()
	_, err := fmt.Fprintf(s.err, format, args...)
	s.errMu.Unlock()
	if err != nil {
		return ioseq.Bad[ioseq.Unit, *Stdio](err)
	}
	return ioseq.Good(ioseq.Unit{}, s)
}

func (s *Stdio) printLine(line string) error {
	s.outMu.Lock()
	defer s.outMu.Unlock()
	buf := make([]byte, 0, len(line)+1)
	buf = append(buf, line...)
	buf = append(buf, '\n')
	n, err := s.out.Write(buf)
	if err != nil {
		return err
	}
	if n < len(buf) {
		return io.ErrShortWrite
	}
	return nil
}

func (s *Stdio) readLine() (string, error) {
	s.inMu.Lock()
	defer s.inMu.Unlock()
	line, err := s.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return line, nil
}

func (s *Stdio) writeErr(buf []byte) (int, error) {
	s.errMu.Lock()
	defer s.errMu.Unlock()
	return s.err.Write(buf)
}
