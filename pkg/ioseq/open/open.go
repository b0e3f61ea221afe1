package open

import (
	"net"
	"os"

	"github.com/ib-77/ioseq/pkg/ioseq"
)

// PathOpener constructs a handle of type T from a filesystem path.
type PathOpener[T any] interface {
	OpenPath(path string) (T, error)
}

// AddrDialer constructs a handle of type T from a network address. Address
// resolution is up to the dialer and may try several candidate addresses.
type AddrDialer[T any] interface {
	DialAddr(addr string) (T, error)
}

// FromPath opens a handle at path using the zero value of opener type O and
// wraps the outcome:
//
//	w := open.FromPath[open.FileOpener, *os.File]("notes.txt")
func FromPath[O PathOpener[T], T any](path string) ioseq.Io[ioseq.Unit, T] {
	var o O
	return ioseq.Wrap(o.OpenPath(path))
}

// FromAddr connects to addr using the zero value of dialer type D and wraps
// the outcome.
func FromAddr[D AddrDialer[T], T any](addr string) ioseq.Io[ioseq.Unit, T] {
	var d D
	return ioseq.Wrap(d.DialAddr(addr))
}

// FileOpener opens files with read+write+create semantics.
type FileOpener struct{}

func (FileOpener) OpenPath(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o666)
}

// TCPDialer resolves addr and connects over TCP.
type TCPDialer struct{}

func (TCPDialer) DialAddr(addr string) (net.Conn, error) {
	return net.Dial("tcp", addr)
}

// File wraps a file handle opened at path.
func File(path string) ioseq.Io[ioseq.Unit, *os.File] {
	return FromPath[FileOpener, *os.File](path)
}

// TCP wraps a TCP connection to addr.
func TCP(addr string) ioseq.Io[ioseq.Unit, net.Conn] {
	return FromAddr[TCPDialer, net.Conn](addr)
}
