// Package open builds initial ioseq wrappers from filesystem paths and
// network addresses. Construction is capability-polymorphic: FromPath and
// FromAddr are generic over a zero-value opener type that knows how to turn
// a path or address into a concrete handle, so the same entry point yields
// a file, a socket, or any caller-supplied handle type.
//
// Key operations:
// - FromPath/FromAddr: generic construction via PathOpener/AddrDialer
// - FileOpener/TCPDialer: the stock adapters for files and TCP sockets
// - File/TCP: shorthands for the stock adapters
//
// Construction failure surfaces as the wrapper's initial bad state; the
// chain built on top then performs no I/O.
package open
