// Package ioseq provides a chainable, failure-propagating wrapper around a
// single I/O handle. An Io[A, T] holds either the data produced by the most
// recent call together with exclusive ownership of the handle (good), or the
// error of the first call that failed (bad). Once a wrapper has gone bad,
// every further operation is a no-op that carries the same error forward;
// only Or/OrElse can leave the bad state.
//
// Key operations:
// - Wrap/WrapFunc: wrap the result of constructing a handle
// - And/AndThen: continue with another wrapper, or with the produced data
// - Or/OrElse: replace a failed wrapper, or recover from its error
// - Read/ReadToEnd/ReadToString: one-shot reads on io.Reader handles
// - Write/WriteAll/WriteFmt: writes on io.Writer handles
// - Seek: reposition io.Seeker handles
// - FillBuf/Consume/ReadUntil/ReadLine/Split/Lines: buffered reads
// - Ok/ToData/ToHandle/Finally: leave the wrapper for plain values
//
// A wrapper is consumed by value on every operation and a successor wrapper
// is returned; the consumed value must not be reused. This keeps a single
// logical owner of the handle through the whole chain. Capability gating is
// done with type constraints, so calling a read on a write-only handle does
// not compile.
//
// For the process standard streams see package stdio; for path and address
// based construction see package open.
package ioseq
