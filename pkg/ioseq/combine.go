package ioseq

// And discards w and continues with alt if w is good, or carries w's error
// into alt's shape if it is bad. Because Go evaluates arguments before the
// call, the expression building alt always runs, including any handle
// construction it performs; only the result is gated on w's state. Use
// AndThen when the continuation must not run on failure.
func And[B, U, A, T any](w Io[A, T], alt Io[B, U]) Io[B, U] {
	if w.IsBad() {
		return BadFrom[B, U](w)
	}
	return alt
}

// AndThen passes the data of a good wrapper to f, together with a fresh
// unit-valued wrapper around the same handle, and returns whatever f
// produces. On a bad wrapper f is never invoked and the error propagates.
func AndThen[B, U, A, T any](w Io[A, T], f func(A, Io[Unit, T]) Io[B, U]) Io[B, U] {
	if w.IsBad() {
		return BadFrom[B, U](w)
	}
	return f(w.data, Good(Unit{}, w.handle))
}

// Or replaces a bad wrapper with alt; a good wrapper passes through
// unchanged. Like And, alt is built eagerly at the call site whether or not
// it ends up used.
func (w Io[A, T]) Or(alt Io[A, T]) Io[A, T] {
	if w.IsBad() {
		return alt
	}
	return w
}

// OrElse hands the captured error to f and returns its result; f is only
// invoked when the wrapper is bad. This is the recovery path: f may
// construct a replacement wrapper or diverge.
func (w Io[A, T]) OrElse(f func(error) Io[A, T]) Io[A, T] {
	if w.IsBad() {
		return f(w.err)
	}
	return w
}

// Ignore drops the data of the most recent call, keeping state and handle.
func (w Io[A, T]) Ignore() Io[Unit, T] {
	if w.IsBad() {
		return BadFrom[Unit, T](w)
	}
	return Good(Unit{}, w.handle)
}

// Tee runs a side effect on the data of a good wrapper and returns the
// wrapper unchanged. Bad wrappers pass through without invoking onGood.
func (w Io[A, T]) Tee(onGood func(A)) Io[A, T] {
	if w.IsGood() {
		onGood(w.data)
	}
	return w
}

// Ok consumes the wrapper, returning the data and the handle, or the
// captured error. No I/O is performed.
func (w Io[A, T]) Ok() (A, T, error) {
	if w.IsBad() {
		var data A
		var handle T
		return data, handle, w.err
	}
	return w.data, w.handle, nil
}

// ToData consumes the wrapper, keeping only the data of the most recent
// call. The handle is dropped.
func (w Io[A, T]) ToData() (A, error) {
	if w.IsBad() {
		var data A
		return data, w.err
	}
	return w.data, nil
}

// ToHandle consumes the wrapper, keeping only the handle.
func (w Io[A, T]) ToHandle() (T, error) {
	if w.IsBad() {
		var handle T
		return handle, w.err
	}
	return w.handle, nil
}

// Finally collapses the wrapper to a plain value via the matching handler.
func Finally[Out, A, T any](w Io[A, T], onGood func(A, T) Out, onBad func(error) Out) Out {
	if w.IsBad() {
		return onBad(w.err)
	}
	return onGood(w.data, w.handle)
}
