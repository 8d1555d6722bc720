package parsita

// Result is the public outcome of a top-level parse: either a value or a
// ParseError. Internal evaluation never produces this type; only the parse
// entry points do.
type Result[V any] struct {
	value V
	err   *ParseError
}

func successResult[V any](value V) Result[V] {
	return Result[V]{value: value}
}

func failureResult[V any](err *ParseError) Result[V] {
	return Result[V]{err: err}
}

// IsSuccess reports whether the parse produced a value.
func (r Result[V]) IsSuccess() bool { return r.err == nil }

// Get returns the value, or the ParseError as an error on failure.
func (r Result[V]) Get() (V, error) {
	if r.err != nil {
		var zero V
		return zero, r.err
	}
	return r.value, nil
}

// Unwrap returns the value and panics with the *ParseError on failure. It
// is the throw-on-demand convenience for callers that treat a failure as
// unrecoverable.
func (r Result[V]) Unwrap() V {
	if r.err != nil {
		panic(r.err)
	}
	return r.value
}

// Err returns the ParseError as an error, or nil on success.
func (r Result[V]) Err() error {
	if r.err != nil {
		return r.err
	}
	return nil
}
