// Package result provides the generic Result/Option value envelopes that
// spec.md §3 specifies by contract only. The engine's callback surface
// (constraints, costs, targets, actions) uses plain Go error returns, not
// these; they back the root package's ActivateEffectResult and
// ResolveChainResult wrappers.
package result

// Result holds either a value of type T or an error. It is the Go stand-in
// for the host-language Result<T, E> contract the engine is specified
// against.
type Result[T any] struct {
	value T
	err   error
}

// Ok wraps a successful value.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Err wraps a failure. Passing a nil error is a programmer error and panics,
// mirroring how a typed Result<T,E> would refuse to construct an Err(nil).
func Err[T any](err error) Result[T] {
	if err == nil {
		panic("result.Err: nil error")
	}
	return Result[T]{err: err}
}

// IsOk reports whether the Result holds a value rather than an error.
func (r Result[T]) IsOk() bool { return r.err == nil }

// IsErr reports whether the Result holds an error.
func (r Result[T]) IsErr() bool { return r.err != nil }

// Unwrap returns the held value, panicking if the Result is an error.
func (r Result[T]) Unwrap() T {
	if r.err != nil {
		panic("result.Unwrap: called on Err: " + r.err.Error())
	}
	return r.value
}

// UnwrapOr returns the held value, or def if the Result is an error.
func (r Result[T]) UnwrapOr(def T) T {
	if r.err != nil {
		return def
	}
	return r.value
}

// UnwrapErr returns the held error (nil if the Result is Ok).
func (r Result[T]) UnwrapErr() error { return r.err }

// Get returns both the value and the error, Go-idiom style.
func (r Result[T]) Get() (T, error) { return r.value, r.err }

// Option holds an optional value of type T.
type Option[T any] struct {
	value   T
	present bool
}

// Some wraps a present value.
func Some[T any](v T) Option[T] { return Option[T]{value: v, present: true} }

// None returns an absent Option.
func None[T any]() Option[T] { return Option[T]{} }

// IsSome reports whether the Option holds a value.
func (o Option[T]) IsSome() bool { return o.present }

// IsNone reports whether the Option is absent.
func (o Option[T]) IsNone() bool { return !o.present }

// Get returns the value and whether it was present.
func (o Option[T]) Get() (T, bool) { return o.value, o.present }

// UnwrapOr returns the held value, or def if absent.
func (o Option[T]) UnwrapOr(def T) T {
	if !o.present {
		return def
	}
	return o.value
}
