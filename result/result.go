/*
Package result implements values of computations that may fail.

A Result carries either a value (Ok) or an error (Err). It is handy where
outcomes travel through channels and an error has to reach the consumer in
the same place as a value would.
*/
package result

// Result is the outcome of a computation producing a T.
type Result[T any] interface {
	Match() Matcher[T]
	Get() (T, error)
}

type result[T any] struct {
	value T
	err   error
}

// Ok wraps a successfully computed value.
func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

// Err wraps an error. err should not be nil.
func Err[T any](err error) Result[T] {
	return result[T]{err: err}
}

func (r result[T]) Match() Matcher[T] {
	return matcher[T]{r: r}
}

// Get returns the value of an Ok result, or the zero value of T and the error.
func (r result[T]) Get() (T, error) {
	if r.err != nil {
		var none T
		return none, r.err
	}
	return r.value, nil
}

// Map applies f to the value of r. Errors are passed on unchanged.
func Map[T, S any](f func(T) S, r Result[T]) Result[S] {
	v, err := r.Get()
	if err != nil {
		return Err[S](err)
	}
	return Ok(f(v))
}

// --- Matching --------------------------------------------------------------

// Matcher is the result of Result.Match. Exactly one of its methods returns the
// matcher itself, the other returns nil.
type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
