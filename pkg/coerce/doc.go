// Package coerce holds the total conversion helpers every model decoder uses to
// read untyped JSON values. None of the helpers panic or return errors: a value
// that cannot be read yields the caller supplied fallback or a false flag.
package coerce
