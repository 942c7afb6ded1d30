package compare

import "fmt"

// DecodeError reports a source image that could not be read or decoded.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IOError reports a failure writing the exported animation.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// InvalidParameterError reports a compositor parameter outside its domain.
type InvalidParameterError struct {
	Param string
	Value any
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid %s: %v (must be positive)", e.Param, e.Value)
}
