package vec

import "errors"

var (
	// ErrIndexOutOfRange is returned by Basis3/Basis4 when the requested
	// index lies outside [0, dim).
	ErrIndexOutOfRange = errors.New("vec: basis index out of range")
)
