package bc

import (
	"errors"
	"strconv"
)

// ErrorCode identifies the kind of programmer error a bc function rejected.
//
// The codec surface itself never fails per its own rules (§7): reserved
// modes, header overruns and bad indices on decode resolve to a documented
// error-color tile, not an error return. ErrorCode only covers the inputs
// the contract rules out entirely: nil or undersized block buffers.
type ErrorCode uint32

const (
	// Success means no error.
	Success ErrorCode = 0

	// ErrBadBlockSize means a decoder was handed a buffer shorter than
	// its format requires.
	ErrBadBlockSize ErrorCode = 1

	// ErrBadPixelCount means a pixel count other than 16. No function in
	// this package currently returns it: the encoders take a
	// *[16]HDRColorA and return no error.
	ErrBadPixelCount ErrorCode = 2
)

// Error is a typed error carrying an ErrorCode.
type Error struct {
	Code ErrorCode
	Msg  string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return e.Msg
}

// ErrorCodeOf returns the ErrorCode carried by err, or Success for nil.
//
// For non-*Error errors it returns ErrBadBlockSize as a conservative
// fallback.
func ErrorCodeOf(err error) ErrorCode {
	if err == nil {
		return Success
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrBadBlockSize
}

func newError(code ErrorCode, msg string) error {
	return &Error{Code: code, Msg: msg}
}

func errShortBlock(format string, want, got int) error {
	return newError(ErrBadBlockSize, "bc: "+format+" block too short: want "+strconv.Itoa(want)+" bytes, got "+strconv.Itoa(got))
}

func errPixelCount(got int) error {
	return newError(ErrBadPixelCount, "bc: expected 16 pixels, got "+strconv.Itoa(got))
}
