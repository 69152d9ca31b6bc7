package ir

import "github.com/pkg/errors"

// Error kinds. Every structural-invariant violation the IR can detect is
// reported as one of these, wrapped with errors.Wrapf so the message names
// the offending entity and errors.Is still matches the sentinel.
var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidUse     = errors.New("invalid use")
	ErrArity          = errors.New("arity mismatch")
	ErrType           = errors.New("type mismatch")
	ErrSchema         = errors.New("invalid instruction syntax")
	ErrUnknownOpcode  = errors.New("unknown opcode")
	ErrNotImplemented = errors.New("not implemented")
)

func notFoundf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrNotFound, format, args...)
}

func invalidUsef(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidUse, format, args...)
}

func arityf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrArity, format, args...)
}

func typef(format string, args ...interface{}) error {
	return errors.Wrapf(ErrType, format, args...)
}

func schemaf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrSchema, format, args...)
}

func unknownOpcodef(format string, args ...interface{}) error {
	return errors.Wrapf(ErrUnknownOpcode, format, args...)
}

func notImplementedf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrNotImplemented, format, args...)
}
